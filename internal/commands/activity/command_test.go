package activity

import (
	"errors"
	"strings"
	"testing"

	"github.com/skillswap/skillswap-cli/internal/auth"
	"github.com/skillswap/skillswap-cli/internal/cli"
	"github.com/skillswap/skillswap-cli/internal/cloud/skillswap"
	u "github.com/skillswap/skillswap-cli/internal/utils/test"
	"github.com/skillswap/skillswap-cli/internal/utils/test/assert"
	"github.com/skillswap/skillswap-cli/internal/utils/test/mock"
)

func TestActivityHandler(t *testing.T) {
	setup := func(t *testing.T) func() {
		t.Helper()
		tmpDir, teardownTmpDir, tmpDirErr := u.NewTempDir("home")
		assert.Nil(t, tmpDirErr)

		_, teardownHomeDir := u.SetupHomeDir(tmpDir)

		return func() {
			teardownHomeDir()
			teardownTmpDir()
		}
	}

	t.Run("should fail when no github account is linked", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		profile := mock.NewProfile(t)
		profile.SetSession(auth.Session{AccessToken: "token123"})
		profile.SetUser(auth.User{Username: "pikachu"})

		_, ui := mock.NewUI()

		cmd := &Command{}
		err := cmd.Handler(profile, ui, cli.Clients{})
		assert.Equal(t, errors.New("no GitHub account is linked to this profile, try running 'skillswap-cli link github' first"), err)
	})

	t.Run("should print the most recent contribution days", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		profile := mock.NewProfile(t)
		profile.SetSession(auth.Session{AccessToken: "token123"})
		profile.SetUser(auth.User{Username: "pikachu", GitHubLinked: true})

		client := mock.SkillSwapClient{}
		client.GitHubActivityFn = func() (skillswap.Activity, error) {
			return skillswap.Activity{
				Username:           "pikachu-gh",
				TotalContributions: 6,
				Contributions: []skillswap.ContributionDay{
					{Date: "2021-01-01", Count: 1},
					{Date: "2021-01-02", Count: 2},
					{Date: "2021-01-03", Count: 3},
				},
			}, nil
		}

		out, ui := mock.NewUI()

		cmd := &Command{days: 2}
		assert.Nil(t, cmd.Handler(profile, ui, cli.Clients{SkillSwap: client}))

		output := out.String()
		assert.True(t, strings.Contains(output, "GitHub activity for pikachu-gh (6 total contributions)"), "output must carry the table message")
		assert.False(t, strings.Contains(output, "2021-01-01"), "older days past the cutoff must be dropped")
		assert.True(t, strings.Contains(output, "2021-01-02"), "recent days must be listed")
		assert.True(t, strings.Contains(output, "2021-01-03"), "recent days must be listed")
	})
}
