package whoami

import (
	"testing"

	"github.com/skillswap/skillswap-cli/internal/auth"
	"github.com/skillswap/skillswap-cli/internal/cli"
	u "github.com/skillswap/skillswap-cli/internal/utils/test"
	"github.com/skillswap/skillswap-cli/internal/utils/test/assert"
	"github.com/skillswap/skillswap-cli/internal/utils/test/mock"
)

func TestWhoamiHandler(t *testing.T) {
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

	t.Run("should print nothing revealing when no user is logged in", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		profile := mock.NewProfile(t)

		out, ui := mock.NewUI()

		cmd := &Command{}
		assert.Nil(t, cmd.Handler(profile, ui, cli.Clients{}))
		assert.Equal(t, "01:23:45 UTC INFO  No user is currently logged in\n", out.String())
	})

	t.Run("should print the logged in user with a redacted token", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		profile := mock.NewProfile(t)
		profile.SetSession(auth.Session{AccessToken: "tokenabcd1234"})
		profile.SetUser(auth.User{Username: "pikachu", Email: "pikachu@skillswap.dev"})

		out, ui := mock.NewUI()

		cmd := &Command{}
		assert.Nil(t, cmd.Handler(profile, ui, cli.Clients{}))
		assert.Equal(t, "01:23:45 UTC INFO  Currently logged in user: pikachu <pikachu@skillswap.dev> (*********1234)\n", out.String())
	})
}
