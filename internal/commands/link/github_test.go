package link

import (
	"bytes"
	"errors"
	"net/http"
	"net/url"
	"testing"

	"github.com/skillswap/skillswap-cli/internal/auth"
	"github.com/skillswap/skillswap-cli/internal/cli"
	u "github.com/skillswap/skillswap-cli/internal/utils/test"
	"github.com/skillswap/skillswap-cli/internal/utils/test/assert"
	"github.com/skillswap/skillswap-cli/internal/utils/test/mock"
)

func TestLinkGitHubHandler(t *testing.T) {
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

	t.Run("should fail when no user is logged in", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		profile := mock.NewProfile(t)

		_, ui := mock.NewUI()

		cmd := &CommandGitHub{}
		err := cmd.Handler(profile, ui, cli.Clients{})
		assert.Equal(t, errors.New("no user is currently logged in, try running 'skillswap-cli login' first"), err)
	})

	t.Run("should link the account and refresh the cached user", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		profile := mock.NewProfile(t)
		profile.SetSession(auth.Session{AccessToken: "token123"})
		profile.SetUser(auth.User{Username: "pikachu"})

		var linkedCodes []string
		client := mock.SkillSwapClient{}
		client.AuthURLFn = func(provider string) (string, error) {
			assert.Equal(t, "github", provider)
			return "https://github.com/login/oauth/authorize?client_id=skillswap", nil
		}
		client.LinkGitHubFn = func(code string) error {
			linkedCodes = append(linkedCodes, code)
			return nil
		}
		client.MeFn = func() (auth.User, error) {
			return auth.User{Username: "pikachu", GitHubLinked: true, GitHubUsername: "pikachu-gh"}, nil
		}

		ui := mock.NewUIWithOptions(mock.UIOptions{OpenBrowserFn: followRedirect(t, "code123")}, new(bytes.Buffer))

		cmd := &CommandGitHub{}
		assert.Nil(t, cmd.Handler(profile, ui, cli.Clients{SkillSwap: client}))

		assert.Equal(t, []string{"code123"}, linkedCodes)

		cached := profile.User()
		assert.True(t, cached.GitHubLinked, "the cached user must reflect the link")
		assert.Equal(t, "pikachu-gh", cached.GitHubUsername)
	})

	t.Run("should surface a link rejection", func(t *testing.T) {
		teardown := setup(t)
		defer teardown()

		profile := mock.NewProfile(t)
		profile.SetSession(auth.Session{AccessToken: "token123"})
		profile.SetUser(auth.User{Username: "pikachu"})

		client := mock.SkillSwapClient{}
		client.AuthURLFn = func(provider string) (string, error) {
			return "https://github.com/login/oauth/authorize?client_id=skillswap", nil
		}
		client.LinkGitHubFn = func(code string) error {
			return errors.New("failed to link GitHub account")
		}

		ui := mock.NewUIWithOptions(mock.UIOptions{OpenBrowserFn: followRedirect(t, "code123")}, new(bytes.Buffer))

		cmd := &CommandGitHub{}
		err := cmd.Handler(profile, ui, cli.Clients{SkillSwap: client})
		assert.Equal(t, errors.New("failed to link GitHub account"), err)

		assert.False(t, profile.User().GitHubLinked, "the cached user must stay unlinked")
	})
}

func TestLinkGitHubFeedback(t *testing.T) {
	t.Run("should print a message that the link succeeded", func(t *testing.T) {
		out, ui := mock.NewUI()

		cmd := &CommandGitHub{}
		assert.Nil(t, cmd.Feedback(nil, ui))
		assert.Equal(t, "01:23:45 UTC INFO  Successfully linked your GitHub account\n", out.String())
	})
}

func followRedirect(t *testing.T, code string) func(string) error {
	t.Helper()
	return func(authURL string) error {
		parsed, err := url.Parse(authURL)
		if err != nil {
			return err
		}

		redirectURI := parsed.Query().Get("redirect_uri")
		state := parsed.Query().Get("state")

		res, err := http.Get(redirectURI + "?code=" + code + "&state=" + state)
		if err != nil {
			return err
		}
		return res.Body.Close()
	}
}
