package login

import (
	"bytes"
	"errors"
	"io/ioutil"
	"net/http"
	"net/url"
	"os"
	"strings"
	"testing"

	"github.com/skillswap/skillswap-cli/internal/auth"
	"github.com/skillswap/skillswap-cli/internal/cli"
	"github.com/skillswap/skillswap-cli/internal/cloud/skillswap"
	u "github.com/skillswap/skillswap-cli/internal/utils/test"
	"github.com/skillswap/skillswap-cli/internal/utils/test/assert"
	"github.com/skillswap/skillswap-cli/internal/utils/test/mock"
)

func TestLoginHandler(t *testing.T) {
	t.Run("with no existing session handler should save the new session", func(t *testing.T) {
		tmpDir, teardownTmpDir, tmpDirErr := u.NewTempDir("home")
		assert.Nil(t, tmpDirErr)
		defer teardownTmpDir()

		_, teardownHomeDir := u.SetupHomeDir(tmpDir)
		defer teardownHomeDir()

		profile := mock.NewProfile(t)

		_, statErr := os.Stat(profile.Path())
		assert.NotNil(t, statErr)
		assert.True(t, os.IsNotExist(statErr), "profile must not exist")

		client := mock.SkillSwapClient{}
		client.LoginFn = func(creds skillswap.Credentials) (skillswap.AuthResponse, error) {
			assert.Equal(t, "pikachu@skillswap.dev", creds.Email)
			assert.Equal(t, "password", creds.Password)
			return skillswap.AuthResponse{
				Token: "token123",
				User: auth.User{
					ID:       "user123",
					Username: "pikachu",
					Email:    "pikachu@skillswap.dev",
				},
			}, nil
		}

		cmd := &Command{inputs{Email: "pikachu@skillswap.dev", Password: "password"}}

		_, ui := mock.NewUI()

		assert.Nil(t, cmd.Handler(profile, ui, cli.Clients{SkillSwap: client}))

		assert.Equal(t, auth.Session{AccessToken: "token123"}, profile.Session())
		assert.Equal(t, "pikachu", profile.User().Username)

		contents, readErr := ioutil.ReadFile(profile.Path())
		assert.Nil(t, readErr)
		assert.True(t, strings.Contains(string(contents), "access_token: token123"), "profile must contain the session")
	})

	t.Run("with a different user logged in should prompt before replacing the session", func(t *testing.T) {
		for _, tc := range []struct {
			description     string
			confirmAnswer   string
			expectedSession auth.Session
			expectedUser    string
		}{
			{
				description:     "and do nothing if the user does not want to proceed",
				confirmAnswer:   "n",
				expectedSession: auth.Session{AccessToken: "existingToken"},
				expectedUser:    "pikachu",
			},
			{
				description:     "and save a new session if the user does want to proceed",
				confirmAnswer:   "y",
				expectedSession: auth.Session{AccessToken: "newToken"},
				expectedUser:    "raichu",
			},
		} {
			t.Run(tc.description, func(t *testing.T) {
				tmpDir, teardownTmpDir, tmpDirErr := u.NewTempDir("home")
				assert.Nil(t, tmpDirErr)
				defer teardownTmpDir()

				_, teardownHomeDir := u.SetupHomeDir(tmpDir)
				defer teardownHomeDir()

				profile := mock.NewProfile(t)
				profile.SetSession(auth.Session{AccessToken: "existingToken"})
				profile.SetUser(auth.User{Username: "pikachu", Email: "pikachu@skillswap.dev"})
				assert.Nil(t, profile.Save())

				client := mock.SkillSwapClient{}
				client.LoginFn = func(creds skillswap.Credentials) (skillswap.AuthResponse, error) {
					return skillswap.AuthResponse{
						Token: "newToken",
						User:  auth.User{Username: "raichu", Email: "raichu@skillswap.dev"},
					}, nil
				}

				cmd := &Command{inputs: inputs{Email: "raichu@skillswap.dev", Password: "password"}}

				_, console, _, ui, consoleErr := mock.NewVT10XConsole()
				assert.Nil(t, consoleErr)

				doneCh := make(chan (struct{}))
				go func() {
					defer close(doneCh)
					console.ExpectString("This action will terminate the existing session for user: pikachu, would you like to proceed?")
					console.SendLine(tc.confirmAnswer)
					console.ExpectEOF()
				}()

				assert.Nil(t, cmd.Handler(profile, ui, cli.Clients{SkillSwap: client}))

				assert.Nil(t, console.Tty().Close())
				<-doneCh

				assert.Equal(t, tc.expectedSession, profile.Session())
				assert.Equal(t, tc.expectedUser, profile.User().Username)
			})
		}
	})

	t.Run("with a provider specified should complete a browser authorization", func(t *testing.T) {
		tmpDir, teardownTmpDir, tmpDirErr := u.NewTempDir("home")
		assert.Nil(t, tmpDirErr)
		defer teardownTmpDir()

		_, teardownHomeDir := u.SetupHomeDir(tmpDir)
		defer teardownHomeDir()

		profile := mock.NewProfile(t)

		client := mock.SkillSwapClient{}
		client.AuthURLFn = func(provider string) (string, error) {
			assert.Equal(t, "google", provider)
			return "https://provider.example.com/authorize?client_id=skillswap", nil
		}
		client.ExchangeCodeFn = func(provider, code string) (skillswap.AuthResponse, error) {
			assert.Equal(t, "google", provider)
			assert.Equal(t, "code123", code)
			return skillswap.AuthResponse{
				Token: "token123",
				User:  auth.User{Username: "pikachu"},
			}, nil
		}

		ui := mock.NewUIWithOptions(mock.UIOptions{OpenBrowserFn: followRedirect(t, "code123", true)}, new(bytes.Buffer))

		cmd := &Command{inputs{Provider: "google"}}

		assert.Nil(t, cmd.Handler(profile, ui, cli.Clients{SkillSwap: client}))

		assert.Equal(t, auth.Session{AccessToken: "token123"}, profile.Session())
		assert.Equal(t, "pikachu", profile.User().Username)
	})

	t.Run("with a provider specified should fail when the redirect carries no code", func(t *testing.T) {
		tmpDir, teardownTmpDir, tmpDirErr := u.NewTempDir("home")
		assert.Nil(t, tmpDirErr)
		defer teardownTmpDir()

		_, teardownHomeDir := u.SetupHomeDir(tmpDir)
		defer teardownHomeDir()

		profile := mock.NewProfile(t)

		client := mock.SkillSwapClient{}
		client.AuthURLFn = func(provider string) (string, error) {
			return "https://provider.example.com/authorize?client_id=skillswap", nil
		}
		exchangeCalled := false
		client.ExchangeCodeFn = func(provider, code string) (skillswap.AuthResponse, error) {
			exchangeCalled = true
			return skillswap.AuthResponse{}, nil
		}

		ui := mock.NewUIWithOptions(mock.UIOptions{OpenBrowserFn: followRedirect(t, "", false)}, new(bytes.Buffer))

		cmd := &Command{inputs{Provider: "google"}}

		err := cmd.Handler(profile, ui, cli.Clients{SkillSwap: client})
		assert.Equal(t, errors.New("the provider returned no authorization code"), err)

		assert.False(t, exchangeCalled, "exchange must not run without a code")
		assert.False(t, profile.LoggedIn(), "no session must be saved")
	})
}

func TestLoginFeedback(t *testing.T) {
	t.Run("should print a message that login was successful", func(t *testing.T) {
		out, ui := mock.NewUI()

		cmd := &Command{}

		assert.Nil(t, cmd.Feedback(nil, ui))
		assert.Equal(t, "01:23:45 UTC INFO  Successfully logged in\n", out.String())
	})
}

// followRedirect stands in for the user's browser during tests: it follows
// the provider redirect straight back to the loopback listener
func followRedirect(t *testing.T, code string, includeCode bool) func(string) error {
	t.Helper()
	return func(authURL string) error {
		parsed, err := url.Parse(authURL)
		if err != nil {
			return err
		}

		redirect, err := url.Parse(parsed.Query().Get("redirect_uri"))
		if err != nil {
			return err
		}

		q := redirect.Query()
		if includeCode {
			q.Set("code", code)
		}
		q.Set("state", parsed.Query().Get("state"))
		redirect.RawQuery = q.Encode()

		res, err := http.Get(redirect.String())
		if err != nil {
			return err
		}
		return res.Body.Close()
	}
}
