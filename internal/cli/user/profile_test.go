package user

import (
	"io/ioutil"
	"os"
	"strings"
	"testing"

	"github.com/skillswap/skillswap-cli/internal/auth"
	u "github.com/skillswap/skillswap-cli/internal/utils/test"
	"github.com/skillswap/skillswap-cli/internal/utils/test/assert"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func setupProfile(t *testing.T) (*Profile, func()) {
	t.Helper()

	tmpDir, teardownTmpDir, tmpDirErr := u.NewTempDir("home")
	assert.Nil(t, tmpDirErr)

	_, teardownHomeDir := u.SetupHomeDir(tmpDir)

	profile, err := NewProfile(primitive.NewObjectID().Hex())
	assert.Nil(t, err)

	return profile, func() {
		teardownHomeDir()
		teardownTmpDir()
	}
}

func TestProfileSession(t *testing.T) {
	t.Run("should round trip a session", func(t *testing.T) {
		profile, teardown := setupProfile(t)
		defer teardown()

		assert.False(t, profile.LoggedIn(), "a fresh profile must not be logged in")

		profile.SetSession(auth.Session{AccessToken: "token123"})
		assert.True(t, profile.LoggedIn(), "a profile with a session must be logged in")
		assert.Equal(t, auth.Session{AccessToken: "token123"}, profile.Session())
	})

	t.Run("should clear the cached user along with the session", func(t *testing.T) {
		profile, teardown := setupProfile(t)
		defer teardown()

		profile.SetSession(auth.Session{AccessToken: "token123"})
		profile.SetUser(auth.User{
			ID:            "user123",
			Username:      "pikachu",
			Email:         "pikachu@skillswap.dev",
			KarmaPoints:   42,
			SkillsOffered: []string{"Go"},
			SkillProgress: map[string]int{"Go": 3},
			GitHubLinked:  true,
		})

		profile.ClearSession()

		assert.False(t, profile.LoggedIn(), "the session must be gone")
		assert.Match(t, auth.User{}, profile.User())
	})
}

func TestProfileUser(t *testing.T) {
	t.Run("should round trip a cached user record", func(t *testing.T) {
		profile, teardown := setupProfile(t)
		defer teardown()

		user := auth.User{
			ID:             "user123",
			Username:       "pikachu",
			Email:          "pikachu@skillswap.dev",
			KarmaPoints:    42,
			SkillsOffered:  []string{"Go", "Rust"},
			SkillsNeeded:   []string{"Haskell"},
			SkillProgress:  map[string]int{"Haskell": 2},
			GitHubLinked:   true,
			GitHubUsername: "pikachu-gh",
		}
		profile.SetUser(user)

		assert.Match(t, user, profile.User())
	})
}

func TestProfileSave(t *testing.T) {
	t.Run("should write the profile contents to disk", func(t *testing.T) {
		profile, teardown := setupProfile(t)
		defer teardown()

		_, statErr := os.Stat(profile.Path())
		assert.True(t, os.IsNotExist(statErr), "profile must not exist yet")

		profile.SetSession(auth.Session{AccessToken: "token123"})
		profile.SetUser(auth.User{Username: "pikachu"})
		assert.Nil(t, profile.Save())

		contents, readErr := ioutil.ReadFile(profile.Path())
		assert.Nil(t, readErr)

		assert.True(t, strings.Contains(string(contents), profile.Name+":"), "profile contents must be namespaced by profile name")
		assert.True(t, strings.Contains(string(contents), "access_token: token123"), "profile must contain the session")
		assert.True(t, strings.Contains(string(contents), "username: pikachu"), "profile must contain the cached user")
	})
}

func TestProfileResolveFlags(t *testing.T) {
	t.Run("should fall back to the default base url", func(t *testing.T) {
		profile, teardown := setupProfile(t)
		defer teardown()

		assert.Nil(t, profile.ResolveFlags())
		assert.Equal(t, defaultBaseURL, profile.Flags.BaseURL)
		assert.Equal(t, defaultBaseURL, profile.BaseURL())
	})

	t.Run("should prefer an explicitly provided base url", func(t *testing.T) {
		profile, teardown := setupProfile(t)
		defer teardown()

		profile.Flags.BaseURL = "http://localhost:5000"

		assert.Nil(t, profile.ResolveFlags())
		assert.Equal(t, "http://localhost:5000", profile.BaseURL())
	})
}
