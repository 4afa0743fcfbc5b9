package mock

import (
	"testing"

	"github.com/skillswap/skillswap-cli/internal/auth"
	"github.com/skillswap/skillswap-cli/internal/cli/user"
	"github.com/skillswap/skillswap-cli/internal/utils/test/assert"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NewProfile returns a new CLI profile with a random name
func NewProfile(t *testing.T) *user.Profile {
	t.Helper()
	profile, err := user.NewProfile(primitive.NewObjectID().Hex())
	assert.Nil(t, err)
	return profile
}

// NewProfileWithSession returns a new CLI profile with a session
func NewProfileWithSession(t *testing.T, session auth.Session) *user.Profile {
	profile := NewProfile(t)
	profile.SetSession(session)
	return profile
}
