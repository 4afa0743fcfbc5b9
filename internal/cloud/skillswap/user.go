package skillswap

import (
	"net/http"

	"github.com/skillswap/skillswap-cli/internal/auth"
	"github.com/skillswap/skillswap-cli/internal/utils/api"
)

var (
	mePath    = usersAPI + "/me"
	usersPath = usersAPI
)

// UserUpdate is a partial user record; only non-nil fields are sent
type UserUpdate struct {
	Username      *string         `json:"username,omitempty"`
	SkillsOffered *[]string       `json:"skills_offered,omitempty"`
	SkillsNeeded  *[]string       `json:"skills_needed,omitempty"`
	SkillProgress *map[string]int `json:"skill_progress,omitempty"`
}

// Me fetches the current user record
func (c *client) Me() (auth.User, error) {
	res, resErr := c.do(http.MethodGet, mePath, api.RequestOptions{})
	if resErr != nil {
		return auth.User{}, resErr
	}

	var user auth.User
	if err := decodeJSON(res, &user); err != nil {
		return auth.User{}, err
	}
	return user, nil
}

// UpdateMe applies a partial update to the current user record
// and returns the updated record
func (c *client) UpdateMe(update UserUpdate) (auth.User, error) {
	res, resErr := c.doJSON(http.MethodPut, mePath, update, api.RequestOptions{})
	if resErr != nil {
		return auth.User{}, resErr
	}

	var user auth.User
	if err := decodeJSON(res, &user); err != nil {
		return auth.User{}, err
	}
	return user, nil
}

// Users lists the platform's members
func (c *client) Users() ([]auth.User, error) {
	res, resErr := c.do(http.MethodGet, usersPath, api.RequestOptions{})
	if resErr != nil {
		return nil, resErr
	}

	var users []auth.User
	if err := decodeJSON(res, &users); err != nil {
		return nil, err
	}
	return users, nil
}
