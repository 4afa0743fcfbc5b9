package auth

import (
	"strings"
)

// Service is an auth service
type Service interface {
	ClearSession()
	Save() error
	Session() Session
	SetSession(session Session)
	User() User
	SetUser(user User)
}

// Session is the CLI profile session
type Session struct {
	AccessToken string `json:"access_token"`
}

// User is the last-known user record returned by the SkillSwap backend
type User struct {
	ID             string         `json:"id"`
	Username       string         `json:"username"`
	Email          string         `json:"email"`
	KarmaPoints    int            `json:"karma_points"`
	SkillsOffered  []string       `json:"skills_offered"`
	SkillsNeeded   []string       `json:"skills_needed"`
	SkillProgress  map[string]int `json:"skill_progress"`
	GitHubLinked   bool           `json:"github_linked"`
	GitHubUsername string         `json:"github_username,omitempty"`
}

// RedactToken returns the session token with sensitive information redacted,
// leaving only the trailing characters visible
func RedactToken(token string) string {
	const visible = 4

	if len(token) <= visible {
		return strings.Repeat("*", len(token))
	}
	return strings.Repeat("*", len(token)-visible) + token[len(token)-visible:]
}
