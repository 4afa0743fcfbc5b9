package skillswap

import (
	"net/http"

	"github.com/skillswap/skillswap-cli/internal/utils/api"
)

var (
	githubLinkPath     = usersAPI + "/github/link"
	githubActivityPath = usersAPI + "/github/activity"
)

type linkResponse struct {
	Success bool `json:"success"`
}

// LinkGitHub exchanges the authorization code to attach a GitHub account
// to the current user
func (c *client) LinkGitHub(code string) error {
	res, resErr := c.doJSON(http.MethodPost, githubLinkPath, codePayload{code}, api.RequestOptions{})
	if resErr != nil {
		return resErr
	}

	var payload linkResponse
	if err := decodeJSON(res, &payload); err != nil {
		return err
	}
	if !payload.Success {
		return ServerError{StatusCode: res.StatusCode, Message: "failed to link GitHub account"}
	}
	return nil
}

// Activity is the linked GitHub account's contribution activity
type Activity struct {
	Username           string            `json:"username"`
	TotalContributions int               `json:"total_contributions"`
	Contributions      []ContributionDay `json:"contributions"`
}

// ContributionDay is a single day of contribution activity
type ContributionDay struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// GitHubActivity fetches contribution activity for the linked GitHub account
func (c *client) GitHubActivity() (Activity, error) {
	res, resErr := c.do(http.MethodGet, githubActivityPath, api.RequestOptions{})
	if resErr != nil {
		return Activity{}, resErr
	}

	var activity Activity
	if err := decodeJSON(res, &activity); err != nil {
		return Activity{}, err
	}
	return activity, nil
}
