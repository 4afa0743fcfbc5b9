package skillswap

import (
	"net/http"

	"github.com/skillswap/skillswap-cli/internal/utils/api"
)

var leaderboardPath = "/api/leaderboard"

// LeaderboardEntry is a single karma leaderboard row
type LeaderboardEntry struct {
	Username    string `json:"username"`
	KarmaPoints int    `json:"karma_points"`
}

// Leaderboard fetches the karma leaderboard; ranking is computed server-side
func (c *client) Leaderboard() ([]LeaderboardEntry, error) {
	res, resErr := c.do(http.MethodGet, leaderboardPath, api.RequestOptions{})
	if resErr != nil {
		return nil, resErr
	}

	var entries []LeaderboardEntry
	if err := decodeJSON(res, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
