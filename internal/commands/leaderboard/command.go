package leaderboard

import (
	"fmt"

	"github.com/skillswap/skillswap-cli/internal/cli"
	"github.com/skillswap/skillswap-cli/internal/cli/user"
	"github.com/skillswap/skillswap-cli/internal/terminal"
)

const (
	headerRank     = "Rank"
	headerUsername = "Username"
	headerKarma    = "Karma"
)

// Command is the `leaderboard` command
type Command struct{}

// Handler is the command handler
func (cmd *Command) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	entries, err := clients.SkillSwap.Leaderboard()
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		ui.Print(terminal.NewTextLog("The leaderboard is empty"))
		return nil
	}

	tableRows := make([]map[string]interface{}, 0, len(entries))
	for i, entry := range entries {
		tableRows = append(tableRows, map[string]interface{}{
			headerRank:     i + 1,
			headerUsername: entry.Username,
			headerKarma:    entry.KarmaPoints,
		})
	}

	ui.Print(terminal.NewTableLog(
		fmt.Sprintf("Karma leaderboard (top %d)", len(entries)),
		[]string{headerRank, headerUsername, headerKarma},
		tableRows...,
	))
	return nil
}
