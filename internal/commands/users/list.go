package users

import (
	"fmt"
	"strings"

	"github.com/skillswap/skillswap-cli/internal/cli"
	"github.com/skillswap/skillswap-cli/internal/cli/user"
	"github.com/skillswap/skillswap-cli/internal/terminal"
)

const (
	headerUsername      = "Username"
	headerKarma         = "Karma"
	headerSkillsOffered = "Teaches"
	headerSkillsNeeded  = "Wants to Learn"
)

// CommandList is the `users` command
type CommandList struct{}

// Handler is the command handler
func (cmd *CommandList) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	communityUsers, err := clients.SkillSwap.Users()
	if err != nil {
		return err
	}

	if len(communityUsers) == 0 {
		ui.Print(terminal.NewTextLog("No users found"))
		return nil
	}

	tableRows := make([]map[string]interface{}, 0, len(communityUsers))
	for _, u := range communityUsers {
		tableRows = append(tableRows, map[string]interface{}{
			headerUsername:      u.Username,
			headerKarma:         u.KarmaPoints,
			headerSkillsOffered: strings.Join(u.SkillsOffered, ", "),
			headerSkillsNeeded:  strings.Join(u.SkillsNeeded, ", "),
		})
	}

	ui.Print(terminal.NewTableLog(
		fmt.Sprintf("Found %d users", len(communityUsers)),
		[]string{headerUsername, headerKarma, headerSkillsOffered, headerSkillsNeeded},
		tableRows...,
	))
	return nil
}
