package activity

import (
	"errors"
	"fmt"

	"github.com/skillswap/skillswap-cli/internal/cli"
	"github.com/skillswap/skillswap-cli/internal/cli/user"
	"github.com/skillswap/skillswap-cli/internal/terminal"

	"github.com/spf13/pflag"
)

const (
	flagDays      = "days"
	flagDaysUsage = "specify how many of the most recent days to display"

	defaultDays = 14

	headerDate          = "Date"
	headerContributions = "Contributions"
)

// Command is the `activity` command
type Command struct {
	days int
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.IntVar(&cmd.days, flagDays, defaultDays, flagDaysUsage)
}

// Handler is the command handler
func (cmd *Command) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if !profile.User().GitHubLinked {
		return errors.New("no GitHub account is linked to this profile, try running 'skillswap-cli link github' first")
	}

	activity, err := clients.SkillSwap.GitHubActivity()
	if err != nil {
		return err
	}

	contributions := activity.Contributions
	if cmd.days > 0 && len(contributions) > cmd.days {
		contributions = contributions[len(contributions)-cmd.days:]
	}

	tableRows := make([]map[string]interface{}, 0, len(contributions))
	for _, day := range contributions {
		tableRows = append(tableRows, map[string]interface{}{
			headerDate:          day.Date,
			headerContributions: day.Count,
		})
	}

	ui.Print(terminal.NewTableLog(
		fmt.Sprintf("GitHub activity for %s (%d total contributions)", activity.Username, activity.TotalContributions),
		[]string{headerDate, headerContributions},
		tableRows...,
	))
	return nil
}
