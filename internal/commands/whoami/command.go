package whoami

import (
	"github.com/skillswap/skillswap-cli/internal/auth"
	"github.com/skillswap/skillswap-cli/internal/cli"
	"github.com/skillswap/skillswap-cli/internal/cli/user"
	"github.com/skillswap/skillswap-cli/internal/terminal"
)

// Command is the `whoami` command
type Command struct{}

// Handler is the command handler
func (cmd *Command) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if !profile.LoggedIn() {
		ui.Print(terminal.NewTextLog("No user is currently logged in"))
		return nil
	}

	u := profile.User()

	ui.Print(terminal.NewTextLog(
		"Currently logged in user: %s <%s> (%s)",
		u.Username,
		u.Email,
		auth.RedactToken(profile.Session().AccessToken),
	))
	return nil
}
