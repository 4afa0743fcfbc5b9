package profile

import (
	"github.com/skillswap/skillswap-cli/internal/cli"
	"github.com/skillswap/skillswap-cli/internal/cli/user"
	"github.com/skillswap/skillswap-cli/internal/terminal"
)

// CommandView is the `profile view` command
type CommandView struct{}

// Handler is the command handler
func (cmd *CommandView) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	me, err := clients.SkillSwap.Me()
	if err != nil {
		return err
	}

	// refresh the cached copy while we have a fresh one
	profile.SetUser(me)
	if err := profile.Save(); err != nil {
		return err
	}

	ui.Print(terminal.NewJSONLog("Your profile", me))
	return nil
}
