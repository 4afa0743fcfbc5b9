package register

import (
	"github.com/skillswap/skillswap-cli/internal/auth"
	"github.com/skillswap/skillswap-cli/internal/cli"
	"github.com/skillswap/skillswap-cli/internal/cli/user"
	"github.com/skillswap/skillswap-cli/internal/cloud/skillswap"
	"github.com/skillswap/skillswap-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// Command is the `register` command
type Command struct {
	inputs inputs
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.inputs.Username, flagUsername, "", flagUsernameUsage)
	fs.StringVarP(&cmd.inputs.Email, flagEmail, flagEmailShort, "", flagEmailUsage)
	fs.StringVarP(&cmd.inputs.Password, flagPassword, flagPasswordShort, "", flagPasswordUsage)
}

// Inputs is the command inputs
func (cmd *Command) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *Command) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	res, err := clients.SkillSwap.Register(skillswap.Registration{
		Username: cmd.inputs.Username,
		Email:    cmd.inputs.Email,
		Password: cmd.inputs.Password,
	})
	if err != nil {
		return err
	}

	profile.SetSession(auth.Session{AccessToken: res.Token})
	profile.SetUser(res.User)
	return profile.Save()
}

// Feedback is the command feedback
func (cmd *Command) Feedback(profile *user.Profile, ui terminal.UI) error {
	ui.Print(terminal.NewTextLog("Welcome to SkillSwap, %s", profile.User().Username))
	return nil
}
