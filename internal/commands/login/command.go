package login

import (
	"context"

	"github.com/skillswap/skillswap-cli/internal/auth"
	"github.com/skillswap/skillswap-cli/internal/cli"
	"github.com/skillswap/skillswap-cli/internal/cli/user"
	"github.com/skillswap/skillswap-cli/internal/cloud/skillswap"
	"github.com/skillswap/skillswap-cli/internal/oauth"
	"github.com/skillswap/skillswap-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// Command is the `login` command
type Command struct {
	inputs inputs
}

// Flags is the command flags
func (cmd *Command) Flags(fs *pflag.FlagSet) {
	fs.StringVarP(&cmd.inputs.Email, flagEmail, flagEmailShort, "", flagEmailUsage)
	fs.StringVarP(&cmd.inputs.Password, flagPassword, flagPasswordShort, "", flagPasswordUsage)
	fs.StringVar(&cmd.inputs.Provider, flagProvider, "", flagProviderUsage)
	fs.DurationVar(&cmd.inputs.AuthTimeout, flagAuthTimeout, oauth.DefaultTimeout, flagAuthTimeoutUsage)
}

// Inputs is the command inputs
func (cmd *Command) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *Command) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if cmd.inputs.Provider != "" {
		return cmd.providerLogin(profile, ui, clients)
	}

	existingUser := profile.User()
	if profile.LoggedIn() && existingUser.Email != cmd.inputs.Email {
		proceed, err := ui.Confirm(
			"This action will terminate the existing session for user: %s, would you like to proceed?",
			existingUser.Username,
		)
		if err != nil {
			return err
		}
		if !proceed {
			return nil
		}
	}

	res, err := clients.SkillSwap.Login(skillswap.Credentials{
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

func (cmd *Command) providerLogin(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	coordinator := oauth.NewCoordinator(clients.SkillSwap.AuthURL, oauth.Options{
		Timeout:     cmd.inputs.AuthTimeout,
		OpenBrowser: ui.OpenBrowser,
	})

	s := ui.Spinner("Waiting for browser authorization...", terminal.SpinnerOptions{})
	s.Start()
	defer s.Stop()

	var res skillswap.AuthResponse
	err := coordinator.Run(context.Background(), cmd.inputs.Provider, func(code string) error {
		var exchangeErr error
		res, exchangeErr = clients.SkillSwap.ExchangeCode(cmd.inputs.Provider, code)
		return exchangeErr
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
	ui.Print(terminal.NewTextLog("Successfully logged in"))
	return nil
}
