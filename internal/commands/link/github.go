package link

import (
	"context"
	"errors"
	"time"

	"github.com/skillswap/skillswap-cli/internal/cli"
	"github.com/skillswap/skillswap-cli/internal/cli/user"
	"github.com/skillswap/skillswap-cli/internal/oauth"
	"github.com/skillswap/skillswap-cli/internal/terminal"

	"github.com/spf13/pflag"
)

const (
	providerGitHub = "github"

	flagAuthTimeout      = "auth-timeout"
	flagAuthTimeoutUsage = "specify how long to wait for browser authorization before giving up"
)

// CommandGitHub is the `link github` command
type CommandGitHub struct {
	authTimeout time.Duration
}

// Flags is the command flags
func (cmd *CommandGitHub) Flags(fs *pflag.FlagSet) {
	fs.DurationVar(&cmd.authTimeout, flagAuthTimeout, oauth.DefaultTimeout, flagAuthTimeoutUsage)
}

// Handler is the command handler
func (cmd *CommandGitHub) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	if !profile.LoggedIn() {
		return errors.New("no user is currently logged in, try running 'skillswap-cli login' first")
	}

	coordinator := oauth.NewCoordinator(clients.SkillSwap.AuthURL, oauth.Options{
		Timeout:     cmd.authTimeout,
		OpenBrowser: ui.OpenBrowser,
	})

	s := ui.Spinner("Waiting for GitHub authorization...", terminal.SpinnerOptions{})
	s.Start()
	defer s.Stop()

	if err := coordinator.Run(context.Background(), providerGitHub, clients.SkillSwap.LinkGitHub); err != nil {
		return err
	}

	me, err := clients.SkillSwap.Me()
	if err != nil {
		return err
	}

	profile.SetUser(me)
	return profile.Save()
}

// Feedback is the command feedback
func (cmd *CommandGitHub) Feedback(profile *user.Profile, ui terminal.UI) error {
	ui.Print(terminal.NewTextLog("Successfully linked your GitHub account"))
	return nil
}
