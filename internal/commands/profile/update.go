package profile

import (
	"github.com/skillswap/skillswap-cli/internal/cli"
	"github.com/skillswap/skillswap-cli/internal/cli/user"
	"github.com/skillswap/skillswap-cli/internal/cloud/skillswap"
	"github.com/skillswap/skillswap-cli/internal/terminal"

	"github.com/spf13/pflag"
)

// CommandUpdate is the `profile update` command
type CommandUpdate struct {
	inputs updateInputs
}

// Flags is the command flags
func (cmd *CommandUpdate) Flags(fs *pflag.FlagSet) {
	fs.StringVar(&cmd.inputs.Username, flagUsername, "", flagUsernameUsage)
	fs.StringSliceVar(&cmd.inputs.SkillsOffered, flagSkillsOffered, nil, flagSkillsOfferedUsage)
	fs.StringSliceVar(&cmd.inputs.SkillsNeeded, flagSkillsNeeded, nil, flagSkillsNeededUsage)
	fs.StringToIntVar(&cmd.inputs.Progress, flagProgress, nil, flagProgressUsage)
	cmd.inputs.fs = fs
}

// Inputs is the command inputs
func (cmd *CommandUpdate) Inputs() cli.InputResolver {
	return &cmd.inputs
}

// Handler is the command handler
func (cmd *CommandUpdate) Handler(profile *user.Profile, ui terminal.UI, clients cli.Clients) error {
	var update skillswap.UserUpdate
	if cmd.inputs.Username != "" {
		update.Username = &cmd.inputs.Username
	}
	if cmd.inputs.skillsOfferedSet {
		update.SkillsOffered = &cmd.inputs.SkillsOffered
	}
	if cmd.inputs.skillsNeededSet {
		update.SkillsNeeded = &cmd.inputs.SkillsNeeded
	}
	if len(cmd.inputs.Progress) > 0 {
		progress := profile.User().SkillProgress
		if progress == nil {
			progress = map[string]int{}
		}
		for skill, value := range cmd.inputs.Progress {
			progress[skill] = value
		}
		update.SkillProgress = &progress
	}

	updated, err := clients.SkillSwap.UpdateMe(update)
	if err != nil {
		// the cached profile keeps its previous contents on failure, so
		// nothing needs rolling back here
		return err
	}

	profile.SetUser(updated)
	return profile.Save()
}

// Feedback is the command feedback
func (cmd *CommandUpdate) Feedback(profile *user.Profile, ui terminal.UI) error {
	ui.Print(terminal.NewTextLog("Successfully updated profile"))
	return nil
}
