package login

import (
	"time"

	"github.com/skillswap/skillswap-cli/internal/cli/user"
	"github.com/skillswap/skillswap-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

const (
	inputFieldEmail    = "email"
	inputFieldPassword = "password"
)

type inputs struct {
	Email       string
	Password    string
	Provider    string
	AuthTimeout time.Duration
}

func (i *inputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	if i.Provider != "" {
		// browser authorization collects the credentials, not the terminal
		return nil
	}

	existingUser := profile.User()
	var questions []*survey.Question

	if i.Email == "" {
		questions = append(questions, &survey.Question{
			Name:   inputFieldEmail,
			Prompt: &survey.Input{Message: "Email", Default: existingUser.Email},
		})
	}

	if i.Password == "" {
		questions = append(questions, &survey.Question{
			Name:   inputFieldPassword,
			Prompt: &survey.Password{Message: "Password"},
		})
	}

	if len(questions) > 0 {
		if err := ui.Ask(i, questions...); err != nil {
			return err
		}
	}
	return nil
}
