package register

import (
	"errors"

	"github.com/skillswap/skillswap-cli/internal/cli/user"
	"github.com/skillswap/skillswap-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
)

const (
	inputFieldUsername = "username"
	inputFieldEmail    = "email"
	inputFieldPassword = "password"
)

type inputs struct {
	Username string
	Email    string
	Password string
}

func (i *inputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	var questions []*survey.Question

	if i.Username == "" {
		questions = append(questions, &survey.Question{
			Name:   inputFieldUsername,
			Prompt: &survey.Input{Message: "Username"},
		})
	}

	if i.Email == "" {
		questions = append(questions, &survey.Question{
			Name:   inputFieldEmail,
			Prompt: &survey.Input{Message: "Email"},
		})
	}

	promptPassword := i.Password == ""
	if promptPassword {
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

	if promptPassword {
		var confirmed string
		if err := ui.AskOne(&confirmed, &survey.Password{Message: "Confirm Password"}); err != nil {
			return err
		}
		if confirmed != i.Password {
			return errors.New("passwords do not match")
		}
	}
	return nil
}
