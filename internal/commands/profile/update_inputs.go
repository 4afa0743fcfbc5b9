package profile

import (
	"strings"

	"github.com/skillswap/skillswap-cli/internal/cli/user"
	"github.com/skillswap/skillswap-cli/internal/terminal"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/pflag"
)

type updateInputs struct {
	Username      string
	SkillsOffered []string
	SkillsNeeded  []string
	Progress      map[string]int

	// tracked so an empty list can still mean "clear my skills"
	skillsOfferedSet bool
	skillsNeededSet  bool

	fs *pflag.FlagSet
}

func (i *updateInputs) changed() bool {
	return i.Username != "" || i.skillsOfferedSet || i.skillsNeededSet || len(i.Progress) > 0
}

func (i *updateInputs) Resolve(profile *user.Profile, ui terminal.UI) error {
	if i.fs != nil {
		i.skillsOfferedSet = i.skillsOfferedSet || i.fs.Changed(flagSkillsOffered)
		i.skillsNeededSet = i.skillsNeededSet || i.fs.Changed(flagSkillsNeeded)
	}

	if i.changed() {
		return nil
	}

	existingUser := profile.User()

	var answers struct {
		Username      string
		SkillsOffered string
		SkillsNeeded  string
	}

	if err := ui.Ask(&answers,
		&survey.Question{
			Name:   "username",
			Prompt: &survey.Input{Message: "Username", Default: existingUser.Username},
		},
		&survey.Question{
			Name:   "skillsOffered",
			Prompt: &survey.Input{Message: "Skills you can teach (comma separated)", Default: strings.Join(existingUser.SkillsOffered, ", ")},
		},
		&survey.Question{
			Name:   "skillsNeeded",
			Prompt: &survey.Input{Message: "Skills you want to learn (comma separated)", Default: strings.Join(existingUser.SkillsNeeded, ", ")},
		},
	); err != nil {
		return err
	}

	i.Username = answers.Username
	i.SkillsOffered = splitSkills(answers.SkillsOffered)
	i.skillsOfferedSet = true
	i.SkillsNeeded = splitSkills(answers.SkillsNeeded)
	i.skillsNeededSet = true
	return nil
}

func splitSkills(s string) []string {
	skills := []string{}
	for _, skill := range strings.Split(s, ",") {
		if skill := strings.TrimSpace(skill); skill != "" {
			skills = append(skills, skill)
		}
	}
	return skills
}
