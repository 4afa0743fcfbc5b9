package profile

const (
	flagUsername      = "username"
	flagUsernameUsage = "specify a new username"

	flagSkillsOffered      = "skills-offered"
	flagSkillsOfferedUsage = "specify the full list of skills you can teach"

	flagSkillsNeeded      = "skills-needed"
	flagSkillsNeededUsage = "specify the full list of skills you want to learn"

	flagProgress      = "progress"
	flagProgressUsage = `record progress on a skill (e.g. --progress "Go=3")`
)
