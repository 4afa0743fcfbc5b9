package commands

import (
	"github.com/skillswap/skillswap-cli/internal/cli"
	"github.com/skillswap/skillswap-cli/internal/commands/activity"
	"github.com/skillswap/skillswap-cli/internal/commands/leaderboard"
	"github.com/skillswap/skillswap-cli/internal/commands/link"
	"github.com/skillswap/skillswap-cli/internal/commands/login"
	"github.com/skillswap/skillswap-cli/internal/commands/logout"
	"github.com/skillswap/skillswap-cli/internal/commands/profile"
	"github.com/skillswap/skillswap-cli/internal/commands/register"
	"github.com/skillswap/skillswap-cli/internal/commands/users"
	"github.com/skillswap/skillswap-cli/internal/commands/whoami"
)

// set of commands
var (
	Login = cli.CommandDefinition{
		Command:     &login.Command{},
		Use:         "login",
		Description: "Authenticate with the SkillSwap server",
		Help: `Authenticate with the SkillSwap server

	Log in with your email and password, or pass --with-provider to authenticate
	through a social identity provider in your browser. A successful login stores
	your session token and profile details locally for subsequent commands.`,
	}
	Register = cli.CommandDefinition{
		Command:     &register.Command{},
		Use:         "register",
		Description: "Create a new SkillSwap account",
		Help: `Create a new SkillSwap account

	Registers a new user with the SkillSwap server and logs you in immediately.`,
	}
	Logout = cli.CommandDefinition{
		Command:     &logout.Command{},
		Use:         "logout",
		Description: "Terminate the current user's session",
		Help:        "logout",
	}
	Whoami = cli.CommandDefinition{
		Command:     &whoami.Command{},
		Use:         "whoami",
		Description: "Display the current user's details",
		Help:        "whoami",
	}

	Profile = cli.CommandDefinition{
		Use:         "profile",
		Description: "Manage your SkillSwap profile",
		Help:        "profile",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "view",
				Display:     "profile view",
				Description: "View your SkillSwap profile",
				Help:        "profile view",
				Command:     &profile.CommandView{},
			},
			{
				Use:         "update",
				Display:     "profile update",
				Description: "Update your username, skills, or skill progress",
				Help: `Update your username, skills, or skill progress

	Only the fields you provide are changed; everything else is left as is. If
	the update is rejected by the server your local profile is left untouched.`,
				Command: &profile.CommandUpdate{},
			},
		},
	}

	Users = cli.CommandDefinition{
		Command:     &users.CommandList{},
		Use:         "users",
		Aliases:     []string{"user"},
		Description: "List the users of the SkillSwap community",
		Help:        "users",
	}

	Leaderboard = cli.CommandDefinition{
		Command:     &leaderboard.Command{},
		Use:         "leaderboard",
		Description: "Display the karma leaderboard",
		Help:        "leaderboard",
	}

	Link = cli.CommandDefinition{
		Use:         "link",
		Description: "Link external accounts to your SkillSwap profile",
		Help:        "link",
		SubCommands: []cli.CommandDefinition{
			{
				Use:         "github",
				Display:     "link github",
				Description: "Link your GitHub account to your SkillSwap profile",
				Help: `Link your GitHub account to your SkillSwap profile

	Opens your browser to authorize SkillSwap with GitHub. Once authorized, your
	GitHub contribution activity becomes available via the activity command.`,
				Command: &link.CommandGitHub{},
			},
		},
	}

	Activity = cli.CommandDefinition{
		Command:     &activity.Command{},
		Use:         "activity",
		Description: "Display your GitHub contribution activity",
		Help:        "activity",
	}
)
