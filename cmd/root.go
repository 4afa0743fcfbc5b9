package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/skillswap/skillswap-cli/internal/cli"
	"github.com/skillswap/skillswap-cli/internal/commands"

	"github.com/spf13/cobra"
)

// Run runs the CLI
func Run() {
	// print commands in help/usage text in the order they are declared
	cobra.EnableCommandSorting = false

	cmd := &cobra.Command{
		Version:       cli.Version,
		Use:           cli.Name,
		Short:         "CLI tool to interact with the SkillSwap skill-exchange platform",
		Long:          fmt.Sprintf(`Use "%s [command] --help" for information on a specific command`, cli.Name),
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	factory, err := cli.NewCommandFactory()
	if err != nil {
		log.Fatal(err)
	}

	cobra.OnInitialize(factory.Setup)

	cmd.Flags().SortFlags = false // ensures CLI help text displays global flags unsorted
	factory.SetGlobalFlags(cmd.PersistentFlags())

	cmd.AddCommand(factory.Build(commands.Whoami))
	cmd.AddCommand(factory.Build(commands.Login))
	cmd.AddCommand(factory.Build(commands.Register))
	cmd.AddCommand(factory.Build(commands.Logout))
	cmd.AddCommand(factory.Build(commands.Profile))
	cmd.AddCommand(factory.Build(commands.Users))
	cmd.AddCommand(factory.Build(commands.Leaderboard))
	cmd.AddCommand(factory.Build(commands.Link))
	cmd.AddCommand(factory.Build(commands.Activity))

	os.Exit(factory.Run(cmd))
}
