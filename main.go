// skillswap-cli is a tool for command-line access to the SkillSwap
// skill-exchange platform.
package main

import (
	"github.com/skillswap/skillswap-cli/cmd"
)

func main() {
	cmd.Run()
}
