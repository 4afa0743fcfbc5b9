package cli

// set of CLI details
const (
	Name    = "skillswap-cli"
	Version = "0.1.0"
)
