package telemetry

import (
	"fmt"
	"strings"
)

// set of supported telemetry flags
const (
	FlagMode      = "telemetry"
	FlagModeUsage = `enable or disable telemetry (Allowed values: "on", "off")`
)

// Mode is the telemetry mode
type Mode string

// String returns the string representation
func (m Mode) String() string { return string(m) }

// Type returns the Mode type
func (m Mode) Type() string { return "Mode" }

// Set validates and sets the telemetry mode value
func (m *Mode) Set(val string) error {
	mode := Mode(val)

	if !isValidMode(mode) {
		allModes := []string{ModeOn.String(), ModeStdout.String(), ModeOff.String()}
		return fmt.Errorf("unsupported value, use one of [%s] instead", strings.Join(allModes, ", "))
	}

	*m = mode
	return nil
}

// set of supported telemetry modes
const (
	ModeEmpty  Mode = "" // zero-valued to be flag's default
	ModeOn     Mode = "on"
	ModeStdout Mode = "stdout"
	ModeOff    Mode = "off"
)

func isValidMode(mode Mode) bool {
	switch mode {
	case
		ModeEmpty,
		ModeOn,
		ModeStdout,
		ModeOff:
		return true
	}
	return false
}
