package codetex

import (
	"strconv"
	"strings"
)

// ExitKeyword ends the interactive session. Matched case-sensitively.
const ExitKeyword = "exit"

// InputKind classifies a line typed by the operator.
type InputKind int

// InputKind values.
const (
	InputInvalid InputKind = iota
	InputNumber
	InputExit
)

// Input is a parsed operator line.
type Input struct {
	Kind InputKind

	// Number is the slide index when Kind is InputNumber.
	Number int

	// Raw is the line as typed, without its line terminator.
	Raw string
}

// ParseInput classifies a line as a slide number, the exit keyword or
// neither. Only the line terminator is stripped before matching the exit
// keyword; numbers may carry surrounding spaces.
func ParseInput(line string) Input {
	raw := strings.TrimRight(line, "\r\n")
	if n, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		return Input{Kind: InputNumber, Number: n, Raw: raw}
	}
	if raw == ExitKeyword {
		return Input{Kind: InputExit, Raw: raw}
	}
	return Input{Kind: InputInvalid, Raw: raw}
}
