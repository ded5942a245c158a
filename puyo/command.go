package puyo

import "fmt"

// Command is a decoded player input. Front-ends map devices to commands.
type Command uint8

const (
	MoveLeft Command = iota
	MoveRight
	RotateCW
	RotateCCW
	SoftDropStart
	SoftDropStop
	HardDrop
	// ConfirmPrimary starts a game on the title screen and commits the
	// continue-prompt choice.
	ConfirmPrimary
	// ToggleChoice flips the continue-prompt choice.
	ToggleChoice
)

var commandNames = [...]string{
	MoveLeft:       "move-left",
	MoveRight:      "move-right",
	RotateCW:       "rotate-cw",
	RotateCCW:      "rotate-ccw",
	SoftDropStart:  "soft-drop-start",
	SoftDropStop:   "soft-drop-stop",
	HardDrop:       "hard-drop",
	ConfirmPrimary: "confirm",
	ToggleChoice:   "toggle",
}

func (c Command) String() string {
	if int(c) < len(commandNames) {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

// State is the top-level session state.
type State uint8

const (
	Title State = iota
	Playing
	ContinuePrompt
	FadeOut
)

func (s State) String() string {
	switch s {
	case Title:
		return "title"
	case Playing:
		return "playing"
	case ContinuePrompt:
		return "continue"
	case FadeOut:
		return "fade-out"
	}
	return fmt.Sprintf("State(%d)", uint8(s))
}

// Choice is the continue-prompt selection.
type Choice uint8

const (
	ChoiceRestart Choice = iota
	ChoiceQuit
)

func (c Choice) String() string {
	if c == ChoiceQuit {
		return "quit"
	}
	return "restart"
}

func (c Choice) toggle() Choice {
	if c == ChoiceQuit {
		return ChoiceRestart
	}
	return ChoiceQuit
}
