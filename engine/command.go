package engine

import "fmt"

// Command is a discrete input the engine understands.
type Command int

const (
	CommandNone Command = iota
	CommandTick
	CommandMoveLeft
	CommandMoveRight
	CommandSoftDrop
	CommandRotate
)

var commandNames = map[Command]string{
	CommandNone:      "none",
	CommandTick:      "tick",
	CommandMoveLeft:  "move-left",
	CommandMoveRight: "move-right",
	CommandSoftDrop:  "soft-drop",
	CommandRotate:    "rotate",
}

func (c Command) String() string {
	if name, ok := commandNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Command(%d)", int(c))
}

// ParseCommand maps a command name such as "move-left" to its Command.
func ParseCommand(s string) (Command, error) {
	for cmd, name := range commandNames {
		if name == s && cmd != CommandNone {
			return cmd, nil
		}
	}
	return CommandNone, fmt.Errorf("unknown command %q", s)
}

// Commands lists every command Apply acts on.
func Commands() []Command {
	return []Command{CommandTick, CommandMoveLeft, CommandMoveRight, CommandSoftDrop, CommandRotate}
}
