package ui

import (
	"fmt"
	"strings"

	"chronal/internal/core"
)

// Status is what the HUD shows about the running field.
type Status struct {
	Title  string
	Tick   int
	Lights int
	Bounds core.Bounds
	Paused bool
	Err    error
	Params core.ParameterSnapshot
}

// Lines renders the status as short HUD lines.
func (s Status) Lines() []string {
	lines := []string{
		fmt.Sprintf("tick %d", s.Tick),
		fmt.Sprintf("lights %d", s.Lights),
	}
	if !s.Bounds.Empty() {
		b := s.Bounds
		lines = append(lines,
			fmt.Sprintf("x [%d, %d]", b.MinX, b.MaxX),
			fmt.Sprintf("y [%d, %d]", b.MinY, b.MaxY),
			fmt.Sprintf("area %d", b.Area()),
		)
	}
	if s.Paused {
		lines = append(lines, "paused")
	} else {
		lines = append(lines, "running")
	}
	if s.Err != nil {
		lines = append(lines, "", s.Err.Error())
	}
	if len(s.Params.Groups) > 0 {
		lines = append(lines, "")
		for _, l := range strings.Split(strings.TrimRight(s.Params.String(), "\n"), "\n") {
			lines = append(lines, strings.TrimSpace(l))
		}
	}
	return lines
}

// KeyHelp lists the viewer key bindings.
var KeyHelp = []string{
	"space  pause",
	"n      step",
	"b      back",
	"a      align",
	"m      mono",
	"v      velocities",
	"g      next tick",
	"r      reload",
	"h      help",
	"q      quit",
}
