// Package replay records per-frame player input and plays it back.
// A recording plus its RNG seed reproduces a session exactly.
package replay

import "github.com/younwookim/spellsword/internal/application/system"

// Version is written into every recording
const Version = "2.0"

// FrameInput records input state for a single frame
type FrameInput struct {
	F  int  `json:"f"`            // Frame number
	L  bool `json:"l,omitempty"`  // Left
	R  bool `json:"r,omitempty"`  // Right
	U  bool `json:"u,omitempty"`  // Up
	D  bool `json:"d,omitempty"`  // Down
	A  int  `json:"a,omitempty"`  // Ability slot 1-9, 0 = none
	MX int  `json:"mx"`           // MouseX
	MY int  `json:"my"`           // MouseY
	MC bool `json:"mc,omitempty"` // MouseClick
	E  bool `json:"e,omitempty"`  // Interact
	M  bool `json:"m,omitempty"`  // Menu toggle
	P  bool `json:"p,omitempty"`  // Pause toggle
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	Level     string       `json:"level"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
}

// NewFrameInput captures in as frame f
func NewFrameInput(f int, in system.InputState) FrameInput {
	return FrameInput{
		F:  f,
		L:  in.Left,
		R:  in.Right,
		U:  in.Up,
		D:  in.Down,
		A:  in.AbilitySlot,
		MX: in.MouseX,
		MY: in.MouseY,
		MC: in.MouseClick,
		E:  in.Interact,
		M:  in.Menu,
		P:  in.Pause,
	}
}

// Input converts the frame back into decoded input
func (fi FrameInput) Input() system.InputState {
	return system.InputState{
		Left:        fi.L,
		Right:       fi.R,
		Up:          fi.U,
		Down:        fi.D,
		AbilitySlot: fi.A,
		MouseX:      fi.MX,
		MouseY:      fi.MY,
		MouseClick:  fi.MC,
		Interact:    fi.E,
		Menu:        fi.M,
		Pause:       fi.P,
	}
}
