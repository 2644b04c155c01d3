package swayimg

import (
	"fmt"
	"strings"
)

// ActionType identifies an operation bound to a key or signal.
type ActionType int

const (
	// ActionNone does nothing.
	ActionNone ActionType = iota
	// ActionHelp toggles the help overlay.
	ActionHelp
	// ActionInfo switches the info overlay scheme.
	ActionInfo
	// ActionStatus sets the status text.
	ActionStatus
	// ActionFullscreen toggles fullscreen.
	ActionFullscreen
	// ActionMode switches between viewer and gallery.
	ActionMode
	// ActionExit quits, or dismisses the help overlay when active.
	ActionExit
	// ActionReload re-reads the current image.
	ActionReload
	// ActionZoom applies a zoom operation (mode name or percent).
	ActionZoom
	// ActionStepLeft pans left by a percentage of the window width.
	ActionStepLeft
	// ActionStepRight pans right.
	ActionStepRight
	// ActionStepUp pans up.
	ActionStepUp
	// ActionStepDown pans down.
	ActionStepDown
	// ActionAntialiasing toggles bicubic interpolation.
	ActionAntialiasing
	// ActionFirstFile jumps to the first image of the list.
	ActionFirstFile
	// ActionLastFile jumps to the last image of the list.
	ActionLastFile
	// ActionPrevFile goes to the previous image.
	ActionPrevFile
	// ActionNextFile goes to the next image.
	ActionNextFile
)

var actionNames = map[string]ActionType{
	"none":         ActionNone,
	"help":         ActionHelp,
	"info":         ActionInfo,
	"status":       ActionStatus,
	"fullscreen":   ActionFullscreen,
	"mode":         ActionMode,
	"exit":         ActionExit,
	"reload":       ActionReload,
	"zoom":         ActionZoom,
	"step_left":    ActionStepLeft,
	"step_right":   ActionStepRight,
	"step_up":      ActionStepUp,
	"step_down":    ActionStepDown,
	"antialiasing": ActionAntialiasing,
	"first_file":   ActionFirstFile,
	"last_file":    ActionLastFile,
	"prev_file":    ActionPrevFile,
	"next_file":    ActionNextFile,
}

// String returns the configuration name of the action type.
func (t ActionType) String() string {
	for name, at := range actionNames {
		if at == t {
			return name
		}
	}
	return "unknown"
}

// Action is one executable operation with an optional parameter.
type Action struct {
	Type   ActionType
	Params string
}

// ActionSeq is an ordered sequence of actions executed together.
type ActionSeq []Action

// ParseActions converts a configuration string into an action
// sequence. Actions are separated by ';'; each action is a name
// optionally followed by parameters, e.g. "zoom +10; status zoomed in".
func ParseActions(value string) (ActionSeq, error) {
	var seq ActionSeq

	for _, token := range strings.Split(value, ";") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}
		name, params, _ := strings.Cut(token, " ")
		at, ok := actionNames[name]
		if !ok {
			return nil, fmt.Errorf("invalid action %q", name)
		}
		seq = append(seq, Action{Type: at, Params: strings.TrimSpace(params)})
	}

	if len(seq) == 0 {
		return nil, fmt.Errorf("empty action sequence")
	}
	return seq, nil
}
