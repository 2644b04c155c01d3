package swayimg

import (
	"path/filepath"
	"strconv"
)

// moveStep is the default pan step in percent of the window dimension.
const moveStep = 10

// Viewer is the single-image mode handler: it maps drained events and
// actions onto the viewport engine and drives the loader for
// navigation.
type Viewer struct {
	app    *App
	loader Loader

	image *Image
	index int
}

// NewViewer creates a viewer bound to the application context.
func NewViewer(app *App) *Viewer {
	return &Viewer{app: app, index: InvalidIndex}
}

// SetLoader connects the background image loading pipeline.
func (v *Viewer) SetLoader(l Loader) {
	v.loader = l
}

// Image returns the currently shown image, or nil.
func (v *Viewer) Image() *Image {
	return v.image
}

// Index returns the image list index of the current image.
func (v *Viewer) Index() int {
	return v.index
}

// Handle implements ModeHandler.
func (v *Viewer) Handle(ev *Event) {
	switch ev.Type {
	case EventLoad:
		v.setImage(ev.Image, ev.Index)
	case EventActivate:
		if ev.Index != v.index {
			v.loadAsync(ev.Index)
		}
		v.app.AppendRedraw()
	case EventResize:
		// window reset already re-clamped the placement
		v.app.AppendRedraw()
	case EventDrag:
		if v.app.Canvas().Drag(ev.DX, ev.DY) {
			v.app.AppendRedraw()
		}
	case EventAction:
		v.applyAction(ev.Action)
	case EventRedraw:
		// frame composition is the renderer's job
	}
}

// setImage takes ownership of a freshly loaded image and resets the
// viewport for it.
func (v *Viewer) setImage(img *Image, index int) {
	if img == nil {
		return
	}
	v.image.Release()
	v.image = img
	v.index = index

	v.app.Canvas().ResetImage(img.Width(), img.Height())
	if v.app.Info().Enabled() {
		v.app.Info().UpdateStatus("%s", filepath.Base(img.Path))
	}
	v.app.AppendRedraw()
}

// loadAsync decodes the given index off the consumer goroutine and
// posts the result back as a load event or a status message.
func (v *Viewer) loadAsync(index int) {
	if v.loader == nil || index == InvalidIndex {
		return
	}
	loader := v.loader
	app := v.app
	go func() {
		img, status := loader.LoadFromIndex(index)
		if status == LoadSuccess {
			app.AppendLoad(img, index)
			return
		}
		Logger().Warn("image load failed", "index", index, "status", status.String())
		app.AppendActions(ActionSeq{{Type: ActionStatus, Params: status.String()}})
	}()
}

// navigate resolves a navigation action to a target index, or
// InvalidIndex when the loader cannot navigate.
func (v *Viewer) navigate(t ActionType) int {
	list, ok := v.loader.(ImageList)
	if !ok {
		return InvalidIndex
	}
	switch t {
	case ActionFirstFile:
		return list.First()
	case ActionLastFile:
		return list.Last()
	case ActionPrevFile:
		return list.Next(v.index, false)
	case ActionNextFile:
		return list.Next(v.index, true)
	default:
		return InvalidIndex
	}
}

func (v *Viewer) applyAction(action *Action) {
	canvas := v.app.Canvas()

	switch action.Type {
	case ActionZoom:
		op := action.Params
		if op == "" {
			op = "+10"
		}
		if op[0] == '+' {
			op = op[1:]
		}
		if err := canvas.ApplyZoom(op); err != nil {
			Logger().Warn("zoom rejected", "op", action.Params, "error", err)
			v.app.Info().UpdateStatus("Invalid zoom operation: %s", action.Params)
		}
		v.app.AppendRedraw()
	case ActionStepLeft:
		if canvas.Move(true, stepPercent(action.Params)) {
			v.app.AppendRedraw()
		}
	case ActionStepRight:
		if canvas.Move(true, -stepPercent(action.Params)) {
			v.app.AppendRedraw()
		}
	case ActionStepUp:
		if canvas.Move(false, stepPercent(action.Params)) {
			v.app.AppendRedraw()
		}
	case ActionStepDown:
		if canvas.Move(false, -stepPercent(action.Params)) {
			v.app.AppendRedraw()
		}
	case ActionAntialiasing:
		if canvas.SwitchAntialiasing() {
			v.app.Info().UpdateStatus("Anti-aliasing: on")
		} else {
			v.app.Info().UpdateStatus("Anti-aliasing: off")
		}
		v.app.AppendRedraw()
	case ActionReload:
		v.loadAsync(v.index)
	case ActionFirstFile, ActionLastFile, ActionPrevFile, ActionNextFile:
		if index := v.navigate(action.Type); index != InvalidIndex && index != v.index {
			v.loadAsync(index)
		}
	case ActionMode:
		v.app.SwitchMode(v.index)
	}
}

// stepPercent parses a pan step parameter, falling back to the default
// step on invalid values.
func stepPercent(params string) int {
	if params == "" {
		return moveStep
	}
	p, err := strconv.Atoi(params)
	if err != nil || p <= 0 || p > 100 {
		Logger().Warn("invalid step parameter, using default", "value", params)
		return moveStep
	}
	return p
}
