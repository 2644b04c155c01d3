package swayimg

// Gallery is the thumbnail-grid mode handler. The grid layout itself is
// external; this handler tracks the selection and switches back to the
// viewer on activation.
type Gallery struct {
	app    *App
	loader Loader

	selected int
}

// NewGallery creates a gallery bound to the application context.
func NewGallery(app *App) *Gallery {
	return &Gallery{app: app, selected: InvalidIndex}
}

// SetLoader connects the image list used for selection moves.
func (g *Gallery) SetLoader(l Loader) {
	g.loader = l
}

// Selected returns the selected image list index.
func (g *Gallery) Selected() int {
	return g.selected
}

// Handle implements ModeHandler.
func (g *Gallery) Handle(ev *Event) {
	switch ev.Type {
	case EventActivate:
		g.selected = ev.Index
		g.app.AppendRedraw()
	case EventLoad:
		// thumbnails are produced externally, drop the full image
		ev.Image.Release()
	case EventResize:
		g.app.AppendRedraw()
	case EventAction:
		g.applyAction(ev.Action)
	}
}

func (g *Gallery) applyAction(action *Action) {
	list, _ := g.loader.(ImageList)

	move := func(target int) {
		if target != InvalidIndex && target != g.selected {
			g.selected = target
			g.app.AppendRedraw()
		}
	}

	switch action.Type {
	case ActionFirstFile:
		if list != nil {
			move(list.First())
		}
	case ActionLastFile:
		if list != nil {
			move(list.Last())
		}
	case ActionPrevFile, ActionStepLeft, ActionStepUp:
		if list != nil {
			move(list.Next(g.selected, false))
		}
	case ActionNextFile, ActionStepRight, ActionStepDown:
		if list != nil {
			move(list.Next(g.selected, true))
		}
	case ActionMode:
		g.app.SwitchMode(g.selected)
	}
}
