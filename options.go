package swayimg

// Option configures an App during creation.
//
// Example:
//
//	app, err := swayimg.NewApp(
//	    swayimg.WithMode(swayimg.ModeGallery),
//	    swayimg.WithCanvas(swayimg.NewCanvas(swayimg.WithScaleMode(swayimg.ScaleFitWidth))),
//	)
type Option func(*App)

// WithMode selects the startup mode.
func WithMode(m Mode) Option {
	return func(a *App) { a.mode = m }
}

// WithCanvas replaces the default viewport engine.
func WithCanvas(c *Canvas) Option {
	return func(a *App) {
		if c != nil {
			a.canvas = c
		}
	}
}

// WithWindowSystem connects the windowing backend: its prepare/done
// hooks frame every poll cycle and it receives fullscreen requests.
func WithWindowSystem(ui WindowSystem) Option {
	return func(a *App) { a.ui = ui }
}

// WithViewer replaces the default viewer mode handler.
func WithViewer(h ModeHandler) Option {
	return func(a *App) {
		if h != nil {
			a.viewer = h
		}
	}
}

// WithGallery replaces the default gallery mode handler.
func WithGallery(h ModeHandler) Option {
	return func(a *App) {
		if h != nil {
			a.gallery = h
		}
	}
}

// WithKeybind binds a key press to an action sequence.
func WithKeybind(key uint32, mods uint8, seq ActionSeq) Option {
	return func(a *App) { a.keybinds[Keybind{Key: key, Mods: mods}] = seq }
}

// WithSigUsr1 sets the action sequence applied on SIGUSR1.
func WithSigUsr1(seq ActionSeq) Option {
	return func(a *App) { a.sigusr1 = seq }
}

// WithSigUsr2 sets the action sequence applied on SIGUSR2.
func WithSigUsr2(seq ActionSeq) Option {
	return func(a *App) { a.sigusr2 = seq }
}

// CanvasOption configures a Canvas during creation.
type CanvasOption func(*Canvas)

// WithScaleMode sets the policy applied when a new image is set.
func WithScaleMode(m ScaleMode) CanvasOption {
	return func(c *Canvas) { c.initialScale = m }
}

// WithImageBackground sets the background behind transparent images.
func WithImageBackground(b Background) CanvasOption {
	return func(c *Canvas) { c.imageBkg = b }
}

// WithWindowBackground sets the background around the image.
func WithWindowBackground(b Background) CanvasOption {
	return func(c *Canvas) { c.windowBkg = b }
}

// WithAntialiasing enables bicubic interpolation from the start.
func WithAntialiasing(enabled bool) CanvasOption {
	return func(c *Canvas) { c.antialias = enabled }
}
