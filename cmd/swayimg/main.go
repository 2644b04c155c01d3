// Command swayimg renders an image through the viewport engine and
// writes the resulting window surface to a PNG file. It is a headless
// driver for the viewer core: the same canvas state a window backend
// would read per frame is rendered into an off-screen buffer.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gcorrad/swayimg"
	"github.com/gcorrad/swayimg/internal/loader"
)

func main() {
	var (
		width     = flag.Int("width", 800, "window width")
		height    = flag.Int("height", 600, "window height")
		hidpi     = flag.Int("hidpi", 1, "window scale factor")
		scale     = flag.String("scale", "optimal", "initial scale: optimal, fit, width, height, fill, real")
		imageBkg  = flag.String("background", "grid", "image background: grid, none or hex color")
		windowBkg = flag.String("window", "none", "window background: none or hex color")
		antialias = flag.Bool("antialias", false, "enable bicubic interpolation")
		zoom      = flag.String("zoom", "", "extra zoom operations, e.g. \"+10,+10,fill\"")
		output    = flag.String("output", "out.png", "output PNG file")
		verbose   = flag.Bool("verbose", false, "log to stderr")
	)
	flag.Parse()

	if *verbose {
		swayimg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	scaleMode, err := swayimg.ParseScaleMode(*scale)
	if err != nil {
		log.Fatalf("Invalid scale mode: %v", err)
	}
	iBkg, err := swayimg.ParseBackground(*imageBkg)
	if err != nil {
		log.Fatalf("Invalid image background: %v", err)
	}
	wBkg, err := swayimg.ParseBackground(*windowBkg)
	if err != nil {
		log.Fatalf("Invalid window background: %v", err)
	}

	// compose the image list
	sources := flag.Args()
	if len(sources) == 0 {
		sources = []string{"."}
	}
	list := loader.New()
	for _, src := range sources {
		list.Add(src)
	}
	if list.Size() == 0 {
		log.Fatal("No image files found to view")
	}
	list.Reorder()

	// load the first viewable image
	index := swayimg.InvalidIndex
	force := false
	if len(sources) == 1 && sources[0] != "." {
		index = list.Find(sources[0])
		force = index != swayimg.InvalidIndex
	}
	img, _, err := swayimg.LoadFirst(list, index, force)
	if err != nil {
		os.Exit(1)
	}
	defer img.Release()

	// set up the viewport
	canvas := swayimg.NewCanvas(
		swayimg.WithScaleMode(scaleMode),
		swayimg.WithImageBackground(iBkg),
		swayimg.WithWindowBackground(wBkg),
		swayimg.WithAntialiasing(*antialias),
	)
	canvas.ResetWindow(*width, *height, *hidpi)
	canvas.ResetImage(img.Width(), img.Height())

	for _, op := range strings.Split(*zoom, ",") {
		op = strings.TrimSpace(op)
		if op == "" {
			continue
		}
		if err := canvas.ApplyZoom(strings.TrimPrefix(op, "+")); err != nil {
			log.Fatalf("Invalid zoom operation: %v", err)
		}
	}

	// render the frame a window backend would show
	wnd := swayimg.NewPixmap(*width, *height)
	canvas.Render(img, wnd)

	f, err := os.Create(*output)
	if err != nil {
		log.Fatalf("Failed to create output: %v", err)
	}
	defer func() {
		_ = f.Close()
	}()
	if err := wnd.EncodePNG(f); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	fmt.Printf("%s: %dx%d at %.0f%% -> %s\n",
		img.Path, img.Width(), img.Height(), canvas.Scale()*100, *output)
}
