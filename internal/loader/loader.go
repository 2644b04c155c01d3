// Package loader implements the image list and decoding pipeline: it
// scans sources into an ordered list of candidate files and decodes
// entries on demand.
//
// Decoding is synchronous; the viewer invokes it from a background
// goroutine and posts results to the event queue.
package loader

import (
	"errors"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	// decoders registered with image.Decode
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gcorrad/swayimg"
)

// extensions of candidate files collected by directory scan.
var extensions = map[string]bool{
	".bmp":  true,
	".gif":  true,
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".tif":  true,
	".tiff": true,
	".webp": true,
}

// Service is the image list with a decoder. It implements
// swayimg.Loader and swayimg.ImageList.
//
// The list is guarded by a mutex: Skip may be called from loading
// goroutines while the consumer navigates.
type Service struct {
	mu      sync.Mutex
	entries []string // "" marks a skipped (undecodable) entry
	alive   int
}

// New creates an empty image list.
func New() *Service {
	return &Service{}
}

// Add appends a file, or every candidate file under a directory, to
// the list.
func (s *Service) Add(source string) {
	info, err := os.Stat(source)
	if err != nil {
		swayimg.Logger().Warn("source not accessible", "path", source, "error", err)
		return
	}

	if !info.IsDir() {
		s.append(source)
		return
	}

	_ = filepath.WalkDir(source, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil //nolint:nilerr // unreadable entries are skipped
		}
		if extensions[strings.ToLower(filepath.Ext(path))] {
			s.append(path)
		}
		return nil
	})
}

func (s *Service) append(path string) {
	s.mu.Lock()
	s.entries = append(s.entries, path)
	s.alive++
	s.mu.Unlock()
}

// Reorder sorts the list alphabetically.
func (s *Service) Reorder() {
	s.mu.Lock()
	sort.Strings(s.entries)
	s.mu.Unlock()
}

// Size returns the number of viewable entries.
func (s *Service) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.alive
}

// Find returns the index of the entry with the given path, or
// InvalidIndex.
func (s *Service) Find(path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e != "" && e == path {
			return i
		}
	}
	return swayimg.InvalidIndex
}

// Name returns the display name of the entry at index.
func (s *Service) Name(index int) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.entries) {
		return ""
	}
	return s.entries[index]
}

// First implements swayimg.ImageList.
func (s *Service) First() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e != "" {
			return i
		}
	}
	return swayimg.InvalidIndex
}

// Last implements swayimg.ImageList.
func (s *Service) Last() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i] != "" {
			return i
		}
	}
	return swayimg.InvalidIndex
}

// Next implements swayimg.ImageList.
func (s *Service) Next(index int, forward bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next(index, forward)
}

func (s *Service) next(index int, forward bool) int {
	step := 1
	if !forward {
		step = -1
	}
	for i := index + step; i >= 0 && i < len(s.entries); i += step {
		if s.entries[i] != "" {
			return i
		}
	}
	return swayimg.InvalidIndex
}

// Skip implements swayimg.Loader: it removes a failed entry and
// returns the next viewable index. Indices of other entries stay
// stable.
func (s *Service) Skip(index int) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index >= 0 && index < len(s.entries) && s.entries[index] != "" {
		s.entries[index] = ""
		s.alive--
	}
	return s.next(index, true)
}

// LoadFromIndex implements swayimg.Loader.
func (s *Service) LoadFromIndex(index int) (*swayimg.Image, swayimg.LoadStatus) {
	path := s.Name(index)
	if path == "" {
		return nil, swayimg.LoadIOError
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, swayimg.LoadIOError
	}
	defer func() {
		_ = f.Close()
	}()

	src, format, err := image.Decode(f)
	if err != nil {
		if errors.Is(err, image.ErrFormat) {
			return nil, swayimg.LoadUnsupported
		}
		return nil, swayimg.LoadMalformed
	}

	img := toImage(src, path, format)
	swayimg.Logger().Debug("image decoded",
		"path", path, "format", format,
		"width", img.Width(), "height", img.Height())
	return img, swayimg.LoadSuccess
}

// toImage converts a decoded image into an owned handle backed by a
// pooled pixel buffer.
func toImage(src image.Image, path, format string) *swayimg.Image {
	bounds := src.Bounds()
	w := bounds.Dx()
	h := bounds.Dy()

	pm := swayimg.GetPixmap(w, h)
	data := pm.Data()

	if nrgba, ok := src.(*image.NRGBA); ok && nrgba.Stride == w*4 && bounds.Min == (image.Point{}) {
		copy(data, nrgba.Pix)
	} else {
		nrgba := image.NewNRGBA(image.Rect(0, 0, w, h))
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				nrgba.Set(x, y, src.At(bounds.Min.X+x, bounds.Min.Y+y))
			}
		}
		copy(data, nrgba.Pix)
	}

	alpha := false
	for i := 3; i < len(data); i += 4 {
		if data[i] != 0xff {
			alpha = true
			break
		}
	}

	return swayimg.NewImage(path, format, alpha, pm)
}
