package swayimg

import (
	"fmt"
	"os"
)

// LoadStatus classifies the outcome of a load attempt.
type LoadStatus int

const (
	// LoadSuccess means the image was decoded.
	LoadSuccess LoadStatus = iota
	// LoadUnsupported means the format is not recognized.
	LoadUnsupported
	// LoadMalformed means the data is recognized but invalid.
	LoadMalformed
	// LoadIOError means the file could not be read.
	LoadIOError
)

// String returns a human-readable reason.
func (s LoadStatus) String() string {
	switch s {
	case LoadSuccess:
		return "success"
	case LoadUnsupported:
		return "unsupported format"
	case LoadMalformed:
		return "invalid format"
	case LoadIOError:
		return "I/O error"
	default:
		return "unknown error"
	}
}

// InvalidIndex marks a missing image list position.
const InvalidIndex = -1

// Loader is the narrow interface to the external image loading
// pipeline. Implementations decode synchronously; callers run them off
// the consumer goroutine and deliver results as load events.
type Loader interface {
	// LoadFromIndex decodes the image at the given list index.
	LoadFromIndex(index int) (*Image, LoadStatus)
	// Skip removes a failed entry and returns the next index, or
	// InvalidIndex at the end of the list.
	Skip(index int) int
}

// ImageList is an optional extension of Loader providing list
// navigation. Mode handlers upgrade to it with a type assertion.
type ImageList interface {
	// First returns the first list index, or InvalidIndex when empty.
	First() int
	// Last returns the last list index, or InvalidIndex when empty.
	Last() int
	// Next returns the neighbor of index in the given direction, or
	// InvalidIndex at the list end.
	Next(index int, forward bool) int
	// Name returns the display name of the entry at index.
	Name(index int) string
}

// LoadFirst performs the best-effort startup scan: it tries the given
// index and advances past undecodable entries until one image loads.
// force pins the scan to the exact index (explicit file argument).
// Returns the image and its index, or an error when nothing at all is
// viewable.
func LoadFirst(l Loader, index int, force bool) (*Image, int, error) {
	status := LoadIOError

	if index == InvalidIndex {
		force = false
		if list, ok := l.(ImageList); ok {
			index = list.First()
		} else {
			index = 0
		}
	}

	for index != InvalidIndex {
		var img *Image
		img, status = l.LoadFromIndex(index)
		if status == LoadSuccess {
			return img, index, nil
		}
		if force {
			break
		}
		index = l.Skip(index)
	}

	if force {
		name := fmt.Sprintf("#%d", index)
		if list, ok := l.(ImageList); ok {
			name = list.Name(index)
		}
		fmt.Fprintf(os.Stderr, "%s: %s\n", name, status)
	} else {
		fmt.Fprintln(os.Stderr, "No image files were loaded, exit")
	}
	return nil, InvalidIndex, fmt.Errorf("no image could be loaded: %s", status)
}
