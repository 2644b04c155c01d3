package swayimg

import "sync"

// Image is a decoded image as delivered by the loader: pixel data plus
// the source path and format flags the viewer needs.
//
// Images own their pixel buffer. Whoever ultimately consumes a load
// event must Release the image so the buffer returns to the pool; an
// image dropped without Release is still collected by the GC, it just
// skips reuse.
type Image struct {
	Path   string
	Format string
	Alpha  bool // has a meaningful alpha channel

	pm *Pixmap
}

// NewImage wraps a pixmap into an owned image handle.
func NewImage(path, format string, alpha bool, pm *Pixmap) *Image {
	return &Image{Path: path, Format: format, Alpha: alpha, pm: pm}
}

// Pixmap returns the pixel buffer, or nil after Release.
func (img *Image) Pixmap() *Pixmap {
	return img.pm
}

// Width returns the native image width.
func (img *Image) Width() int {
	if img.pm == nil {
		return 0
	}
	return img.pm.Width()
}

// Height returns the native image height.
func (img *Image) Height() int {
	if img.pm == nil {
		return 0
	}
	return img.pm.Height()
}

// Release returns the pixel buffer to the pool. Safe to call more than
// once; the image is unusable afterwards.
func (img *Image) Release() {
	if img == nil || img.pm == nil {
		return
	}
	pixmapPool.put(img.pm)
	img.pm = nil
}

// pixmapPool reuses pixel buffers across image loads. Buffers are
// grouped by dimensions; each bucket keeps a small fixed number of
// buffers to bound retained memory.
type bufferPool struct {
	mu      sync.Mutex
	buckets map[Size][]*Pixmap
	maxSize int
}

var pixmapPool = &bufferPool{
	buckets: make(map[Size][]*Pixmap),
	maxSize: 4,
}

// get retrieves a pixmap from the pool or allocates a new one. Reused
// buffers keep their stale content; callers overwrite every pixel.
func (p *bufferPool) get(width, height int) *Pixmap {
	key := Size{Width: width, Height: height}

	p.mu.Lock()
	bucket := p.buckets[key]
	if n := len(bucket); n > 0 {
		pm := bucket[n-1]
		p.buckets[key] = bucket[:n-1]
		p.mu.Unlock()
		return pm
	}
	p.mu.Unlock()

	return NewPixmap(width, height)
}

// put returns a pixmap to the pool, discarding it when the bucket is
// full.
func (p *bufferPool) put(pm *Pixmap) {
	if pm == nil {
		return
	}
	key := Size{Width: pm.Width(), Height: pm.Height()}

	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.buckets[key]) < p.maxSize {
		p.buckets[key] = append(p.buckets[key], pm)
	}
}

// GetPixmap retrieves a pooled pixel buffer for a new image. The loader
// uses this so Release can recycle decode buffers.
func GetPixmap(width, height int) *Pixmap {
	return pixmapPool.get(width, height)
}
