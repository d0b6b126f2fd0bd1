package render

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"os"

	"github.com/icza/mjpeg"

	"github.com/san-kum/spinlab/internal/anneal"
)

// GIFRecorder captures lattice frames during a run and assembles them into
// a looping animated GIF. Register it as an anneal.Observer, then call Save
// once the run finishes.
type GIFRecorder struct {
	cell  int
	every int
	delay int // per-frame delay in 1/100ths of a second
	pal   color.Palette

	frames []*image.Paletted
}

// NewGIFRecorder builds a recorder capturing every every-th sweep, cell
// pixels per lattice site, at fps frames per second of playback.
func NewGIFRecorder(states, cell, every, fps int) *GIFRecorder {
	if every < 1 {
		every = 1
	}
	if fps < 1 {
		fps = 30
	}
	delay := 100 / fps
	if delay < 1 {
		delay = 1
	}
	return &GIFRecorder{cell: cell, every: every, delay: delay, pal: Palette(states)}
}

// OnPass captures a frame on every recording sweep.
func (r *GIFRecorder) OnPass(p anneal.Pass) {
	if p.Index%r.every != 0 {
		return
	}
	r.frames = append(r.frames, Frame(p.Lattice, r.cell, r.pal))
}

// Frames returns the number of captured frames.
func (r *GIFRecorder) Frames() int { return len(r.frames) }

// Save writes the captured frames as a looping GIF. Saving with no frames
// is a no-op.
func (r *GIFRecorder) Save(path string) error {
	if len(r.frames) == 0 {
		return nil
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range r.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, r.delay)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return gif.EncodeAll(f, &anim)
}

// VideoRecorder streams lattice frames into an MJPEG AVI file as the run
// progresses. Close flushes the container; the file is unusable without it.
type VideoRecorder struct {
	writer mjpeg.AviWriter
	cell   int
	every  int
	pal    color.Palette
	buf    bytes.Buffer
	err    error
}

// NewVideoRecorder opens an AVI file sized for a size-by-size lattice at
// cell pixels per site.
func NewVideoRecorder(path string, size, states, cell, every, fps int) (*VideoRecorder, error) {
	if cell < 1 {
		cell = 1
	}
	if every < 1 {
		every = 1
	}
	if fps < 1 {
		fps = 30
	}
	w, err := mjpeg.New(path, int32(size*cell), int32(size*cell), int32(fps))
	if err != nil {
		return nil, err
	}
	return &VideoRecorder{writer: w, cell: cell, every: every, pal: Palette(states)}, nil
}

// OnPass encodes the current lattice as one JPEG frame. Encoding errors are
// sticky and reported by Close.
func (v *VideoRecorder) OnPass(p anneal.Pass) {
	if v.err != nil || p.Index%v.every != 0 {
		return
	}
	v.buf.Reset()
	if err := jpeg.Encode(&v.buf, RGBAFrame(p.Lattice, v.cell, v.pal), &jpeg.Options{Quality: 90}); err != nil {
		v.err = err
		return
	}
	v.err = v.writer.AddFrame(v.buf.Bytes())
}

// Close finalizes the AVI container and returns the first frame error, if
// any.
func (v *VideoRecorder) Close() error {
	closeErr := v.writer.Close()
	if v.err != nil {
		return v.err
	}
	return closeErr
}
