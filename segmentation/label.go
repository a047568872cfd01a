package segmentation

import "github.com/t28hub/auto-palette-sub000/numeric"

// Builder accumulates segments for a width x height grid as a segmenter
// assigns pixels, creating segments lazily on first insertion to a label.
// Consuming it via Build freezes the result into a LabelImage.
type Builder[T numeric.Float] struct {
	width, height int
	dim           int
	pixelLabel    []int // Unlabelled/Ignored/Noise or a real label, per pixel
	segments      map[int]*Segment[T]
}

// NewBuilder creates a Builder for a width x height grid of pixel features
// of the given dimension, with every pixel initially Unlabelled.
func NewBuilder[T numeric.Float](width, height, dim int) *Builder[T] {
	labels := make([]int, width*height)
	for i := range labels {
		labels[i] = Unlabelled
	}
	return &Builder[T]{
		width: width, height: height, dim: dim,
		pixelLabel: labels,
		segments:   make(map[int]*Segment[T]),
	}
}

// GetMut returns the segment for label, creating it on demand.
func (b *Builder[T]) GetMut(label int) *Segment[T] {
	seg, ok := b.segments[label]
	if !ok {
		seg = newSegment[T](label, b.dim)
		b.segments[label] = seg
	}
	return seg
}

// Assign records that pixelIndex belongs to label, both creating/growing
// the segment and updating the pixel -> label map used by rasterization.
func (b *Builder[T]) Assign(pixelIndex, label int, feature []T) {
	b.GetMut(label).Add(pixelIndex, feature)
	b.pixelLabel[pixelIndex] = label
}

// MarkSentinel records a pixel as Ignored or Noise without creating a
// segment for it.
func (b *Builder[T]) MarkSentinel(pixelIndex, sentinel int) {
	b.pixelLabel[pixelIndex] = sentinel
}

// LabelAt returns the current label of a pixel.
func (b *Builder[T]) LabelAt(pixelIndex int) int { return b.pixelLabel[pixelIndex] }

// Merge absorbs src into dst. No-op when src == dst or either is missing.
func (b *Builder[T]) Merge(src, dst int) {
	if src == dst {
		return
	}
	srcSeg, ok := b.segments[src]
	if !ok {
		return
	}
	dstSeg, ok := b.segments[dst]
	if !ok {
		return
	}
	for _, idx := range srcSeg.Members() {
		b.pixelLabel[idx] = dst
	}
	dstSeg.Absorb(srcSeg)
	delete(b.segments, src)
}

// Remove deletes and returns the segment for label, if any.
func (b *Builder[T]) Remove(label int) (*Segment[T], bool) {
	seg, ok := b.segments[label]
	if !ok {
		return nil, false
	}
	for _, idx := range seg.Members() {
		b.pixelLabel[idx] = Unlabelled
	}
	delete(b.segments, label)
	return seg, true
}

// Build freezes the builder into a LabelImage.
func (b *Builder[T]) Build() *LabelImage[T] {
	return &LabelImage[T]{
		width: b.width, height: b.height,
		pixelLabel: b.pixelLabel,
		segments:   b.segments,
	}
}

// LabelImage is an immutable width x height label map plus the segments it
// was built from. Every pixel index belongs to at most one segment.
type LabelImage[T numeric.Float] struct {
	width, height int
	pixelLabel    []int
	segments      map[int]*Segment[T]
}

// Width reports the image width in pixels.
func (l *LabelImage[T]) Width() int { return l.width }

// Height reports the image height in pixels.
func (l *LabelImage[T]) Height() int { return l.height }

// LabelAt returns the label of the given pixel index.
func (l *LabelImage[T]) LabelAt(pixelIndex int) int { return l.pixelLabel[pixelIndex] }

// Segments returns every segment, in unspecified order (Go map iteration
// order); callers that need a stable ordering should sort by Label.
func (l *LabelImage[T]) Segments() []*Segment[T] {
	out := make([]*Segment[T], 0, len(l.segments))
	for _, s := range l.segments {
		out = append(out, s)
	}
	return out
}

// ToRGBABuffer rasterizes the label image to a tightly-packed RGBA8 buffer,
// using colorOf to map a label to a color; unlabeled (sentinel) pixels
// receive sentinelColor.
func (l *LabelImage[T]) ToRGBABuffer(colorOf func(label int) [4]uint8, sentinelColor [4]uint8) []byte {
	buf := make([]byte, 4*l.width*l.height)
	for i, label := range l.pixelLabel {
		var rgba [4]uint8
		if label < 0 {
			rgba = sentinelColor
		} else {
			rgba = colorOf(label)
		}
		copy(buf[4*i:4*i+4], rgba[:])
	}
	return buf
}
