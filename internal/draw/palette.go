package draw

import "github.com/lucasb-eyer/go-colorful"

// layerColors returns n distinguishable colors with evenly spaced hues.
// Deterministic so repeated exports of the same input produce the same
// image.
func layerColors(n int) []colorful.Color {
	out := make([]colorful.Color, n)
	for i := range out {
		h := float64(i) * 360.0 / float64(n)
		out[i] = colorful.Hsv(h, 0.65, 0.95)
	}
	return out
}
