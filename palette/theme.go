package palette

import (
	"strings"

	"github.com/t28hub/auto-palette-sub000/numeric"
)

// Theme is the closed enumeration of preference biases FindSwatchesWithTheme
// scores swatches against.
type Theme int

const (
	Vivid Theme = iota
	Muted
	Light
	Dark
	Colorful
)

// String renders the theme's canonical lowercase name.
func (t Theme) String() string {
	switch t {
	case Vivid:
		return "vivid"
	case Muted:
		return "muted"
	case Light:
		return "light"
	case Dark:
		return "dark"
	case Colorful:
		return "colorful"
	default:
		return "unknown"
	}
}

// ParseTheme parses a case-insensitive theme name.
func ParseTheme(s string) (Theme, bool) {
	switch strings.ToLower(s) {
	case "vivid":
		return Vivid, true
	case "muted":
		return Muted, true
	case "light":
		return Light, true
	case "dark":
		return Dark, true
	case "colorful":
		return Colorful, true
	default:
		return 0, false
	}
}

// ScoreSwatch maps a swatch to a scalar preference in [0, 1] for theme t.
// Vivid rewards high chroma, penalized as lightness drifts from ~60; Muted
// is Vivid's complement; Light/Dark saturate with distance from the 50
// midpoint on their favored side; Colorful grows monotonically with
// chroma. It is a free function rather than a Theme method because Go
// methods cannot carry their own type parameter.
func ScoreSwatch[T numeric.Float](t Theme, s Swatch[T]) T {
	const maxChroma = 128.0
	chroma := float64(s.Color.Chroma())
	lightness := float64(s.Color.Lightness())

	var score float64
	switch t {
	case Vivid:
		chromaScore := clamp01(chroma / maxChroma)
		lightnessPenalty := clamp01(1 - abs(lightness-60)/60)
		score = chromaScore * lightnessPenalty
	case Muted:
		score = 1 - float64(ScoreSwatch[T](Vivid, s))
	case Light:
		score = clamp01((lightness - 50) / 50)
	case Dark:
		score = clamp01((50 - lightness) / 50)
	case Colorful:
		score = clamp01(chroma / maxChroma)
	}
	return T(score)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
