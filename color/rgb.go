package color

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/t28hub/auto-palette-sub000/internal/xerrors"
	"github.com/t28hub/auto-palette-sub000/numeric"
)

// RGB is gamma-encoded 8-bit-per-channel sRGB, the wire format for hex
// strings and the ANSI quantizers.
type RGB struct {
	R, G, B uint8
}

// ToHexString renders "#RRGGBB" with uppercase digits; alpha is never
// emitted.
func (c RGB) ToHexString() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// ToHexString converts the color to sRGB and renders it as "#RRGGBB".
func (c Color[T]) ToHexString() string {
	return c.ToRGB().ToHexString()
}

// FromHexString parses "#RGB", "#RGBA", "#RRGGBB" or "#RRGGBBAA" (alpha is
// accepted but ignored). It fails on a bad prefix, length, or hex digit.
func FromHexString[T numeric.Float](s string) (Color[T], error) {
	rgb, err := parseHex(s)
	if err != nil {
		return Color[T]{}, err
	}
	return FromRGB[T](rgb), nil
}

func parseHex(s string) (RGB, error) {
	if !strings.HasPrefix(s, "#") {
		return RGB{}, xerrors.New(xerrors.ParseError, "hex string %q must start with '#'", s)
	}
	digits := s[1:]
	expand := func(c byte) (byte, byte) { return c, c }

	var r, g, b byte
	switch len(digits) {
	case 3, 4: // #RGB, #RGBA
		rHi, err := hexNibble(digits[0])
		if err != nil {
			return RGB{}, hexErr(s, err)
		}
		gHi, err := hexNibble(digits[1])
		if err != nil {
			return RGB{}, hexErr(s, err)
		}
		bHi, err := hexNibble(digits[2])
		if err != nil {
			return RGB{}, hexErr(s, err)
		}
		if len(digits) == 4 {
			if _, err := hexNibble(digits[3]); err != nil {
				return RGB{}, hexErr(s, err)
			}
		}
		r1, r2 := expand(rHi)
		g1, g2 := expand(gHi)
		b1, b2 := expand(bHi)
		r = r1<<4 | r2
		g = g1<<4 | g2
		b = b1<<4 | b2
	case 6, 8: // #RRGGBB, #RRGGBBAA
		val, err := strconv.ParseUint(digits, 16, 32)
		if err != nil {
			return RGB{}, hexErr(s, err)
		}
		if len(digits) == 8 {
			val >>= 8 // drop the ignored alpha byte
		}
		r = byte(val >> 16)
		g = byte(val >> 8)
		b = byte(val)
	default:
		return RGB{}, xerrors.New(xerrors.ParseError, "hex string %q has invalid length", s)
	}
	return RGB{R: r, G: g, B: b}, nil
}

func hexNibble(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, fmt.Errorf("invalid hex digit %q", c)
	}
}

func hexErr(s string, cause error) error {
	return xerrors.Wrap(xerrors.ParseError, cause, "hex string %q is malformed", s)
}
