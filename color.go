package gui

import (
	"context"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	goskema "github.com/reoring/goskema"
	js "github.com/reoring/goskema/jsonschema"
)

// RGB returns a Codec that converts between [r, g, b] channel triples in
// [0,255] and color.NRGBA with alpha fixed to 0xff. Encoding a native whose
// alpha is not 0xff fails: the 3-channel wire form cannot represent it.
func RGB() goskema.Codec[[]int64, color.NRGBA] {
	in := channelTuple(3, 3)
	return &tupleCodec[color.NRGBA]{
		in:   in,
		out:  nativeSchema[color.NRGBA]{frag: in.JSONSchema},
		kind: "RGB color",
		dec: func(a []int64) (color.NRGBA, goskema.Issues) {
			return color.NRGBA{R: uint8(a[0]), G: uint8(a[1]), B: uint8(a[2]), A: 0xff}, nil
		},
		enc: func(c color.NRGBA) ([]int64, goskema.Issues) {
			if c.A != 0xff {
				return nil, goskema.Issues{{
					Path: "/", Code: goskema.CodeDomainRange,
					Message: "3-channel form cannot represent alpha",
					Params:  map[string]any{"alpha": c.A},
				}}
			}
			return []int64{int64(c.R), int64(c.G), int64(c.B)}, nil
		},
	}
}

// RGBA returns a Codec that converts between [r, g, b, a] channel quadruples
// in [0,255] and color.NRGBA. Alpha is explicit in both directions.
func RGBA() goskema.Codec[[]int64, color.NRGBA] {
	in := channelTuple(4, 4)
	return &tupleCodec[color.NRGBA]{
		in:   in,
		out:  nativeSchema[color.NRGBA]{frag: in.JSONSchema},
		kind: "RGBA color",
		dec: func(a []int64) (color.NRGBA, goskema.Issues) {
			return color.NRGBA{R: uint8(a[0]), G: uint8(a[1]), B: uint8(a[2]), A: uint8(a[3])}, nil
		},
		enc: func(c color.NRGBA) ([]int64, goskema.Issues) {
			return []int64{int64(c.R), int64(c.G), int64(c.B), int64(c.A)}, nil
		},
	}
}

// Color returns the flexible color Codec: it accepts 3 or 4 channels in
// [0,255] and a missing alpha defaults to 255. Encoding is canonical: 3
// channels when alpha is 0xff, 4 otherwise. Canonical wire values round-trip
// byte-identically; the redundant [r, g, b, 255] form decodes to the same
// native as [r, g, b] and re-encodes as the 3-channel form.
func Color() goskema.Codec[[]int64, color.NRGBA] {
	in := channelTuple(3, 4)
	return &tupleCodec[color.NRGBA]{
		in:   in,
		out:  nativeSchema[color.NRGBA]{frag: colorFragment},
		kind: "color",
		dec: func(a []int64) (color.NRGBA, goskema.Issues) {
			alpha := uint8(0xff)
			if len(a) == 4 {
				alpha = uint8(a[3])
			}
			return color.NRGBA{R: uint8(a[0]), G: uint8(a[1]), B: uint8(a[2]), A: alpha}, nil
		},
		enc: func(c color.NRGBA) ([]int64, goskema.Issues) {
			if c.A == 0xff {
				return []int64{int64(c.R), int64(c.G), int64(c.B)}, nil
			}
			return []int64{int64(c.R), int64(c.G), int64(c.B), int64(c.A)}, nil
		},
	}
}

// colorFragment exports the flexible color shape as a oneOf over the 3- and
// 4-channel tuples.
func colorFragment() (*js.Schema, error) {
	rgb, err := channelTuple(3, 3).JSONSchema()
	if err != nil {
		return nil, err
	}
	rgba, err := channelTuple(4, 4).JSONSchema()
	if err != nil {
		return nil, err
	}
	return &js.Schema{OneOf: []*js.Schema{rgb, rgba}}, nil
}

// HexColor returns a Codec that converts between "#rrggbb" / "#rrggbbaa"
// strings and color.NRGBA. Input digits are case-insensitive; the canonical
// output is lowercase with the alpha pair omitted when it is 0xff.
func HexColor() goskema.Codec[string, color.NRGBA] {
	return &hexColorCodec{
		in:  stringWire{format: "hex-color"},
		out: nativeSchema[color.NRGBA]{frag: stringWire{format: "hex-color"}.JSONSchema},
	}
}

type hexColorCodec struct {
	in  goskema.Schema[string]
	out goskema.Schema[color.NRGBA]
}

func (c *hexColorCodec) In() goskema.Schema[string]       { return c.in }
func (c *hexColorCodec) Out() goskema.Schema[color.NRGBA] { return c.out }

func (c *hexColorCodec) Decode(ctx context.Context, a string) (color.NRGBA, error) {
	v, err := parseHexColor(a)
	if err != nil {
		return color.NRGBA{}, goskema.Issues{{Path: "/", Code: goskema.CodeInvalidFormat, Message: "invalid hex color", Cause: err}}
	}
	if err := c.out.ValidateValue(ctx, v); err != nil {
		return color.NRGBA{}, err
	}
	return v, nil
}

func (c *hexColorCodec) Encode(ctx context.Context, b color.NRGBA) (string, error) {
	if err := c.out.ValidateValue(ctx, b); err != nil {
		return "", err
	}
	s := formatHexColor(b)
	if _, err := c.in.Parse(ctx, s); err != nil {
		return "", err
	}
	return s, nil
}

func (c *hexColorCodec) DecodeWithMeta(ctx context.Context, a string) (goskema.Decoded[color.NRGBA], error) {
	v, err := c.Decode(ctx, a)
	return goskema.Decoded[color.NRGBA]{Value: v, Presence: goskema.PresenceMap{"/": goskema.PresenceSeen}}, err
}

func (c *hexColorCodec) EncodePreserving(ctx context.Context, db goskema.Decoded[color.NRGBA]) (string, error) {
	if err := presenceGate(db.Presence, "hex color"); err != nil {
		return "", err
	}
	return c.Encode(ctx, db.Value)
}

func parseHexColor(s string) (color.NRGBA, error) {
	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, fmt.Errorf("missing '#' prefix: %q", s)
	}
	digits := s[1:]
	if len(digits) != 6 && len(digits) != 8 {
		return color.NRGBA{}, fmt.Errorf("want 6 or 8 hex digits, got %d", len(digits))
	}
	n, err := strconv.ParseUint(digits, 16, 64)
	if err != nil {
		return color.NRGBA{}, err
	}
	if len(digits) == 6 {
		n = n<<8 | 0xff
	}
	return color.NRGBA{
		R: uint8(n >> 24),
		G: uint8(n >> 16),
		B: uint8(n >> 8),
		A: uint8(n),
	}, nil
}

func formatHexColor(c color.NRGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}
