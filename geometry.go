package gui

import (
	"image"

	goskema "github.com/reoring/goskema"
)

// Size returns a Codec that converts between [width, height] integer pairs
// and image.Point, the size type Go GUI code builds on.
func Size() goskema.Codec[[]int64, image.Point] { return pairCodec("size") }

// Point returns a Codec that converts between [x, y] integer pairs and
// image.Point. It is identical to Size in shape; it exists so that model
// fields read as what they are.
func Point() goskema.Codec[[]int64, image.Point] { return pairCodec("point") }

func pairCodec(kind string) goskema.Codec[[]int64, image.Point] {
	in := intTupleN(2)
	return &tupleCodec[image.Point]{
		in:   in,
		out:  nativeSchema[image.Point]{frag: in.JSONSchema},
		kind: kind,
		dec: func(a []int64) (image.Point, goskema.Issues) {
			return image.Point{X: int(a[0]), Y: int(a[1])}, nil
		},
		enc: func(p image.Point) ([]int64, goskema.Issues) {
			return []int64{int64(p.X), int64(p.Y)}, nil
		},
	}
}

// Rect returns a Codec that converts between [x, y, width, height] integer
// quadruples and image.Rectangle. The wire form follows the GUI constructor
// convention; Min/Max corners are derived as (x, y) and (x+width, y+height).
func Rect() goskema.Codec[[]int64, image.Rectangle] {
	in := intTupleN(4)
	return &tupleCodec[image.Rectangle]{
		in:   in,
		out:  nativeSchema[image.Rectangle]{frag: in.JSONSchema},
		kind: "rect",
		dec: func(a []int64) (image.Rectangle, goskema.Issues) {
			x, y, w, h := int(a[0]), int(a[1]), int(a[2]), int(a[3])
			return image.Rectangle{
				Min: image.Point{X: x, Y: y},
				Max: image.Point{X: x + w, Y: y + h},
			}, nil
		},
		enc: func(r image.Rectangle) ([]int64, goskema.Issues) {
			return []int64{
				int64(r.Min.X),
				int64(r.Min.Y),
				int64(r.Max.X - r.Min.X),
				int64(r.Max.Y - r.Min.Y),
			}, nil
		},
	}
}
