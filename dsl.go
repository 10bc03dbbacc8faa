package gui

import (
	"image"
	"image/color"
	"time"

	goskema "github.com/reoring/goskema"
	"github.com/reoring/goskema/dsl"
)

// The ...Schema helpers wrap each Codec via dsl.Codec so a wire value parses
// straight into the native type; the ...Of helpers adapt those schemas for
// dsl.Object field builders, mirroring StringOf/BoolOf.

// SizeSchema returns the Size codec as a Schema[image.Point].
func SizeSchema() goskema.Schema[image.Point] { return dsl.Codec(Size()) }

// SizeOf adapts SizeSchema for Object().Field(...).
func SizeOf() dsl.AnyAdapter { return dsl.SchemaOf(SizeSchema()) }

// PointSchema returns the Point codec as a Schema[image.Point].
func PointSchema() goskema.Schema[image.Point] { return dsl.Codec(Point()) }

// PointOf adapts PointSchema for Object().Field(...).
func PointOf() dsl.AnyAdapter { return dsl.SchemaOf(PointSchema()) }

// RectSchema returns the Rect codec as a Schema[image.Rectangle].
func RectSchema() goskema.Schema[image.Rectangle] { return dsl.Codec(Rect()) }

// RectOf adapts RectSchema for Object().Field(...).
func RectOf() dsl.AnyAdapter { return dsl.SchemaOf(RectSchema()) }

// RGBSchema returns the RGB codec as a Schema[color.NRGBA].
func RGBSchema() goskema.Schema[color.NRGBA] { return dsl.Codec(RGB()) }

// RGBOf adapts RGBSchema for Object().Field(...).
func RGBOf() dsl.AnyAdapter { return dsl.SchemaOf(RGBSchema()) }

// RGBASchema returns the RGBA codec as a Schema[color.NRGBA].
func RGBASchema() goskema.Schema[color.NRGBA] { return dsl.Codec(RGBA()) }

// RGBAOf adapts RGBASchema for Object().Field(...).
func RGBAOf() dsl.AnyAdapter { return dsl.SchemaOf(RGBASchema()) }

// ColorSchema returns the flexible color codec as a Schema[color.NRGBA].
func ColorSchema() goskema.Schema[color.NRGBA] { return dsl.Codec(Color()) }

// ColorOf adapts ColorSchema for Object().Field(...).
func ColorOf() dsl.AnyAdapter { return dsl.SchemaOf(ColorSchema()) }

// HexColorSchema returns the hex color codec as a Schema[color.NRGBA].
func HexColorSchema() goskema.Schema[color.NRGBA] { return dsl.Codec(HexColor()) }

// HexColorOf adapts HexColorSchema for Object().Field(...).
func HexColorOf() dsl.AnyAdapter { return dsl.SchemaOf(HexColorSchema()) }

// DateSchema returns the Date codec as a Schema[time.Time].
func DateSchema() goskema.Schema[time.Time] { return dsl.Codec(Date()) }

// DateOf adapts DateSchema for Object().Field(...).
func DateOf() dsl.AnyAdapter { return dsl.SchemaOf(DateSchema()) }
