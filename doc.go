package gui

// Package gui provides goskema Codecs for the value types Go GUI code is
// built on: sizes, points, and rectangles (image), colors (image/color),
// and calendar dates (time). Each codec is a stateless bidirectional mapping
// between a JSON-compatible wire form and the native type, plus a JSON
// Schema fragment describing the wire shape.
//
// Wire forms:
//
//   - Size/Point: [720, 480]            -> image.Point
//   - Rect:       [x, y, width, height] -> image.Rectangle
//   - RGB/RGBA/Color: [255, 95, 135]    -> color.NRGBA (channels in [0,255])
//   - HexColor:   "#ff5f87"             -> color.NRGBA
//   - Date:       "2021-01-01"          -> time.Time (midnight UTC)
//
// Validation failures surface as goskema.Issues and propagate unchanged to
// the framework; no codec retries, performs I/O, or holds state.
//
// Typical usage:
//
//	s, _ := dsl.Object().
//		Field("size", gui.SizeOf()).Required().
//		Field("background", gui.ColorOf()).Required().
//		Build()
//	v, err := goskema.ParseFrom(ctx, s, goskema.JSONBytes(data))
//
//	wire, err := gui.Color().Encode(ctx, nrgba)
