package gui_test

import (
	"context"
	"encoding/json"
	"image"
	"testing"

	goskema "github.com/reoring/goskema"

	gui "github.com/reoring/goskema-gui"
)

func TestSize_Codec_Basic(t *testing.T) {
	c := gui.Size()
	ctx := context.Background()

	got, err := c.Decode(ctx, []int64{720, 480})
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if got != image.Pt(720, 480) {
		t.Fatalf("unexpected size: %v", got)
	}

	out, err := c.Encode(ctx, got)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if len(out) != 2 || out[0] != 720 || out[1] != 480 {
		t.Fatalf("roundtrip mismatch: %v", out)
	}
}

func TestSize_Decode_WrongLength(t *testing.T) {
	c := gui.Size()
	ctx := context.Background()

	for _, wire := range [][]int64{{}, {720}, {720, 480, 1}} {
		if _, err := c.Decode(ctx, wire); err == nil {
			t.Fatalf("expected length error for %v", wire)
		}
	}
}

func TestSize_Schema_RejectsNonInteger(t *testing.T) {
	s := gui.SizeSchema()
	ctx := context.Background()

	if _, err := s.Parse(ctx, []any{json.Number("1.5"), json.Number("2")}); err == nil {
		t.Fatalf("expected invalid_type for fractional element")
	}
	if _, err := s.Parse(ctx, []any{"720", json.Number("480")}); err == nil {
		t.Fatalf("expected invalid_type for string element")
	}
	if _, err := s.Parse(ctx, "720x480"); err == nil {
		t.Fatalf("expected invalid_type for non-array input")
	}
}

func TestSize_Schema_ParsesJSONNumbers(t *testing.T) {
	s := gui.SizeSchema()
	ctx := context.Background()

	v, err := s.Parse(ctx, []any{json.Number("720"), json.Number("480")})
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	if v != image.Pt(720, 480) {
		t.Fatalf("unexpected value: %v", v)
	}
}

func TestPoint_NegativeComponents(t *testing.T) {
	c := gui.Point()
	ctx := context.Background()

	got, err := c.Decode(ctx, []int64{-10, 20})
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	if got != image.Pt(-10, 20) {
		t.Fatalf("unexpected point: %v", got)
	}
	out, err := c.Encode(ctx, got)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	if out[0] != -10 || out[1] != 20 {
		t.Fatalf("roundtrip mismatch: %v", out)
	}
}

func TestRect_Codec_RoundTrip(t *testing.T) {
	c := gui.Rect()
	ctx := context.Background()

	wire := []int64{10, 20, 300, 200}
	got, err := c.Decode(ctx, wire)
	if err != nil {
		t.Fatalf("decode err: %v", err)
	}
	want := image.Rectangle{Min: image.Pt(10, 20), Max: image.Pt(310, 220)}
	if got != want {
		t.Fatalf("unexpected rect: %v", got)
	}

	out, err := c.Encode(ctx, got)
	if err != nil {
		t.Fatalf("encode err: %v", err)
	}
	for i := range wire {
		if out[i] != wire[i] {
			t.Fatalf("roundtrip mismatch: %v != %v", out, wire)
		}
	}
}

func TestSize_EncodePreserving_NotSeen_Error(t *testing.T) {
	c := gui.Size()
	ctx := context.Background()

	dx := goskema.Decoded[image.Point]{
		Value:    image.Pt(1, 2),
		Presence: goskema.PresenceMap{"/": 0},
	}
	if _, err := c.EncodePreserving(ctx, dx); err == nil {
		t.Fatalf("expected required error when PresenceSeen is not set")
	}
}

func TestSize_EncodePreserving_DecodeWithMeta_Roundtrip(t *testing.T) {
	c := gui.Size()
	ctx := context.Background()

	dx, err := c.DecodeWithMeta(ctx, []int64{720, 480})
	if err != nil {
		t.Fatalf("decode with meta err: %v", err)
	}
	out, err := c.EncodePreserving(ctx, dx)
	if err != nil {
		t.Fatalf("encode preserving err: %v", err)
	}
	if out[0] != 720 || out[1] != 480 {
		t.Fatalf("unexpected preserving output: %v", out)
	}
}

func TestSizeSchema_Validate_WireShape(t *testing.T) {
	s := gui.SizeSchema()
	ctx := context.Background()

	if err := s.Validate(ctx, []any{json.Number("720"), json.Number("480")}); err != nil {
		t.Fatalf("validate err: %v", err)
	}
	if err := s.Validate(ctx, []any{json.Number("720")}); err == nil {
		t.Fatalf("expected too_short for 1-element wire value")
	}
	if err := s.Validate(ctx, []any{json.Number("720"), "480"}); err == nil {
		t.Fatalf("expected invalid_type for string element")
	}
	if err := s.Validate(ctx, "720x480"); err == nil {
		t.Fatalf("expected invalid_type for non-array input")
	}
}

func TestSizeSchema_JSONSchema_Fragment(t *testing.T) {
	js, err := gui.SizeSchema().JSONSchema()
	if err != nil {
		t.Fatalf("jsonschema err: %v", err)
	}
	if js.Type != "array" || js.Items == nil || js.Items.Type != "integer" {
		t.Fatalf("unexpected fragment: %+v", js)
	}
	if js.MinItems == nil || *js.MinItems != 2 || js.MaxItems == nil || *js.MaxItems != 2 {
		t.Fatalf("expected fixed 2-tuple, got: %+v", js)
	}
}
