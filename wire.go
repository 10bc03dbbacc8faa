package gui

import (
	"context"
	"encoding/json"
	"strconv"

	goskema "github.com/reoring/goskema"
	js "github.com/reoring/goskema/jsonschema"
)

// intTuple is the wire-side schema shared by the tuple codecs: an ordered
// sequence of integer-coercible values with a fixed length range and an
// optional per-element bound.
type intTuple struct {
	minLen     int
	maxLen     int
	lo, hi     int64
	bounded    bool
	itemFormat string
}

// intTupleN returns an unbounded integer tuple of exactly n elements.
func intTupleN(n int) intTuple { return intTuple{minLen: n, maxLen: n} }

// channelTuple returns a [0,255]-bounded tuple for color channels.
func channelTuple(minLen, maxLen int) intTuple {
	return intTuple{minLen: minLen, maxLen: maxLen, lo: 0, hi: 255, bounded: true, itemFormat: "uint8"}
}

func (t intTuple) Parse(ctx context.Context, v any) ([]int64, error) {
	switch src := v.(type) {
	case []int64:
		out := make([]int64, len(src))
		copy(out, src)
		if err := t.ValidateValue(ctx, out); err != nil {
			return nil, err
		}
		return out, nil
	case []any:
		out := make([]int64, 0, len(src))
		var iss goskema.Issues
		for i := range src {
			n, ok := coerceInt64(src[i])
			if !ok {
				iss = goskema.AppendIssues(iss, goskema.Issue{
					Path:    "/" + strconv.Itoa(i),
					Code:    goskema.CodeInvalidType,
					Message: "expected integer",
				})
				continue
			}
			out = append(out, n)
		}
		if len(iss) > 0 {
			return nil, iss
		}
		if err := t.ValidateValue(ctx, out); err != nil {
			return nil, err
		}
		return out, nil
	default:
		return nil, goskema.Issues{{Path: "/", Code: goskema.CodeInvalidType, Message: "expected array"}}
	}
}

func (t intTuple) ParseWithMeta(ctx context.Context, v any) (goskema.Decoded[[]int64], error) {
	n, err := t.Parse(ctx, v)
	return goskema.Decoded[[]int64]{Value: n, Presence: goskema.PresenceMap{"/": goskema.PresenceSeen}}, err
}

// TypeCheck covers the structural half of what Parse enforces: array-ness,
// tuple length, and per-element integer coercibility.
func (t intTuple) TypeCheck(ctx context.Context, v any) error {
	switch src := v.(type) {
	case []int64:
		return t.checkLen(len(src))
	case []any:
		if err := t.checkLen(len(src)); err != nil {
			return err
		}
		var iss goskema.Issues
		for i := range src {
			if _, ok := coerceInt64(src[i]); !ok {
				iss = goskema.AppendIssues(iss, goskema.Issue{
					Path:    "/" + strconv.Itoa(i),
					Code:    goskema.CodeInvalidType,
					Message: "expected integer",
				})
			}
		}
		if len(iss) > 0 {
			return iss
		}
		return nil
	default:
		return goskema.Issues{{Path: "/", Code: goskema.CodeInvalidType, Message: "expected array"}}
	}
}

// RuleCheck covers the range half, assuming TypeCheck already passed.
func (t intTuple) RuleCheck(ctx context.Context, v any) error {
	switch src := v.(type) {
	case []int64:
		return t.checkRange(src)
	case []any:
		out := make([]int64, 0, len(src))
		for i := range src {
			if n, ok := coerceInt64(src[i]); ok {
				out = append(out, n)
			}
		}
		return t.checkRange(out)
	default:
		return nil
	}
}

func (t intTuple) Validate(ctx context.Context, v any) error {
	if err := t.TypeCheck(ctx, v); err != nil {
		return err
	}
	return t.RuleCheck(ctx, v)
}

func (t intTuple) ValidateValue(ctx context.Context, v []int64) error {
	if err := t.checkLen(len(v)); err != nil {
		return err
	}
	return t.checkRange(v)
}

func (t intTuple) checkLen(n int) error {
	if n < t.minLen {
		return goskema.Issues{{
			Path: "/", Code: goskema.CodeTooShort, Message: "too short",
			Params: map[string]any{"min": t.minLen, "got": n},
		}}
	}
	if n > t.maxLen {
		return goskema.Issues{{
			Path: "/", Code: goskema.CodeTooLong, Message: "too long",
			Params: map[string]any{"max": t.maxLen, "got": n},
		}}
	}
	return nil
}

func (t intTuple) checkRange(v []int64) error {
	if !t.bounded {
		return nil
	}
	var iss goskema.Issues
	for i, n := range v {
		if n < t.lo {
			iss = goskema.AppendIssues(iss, goskema.Issue{
				Path: "/" + strconv.Itoa(i), Code: goskema.CodeTooSmall, Message: "value below range",
				Params: map[string]any{"min": t.lo, "got": n},
			})
		} else if n > t.hi {
			iss = goskema.AppendIssues(iss, goskema.Issue{
				Path: "/" + strconv.Itoa(i), Code: goskema.CodeTooBig, Message: "value above range",
				Params: map[string]any{"max": t.hi, "got": n},
			})
		}
	}
	if len(iss) > 0 {
		return iss
	}
	return nil
}

func (t intTuple) JSONSchema() (*js.Schema, error) {
	mn, mx := t.minLen, t.maxLen
	return &js.Schema{
		Type:     "array",
		Items:    &js.Schema{Type: "integer", Format: t.itemFormat},
		MinItems: &mn,
		MaxItems: &mx,
	}, nil
}

// coerceInt64 converts a wire element to int64, rejecting fractional numbers.
func coerceInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return i, true
	case float64:
		i := int64(n)
		if float64(i) != n {
			return 0, false
		}
		return i, true
	case int:
		return int64(n), true
	case int64:
		return n, true
	default:
		return 0, false
	}
}

// stringWire is the wire-side schema for string-shaped codecs.
type stringWire struct{ format string }

func (s stringWire) Parse(ctx context.Context, v any) (string, error) {
	if sv, ok := v.(string); ok {
		return sv, nil
	}
	return "", goskema.Issues{{Path: "/", Code: goskema.CodeInvalidType, Message: "expected string"}}
}

func (s stringWire) ParseWithMeta(ctx context.Context, v any) (goskema.Decoded[string], error) {
	sv, err := s.Parse(ctx, v)
	return goskema.Decoded[string]{Value: sv, Presence: goskema.PresenceMap{"/": goskema.PresenceSeen}}, err
}

func (s stringWire) TypeCheck(ctx context.Context, v any) error {
	if _, ok := v.(string); !ok {
		return goskema.Issues{{Path: "/", Code: goskema.CodeInvalidType, Message: "expected string"}}
	}
	return nil
}

func (s stringWire) RuleCheck(ctx context.Context, v any) error        { return nil }
func (s stringWire) Validate(ctx context.Context, v any) error         { return s.TypeCheck(ctx, v) }
func (s stringWire) ValidateValue(ctx context.Context, v string) error { return nil }

func (s stringWire) JSONSchema() (*js.Schema, error) {
	return &js.Schema{Type: "string", Format: s.format}, nil
}

// nativeSchema is the domain-side schema for a wrapped toolkit value. The
// natives carry no constraints of their own; the JSON Schema fragment
// describes the external shape so that dsl.Codec exports it.
type nativeSchema[T any] struct {
	frag func() (*js.Schema, error)
}

func (s nativeSchema[T]) Parse(ctx context.Context, v any) (T, error) {
	if tv, ok := v.(T); ok {
		return tv, nil
	}
	var zero T
	return zero, goskema.Issues{{Path: "/", Code: goskema.CodeInvalidType, Message: "unexpected native type"}}
}

func (s nativeSchema[T]) ParseWithMeta(ctx context.Context, v any) (goskema.Decoded[T], error) {
	tv, err := s.Parse(ctx, v)
	return goskema.Decoded[T]{Value: tv, Presence: goskema.PresenceMap{"/": goskema.PresenceSeen}}, err
}

func (s nativeSchema[T]) TypeCheck(ctx context.Context, v any) error {
	if _, ok := v.(T); !ok {
		return goskema.Issues{{Path: "/", Code: goskema.CodeInvalidType, Message: "unexpected native type"}}
	}
	return nil
}

func (s nativeSchema[T]) RuleCheck(ctx context.Context, v any) error { return nil }
func (s nativeSchema[T]) Validate(ctx context.Context, v any) error  { return s.TypeCheck(ctx, v) }
func (s nativeSchema[T]) ValidateValue(ctx context.Context, v T) error {
	return nil
}

func (s nativeSchema[T]) JSONSchema() (*js.Schema, error) {
	if s.frag == nil {
		return &js.Schema{}, nil
	}
	return s.frag()
}

// tupleCodec is the shared Codec implementation for values carried as
// integer tuples on the wire. dec and enc hold the per-type component
// mapping; everything else (validation order, presence handling) is common.
type tupleCodec[B any] struct {
	in   intTuple
	out  nativeSchema[B]
	kind string
	dec  func([]int64) (B, goskema.Issues)
	enc  func(B) ([]int64, goskema.Issues)
}

func (c *tupleCodec[B]) In() goskema.Schema[[]int64] { return c.in }
func (c *tupleCodec[B]) Out() goskema.Schema[B]      { return c.out }

func (c *tupleCodec[B]) Decode(ctx context.Context, a []int64) (B, error) {
	var zero B
	if err := c.in.ValidateValue(ctx, a); err != nil {
		return zero, err
	}
	b, iss := c.dec(a)
	if iss != nil {
		return zero, iss
	}
	if err := c.out.ValidateValue(ctx, b); err != nil {
		return zero, err
	}
	return b, nil
}

func (c *tupleCodec[B]) Encode(ctx context.Context, b B) ([]int64, error) {
	if err := c.out.ValidateValue(ctx, b); err != nil {
		return nil, err
	}
	a, iss := c.enc(b)
	if iss != nil {
		return nil, iss
	}
	// Re-validate the wire form via In.Parse, as Codec requires.
	if _, err := c.in.Parse(ctx, a); err != nil {
		return nil, err
	}
	return a, nil
}

func (c *tupleCodec[B]) DecodeWithMeta(ctx context.Context, a []int64) (goskema.Decoded[B], error) {
	b, err := c.Decode(ctx, a)
	return goskema.Decoded[B]{Value: b, Presence: goskema.PresenceMap{"/": goskema.PresenceSeen}}, err
}

func (c *tupleCodec[B]) EncodePreserving(ctx context.Context, db goskema.Decoded[B]) ([]int64, error) {
	if err := presenceGate(db.Presence, c.kind); err != nil {
		return nil, err
	}
	return c.Encode(ctx, db.Value)
}

// presenceGate applies the scalar preserving-encode rules: top-level scalars
// cannot represent null or missing, so both are encode errors.
func presenceGate(pm goskema.PresenceMap, kind string) error {
	if pm == nil {
		return nil
	}
	p, ok := pm["/"]
	if !ok {
		return nil
	}
	if p&goskema.PresenceWasNull != 0 {
		return goskema.Issues{{Path: "/", Code: goskema.CodeInvalidType, Message: "cannot encode null as " + kind}}
	}
	if p&goskema.PresenceSeen == 0 {
		return goskema.Issues{{Path: "/", Code: goskema.CodeRequired, Message: "missing value (preserving)"}}
	}
	return nil
}
