package gui

import (
	"context"
	"fmt"
	"time"

	goskema "github.com/reoring/goskema"
)

const dateLayout = "2006-01-02"

// Date returns a Codec that converts between ISO-8601 calendar-date strings
// (YYYY-MM-DD, no timezone) and time.Time. Decoding pins the result to
// midnight UTC; encoding reads only (year, month, day) from the native, so
// any time-of-day component is dropped canonically.
func Date() goskema.Codec[string, time.Time] {
	return &dateCodec{
		in:  stringWire{format: "date"},
		out: nativeSchema[time.Time]{frag: stringWire{format: "date"}.JSONSchema},
	}
}

type dateCodec struct {
	in  goskema.Schema[string]
	out goskema.Schema[time.Time]
}

func (c *dateCodec) In() goskema.Schema[string]     { return c.in }
func (c *dateCodec) Out() goskema.Schema[time.Time] { return c.out }

func (c *dateCodec) Decode(ctx context.Context, a string) (time.Time, error) {
	t, err := parseDate(a)
	if err != nil {
		return time.Time{}, goskema.Issues{{Path: "/", Code: goskema.CodeInvalidFormat, Message: "invalid calendar date", Cause: err}}
	}
	if err := c.out.ValidateValue(ctx, t); err != nil {
		return time.Time{}, err
	}
	return t, nil
}

func (c *dateCodec) Encode(ctx context.Context, b time.Time) (string, error) {
	if err := c.out.ValidateValue(ctx, b); err != nil {
		return "", err
	}
	s := formatDate(b)
	if _, err := c.in.Parse(ctx, s); err != nil {
		return "", err
	}
	if _, err := parseDate(s); err != nil {
		return "", goskema.Issues{{Path: "/", Code: goskema.CodeInvalidFormat, Message: "date not representable as YYYY-MM-DD", Cause: err}}
	}
	return s, nil
}

func (c *dateCodec) DecodeWithMeta(ctx context.Context, a string) (goskema.Decoded[time.Time], error) {
	t, err := c.Decode(ctx, a)
	return goskema.Decoded[time.Time]{Value: t, Presence: goskema.PresenceMap{"/": goskema.PresenceSeen}}, err
}

func (c *dateCodec) EncodePreserving(ctx context.Context, db goskema.Decoded[time.Time]) (string, error) {
	if err := presenceGate(db.Presence, "date string"); err != nil {
		return "", err
	}
	return c.Encode(ctx, db.Value)
}

// parseDate enforces the strict padded form; time.Parse rejects impossible
// calendar dates (month 13, Feb 30, Feb 29 outside leap years) for us.
func parseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

func formatDate(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}
