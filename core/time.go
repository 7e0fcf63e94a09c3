package core

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"time"
)

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FlexTime acepta los formatos de fecha que usan los proveedores:
// RFC3339, ISO sin zona (UTC), fecha sola y unix en segundos o milisegundos.
type FlexTime struct {
	time.Time
}

func (t *FlexTime) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}
	if len(b) > 0 && b[0] != '"' {
		n, err := strconv.ParseFloat(string(b), 64)
		if err != nil {
			return fmt.Errorf("core.FlexTime: %w", err)
		}
		t.Time = unixAuto(int64(n))
		return nil
	}
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	for _, layout := range timeLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed.UTC()
			return nil
		}
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		t.Time = unixAuto(n)
		return nil
	}
	return fmt.Errorf("core.FlexTime: unsupported time format %q", s)
}

func (t FlexTime) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.UTC().Format(time.RFC3339))
}

// unixAuto distingue segundos de milisegundos por magnitud.
func unixAuto(n int64) time.Time {
	if n > 1e12 {
		return time.UnixMilli(n).UTC()
	}
	return time.Unix(n, 0).UTC()
}

// CheckTimeRange falla si from es posterior a to. Un extremo cero no se compara.
func CheckTimeRange(param string, from, to time.Time, sentinel error) error {
	if from.IsZero() || to.IsZero() || !from.After(to) {
		return nil
	}
	return InvalidParam(param,
		fmt.Sprintf("%s > %s", from.UTC().Format(time.RFC3339), to.UTC().Format(time.RFC3339)),
		"time range start is after its end", sentinel)
}
