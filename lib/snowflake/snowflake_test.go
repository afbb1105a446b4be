// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package snowflake

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		raw  string
		want ID
	}{
		{"1", 1},
		{"115590097100865541", 115590097100865541},
		{"18446744073709551615", ID(^uint64(0))},
	}
	for _, test := range tests {
		t.Run(test.raw, func(t *testing.T) {
			id, err := Parse(test.raw)
			if err != nil {
				t.Fatalf("Parse(%q): %v", test.raw, err)
			}
			if id != test.want {
				t.Errorf("Parse(%q) = %d, want %d", test.raw, id, test.want)
			}
			if id.String() != test.raw {
				t.Errorf("String() = %q, want %q", id.String(), test.raw)
			}
		})
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	for _, raw := range []string{"", "abc", "-5", "12.5", "18446744073709551616"} {
		t.Run(raw, func(t *testing.T) {
			if _, err := Parse(raw); err == nil {
				t.Errorf("Parse(%q) succeeded, want error", raw)
			}
		})
	}
}

func TestTime(t *testing.T) {
	// 175928847299117063 >> 22 = 41944705796 ms past the epoch, which
	// is 2016-04-30 11:18:25.796 UTC (the documented worked example).
	id := ID(175928847299117063)
	want := time.Date(2016, 4, 30, 11, 18, 25, 796e6, time.UTC)
	if got := id.Time(); !got.Equal(want) {
		t.Errorf("Time() = %v, want %v", got, want)
	}
}

func TestFromTimeOrdering(t *testing.T) {
	instant := time.Date(2020, 6, 1, 0, 0, 0, 0, time.UTC)
	bound := FromTime(instant)
	if got := bound.Time(); !got.Equal(instant) {
		t.Errorf("FromTime round-trip = %v, want %v", got, instant)
	}
	earlier := FromTime(instant.Add(-time.Second))
	if earlier >= bound {
		t.Errorf("FromTime not monotonic: %d >= %d", earlier, bound)
	}
}

func TestJSONMarshalsAsString(t *testing.T) {
	data, err := json.Marshal(ID(123))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `"123"` {
		t.Errorf("Marshal = %s, want %q", data, `"123"`)
	}
	var id ID
	if err := json.Unmarshal([]byte(`"456"`), &id); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if id != 456 {
		t.Errorf("Unmarshal = %d, want 456", id)
	}
}

func TestSortedKeys(t *testing.T) {
	m := map[ID]string{30: "c", 10: "a", 20: "b"}
	keys := SortedKeys(m)
	want := []ID{10, 20, 30}
	if len(keys) != len(want) {
		t.Fatalf("SortedKeys returned %d keys, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %d, want %d", i, keys[i], want[i])
		}
	}
}
