package http

import (
	"encoding/json"
	"testing"
	"time"
)

func TestCivilTime(t *testing.T) {
	t.Parallel()

	t.Run("accepts naive timestamps", func(t *testing.T) {
		t.Parallel()

		var ct civilTime
		if err := json.Unmarshal([]byte(`"2025-11-01T15:00:00"`), &ct); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		want := time.Date(2025, time.November, 1, 15, 0, 0, 0, time.UTC)
		if !ct.Equal(want) {
			t.Fatalf("expected %v, got %v", want, ct.Time)
		}
	})

	t.Run("accepts offset-carrying timestamps and keeps the wall clock", func(t *testing.T) {
		t.Parallel()

		var ct civilTime
		if err := json.Unmarshal([]byte(`"2025-11-01T15:00:00+02:00"`), &ct); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if ct.Hour() != 15 {
			t.Fatalf("expected wall clock hour 15, got %d", ct.Hour())
		}
	})

	t.Run("always renders naive", func(t *testing.T) {
		t.Parallel()

		ct := civilTime{time.Date(2025, time.November, 1, 15, 0, 0, 0, time.UTC)}
		data, err := json.Marshal(ct)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if string(data) != `"2025-11-01T15:00:00"` {
			t.Fatalf("unexpected rendering %s", data)
		}
	})

	t.Run("rejects garbage", func(t *testing.T) {
		t.Parallel()

		var ct civilTime
		if err := json.Unmarshal([]byte(`"next tuesday"`), &ct); err == nil {
			t.Fatal("expected an error")
		}
	})
}
