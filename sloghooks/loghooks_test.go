package sloghooks

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func newJSON(t *testing.T) (*slog.Logger, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	return slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})), &buf
}

func records(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var rec map[string]any
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			t.Fatalf("bad json %q: %v", line, err)
		}
		out = append(out, rec)
	}
	return out
}

func TestEventsAndRedaction(t *testing.T) {
	l, buf := newJSON(t)
	h := New(l, Options{})

	h.PrimaryHit("mem")
	h.PushFailed("mem", "redis", errors.New("timeout"))
	h.SelfHeal("redis", "user:secret", "corrupt")

	recs := records(t, buf)
	if len(recs) != 2 {
		t.Fatalf("got %d records, want 2 (hits are silent)", len(recs))
	}
	if recs[0]["msg"] != "tiercache.push_failed" || recs[0]["level"] != "ERROR" || recs[0]["target"] != "redis" {
		t.Fatalf("push record=%v", recs[0])
	}
	key, _ := recs[1]["key"].(string)
	if key == "" || key == "user:secret" || len(key) != 16 {
		t.Fatalf("key not redacted: %q", key)
	}

	buf.Reset()
	h = New(l, Options{Redact: func(string) string { return "X" }})
	h.ProviderSetRejected("redis", "user:secret")
	if recs := records(t, buf); recs[0]["key"] != "X" {
		t.Fatalf("custom redactor ignored: %v", recs[0])
	}
}

func TestSampling(t *testing.T) {
	l, buf := newJSON(t)
	h := New(l, Options{SelfHealEvery: 3, FallbackEvery: 2})

	for i := 0; i < 9; i++ {
		h.SelfHeal("c", "k", "corrupt")
	}
	for i := 0; i < 4; i++ {
		h.FallbackHit("mem", "redis")
	}

	var heals, fallbacks int
	for _, r := range records(t, buf) {
		switch r["msg"] {
		case "tiercache.self_heal":
			heals++
		case "tiercache.fallback_hit":
			fallbacks++
		}
	}
	if heals != 3 || fallbacks != 2 {
		t.Fatalf("heals=%d fallbacks=%d", heals, fallbacks)
	}
}

func TestNilLoggerIsSilent(t *testing.T) {
	h := New(nil, Options{})
	h.BackfillFailed("mem", errors.New("x"))
	h.FallbackMiss("mem", "redis", errors.New("x"))
	h.PrimaryStoreFailed("mem", errors.New("x"))
}
