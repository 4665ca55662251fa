package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/muurk/zha-logfmt/internal/logfmt"
)

func TestParseColorMode(t *testing.T) {
	tests := []struct {
		input   string
		want    ColorMode
		wantErr bool
	}{
		{"", ColorAuto, false},
		{"auto", ColorAuto, false},
		{"ALWAYS", ColorAlways, false},
		{"never", ColorNever, false},
		{"sometimes", ColorAuto, true},
	}

	for _, tt := range tests {
		got, err := ParseColorMode(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseColorMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColorMode(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestRecordRendererPlain(t *testing.T) {
	rec := logfmt.Record{Kind: logfmt.KindIncoming, Text: "[2024-01-15 10:30:00.123] 0x1234 EP=1"}

	for _, mode := range []ColorMode{ColorNever, ColorAuto} {
		rr := NewRecordRenderer(&bytes.Buffer{}, mode)
		if rr.Enabled() {
			t.Errorf("mode %v: Enabled() = true for a buffer", mode)
		}
		if got := rr.Render(rec); got != rec.Text {
			t.Errorf("mode %v: Render() = %q, want %q", mode, got, rec.Text)
		}
	}
}

func TestRecordRendererAlways(t *testing.T) {
	rr := NewRecordRenderer(&bytes.Buffer{}, ColorAlways)
	if !rr.Enabled() {
		t.Fatal("Enabled() = false with ColorAlways")
	}

	tests := []struct {
		name string
		rec  logfmt.Record
	}{
		{"incoming", logfmt.Record{Kind: logfmt.KindIncoming, Text: "[ts] 0x1234 EP=1"}},
		{"outgoing", logfmt.Record{Kind: logfmt.KindOutgoing, Text: "[ts] TX -> 0x1234"}},
		{"error passthrough", logfmt.Record{Kind: logfmt.KindPassthrough, Level: "ERROR", Text: "[ts] ERROR zha | boom"}},
		{"no timestamp", logfmt.Record{Kind: logfmt.KindPassthrough, Level: "INFO", Text: "bare"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rr.Render(tt.rec)
			if !strings.Contains(got, "\x1b[") {
				t.Errorf("Render() = %q, want ANSI escapes", got)
			}
			_, body := splitTimestamp(tt.rec.Text)
			if !strings.Contains(got, body) {
				t.Errorf("Render() = %q, does not contain %q", got, body)
			}
		})
	}
}

func TestSplitTimestamp(t *testing.T) {
	tests := []struct {
		input     string
		wantStamp string
		wantBody  string
	}{
		{"[2024-01-15 10:30:00.123] TX -> 0x1234", "[2024-01-15 10:30:00.123]", "TX -> 0x1234"},
		{"no stamp", "", "no stamp"},
		{"[unterminated", "", "[unterminated"},
	}

	for _, tt := range tests {
		stamp, body := splitTimestamp(tt.input)
		if stamp != tt.wantStamp || body != tt.wantBody {
			t.Errorf("splitTimestamp(%q) = (%q, %q), want (%q, %q)", tt.input, stamp, body, tt.wantStamp, tt.wantBody)
		}
	}
}
