package logfmt

import "testing"

func TestParsePrefix(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		want   Prefix
		wantOK bool
	}{
		{
			name: "home assistant line",
			line: "2024-01-15 10:30:00.123 DEBUG (MainThread) [zigpy.zcl] [0x1234:1:0x0006] Received command 0x0B",
			want: Prefix{
				Timestamp: "2024-01-15 10:30:00.123",
				Level:     "DEBUG",
				Logger:    "zigpy.zcl",
				Message:   "[0x1234:1:0x0006] Received command 0x0B",
			},
			wantOK: true,
		},
		{
			name: "logger in fourth segment is not seen",
			line: "2024-01-15 10:30:00.123 INFO [zigpy] AF.IncomingMsg.Callback SrcAddr=0x1234",
			want: Prefix{
				Timestamp: "2024-01-15 10:30:00.123",
				Level:     "INFO",
				Message:   "AF.IncomingMsg.Callback SrcAddr=0x1234",
			},
			wantOK: true,
		},
		{
			name: "remainder keeps internal whitespace",
			line: "2024-01-15  10:30:00.123\tWARNING (Thread-2) [bellows.ezsp]   a  b  ",
			want: Prefix{
				Timestamp: "2024-01-15 10:30:00.123",
				Level:     "WARNING",
				Logger:    "bellows.ezsp",
				Message:   "  a  b  ",
			},
			wantOK: true,
		},
		{
			name: "bracket without trailing space",
			line: "2024-01-15 10:30:00.123 DEBUG (MainThread) [zha]",
			want: Prefix{
				Timestamp: "2024-01-15 10:30:00.123",
				Level:     "DEBUG",
				Logger:    "zha",
				Message:   "[zha]",
			},
			wantOK: true,
		},
		{
			name: "empty brackets are skipped",
			line: "2024-01-15 10:30:00.123 DEBUG (MainThread) [] [zha] hello",
			want: Prefix{
				Timestamp: "2024-01-15 10:30:00.123",
				Level:     "DEBUG",
				Logger:    "zha",
				Message:   "hello",
			},
			wantOK: true,
		},
		{
			name: "too few segments",
			line: "zigpy startup done",
			want: Prefix{Message: "zigpy startup done"},
		},
		{
			name: "leading whitespace only",
			line: "   ",
			want: Prefix{Message: "   "},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ParsePrefix(tt.line)
			if ok != tt.wantOK {
				t.Fatalf("ParsePrefix() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ParsePrefix() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestSplitFields(t *testing.T) {
	tests := []struct {
		input string
		n     int
		want  []string
	}{
		{"a b c d e f", 5, []string{"a", "b", "c", "d", "e f"}},
		{"  a\tb  ", 5, []string{"a", "b"}},
		{"a b c d e ", 5, []string{"a", "b", "c", "d", "e "}},
		{"a b c d ", 5, []string{"a", "b", "c", "d"}},
		{"", 5, []string{}},
	}

	for _, tt := range tests {
		got := splitFields(tt.input, tt.n)
		if len(got) != len(tt.want) {
			t.Errorf("splitFields(%q) = %q, want %q", tt.input, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("splitFields(%q)[%d] = %q, want %q", tt.input, i, got[i], tt.want[i])
			}
		}
	}
}
