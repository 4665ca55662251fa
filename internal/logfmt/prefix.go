package logfmt

import (
	"strings"
	"unicode"
)

// Prefix is the structured head of a Home Assistant log line.
type Prefix struct {
	Timestamp string // "2024-01-15 10:30:00.123", not validated
	Level     string // "DEBUG", "INFO", ...
	Logger    string // Bracketed logger name, "" if none
	Message   string // Text after the logger
}

// prefixSegments is date, time, level, thread and the remainder.
const prefixSegments = 5

// ParsePrefix splits line into its prefix fields. When the line has fewer than
// five whitespace-separated segments it returns ok=false and a Prefix whose
// only non-empty field is Message (the whole line).
func ParsePrefix(line string) (Prefix, bool) {
	parts := splitFields(line, prefixSegments)
	if len(parts) < prefixSegments {
		return Prefix{Message: line}, false
	}

	p := Prefix{
		Timestamp: parts[0] + " " + parts[1],
		Level:     parts[2],
	}

	rest := parts[4]
	p.Logger, p.Message = splitLogger(rest)
	return p, true
}

// splitLogger returns the first non-empty "[...]" token in rest and the
// message following the first "] " at or after that token.
func splitLogger(rest string) (logger, message string) {
	start, end := findBracket(rest)
	if start < 0 {
		return "", rest
	}

	logger = rest[start+1 : end]
	if idx := strings.Index(rest[start:], "] "); idx >= 0 {
		return logger, rest[start+idx+2:]
	}
	return logger, rest
}

// findBracket locates the first "[x...]" with at least one character and no
// "]" inside. It returns the indexes of the brackets, or -1, -1.
func findBracket(s string) (int, int) {
	for i := 0; i < len(s); i++ {
		if s[i] != '[' {
			continue
		}
		end := strings.IndexByte(s[i+1:], ']')
		if end < 0 {
			return -1, -1
		}
		if end > 0 {
			return i, i + 1 + end
		}
	}
	return -1, -1
}

// splitFields splits s around runs of whitespace into at most n fields. The
// last field keeps its internal and trailing whitespace.
func splitFields(s string, n int) []string {
	fields := make([]string, 0, n)
	i := 0
	for len(fields) < n-1 {
		for i < len(s) && isSpace(s[i]) {
			i++
		}
		if i == len(s) {
			return fields
		}
		j := i
		for j < len(s) && !isSpace(s[j]) {
			j++
		}
		fields = append(fields, s[i:j])
		i = j
	}

	for i < len(s) && isSpace(s[i]) {
		i++
	}
	if i < len(s) {
		fields = append(fields, s[i:])
	}
	return fields
}

func isSpace(c byte) bool {
	return c < 0x80 && unicode.IsSpace(rune(c))
}
