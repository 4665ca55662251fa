package zigbee

import "regexp"

// dataLiteralPattern matches the Python bytes literal zigpy uses for frame payloads.
var dataLiteralPattern = regexp.MustCompile(`Data=b'([^']*)'`)

// ExtractDataBytes returns the payload bytes of the first Data=b'...' literal
// in line, or an empty slice when the line has none.
func ExtractDataBytes(line string) []byte {
	match := dataLiteralPattern.FindStringSubmatch(line)
	if match == nil {
		return []byte{}
	}
	return DecodeEscapedBytes(match[1])
}

// DecodeEscapedBytes decodes every complete \xHH group in s. Any other
// character, including an escape group cut short at the end of s, is skipped.
func DecodeEscapedBytes(s string) []byte {
	out := make([]byte, 0, len(s)/4)

	for i := 0; i < len(s); {
		if i+3 < len(s) && s[i] == '\\' && s[i+1] == 'x' {
			hi, okHi := hexNibble(s[i+2])
			lo, okLo := hexNibble(s[i+3])
			if okHi && okLo {
				out = append(out, hi<<4|lo)
				i += 4
				continue
			}
		}
		i++
	}

	return out
}

func hexNibble(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

// HexBytes renders data as space-separated two-digit uppercase hex.
func HexBytes(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	buf := make([]byte, 0, len(data)*3-1)
	for i, b := range data {
		if i > 0 {
			buf = append(buf, ' ')
		}
		buf = append(buf, hexDigits[b>>4], hexDigits[b&0x0F])
	}
	return string(buf)
}

const hexDigits = "0123456789ABCDEF"
