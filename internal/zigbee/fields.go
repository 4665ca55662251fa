package zigbee

import (
	"regexp"
	"strconv"
)

// IntField extracts a labelled decimal value such as "LQI=200".
type IntField struct {
	Label string
	re    *regexp.Regexp
}

// HexField extracts a labelled 0x-prefixed hex token such as "SrcAddr=0x1234".
type HexField struct {
	Label string
	re    *regexp.Regexp
}

// NewIntField returns an IntField matching "label=<digits>".
func NewIntField(label string) IntField {
	return IntField{Label: label, re: regexp.MustCompile(regexp.QuoteMeta(label) + `=(\d+)`)}
}

// NewHexField returns a HexField matching "label=0x<hex digits>".
func NewHexField(label string) HexField {
	return HexField{Label: label, re: regexp.MustCompile(regexp.QuoteMeta(label) + `=(0x[0-9A-Fa-f]+)`)}
}

// Fields logged by zigpy_znp for AF requests and callbacks
var (
	ClusterIDField   = NewIntField("ClusterId")
	SrcEndpointField = NewIntField("SrcEndpoint")
	DstEndpointField = NewIntField("DstEndpoint")
	LQIField         = NewIntField("LQI")
	TSNField         = NewIntField("TSN")
	SrcAddrField     = NewHexField("SrcAddr")
	AddressField     = NewHexField("address")
)

// Extract returns the first value of the field in line, or def when the
// field is missing or does not fit in an int.
func (f IntField) Extract(line string, def int) int {
	match := f.re.FindStringSubmatch(line)
	if match == nil {
		return def
	}
	n, err := strconv.Atoi(match[1])
	if err != nil {
		return def
	}
	return n
}

// Extract returns the first token of the field in line exactly as logged,
// or "" when the field is missing.
func (f HexField) Extract(line string) string {
	match := f.re.FindStringSubmatch(line)
	if match == nil {
		return ""
	}
	return match[1]
}
