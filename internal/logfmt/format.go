package logfmt

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/muurk/zha-logfmt/internal/config"
	"github.com/muurk/zha-logfmt/internal/zigbee"
)

// Marker tokens zigpy_znp logs for AF frames
const (
	MarkerIncoming = "AF.IncomingMsg.Callback"
	MarkerOutgoing = "AF.DataRequestExt.Req"
)

// Formatting limits
const (
	MinZCLHeaderBytes = 3   // frame control, TSN, command id
	MaxTxDataBytes    = 15  // outgoing payload bytes shown before "..."
	MaxMessageRunes   = 200 // passthrough message length before "..."
)

// Kind is the output format selected for a line.
type Kind int

const (
	KindPassthrough Kind = iota
	KindIncoming
	KindOutgoing
)

// String returns a human-readable kind name
func (k Kind) String() string {
	switch k {
	case KindIncoming:
		return "incoming"
	case KindOutgoing:
		return "outgoing"
	case KindPassthrough:
		return "passthrough"
	default:
		return fmt.Sprintf("unknown(%d)", int(k))
	}
}

// Classify selects the format for a line. The incoming marker takes
// precedence over the outgoing one.
func Classify(line string) Kind {
	switch {
	case strings.Contains(line, MarkerIncoming):
		return KindIncoming
	case strings.Contains(line, MarkerOutgoing):
		return KindOutgoing
	default:
		return KindPassthrough
	}
}

// Record is one formatted output line.
type Record struct {
	Kind  Kind
	Level string // Log level of the source line
	Text  string // Rendered line without a trailing newline
}

// Formatter renders lines that passed the filter.
type Formatter struct {
	cfg *config.Config
}

// NewFormatter returns a Formatter that falls back to the addresses in cfg
// when a line does not name a device.
func NewFormatter(cfg *config.Config) *Formatter {
	return &Formatter{cfg: cfg}
}

// Format renders line according to kind.
func (f *Formatter) Format(kind Kind, line string, p Prefix) Record {
	var text string
	switch kind {
	case KindIncoming:
		text = f.FormatIncoming(line, p.Timestamp)
	case KindOutgoing:
		text = f.FormatOutgoing(line, p.Timestamp)
	default:
		text = f.FormatPassthrough(p)
	}
	return Record{Kind: kind, Level: p.Level, Text: text}
}

// FormatIncoming renders an AF.IncomingMsg.Callback line.
func (f *Formatter) FormatIncoming(line, timestamp string) string {
	cluster := zigbee.ClusterIDField.Extract(line, zigbee.NoCluster)
	srcEP := zigbee.SrcEndpointField.Extract(line, 0)
	lqi := zigbee.LQIField.Extract(line, -1)

	device := zigbee.SrcAddrField.Extract(line)
	if device == "" {
		device = f.cfg.DeviceLabel("device")
	}

	head := fmt.Sprintf("[%s] %s EP=%d %s LQI=%d", timestamp, device, srcEP, zigbee.ClusterName(cluster), lqi)

	data := zigbee.ExtractDataBytes(line)
	if len(data) < MinZCLHeaderBytes {
		return head + " | (no ZCL bytes)"
	}

	return fmt.Sprintf("%s | AF.IncomingMsg | FC=0x%02X TSN=%d CMD=0x%02X | DATA: %s",
		head, data[0], data[1], data[2], zigbee.HexBytes(data))
}

// FormatOutgoing renders an AF.DataRequestExt.Req line.
func (f *Formatter) FormatOutgoing(line, timestamp string) string {
	address := zigbee.AddressField.Extract(line)
	if address == "" {
		address = f.cfg.DeviceLabel("????")
	}

	dstEP := zigbee.DstEndpointField.Extract(line, 0)
	cluster := zigbee.ClusterIDField.Extract(line, zigbee.NoCluster)
	tsn := zigbee.TSNField.Extract(line, 0)

	data := zigbee.ExtractDataBytes(line)
	shown := data
	if len(shown) > MaxTxDataBytes {
		shown = shown[:MaxTxDataBytes]
	}
	dataHex := zigbee.HexBytes(shown)
	if len(data) > MaxTxDataBytes {
		dataHex += "..."
	}

	return fmt.Sprintf("[%s] TX -> %s EP=%d %s | AF.DataRequestExt | TSN=%d | DATA: %s",
		timestamp, address, dstEP, zigbee.ClusterName(cluster), tsn, dataHex)
}

// FormatPassthrough renders any other line from a matching module.
func (f *Formatter) FormatPassthrough(p Prefix) string {
	return fmt.Sprintf("[%s] %s %s | %s", p.Timestamp, p.Level, p.Logger, truncateRunes(p.Message, MaxMessageRunes))
}

// truncateRunes cuts s to limit runes and appends "..." when anything was cut.
func truncateRunes(s string, limit int) string {
	if utf8.RuneCountInString(s) <= limit {
		return s
	}
	n := 0
	for i := range s {
		if n == limit {
			return s[:i] + "..."
		}
		n++
	}
	return s
}
