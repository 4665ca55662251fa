package logfmt

import (
	"strings"

	"github.com/muurk/zha-logfmt/internal/config"
)

// DropReason explains why a line produced no record.
type DropReason int

const (
	// Kept means the line was not dropped
	Kept DropReason = iota
	// DropModule means no configured module name appears in the line
	DropModule
	// DropDevice means the line does not reference the target device
	DropDevice
	// DropPrefix means the line has no "date time LEVEL thread rest" prefix
	DropPrefix
)

// String returns the reason as used in log fields.
func (r DropReason) String() string {
	switch r {
	case Kept:
		return "kept"
	case DropModule:
		return "module"
	case DropDevice:
		return "device"
	case DropPrefix:
		return "prefix"
	default:
		return "unknown"
	}
}

// Filter decides which lines are relevant to the configured modules and device.
type Filter struct {
	modules    []string
	nwkNeedles []string
	ieee       string
}

// NewFilter builds a Filter from cfg. The short-address needles are computed
// once here rather than per line.
func NewFilter(cfg *config.Config) *Filter {
	f := &Filter{
		modules: cfg.Modules,
		ieee:    cfg.DeviceIEEE,
	}
	if nwk := cfg.DeviceNWK; nwk != "" {
		f.nwkNeedles = []string{
			"SrcAddr=" + nwk,
			"MacSrcAddr=" + nwk,
			"[" + nwk + ":",
			"address=" + nwk,
		}
	}
	return f
}

// MatchesModule reports whether line contains any configured module name.
func (f *Filter) MatchesModule(line string) bool {
	for _, m := range f.modules {
		if strings.Contains(line, m) {
			return true
		}
	}
	return false
}

// MatchesDevice reports whether line references the target device. It always
// returns true when no device is configured.
func (f *Filter) MatchesDevice(line string) bool {
	if len(f.nwkNeedles) == 0 && f.ieee == "" {
		return true
	}

	for _, needle := range f.nwkNeedles {
		if strings.Contains(line, needle) {
			return true
		}
	}

	return f.ieee != "" && strings.Contains(line, f.ieee)
}

// Match applies the module filter then the device filter.
func (f *Filter) Match(line string) DropReason {
	if !f.MatchesModule(line) {
		return DropModule
	}
	if !f.MatchesDevice(line) {
		return DropDevice
	}
	return Kept
}
