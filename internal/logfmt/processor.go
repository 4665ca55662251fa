package logfmt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/muurk/zha-logfmt/internal/config"
	"github.com/muurk/zha-logfmt/internal/logging"
)

// ErrSinkClosed is returned by Run when the output has been closed by the
// reader, e.g. "| head" exiting. It marks a normal shutdown.
var ErrSinkClosed = errors.New("output closed")

// State is the lifecycle state of a Processor.
type State int

const (
	StateRunning State = iota
	StateStopped
)

// String returns a human-readable state name
func (s State) String() string {
	switch s {
	case StateRunning:
		return "running"
	case StateStopped:
		return "stopped"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Renderer turns a Record into the text written to the output.
type Renderer interface {
	Render(Record) string
}

type plainRenderer struct{}

func (plainRenderer) Render(r Record) string { return r.Text }

// Stats counts what happened to the lines seen by a Processor.
type Stats struct {
	Read          int
	Emitted       int
	DroppedModule int
	DroppedDevice int
	DroppedPrefix int
}

// Processor runs the filter, parse and format pipeline over a stream.
// A Processor is not safe for concurrent use.
type Processor struct {
	filter    *Filter
	formatter *Formatter
	renderer  Renderer
	state     State
	stats     Stats
}

// NewProcessor creates a Processor for cfg that writes plain records.
func NewProcessor(cfg *config.Config) *Processor {
	return &Processor{
		filter:    NewFilter(cfg),
		formatter: NewFormatter(cfg),
		renderer:  plainRenderer{},
		state:     StateRunning,
	}
}

// SetRenderer replaces the plain renderer, e.g. with a terminal colouriser.
func (p *Processor) SetRenderer(r Renderer) {
	if r == nil {
		r = plainRenderer{}
	}
	p.renderer = r
}

// State returns the current lifecycle state.
func (p *Processor) State() State {
	return p.state
}

// Stats returns a snapshot of the line counters.
func (p *Processor) Stats() Stats {
	return p.stats
}

// ProcessLine runs one raw line through the pipeline. The trailing line
// terminator, if any, is removed first. It returns false when the line is
// dropped.
func (p *Processor) ProcessLine(raw string) (Record, bool) {
	rec, reason := p.process(raw)
	return rec, reason == Kept
}

func (p *Processor) process(raw string) (Record, DropReason) {
	line := strings.TrimSuffix(raw, "\n")
	line = strings.TrimSuffix(line, "\r")

	if reason := p.filter.Match(line); reason != Kept {
		return Record{}, reason
	}

	prefix, ok := ParsePrefix(line)
	if !ok {
		return Record{}, DropPrefix
	}

	kind := Classify(line)
	return p.formatter.Format(kind, line, prefix), Kept
}

// Run processes r line by line until EOF, writing each record to w and
// flushing before the next line is read.
//
// Run returns nil at end of input or when ctx is cancelled between lines, and
// an error wrapping ErrSinkClosed when w has been closed by its reader. After
// Run returns for either of those last two reasons the Processor is stopped
// and further calls return immediately.
func (p *Processor) Run(ctx context.Context, r io.Reader, w io.Writer) error {
	if p.state == StateStopped {
		return nil
	}

	reader := bufio.NewReader(r)
	out := bufio.NewWriter(w)

	for {
		if ctx.Err() != nil {
			p.state = StateStopped
			logging.Debug("Processor stopped", zap.Error(context.Cause(ctx)))
			return nil
		}

		raw, readErr := reader.ReadString('\n')
		if raw != "" {
			if err := p.handle(raw, out); err != nil {
				return err
			}
		}

		if readErr != nil {
			if errors.Is(readErr, io.EOF) {
				return nil
			}
			return fmt.Errorf("failed to read input: %w", readErr)
		}
	}
}

func (p *Processor) handle(raw string, out *bufio.Writer) error {
	p.stats.Read++

	rec, reason := p.process(raw)
	switch reason {
	case DropModule:
		p.stats.DroppedModule++
	case DropDevice:
		p.stats.DroppedDevice++
	case DropPrefix:
		p.stats.DroppedPrefix++
	}

	if reason != Kept {
		if logging.DebugEnabled() && reason != DropModule {
			logging.Debug("Line dropped",
				zap.Int("line", p.stats.Read),
				zap.Stringer("reason", reason),
			)
		}
		return nil
	}

	if _, err := out.WriteString(p.renderer.Render(rec) + "\n"); err != nil {
		return p.writeFailed(err)
	}
	if err := out.Flush(); err != nil {
		return p.writeFailed(err)
	}

	p.stats.Emitted++
	return nil
}

// writeFailed stops the processor without logging: stderr may share the
// terminal or pipe that just went away.
func (p *Processor) writeFailed(err error) error {
	p.state = StateStopped
	if isSinkClosed(err) {
		return fmt.Errorf("%w: %v", ErrSinkClosed, err)
	}
	return fmt.Errorf("failed to write output: %w", err)
}

// isSinkClosed reports whether err means the reading end of the output is gone.
func isSinkClosed(err error) bool {
	return errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, os.ErrClosed)
}
