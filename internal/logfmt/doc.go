// Package logfmt turns Home Assistant Zigbee log lines into compact one-line
// summaries.
//
// Each input line goes through the same steps, one line at a time:
//
//  1. Filter: the line must name a configured module and, when a target
//     device is configured, reference that device.
//  2. ParsePrefix: split "date time LEVEL (thread) [logger] message".
//  3. Classify: pick the incoming, outgoing or passthrough format.
//  4. Format: render the Record.
//
// Lines that fail a filter or have no usable prefix are dropped silently.
// Missing fields and malformed payload escapes never drop a line; they are
// rendered with placeholders instead.
//
// # Output Formats
//
// Incoming frame (AF.IncomingMsg.Callback):
//
//	[2024-01-15 10:30:00.123] 0x1234 EP=1 0x0006 (OnOff) LQI=200 | AF.IncomingMsg | FC=0x11 TSN=1 CMD=0x01 | DATA: 11 01 01
//
// Outgoing frame (AF.DataRequestExt.Req):
//
//	[2024-01-15 10:30:01.456] TX -> 0x1234 EP=1 0x0006 (OnOff) | AF.DataRequestExt | TSN=12 | DATA: 01 0C 01
//
// Anything else from a matching module:
//
//	[2024-01-15 10:30:02.789] DEBUG zigpy.zcl | [0x1234:1:0x0006] Received command 0x0B
//
// # Streaming
//
// Processor.Run reads with a bufio.Reader, writes each record and flushes
// before reading the next line. A closed output pipe ends the run with
// ErrSinkClosed, which callers treat as a normal shutdown.
package logfmt
