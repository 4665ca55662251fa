// Package ui provides terminal styling for zha-logfmt output.
//
// Records are plain text by default. When stdout is a terminal (or
// --color=always is given) RecordRenderer colours them with lipgloss:
//
//   - Incoming frames: green
//   - Outgoing frames: purple, bold
//   - Passthrough lines: red for ERROR/CRITICAL, orange for WARNING
//   - Timestamps: gray
//
// Colour never changes the text of a record, only the escape sequences
// around it, so piping the output into grep or a file with --color=never
// (or the default auto mode) yields exactly the formatted records.
package ui
