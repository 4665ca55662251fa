// Package zigbee decodes the Zigbee-specific pieces embedded in Home Assistant
// log lines.
//
// Zigbee radio libraries (zigpy, zigpy_znp, bellows, zigpy_deconz) log every
// application-layer frame they send or receive as a single free-text line. The
// interesting values are buried in "Label=value" fields and in a Python bytes
// literal holding the raw ZCL payload:
//
//	AF.IncomingMsg.Callback(... ClusterId=6, SrcAddr=0x1234, SrcEndpoint=1, LQI=200, Data=b'\x11\x01\x01')
//
// # Cluster Names
//
// ClusterName renders a 16-bit cluster identifier as "0xHHHH (Name)" for known
// clusters, "0xHHHH" for unknown ones, and "0x????" for the NoCluster sentinel.
//
// # Payload Bytes
//
// ExtractDataBytes finds the Data=b'...' literal in a line and decodes its
// \xHH escape groups. Decoding is best effort: characters that are not part of
// a complete escape group are skipped, a truncated trailing escape is dropped,
// and a line without a literal yields an empty slice.
//
// # Fields
//
// IntField and HexField pull labelled decimal and hex values out of a
// line. Missing fields resolve to a caller-supplied default instead of an
// error, because log lines are routinely truncated or reformatted by the
// logging pipeline.
package zigbee
