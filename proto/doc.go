// Package proto implements the wire layer of the MPD protocol: line
// decoding into typed replies, streaming of key/value response pairs,
// sentinel-based grouping of flat pair streams into records, and
// serialization of typed command arguments.
//
// The protocol is line-oriented and strictly half-duplex. Every
// response is a run of "key: value" lines ended by exactly one
// terminal marker: the literal line "OK" on success, or an "ACK ..."
// line carrying a structured server error. The Pairs stream models
// that termination as the end of iteration, with the ACK (if any)
// surfaced through Err, so higher layers consume responses with
// ordinary loops.
package proto
