// Package frame encodes and decodes the frames of the serial MP3 module.
//
// The module (GD3300D chip family) talks over a 9600 baud UART using
// fixed-size frames bounded by a start and an end marker.
//
// Command (host -> module), 8 bytes:
//
//	7E FF 06 CMD FB D1 D2 EF
//
// FB is the feedback flag, always set to request an acknowledge.
//
// Response (module -> host), 10 bytes:
//
//	7E FF 06 RSP 00 00 DAT CKH CKL EF
//
// The checksum bytes are carried but never verified. Only RSP and DAT
// carry meaning for the host.
package frame
