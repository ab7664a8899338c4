// Package audio implements the canonical RIFF/WAVE container for mono
// 16-bit PCM audio. It serializes the fixed 44-byte header plus raw
// little-endian samples, and parses headers back for validation and
// metadata inspection.
package audio
