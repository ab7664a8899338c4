// Package dtmf implements DTMF tone generation for phone number strings.
// It maps keypad symbols to their standard row/column frequency pairs,
// synthesizes dual-sinusoid PCM-16 tone buffers, and writes the result
// as a canonical mono 44100 Hz WAV file.
package dtmf
