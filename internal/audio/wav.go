package audio

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
)

// Container format constants. Generated files are always integer PCM,
// mono, 16-bit; these values feed the header fields below and are part of
// the byte-exact container contract.
const (
	numChannels    = 1
	bitsPerSample  = 16
	bytesPerSample = bitsPerSample / 8

	// HeaderSize is the fixed size of the canonical single-data-chunk
	// RIFF/WAVE header in bytes.
	HeaderSize = 44

	// riffOverhead is the chunk size contribution of everything except the
	// sample data: "WAVE" tag (4) + fmt chunk (8+16) + data chunk header (8).
	riffOverhead = 36

	pcmFormat = 1
)

// Header is the canonical 44-byte RIFF/WAVE header. Field order and widths
// match the on-disk layout exactly; it is serialized with encoding/binary
// in little-endian order with no padding.
type Header struct {
	ChunkID       [4]byte // "RIFF"
	ChunkSize     uint32  // 4 + (8 + Subchunk1Size) + (8 + Subchunk2Size)
	Format        [4]byte // "WAVE"
	Subchunk1ID   [4]byte // "fmt "
	Subchunk1Size uint32  // 16 for PCM
	AudioFormat   uint16  // 1 for integer PCM
	NumChannels   uint16
	SampleRate    uint32
	ByteRate      uint32 // SampleRate * NumChannels * BitsPerSample / 8
	BlockAlign    uint16 // NumChannels * BitsPerSample / 8
	BitsPerSample uint16
	Subchunk2ID   [4]byte // "data"
	Subchunk2Size uint32  // sample data size in bytes
}

// NewHeader builds the header for totalSamples mono PCM-16 samples at the
// given sample rate. ChunkSize always equals 36 + Subchunk2Size.
func NewHeader(totalSamples int, sampleRate int) Header {
	dataSize := uint32(totalSamples * numChannels * bytesPerSample)
	return Header{
		ChunkID:       [4]byte{'R', 'I', 'F', 'F'},
		ChunkSize:     riffOverhead + dataSize,
		Format:        [4]byte{'W', 'A', 'V', 'E'},
		Subchunk1ID:   [4]byte{'f', 'm', 't', ' '},
		Subchunk1Size: 16,
		AudioFormat:   pcmFormat,
		NumChannels:   numChannels,
		SampleRate:    uint32(sampleRate),
		ByteRate:      uint32(sampleRate) * numChannels * bytesPerSample,
		BlockAlign:    numChannels * bytesPerSample,
		BitsPerSample: bitsPerSample,
		Subchunk2ID:   [4]byte{'d', 'a', 't', 'a'},
		Subchunk2Size: dataSize,
	}
}

// Write serializes the 44-byte header followed by the raw little-endian
// PCM-16 samples to w, back-to-back with no padding.
func Write(w io.Writer, samples []int16, sampleRate int) error {
	if len(samples) == 0 {
		return fmt.Errorf("cannot encode empty audio samples")
	}

	if sampleRate <= 0 {
		return fmt.Errorf("sample rate must be positive, got %d", sampleRate)
	}

	header := NewHeader(len(samples), sampleRate)

	if err := binary.Write(w, binary.LittleEndian, header); err != nil {
		return fmt.Errorf("failed to write WAV header: %w", err)
	}

	if err := binary.Write(w, binary.LittleEndian, samples); err != nil {
		return fmt.Errorf("failed to write audio data: %w", err)
	}

	return nil
}

// Encode returns the complete WAV file contents for the samples.
func Encode(samples []int16, sampleRate int) ([]byte, error) {
	buf := bytes.NewBuffer(make([]byte, 0, HeaderSize+len(samples)*bytesPerSample))
	if err := Write(buf, samples, sampleRate); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Decode parses WAV data back to PCM-16 samples and the sample rate.
// Only the canonical mono 16-bit PCM layout produced by Encode is accepted.
func Decode(data []byte) ([]int16, int, error) {
	header, err := parseHeader(data)
	if err != nil {
		return nil, 0, err
	}

	numSamples := int(header.Subchunk2Size) / bytesPerSample
	if numSamples <= 0 {
		return nil, 0, fmt.Errorf("no audio data found")
	}

	samples := make([]int16, numSamples)
	r := bytes.NewReader(data[HeaderSize:])
	if err := binary.Read(r, binary.LittleEndian, samples); err != nil {
		return nil, 0, fmt.Errorf("failed to read audio samples: %w", err)
	}

	return samples, int(header.SampleRate), nil
}

// Validate checks the WAV header structure without decoding sample data.
func Validate(data []byte) error {
	_, err := parseHeader(data)
	return err
}

// Info describes a WAV file's format and derived properties.
type Info struct {
	SampleRate    uint32  `json:"sample_rate"`
	Channels      uint16  `json:"channels"`
	BitsPerSample uint16  `json:"bits_per_sample"`
	Duration      float64 `json:"duration_seconds"`
	DataSize      uint32  `json:"data_size_bytes"`
	NumSamples    uint32  `json:"num_samples"`
}

// GetInfo extracts format metadata from WAV data.
func GetInfo(data []byte) (*Info, error) {
	header, err := parseHeader(data)
	if err != nil {
		return nil, err
	}

	numSamples := header.Subchunk2Size / uint32(header.BitsPerSample/8)
	return &Info{
		SampleRate:    header.SampleRate,
		Channels:      header.NumChannels,
		BitsPerSample: header.BitsPerSample,
		Duration:      float64(numSamples) / float64(header.SampleRate),
		DataSize:      header.Subchunk2Size,
		NumSamples:    numSamples,
	}, nil
}

// Duration returns the audio duration in seconds described by the header.
func Duration(data []byte) (float64, error) {
	info, err := GetInfo(data)
	if err != nil {
		return 0, err
	}
	return info.Duration, nil
}

// parseHeader reads and validates the fixed 44-byte header.
func parseHeader(data []byte) (Header, error) {
	var header Header

	if len(data) < HeaderSize {
		return header, fmt.Errorf("WAV data too short: need at least %d bytes, got %d", HeaderSize, len(data))
	}

	r := bytes.NewReader(data)
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return header, fmt.Errorf("failed to read WAV header: %w", err)
	}

	if string(header.ChunkID[:]) != "RIFF" {
		return header, fmt.Errorf("invalid WAV file: missing RIFF header")
	}

	if string(header.Format[:]) != "WAVE" {
		return header, fmt.Errorf("invalid WAV file: missing WAVE format")
	}

	if string(header.Subchunk1ID[:]) != "fmt " {
		return header, fmt.Errorf("invalid WAV file: missing fmt chunk")
	}

	if string(header.Subchunk2ID[:]) != "data" {
		return header, fmt.Errorf("invalid WAV file: missing data chunk")
	}

	if header.AudioFormat != pcmFormat {
		return header, fmt.Errorf("unsupported audio format: %d (only PCM is supported)", header.AudioFormat)
	}

	if header.BitsPerSample != bitsPerSample {
		return header, fmt.Errorf("unsupported bit depth: %d (only 16-bit is supported)", header.BitsPerSample)
	}

	if header.NumChannels != numChannels {
		return header, fmt.Errorf("unsupported channel count: %d (only mono is supported)", header.NumChannels)
	}

	if header.SampleRate == 0 {
		return header, fmt.Errorf("invalid sample rate: 0")
	}

	return header, nil
}
