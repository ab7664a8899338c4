package dtmf

import (
	"math"
	"testing"
)

func TestSynthesizeLength(t *testing.T) {
	tests := []struct {
		duration   float64
		sampleRate int
		expected   int
	}{
		{0.1, 44100, 4410},
		{0.2, 44100, 8820},
		{0.5, 44100, 22050},
		{1.0, 44100, 44100},
		{0.25, 8000, 2000},
	}

	pair, _ := Frequencies('5')
	for _, tt := range tests {
		samples := Synthesize(pair, tt.duration, tt.sampleRate, Amplitude)
		if len(samples) != tt.expected {
			t.Errorf("Synthesize(%.3fs @ %dHz): expected %d samples, got %d",
				tt.duration, tt.sampleRate, tt.expected, len(samples))
		}
	}
}

func TestSynthesizeFirstSampleIsZero(t *testing.T) {
	// sin(0) + sin(0) = 0 for every frequency pair.
	for _, symbol := range []byte("0123456789*#-") {
		pair, _ := Frequencies(symbol)
		samples := Synthesize(pair, 0.1, SampleRate, Amplitude)
		if samples[0] != 0 {
			t.Errorf("Symbol %q: sample 0 = %d, expected 0", symbol, samples[0])
		}
	}
}

func TestSynthesizeSilence(t *testing.T) {
	pair, _ := Frequencies('-')
	samples := Synthesize(pair, 0.5, SampleRate, Amplitude)

	if len(samples) != 22050 {
		t.Fatalf("Expected 22050 samples of silence, got %d", len(samples))
	}

	for i, s := range samples {
		if s != 0 {
			t.Fatalf("Sample %d = %d, expected silence", i, s)
		}
	}
}

func TestSynthesizeMatchesFormula(t *testing.T) {
	pair, _ := Frequencies('5') // (770, 1336)
	if pair.Row != 770 || pair.Column != 1336 {
		t.Fatalf("Frequencies('5') = %+v, expected (770, 1336)", pair)
	}

	samples := Synthesize(pair, 0.1, SampleRate, Amplitude)

	for _, n := range []int{0, 1, 17, 100, 4409} {
		expected := int16(math.Round(float64(Amplitude) * (math.Sin(2*math.Pi*float64(n)*770/SampleRate) +
			math.Sin(2*math.Pi*float64(n)*1336/SampleRate))))
		if samples[n] != expected {
			t.Errorf("Sample %d = %d, expected %d", n, samples[n], expected)
		}
	}
}

func TestSynthesizeNonSilentToneHasEnergy(t *testing.T) {
	pair, _ := Frequencies('8')
	samples := Synthesize(pair, 0.1, SampleRate, Amplitude)

	var peak int16
	for _, s := range samples {
		if s > peak {
			peak = s
		}
	}

	// The summed sinusoids should come close to the single-tone amplitude.
	if peak < Amplitude/2 {
		t.Errorf("Peak amplitude %d suspiciously low for a dual tone", peak)
	}
}
