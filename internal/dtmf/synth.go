package dtmf

import "math"

// SamplesPerTone returns the number of samples a single tone occupies at
// the given duration and sample rate.
func SamplesPerTone(duration float64, sampleRate int) int {
	return int(float64(sampleRate) * duration)
}

// Synthesize generates one tone as PCM-16 samples by summing the two
// sinusoids of the frequency pair:
//
//	sample[n] = round(amplitude * (sin(2πn·fRow/rate) + sin(2πn·fCol/rate)))
//
// The buffer length is exactly floor(sampleRate * duration). A silent pair
// produces a full-duration block of zero samples. The sum of two sinusoids
// can momentarily exceed the int16 range at full amplitude; no saturation
// is applied (see the Amplitude constant).
func Synthesize(pair FrequencyPair, duration float64, sampleRate int, amplitude int16) []int16 {
	numSamples := SamplesPerTone(duration, sampleRate)
	samples := make([]int16, numSamples)
	if pair.Silent() {
		return samples
	}

	amp := float64(amplitude)
	rate := float64(sampleRate)

	for n := 0; n < numSamples; n++ {
		t := float64(n)
		samples[n] = int16(math.Round(amp * (math.Sin(2*math.Pi*t*pair.Row/rate) +
			math.Sin(2*math.Pi*t*pair.Column/rate))))
	}

	return samples
}
