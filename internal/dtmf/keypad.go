package dtmf

// FrequencyPair holds the two constituent frequencies of a DTMF tone in Hz.
// Both are zero for the silence symbol '-'.
type FrequencyPair struct {
	Row    float64 // low-group frequency: 697, 770, 852 or 941 Hz
	Column float64 // high-group frequency: 1209, 1336 or 1477 Hz
}

// Silent reports whether the pair represents silence.
func (p FrequencyPair) Silent() bool {
	return p.Row == 0 && p.Column == 0
}

// keypad maps each dialable symbol to its DTMF frequency pair per the
// standard 4x3 keypad layout. '-' is a formatting separator and maps to
// silence.
var keypad = map[byte]FrequencyPair{
	'1': {697, 1209}, '2': {697, 1336}, '3': {697, 1477},
	'4': {770, 1209}, '5': {770, 1336}, '6': {770, 1477},
	'7': {852, 1209}, '8': {852, 1336}, '9': {852, 1477},
	'*': {941, 1209}, '0': {941, 1336}, '#': {941, 1477},
	'-': {0, 0},
}

// Frequencies returns the DTMF frequency pair for a keypad symbol.
// ok is false for symbols outside the dialable alphabet {0-9, #, *, -}.
func Frequencies(symbol byte) (pair FrequencyPair, ok bool) {
	pair, ok = keypad[symbol]
	return pair, ok
}

// ValidSymbol reports whether the symbol is part of the dialable alphabet.
func ValidSymbol(symbol byte) bool {
	_, ok := keypad[symbol]
	return ok
}
