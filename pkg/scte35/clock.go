package scte35

import "github.com/Comcast/gots/v2"

// UclockFreq is the host system clock rate, 27MHz, as used throughout the
// surrounding multiplexer pipeline for cr_sys and event timestamps.
const UclockFreq uint64 = 27_000_000

// ClockScale converts a 27MHz tick count to the 90kHz clock MPEG PTS/DTS
// values are expressed in: 27_000_000 / 90_000.
const ClockScale uint64 = 300

// ptsWrapMod is 2^33, the modulus of the 33-bit PTS field.
const ptsWrapMod uint64 = 1 << 33

// toPTS converts a 27MHz host-clock tick count to a 33-bit, 90kHz MPEG PTS
// value, wrapping modulo 2^33. Conversion truncates (integer-divides)
// before wrapping, per spec.
func toPTS(ticks uint64) gots.PTS {
	return gots.PTS((ticks / ClockScale) % ptsWrapMod)
}
