package graph

import (
	"fmt"
	"math"
	"strconv"
)

// SecClass is the security classification of a system, derived from its
// rounded security value.
type SecClass int

const (
	NullSec SecClass = iota
	LowSec
	HighSec
)

func (c SecClass) String() string {
	switch c {
	case HighSec:
		return "hisec"
	case LowSec:
		return "lowsec"
	default:
		return "nullsec"
	}
}

// MarshalText renders the class for JSON output.
func (c SecClass) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText parses the class back from its text form.
func (c *SecClass) UnmarshalText(text []byte) error {
	switch string(text) {
	case "hisec":
		*c = HighSec
	case "lowsec":
		*c = LowSec
	case "nullsec":
		*c = NullSec
	default:
		return fmt.Errorf("unknown sec class %q", text)
	}
	return nil
}

// RoundSec converts a raw true security value to the displayed one. The
// in-game client renders the raw value as text, keeps the first five
// characters (sign included), and rounds that to one decimal. That is not
// the same as rounding the raw value directly. Displays downstream must
// match the client, so the truncation step is load-bearing.
func RoundSec(raw float64) float64 {
	s := strconv.FormatFloat(raw, 'f', 5, 64)
	if len(s) > 5 {
		s = s[:5]
	}
	truncated, _ := strconv.ParseFloat(s, 64)
	return math.Round(truncated*10) / 10
}

// ClassifySec maps a rounded security value to its class. The sign bit
// decides nullsec so that -0.0 (e.g. a raw -0.04 after rounding) still
// counts as nullsec, matching the client.
func ClassifySec(rounded float64) SecClass {
	switch {
	case math.Signbit(rounded):
		return NullSec
	case rounded >= 0.5:
		return HighSec
	default:
		return LowSec
	}
}

// RoundedSec returns the displayed security for a known system.
func (u *Universe) RoundedSec(name string) (float64, error) {
	raw, ok := u.TrueSec[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrUnknownSystem, name)
	}
	return RoundSec(raw), nil
}

// SecClassOf returns the security class for a known system.
func (u *Universe) SecClassOf(name string) (SecClass, error) {
	rounded, err := u.RoundedSec(name)
	if err != nil {
		return NullSec, err
	}
	return ClassifySec(rounded), nil
}

// SecTally counts hops per security class along a route.
type SecTally struct {
	HighSec int `json:"hisec"`
	LowSec  int `json:"lowsec"`
	NullSec int `json:"nullsec"`
}

// Add accumulates another tally into this one.
func (t *SecTally) Add(other SecTally) {
	t.HighSec += other.HighSec
	t.LowSec += other.LowSec
	t.NullSec += other.NullSec
}

// TallySecurity classifies every system on a path after the first. The
// traveler starts at the source, so it is not a hop.
func (u *Universe) TallySecurity(path Path) SecTally {
	var tally SecTally
	if len(path) < 2 {
		return tally
	}
	for _, name := range path[1:] {
		class, err := u.SecClassOf(name)
		if err != nil {
			continue
		}
		switch class {
		case HighSec:
			tally.HighSec++
		case LowSec:
			tally.LowSec++
		case NullSec:
			tally.NullSec++
		}
	}
	return tally
}
