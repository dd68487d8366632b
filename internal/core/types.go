package core

import "fmt"

// Word is a value in the 15-bit numeric domain of the recurrence.
// Valid values occupy [0, MaxWord]; arithmetic that can exceed MaxWord must
// go through AddMod / MulMod so the wraparound is explicit rather than an
// artifact of integer width.
type Word uint16

const (
	// Modulus bounds the numeric domain. The machine the recurrence comes
	// from stores every number in 15 bits, so sums and products reduce
	// modulo 32768; the wraparound is part of the arithmetic, not overflow.
	Modulus = 32768

	// MaxWord is the largest representable value.
	MaxWord Word = Modulus - 1

	// MaxM bounds the evaluator's first argument. The recurrence is only
	// ever entered with m <= 4, and the memo table stride depends on it.
	MaxM Word = 4
)

// AddMod returns (a + b) mod Modulus.
func AddMod(a, b Word) Word {
	return Word((uint32(a) + uint32(b)) % Modulus)
}

// MulMod returns (a * b) mod Modulus.
func MulMod(a, b Word) Word {
	return Word((uint32(a) * uint32(b)) % Modulus)
}

// NoSolutionError indicates that every candidate in the configured range was
// evaluated and none produced the target value. It is a valid domain outcome,
// not a fault.
type NoSolutionError struct {
	Config SearchConfig
}

func (e NoSolutionError) Error() string {
	return fmt.Sprintf("no solution: A(%d, %d, p) != %d for all p in [%d, %d]",
		e.Config.M, e.Config.N, e.Config.Target, e.Config.PStart, e.Config.PEnd)
}

// ConfigError indicates an invalid SearchConfig.
type ConfigError struct {
	Msg string
}

func (e ConfigError) Error() string {
	return fmt.Sprintf("invalid search config: %s", e.Msg)
}
