package password

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
)

const (
	MinLength = 4
	MaxLength = 100
)

// ParseLength converts a dynamically typed length, typically a decoded JSON
// value, into an int. It rejects nil and anything that is not an integer.
// Range checks are left to Validate.
//
// Accepted: every Go integer type, and json.Number holding an integral
// literal. Floats, strings and bools are rejected even if they look integral.
func ParseLength(v any) (int, error) {
	switch n := v.(type) {
	case nil:
		return 0, ErrLengthNull
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int16:
		return int(n), nil
	case int32:
		return int(n), nil
	case int64:
		return clampInt64(n), nil
	case uint:
		return clampUint64(uint64(n)), nil
	case uint8:
		return int(n), nil
	case uint16:
		return int(n), nil
	case uint32:
		return clampUint64(uint64(n)), nil
	case uint64:
		return clampUint64(n), nil
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			// Integral literals beyond int64 come back saturated.
			if errors.Is(err, strconv.ErrRange) {
				return clampInt64(i), nil
			}
			return 0, ErrLengthNotInteger
		}
		return clampInt64(i), nil
	default:
		return 0, ErrLengthNotInteger
	}
}

// Validate returns ErrLengthTooShort or ErrLengthOutOfRange when length lies
// outside [MinLength, MaxLength].
func Validate(length int) error {
	if length < MinLength {
		return ErrLengthTooShort
	}
	if length > MaxLength {
		return ErrLengthOutOfRange
	}
	return nil
}

// Values beyond int's range are only ever compared against the bounds, so
// saturating keeps them on the correct side.
func clampInt64(n int64) int {
	if n > math.MaxInt {
		return math.MaxInt
	}
	if n < math.MinInt {
		return math.MinInt
	}
	return int(n)
}

func clampUint64(n uint64) int {
	if n > math.MaxInt {
		return math.MaxInt
	}
	return int(n)
}
