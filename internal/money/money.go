// Package money implements the fixed-point, 4-fractional-digit decimal type
// that every balance in the ledger is built on. The representation is a
// single non-negative uint64 equal to floor(value * 10000); there is no
// floating point anywhere in this package, by design — float64 arithmetic
// would silently violate the parse/format round-trip invariant.
package money

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/pkg/errors"
)

// scale is the number of representable fractional digits.
const scale = 10000

// Max is the largest representable Money value: floor(math.MaxUint64 / scale)
// whole units plus the remainder math.MaxUint64 % scale (.1615).
var Max = Money{scaled: math.MaxUint64}

// MaxDisplayWidth is the length of Max.String(), a compile-time constant an
// implementation must expose per the spec. Max.String() == "1844674407370955.1615".
const MaxDisplayWidth = len("1844674407370955.1615")

// Zero is the additive identity.
var Zero = Money{}

// Money is an integer-backed fixed-point decimal with exactly 4 fractional
// digits. The zero value is a valid zero amount.
type Money struct {
	scaled uint64
}

// FromScaled builds a Money directly from its scaled integer representation.
// Exposed for callers (such as tests) that already hold a validated scaled
// amount and want to skip text parsing.
func FromScaled(scaled uint64) Money {
	return Money{scaled: scaled}
}

// Scaled returns the underlying floor(value*10000) integer.
func (m Money) Scaled() uint64 {
	return m.scaled
}

// Parse parses a canonical "W.D" decimal string into a Money value. W must be
// a non-negative integer; D must be 1-4 decimal digits, left-justified into
// the 4 fractional slots (pad("1") == 1000, pad("01") == 100, pad("0001") == 1).
func Parse(s string) (Money, error) {
	dot := strings.IndexByte(s, '.')
	if dot < 0 {
		return Money{}, errors.Wrapf(ErrInvalidFormat, "%q", s)
	}

	whole, frac := s[:dot], s[dot+1:]

	if whole == "" || !isAllDigits(whole) {
		return Money{}, errors.Wrapf(ErrWholePartParse, "%q", s)
	}

	if frac == "" || !isAllDigits(frac) {
		return Money{}, errors.Wrapf(ErrDecimalPartParse, "%q", s)
	}

	if len(frac) > 4 {
		return Money{}, errors.Wrapf(ErrDecimalOverflow, "%q", s)
	}

	padded := frac + strings.Repeat("0", 4-len(frac))

	fracInt := new(big.Int)
	if _, ok := fracInt.SetString(padded, 10); !ok {
		return Money{}, errors.Wrapf(ErrDecimalPartParse, "%q", s)
	}

	wholeInt := new(big.Int)
	if _, ok := wholeInt.SetString(whole, 10); !ok {
		return Money{}, errors.Wrapf(ErrWholePartParse, "%q", s)
	}

	total := new(big.Int).Mul(wholeInt, big.NewInt(scale))
	total.Add(total, fracInt)

	maxUint64 := new(big.Int).SetUint64(math.MaxUint64)
	if total.Cmp(maxUint64) > 0 {
		return Money{}, errors.Wrapf(ErrOverflow, "%q", s)
	}

	return Money{scaled: total.Uint64()}, nil
}

// String renders "W.F": the whole part, a dot, and the fractional part with
// trailing zeros trimmed but at least one fractional digit retained. Leading
// zeros that matter (e.g. 0.0001) are preserved.
func (m Money) String() string {
	whole := m.scaled / scale
	frac := m.scaled % scale

	fracStr := fmt.Sprintf("%04d", frac)
	fracStr = strings.TrimRight(fracStr, "0")
	if fracStr == "" {
		fracStr = "0"
	}

	return fmt.Sprintf("%d.%s", whole, fracStr)
}

// CheckedAdd returns m+other and true, or the zero value and false if the sum
// would overflow the representable range. Arithmetic is exact: it operates
// on the scaled integer, so there is no precision loss to reason about.
func (m Money) CheckedAdd(other Money) (Money, bool) {
	sum := m.scaled + other.scaled
	if sum < m.scaled {
		return Money{}, false
	}

	return Money{scaled: sum}, true
}

// CheckedSub returns m-other and true, or the zero value and false if other
// exceeds m (Money is unsigned; there is no representable negative amount).
func (m Money) CheckedSub(other Money) (Money, bool) {
	if other.scaled > m.scaled {
		return Money{}, false
	}

	return Money{scaled: m.scaled - other.scaled}, true
}

// Cmp returns -1, 0 or 1 as m is less than, equal to, or greater than other.
func (m Money) Cmp(other Money) int {
	switch {
	case m.scaled < other.scaled:
		return -1
	case m.scaled > other.scaled:
		return 1
	default:
		return 0
	}
}

// LessThan reports whether m < other.
func (m Money) LessThan(other Money) bool {
	return m.scaled < other.scaled
}

func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}

	return true
}
