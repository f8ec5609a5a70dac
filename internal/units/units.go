// Package units converts between human decimal strings and fixed-point
// integers in a unit's smallest denomination. All arithmetic is done on
// strings and big integers, never on floats.
package units

import (
	"errors"
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

var ErrInvalidAmount error = errors.New("invalid amount")

const (
	EtherDecimals = 18 // wei per ether exponent
	GweiDecimals  = 9  // wei per gwei exponent

	// DisplayPrecision is the default number of fractional digits shown for balances.
	DisplayPrecision = 4

	maxDecimals = 77 // 10^77 < 2^256 < 10^78
)

// ParseAmount converts a decimal string such as "1.5" into its integer value
// scaled by 10^decimals. More fractional digits than decimals allows, signs,
// exponents or values wider than 256 bits are rejected with ErrInvalidAmount.
func ParseAmount(amount string, decimals int) (*big.Int, error) {
	if decimals < 0 || decimals > maxDecimals {
		return nil, fmt.Errorf("%w: unsupported decimals %d", ErrInvalidAmount, decimals)
	}

	s := strings.TrimSpace(amount)
	if s == "" {
		return nil, fmt.Errorf("%w: empty string", ErrInvalidAmount)
	}

	whole, frac, hasDot := strings.Cut(s, ".")
	if hasDot && strings.Contains(frac, ".") {
		return nil, fmt.Errorf("%w: %q has more than one decimal point", ErrInvalidAmount, amount)
	}
	if whole == "" && frac == "" {
		return nil, fmt.Errorf("%w: %q has no digits", ErrInvalidAmount, amount)
	}
	if !isDigits(whole) || !isDigits(frac) {
		return nil, fmt.Errorf("%w: %q is not a non-negative decimal", ErrInvalidAmount, amount)
	}
	if len(frac) > decimals {
		return nil, fmt.Errorf("%w: %q has more than %d fractional digits", ErrInvalidAmount, amount, decimals)
	}

	combined := whole + frac + strings.Repeat("0", decimals-len(frac))
	value, ok := new(big.Int).SetString(combined, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, amount)
	}

	if _, overflow := uint256.FromBig(value); overflow {
		return nil, fmt.Errorf("%w: %q overflows 256 bits", ErrInvalidAmount, amount)
	}

	return value, nil
}

// FormatAmount renders value scaled down by 10^decimals, truncating the
// fraction to precision digits. Trailing zeros are dropped, so the result of
// FormatAmount(ParseAmount(s, d), d, d) is the canonical form of s.
// Example: FormatAmount(24981836, 9, 4) = "0.0249"
func FormatAmount(value *big.Int, decimals, precision int) string {
	if value == nil {
		return "0"
	}
	if decimals < 0 {
		decimals = 0
	}
	if precision < 0 {
		precision = 0
	}

	sign := ""
	if value.Sign() < 0 {
		sign = "-"
	}
	digits := new(big.Int).Abs(value).String()

	// Pad with leading zeros so there is at least one whole digit
	if len(digits) <= decimals {
		digits = strings.Repeat("0", decimals-len(digits)+1) + digits
	}

	pos := len(digits) - decimals
	whole, frac := digits[:pos], digits[pos:]
	if len(frac) > precision {
		frac = frac[:precision]
	}
	frac = strings.TrimRight(frac, "0")

	if frac == "" {
		if whole == "0" {
			return "0"
		}
		return sign + whole
	}
	return sign + whole + "." + frac
}

// ParseGwei converts a gwei decimal string into wei.
func ParseGwei(gwei string) (*big.Int, error) {
	return ParseAmount(gwei, GweiDecimals)
}

// FormatGwei renders a wei amount in gwei at full precision.
func FormatGwei(wei *big.Int) string {
	return FormatAmount(wei, GweiDecimals, GweiDecimals)
}

// ParseEther converts an ether decimal string into wei.
func ParseEther(ether string) (*big.Int, error) {
	return ParseAmount(ether, EtherDecimals)
}

// ToUint256 converts value into a 256-bit unsigned integer, failing on
// negative or oversized input.
func ToUint256(value *big.Int) (*uint256.Int, error) {
	if value == nil {
		return new(uint256.Int), nil
	}
	if value.Sign() < 0 {
		return nil, fmt.Errorf("%w: negative value", ErrInvalidAmount)
	}
	v, overflow := uint256.FromBig(value)
	if overflow {
		return nil, fmt.Errorf("%w: value overflows 256 bits", ErrInvalidAmount)
	}
	return v, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
