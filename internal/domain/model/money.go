package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Money is an amount in minor currency units (cents).
type Money int64

// MaxAmount is the largest single price or fee accepted.
const MaxAmount Money = 100_000_000_00

// Cents builds Money from a whole number of cents.
func Cents(c int64) Money { return Money(c) }

// maxStored is the largest amount a decoded document may carry.
const maxStored = Money(math.MaxInt64)

// ParseMoney converts a decimal string such as "13.99" into Money, rounding
// half-up at the cent. Exponent notation is accepted through float parsing.
// Amounts above MaxAmount are rejected.
func ParseMoney(s string) (Money, error) {
	return parseDecimal(s, MaxAmount)
}

func parseDecimal(s string, limit Money) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("parse money: empty value")
	}
	if strings.ContainsAny(s, "eE") {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, fmt.Errorf("parse money %q: %w", s, err)
		}
		if math.IsNaN(f) || math.Abs(f) > limit.Float() || math.Abs(f)*100 >= math.MaxInt64 {
			return 0, fmt.Errorf("parse money %q: out of range", s)
		}
		return MoneyFromFloat(f), nil
	}

	neg := false
	switch s[0] {
	case '-':
		neg = true
		s = s[1:]
	case '+':
		s = s[1:]
	}

	whole, frac, _ := strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return 0, fmt.Errorf("parse money %q: no digits", s)
	}
	if whole == "" {
		whole = "0"
	}
	if !digitsOnly(whole) || !digitsOnly(frac) {
		return 0, fmt.Errorf("parse money %q: not a decimal number", s)
	}

	units, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse money %q: %w", s, err)
	}

	frac += "000"
	cents := int64(frac[0]-'0')*10 + int64(frac[1]-'0')
	if frac[2] >= '5' {
		cents++
	}

	maxUnits, maxCents := int64(limit)/100, int64(limit)%100
	if units > maxUnits || (units == maxUnits && cents > maxCents) {
		return 0, fmt.Errorf("parse money %q: out of range", s)
	}
	total := units*100 + cents
	if neg {
		total = -total
	}
	return Money(total), nil
}

// MoneyFromFloat rounds a float amount half-up at the cent. Prefer ParseMoney
// for decimal text since binary floats cannot represent most cent values.
func MoneyFromFloat(f float64) Money {
	if f < 0 {
		return -MoneyFromFloat(-f)
	}
	return Money(math.Floor(f*100 + 0.5 + 1e-9))
}

// Times multiplies a unit price by a quantity.
func (m Money) Times(qty int) Money { return m * Money(qty) }

// Float returns the amount in major units for display purposes.
func (m Money) Float() float64 { return float64(m) / 100 }

func (m Money) String() string {
	sign := ""
	v := int64(m)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

// MarshalJSON renders Money as a JSON number with two fraction digits.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalJSON accepts both JSON numbers and quoted decimal strings.
func (m *Money) UnmarshalJSON(data []byte) error {
	raw := strings.Trim(string(data), `"`)
	v, err := parseDecimal(raw, maxStored)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

// UnmarshalYAML reads the scalar text verbatim so decimal prices never pass through a float.
func (m *Money) UnmarshalYAML(unmarshal func(any) error) error {
	var raw string
	if err := unmarshal(&raw); err != nil {
		return err
	}
	v, err := ParseMoney(raw)
	if err != nil {
		return err
	}
	*m = v
	return nil
}

func digitsOnly(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
