// Package fixed provides the 16-bit fixed-point scalars used by the physics core.
//
// Both types keep 3 fraction bits. Addition, subtraction, negation and comparison
// are the native integer operators, so they wrap exactly like the underlying
// 16-bit integers. Mul and Div widen to 32 bits before narrowing back.
package fixed

import "strconv"

// Fixed-point layout shared by Number and NumberU.
const (
	FractionBits = 3
	FractionMask = 1<<FractionBits - 1
	scale        = 1 << FractionBits
)

// Number is a signed fixed-point value: 1 sign bit, 12 integer bits, 3 fraction bits.
type Number int16

// NumberU is an unsigned fixed-point value: 13 integer bits, 3 fraction bits.
type NumberU uint16

// Epsilon is the smallest positive increment representable by Number.
const Epsilon Number = 1

// EpsilonU is the smallest positive increment representable by NumberU.
const EpsilonU NumberU = 1

// MaxNumber and MinNumber bound the signed range.
const (
	MaxNumber Number = 1<<15 - 1
	MinNumber Number = -1 << 15
)

// MaxNumberU bounds the unsigned range.
const MaxNumberU NumberU = 1<<16 - 1

// FromInt converts an integer, wrapping outside the 13 integer bits.
func FromInt(i int) Number { return Number(int16(i << FractionBits)) }

// FromParts builds a value from an integer part and a raw fraction bit pattern.
// Only the low FractionBits of fraction are used. They are OR'd into the raw value,
// so FromParts(-2, 4) is -1.5.
func FromParts(integer int, fraction uint) Number {
	return Number(int16(integer<<FractionBits) | int16(fraction&FractionMask))
}

// FromFloat converts a float, truncating toward zero. Diagnostics and config only.
func FromFloat(f float64) Number { return Number(int16(f * scale)) }

// FromRaw wraps a raw internal value.
func FromRaw(raw int16) Number { return Number(raw) }

// Raw returns the internal representation.
func (n Number) Raw() int16 { return int16(n) }

// Int returns the integer part, rounding toward negative infinity.
func (n Number) Int() int { return int(int16(n) >> FractionBits) }

// Fraction returns the raw fraction bits.
func (n Number) Fraction() uint { return uint(uint16(n) & FractionMask) }

// Float64 converts to a float for display.
func (n Number) Float64() float64 { return float64(n) / scale }

// Mul multiplies with a 32-bit intermediate. The product is floored then wrapped.
func (n Number) Mul(m Number) Number {
	return Number(int16((int32(n) * int32(m)) >> FractionBits))
}

// Div divides with a 32-bit intermediate, truncating toward zero.
// Dividing by zero panics.
func (n Number) Div(m Number) Number {
	return Number(int16((int32(n) << FractionBits) / int32(m)))
}

// Abs returns the absolute value. Abs(MinNumber) wraps to MinNumber.
func (n Number) Abs() Number {
	if n < 0 {
		return -n
	}
	return n
}

// Square returns n*n.
func (n Number) Square() Number { return n.Mul(n) }

// ToUnsigned reinterprets the raw bits as NumberU.
func (n Number) ToUnsigned() NumberU { return NumberU(uint16(n)) }

func (n Number) String() string {
	return strconv.FormatFloat(n.Float64(), 'f', -1, 64)
}

// FromIntU converts a non-negative integer, wrapping outside 13 bits.
func FromIntU(i uint) NumberU { return NumberU(uint16(i << FractionBits)) }

// FromPartsU builds an unsigned value from integer and raw fraction bits.
func FromPartsU(integer uint, fraction uint) NumberU {
	return NumberU(uint16(integer<<FractionBits) | uint16(fraction&FractionMask))
}

// FromFloatU converts a float, truncating toward zero.
func FromFloatU(f float64) NumberU { return NumberU(uint16(f * scale)) }

// Raw returns the internal representation.
func (n NumberU) Raw() uint16 { return uint16(n) }

// Int returns the integer part.
func (n NumberU) Int() uint { return uint(uint16(n) >> FractionBits) }

// Fraction returns the raw fraction bits.
func (n NumberU) Fraction() uint { return uint(uint16(n) & FractionMask) }

// Float64 converts to a float for display.
func (n NumberU) Float64() float64 { return float64(n) / scale }

// Mul multiplies with a 32-bit intermediate, truncating then wrapping.
func (n NumberU) Mul(m NumberU) NumberU {
	return NumberU(uint16((uint32(n) * uint32(m)) >> FractionBits))
}

// Div divides with a 32-bit intermediate. Dividing by zero panics.
func (n NumberU) Div(m NumberU) NumberU {
	return NumberU(uint16((uint32(n) << FractionBits) / uint32(m)))
}

// Square returns n*n.
func (n NumberU) Square() NumberU { return n.Mul(n) }

// ToSigned reinterprets the raw bits as Number.
func (n NumberU) ToSigned() Number { return Number(int16(n)) }

func (n NumberU) String() string {
	return strconv.FormatFloat(n.Float64(), 'f', -1, 64)
}
