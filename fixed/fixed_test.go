package fixed

import "testing"

func TestFromInt(t *testing.T) {
	tests := []struct {
		in   int
		want float64
	}{
		{0, 0},
		{1, 1},
		{-1, -1},
		{127, 127},
		{4095, 4095},
		{-4096, -4096},
	}
	for _, tt := range tests {
		got := FromInt(tt.in)
		if got.Float64() != tt.want {
			t.Errorf("FromInt(%d) = %v, want %v", tt.in, got.Float64(), tt.want)
		}
		if got.Int() != tt.in {
			t.Errorf("FromInt(%d).Int() = %d", tt.in, got.Int())
		}
	}
}

func TestFromIntWraps(t *testing.T) {
	if got := FromInt(4096); got != FromInt(-4096) {
		t.Errorf("FromInt(4096) = %v, want wrap to -4096", got)
	}
}

func TestFromParts(t *testing.T) {
	tests := []struct {
		name     string
		integer  int
		fraction uint
		want     float64
	}{
		{"whole", 3, 0, 3},
		{"half", 3, 4, 3.5},
		{"eighth", 0, 1, 0.125},
		{"negative", -2, 4, -1.5},
		{"masked", 1, 0xF, 1.875},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromParts(tt.integer, tt.fraction).Float64()
			if got != tt.want {
				t.Errorf("FromParts(%d, %d) = %v, want %v", tt.integer, tt.fraction, got, tt.want)
			}
		})
	}
}

func TestIntFloors(t *testing.T) {
	if got := FromFloat(-0.5).Int(); got != -1 {
		t.Errorf("(-0.5).Int() = %d, want -1", got)
	}
	if got := FromFloat(1.875).Int(); got != 1 {
		t.Errorf("(1.875).Int() = %d, want 1", got)
	}
}

func TestFromFloatTruncates(t *testing.T) {
	if got := FromFloat(0.1); got != 0 {
		t.Errorf("FromFloat(0.1) = %v, want 0", got)
	}
	if got := FromFloat(-0.2); got != -Epsilon {
		t.Errorf("FromFloat(-0.2) = %v, want %v", got, -Epsilon)
	}
}

func TestEpsilon(t *testing.T) {
	if Epsilon.Float64() != 1.0/8 {
		t.Errorf("Epsilon = %v, want 0.125", Epsilon.Float64())
	}
	for _, x := range []Number{MinNumber, -1, 0, 1, FromInt(100), MaxNumber - 1} {
		if x+Epsilon == x {
			t.Errorf("%v + Epsilon == %v", x, x)
		}
		if x+Epsilon <= x {
			t.Errorf("%v + Epsilon not greater", x)
		}
	}
}

func TestAddSubRoundTrip(t *testing.T) {
	values := []Number{0, Epsilon, -Epsilon, FromInt(7), FromFloat(-12.375), FromInt(1000), FromInt(-2000)}
	for _, a := range values {
		for _, b := range values {
			if got := a + b - b; got != a {
				t.Errorf("%v + %v - %v = %v", a, b, b, got)
			}
		}
	}
}

func TestMul(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{2, 0.875, 1.75},
		{-2, 0.875, -1.75},
		{1.5, 1.5, 2.25},
		{0.125, 0.5, 0},
		// Floors toward negative infinity.
		{-0.125, 0.5, -0.125},
		{-0.125, 0.875, -0.125},
	}
	for _, tt := range tests {
		got := FromFloat(tt.a).Mul(FromFloat(tt.b)).Float64()
		if got != tt.want {
			t.Errorf("%v * %v = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMulWraps(t *testing.T) {
	// 64 * 64 = 4096, one past the signed integer range.
	got := FromInt(64).Mul(FromInt(64))
	if got != MinNumber {
		t.Errorf("64 * 64 = %v, want wrap to %v", got, MinNumber)
	}
}

func TestDiv(t *testing.T) {
	tests := []struct {
		a, b, want float64
	}{
		{3, 2, 1.5},
		{1, 1, 1},
		{-3, 2, -1.5},
		{1, 3, 0.25},
		// Truncates toward zero.
		{-1, 3, -0.25},
	}
	for _, tt := range tests {
		got := FromFloat(tt.a).Div(FromFloat(tt.b)).Float64()
		if got != tt.want {
			t.Errorf("%v / %v = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestDivByZeroPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic dividing by zero")
		}
	}()
	FromInt(1).Div(0)
}

func TestAbs(t *testing.T) {
	if got := FromInt(-3).Abs(); got != FromInt(3) {
		t.Errorf("Abs(-3) = %v", got)
	}
	if got := FromInt(3).Abs(); got != FromInt(3) {
		t.Errorf("Abs(3) = %v", got)
	}
}

func TestSignedUnsignedReinterpret(t *testing.T) {
	x := FromFloat(12.5)
	if got := x.ToUnsigned(); got.Float64() != 12.5 {
		t.Errorf("ToUnsigned(12.5) = %v", got)
	}
	if got := x.ToUnsigned().ToSigned(); got != x {
		t.Errorf("round trip = %v, want %v", got, x)
	}
	if got := FromInt(-1).ToUnsigned(); got != MaxNumberU-FromIntU(1)+EpsilonU {
		t.Errorf("ToUnsigned(-1) = %v", got)
	}
}

func TestUnsignedArithmetic(t *testing.T) {
	a := FromFloatU(2.5)
	b := FromIntU(2)
	if got := a.Mul(b); got != FromIntU(5) {
		t.Errorf("2.5 * 2 = %v", got)
	}
	if got := a.Div(b); got.Float64() != 1.25 {
		t.Errorf("2.5 / 2 = %v", got)
	}
	if got := FromPartsU(3, 2); got.Float64() != 3.25 {
		t.Errorf("FromPartsU(3, 2) = %v", got)
	}
	if got := a.Square(); got.Float64() != 6.25 {
		t.Errorf("2.5^2 = %v", got)
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		n    Number
		want string
	}{
		{FromFloat(0.875), "0.875"},
		{FromInt(-3), "-3"},
		{FromFloat(0.125), "0.125"},
	}
	for _, tt := range tests {
		if got := tt.n.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
	if got := FromFloatU(0.75).String(); got != "0.75" {
		t.Errorf("NumberU String() = %q", got)
	}
}
