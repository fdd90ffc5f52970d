package quaternion

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestString(t *testing.T) {
	tests := []struct {
		name string
		q    Quaternion
		want string
	}{
		{"q1", q1, "3.06 +1i +1j +2k"},
		{"q2", q2, "0.7 +3i -1j +2k"},
		{"product", q1.Mul(q2), "-3.858 +13.88i +1.64j +3.52k"},
		{"reverse product", q2.Mul(q1), "-3.858 +5.88i -6.36j +11.52k"},
		{"conjugate", q1.Conjugate(), "3.06 -1i -1j -2k"},
		{"identity", Identity(), "1 +0i +0j +0k"},
		{"zero", Zero(), "0 +0i +0j +0k"},
		{"noise snapped", New(1e-14, -1e-14, -0.00001, 0.00004), "0 +0i +0j +0k"},
		{"negative zero", New(math.Copysign(0, -1), math.Copysign(0, -1), 0, 0), "0 +0i +0j +0k"},
		{"rounding", New(1.23456789, -0.00006, 2.99999, 0.5), "1.2346 -0.0001i +3j +0.5k"},
		{"non-finite", New(math.Inf(1), math.Inf(-1), math.NaN(), 0), "+Inf -Infi NaNj +0k"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.q.String())
		})
	}
}

func TestStringOfRoundTrip(t *testing.T) {
	inv, err := q1.Inverse()
	assert.NoError(t, err)
	assert.Equal(t, "1 +0i +0j +0k", q1.Mul(inv).String())
	assert.Equal(t, "1 +0i +0j +0k", fmt.Sprint(q1.Mul(inv)))
}

func TestFormatPrecision(t *testing.T) {
	q := New(1.23456, -2.5, 0, 10)
	assert.Equal(t, "1.23 -2.5i +0j +10k", q.Format(2))
	assert.Equal(t, "1 -3i +0j +10k", q.Format(0))
	assert.Equal(t, "1.23456 -2.5i +0j +10k", q.Format(8))
}

func TestFormatScalar(t *testing.T) {
	assert.Equal(t, "3.9196", FormatScalar(q1.Magnitude(), DisplayPrecision))
	assert.Equal(t, "0", FormatScalar(-1e-15, DisplayPrecision))
	assert.Equal(t, "-12.5", FormatScalar(-12.5, DisplayPrecision))
}

func TestFormatDoesNotAlterValue(t *testing.T) {
	q := New(1.23456789, 0, 0, 0)
	_ = q.String()
	assert.Equal(t, 1.23456789, q.W())
}
