package quaternion

import (
	"math"
	"strconv"
	"strings"
)

// DisplayPrecision is the number of decimal places String rounds to.
const DisplayPrecision = 4

// String renders q as "w ±xi ±yj ±zk" rounded to DisplayPrecision places.
func (q Quaternion) String() string {
	return q.Format(DisplayPrecision)
}

// Format renders q as "w ±xi ±yj ±zk". Components smaller in magnitude than
// DefaultEpsilon print as 0 so cancellation noise never shows up as -0.
// The result is for display only.
func (q Quaternion) Format(precision int) string {
	var b strings.Builder
	b.WriteString(FormatScalar(q[0], precision))
	for i, sym := range [...]string{"i", "j", "k"} {
		b.WriteByte(' ')
		b.WriteString(signed(FormatScalar(q[i+1], precision)))
		b.WriteString(sym)
	}
	return b.String()
}

// FormatScalar applies the display rule of Format to a single number:
// snap to zero below DefaultEpsilon, round to precision decimal places and
// print the shortest representation of the rounded value.
func FormatScalar(v float64, precision int) string {
	return strconv.FormatFloat(clean(v, precision), 'f', -1, 64)
}

func clean(v float64, precision int) float64 {
	if math.Abs(v) < DefaultEpsilon {
		return 0
	}
	scale := math.Pow10(precision)
	scaled := v * scale
	if math.IsInf(scaled, 0) {
		return v
	}
	r := math.Round(scaled) / scale
	if r == 0 {
		// drop the sign of -0
		return 0
	}
	return r
}

func signed(s string) string {
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") || s == "NaN" {
		return s
	}
	return "+" + s
}
