// Package demo builds the report printed by the demonstration program.
package demo

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"hypercomplex/internal/geometry/quaternion"
)

// Line is one "label = value" row of the report.
type Line struct {
	Label string
	Value string
}

// Report is the ordered list of rows for a pair of samples.
type Report []Line

// Step computes one row from the two samples. A step that fails, such as a
// division by a zero quaternion, yields an error instead of a value.
type Step struct {
	Label string
	Eval  func(q1, q2 quaternion.Quaternion) (fmt.Stringer, error)
}

type scalar struct {
	v         float64
	precision int
}

func (s scalar) String() string { return quaternion.FormatScalar(s.v, s.precision) }

type formatted struct {
	q         quaternion.Quaternion
	precision int
}

func (f formatted) String() string { return f.q.Format(f.precision) }

// Steps returns the rows of the report in print order. Quaternion values
// are rendered with the given precision.
func Steps(precision int) []Step {
	q := func(f func(q1, q2 quaternion.Quaternion) quaternion.Quaternion) func(q1, q2 quaternion.Quaternion) (fmt.Stringer, error) {
		return func(q1, q2 quaternion.Quaternion) (fmt.Stringer, error) {
			return formatted{f(q1, q2), precision}, nil
		}
	}
	qe := func(f func(q1, q2 quaternion.Quaternion) (quaternion.Quaternion, error)) func(q1, q2 quaternion.Quaternion) (fmt.Stringer, error) {
		return func(q1, q2 quaternion.Quaternion) (fmt.Stringer, error) {
			r, err := f(q1, q2)
			if err != nil {
				return nil, err
			}
			return formatted{r, precision}, nil
		}
	}
	roundTrip := func(p quaternion.Quaternion) (quaternion.Quaternion, error) {
		inv, err := p.Inverse()
		if err != nil {
			return quaternion.Quaternion{}, err
		}
		return p.Mul(inv), nil
	}

	return []Step{
		{"q1", q(func(q1, _ quaternion.Quaternion) quaternion.Quaternion { return q1 })},
		{"q2", q(func(_, q2 quaternion.Quaternion) quaternion.Quaternion { return q2 })},
		{"q1 + q2", q(quaternion.Quaternion.Add)},
		{"q1 - q2", q(quaternion.Quaternion.Sub)},
		{"q1 * q2", q(quaternion.Quaternion.Mul)},
		{"q2 * q1", q(func(q1, q2 quaternion.Quaternion) quaternion.Quaternion { return q2.Mul(q1) })},
		{"q1 / q2", qe(quaternion.Quaternion.Div)},
		{"q1 * q1.inverse()", qe(func(q1, _ quaternion.Quaternion) (quaternion.Quaternion, error) { return roundTrip(q1) })},
		{"q2 * q2.inverse()", qe(func(_, q2 quaternion.Quaternion) (quaternion.Quaternion, error) { return roundTrip(q2) })},
		{"Magnitude of q1", func(q1, _ quaternion.Quaternion) (fmt.Stringer, error) {
			return scalar{q1.Magnitude(), precision}, nil
		}},
		{"Magnitude of q2", func(_, q2 quaternion.Quaternion) (fmt.Stringer, error) {
			return scalar{q2.Magnitude(), precision}, nil
		}},
		{"Conjugate of q1", q(func(q1, _ quaternion.Quaternion) quaternion.Quaternion { return q1.Conjugate() })},
	}
}

// Build runs every step in order. A failing step does not stop the report:
// its row reads "undefined (<error>)" and a warning is logged.
func Build(log logrus.FieldLogger, steps []Step, q1, q2 quaternion.Quaternion) Report {
	report := make(Report, 0, len(steps))
	for _, s := range steps {
		v, err := s.Eval(q1, q2)
		if err != nil {
			log.WithError(err).WithField("step", s.Label).Warn("step has no defined value")
			report = append(report, Line{Label: s.Label, Value: fmt.Sprintf("undefined (%v)", err)})
			continue
		}
		report = append(report, Line{Label: s.Label, Value: v.String()})
	}
	log.WithField("lines", len(report)).Debug("report built")
	return report
}

// WriteTo prints one "label = value" line per row.
func (r Report) WriteTo(w io.Writer) (int64, error) {
	var total int64
	for _, l := range r {
		n, err := fmt.Fprintf(w, "%s = %s\n", l.Label, l.Value)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
