package quaternion

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/num/quat"
)

// gonum's num/quat is an independent implementation of the same algebra;
// these tests cross-check against it.

func TestNumberRoundTrip(t *testing.T) {
	n := q1.Number()
	assert.Equal(t, quat.Number{Real: 3.06, Imag: 1, Jmag: 1, Kmag: 2}, n)
	assert.Equal(t, q1, FromNumber(n))
}

func TestAgreesWithGonum(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for n := 0; n < 500; n++ {
		a, b := randomQuaternion(r), randomQuaternion(r)

		assertApprox(t, FromNumber(quat.Mul(a.Number(), b.Number())), a.Mul(b), tolerance)
		assert.Equal(t, FromNumber(quat.Add(a.Number(), b.Number())), a.Add(b))
		assert.Equal(t, FromNumber(quat.Sub(a.Number(), b.Number())), a.Sub(b))
		assert.Equal(t, FromNumber(quat.Conj(a.Number())), a.Conjugate())
		assert.InDelta(t, math.Sqrt(a.NormSquared()), a.Magnitude(), tolerance)

		inv, err := a.Inverse()
		require.NoError(t, err)
		assertApprox(t, FromNumber(quat.Inv(a.Number())), inv, tolerance)
	}
}

func TestScenarioAgreesWithGonum(t *testing.T) {
	want := FromNumber(quat.Mul(q1.Number(), quat.Inv(q2.Number())))
	got, err := q1.Div(q2)
	require.NoError(t, err)
	assertApprox(t, want, got, tolerance)
}
