package round

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/labstat/check"
)

func TestRound_Convention(t *testing.T) {
	// Two significant digits on the uncertainty, value at the matching
	// decimal place, for every leading digit of the uncertainty.
	cases := []struct {
		value, uncertainty float64
		wantValue, wantUnc float64
	}{
		{3.14159, 0.0137, 3.142, 0.014},
		{3.14159, 0.0237, 3.142, 0.024},
		{3.14159, 0.0337, 3.142, 0.034},
		{3.14159, 0.0437, 3.142, 0.044},
		{3.14159, 0.0537, 3.142, 0.054},
		{3.14159, 0.0637, 3.142, 0.064},
		{3.14159, 0.0737, 3.142, 0.074},
		{3.14159, 0.0837, 3.142, 0.084},
		{3.14159, 0.0937, 3.142, 0.094},
	}

	for _, tc := range cases {
		r, err := Round(tc.value, tc.uncertainty)
		require.NoError(t, err)
		require.InDelta(t, tc.wantValue, r.Value, 1e-12, "value for u=%v", tc.uncertainty)
		require.InDelta(t, tc.wantUnc, r.Uncertainty, 1e-12, "uncertainty for u=%v", tc.uncertainty)
	}
}

func TestRound_Magnitudes(t *testing.T) {
	t.Run("large uncertainty rounds to tens", func(t *testing.T) {
		r, err := Round(1234, 237)
		require.NoError(t, err)
		require.InDelta(t, 1230, r.Value, 1e-9)
		require.InDelta(t, 240, r.Uncertainty, 1e-9)
	})

	t.Run("unit-scale uncertainty", func(t *testing.T) {
		r, err := Round(12.34, 1.7)
		require.NoError(t, err)
		require.InDelta(t, 12.3, r.Value, 1e-12)
		require.InDelta(t, 1.7, r.Uncertainty, 1e-12)
	})

	t.Run("negative value", func(t *testing.T) {
		r, err := Round(-2.718, 0.12)
		require.NoError(t, err)
		require.InDelta(t, -2.72, r.Value, 1e-12)
		require.InDelta(t, 0.12, r.Uncertainty, 1e-12)
	})

	t.Run("rounding across a power of ten", func(t *testing.T) {
		// 0.0999 rounds up to 0.10, so the value follows at two
		// decimals instead of three. The stored value of 5.555 lies
		// just below 5.555, so it rounds down, not up.
		r, err := Round(5.555, 0.0999)
		require.NoError(t, err)
		require.InDelta(t, 0.1, r.Uncertainty, 1e-12)
		require.InDelta(t, 5.55, r.Value, 1e-12)
	})

	t.Run("exact tie rounds away from zero", func(t *testing.T) {
		// 2.25 is exactly representable, so the tie at the first
		// decimal is real and resolves away from zero.
		r, err := Round(2.25, 1.5)
		require.NoError(t, err)
		require.InDelta(t, 2.3, r.Value, 1e-12)
		require.InDelta(t, 1.5, r.Uncertainty, 1e-12)

		r, err = Round(-2.25, 1.5)
		require.NoError(t, err)
		require.InDelta(t, -2.3, r.Value, 1e-12)
	})

	t.Run("subnormal uncertainty", func(t *testing.T) {
		r, err := Round(1.0, 1e-323)
		require.NoError(t, err)
		require.Equal(t, 1.0, r.Value)
		require.False(t, math.IsNaN(r.Uncertainty))
		require.Greater(t, r.Uncertainty, 0.0)
	})
}

func TestRound_Idempotent(t *testing.T) {
	cases := [][2]float64{
		{3.14159, 0.0237},
		{12.34, 1.7},
		{-2.718, 0.12},
		{1234, 237},
		{5.555, 0.0999},
		{0.175, 0.031},
		{2.25, 1.5},
	}

	for _, tc := range cases {
		first, err := Round(tc[0], tc[1])
		require.NoError(t, err)

		second, err := Round(first.Value, first.Uncertainty)
		require.NoError(t, err)
		require.Equal(t, first, second, "Round(%v, %v)", tc[0], tc[1])
	}
}

func TestRound_ZeroUncertainty(t *testing.T) {
	r, err := Round(3.14159, 0)
	require.NoError(t, err)
	require.InDelta(t, 3.1, r.Value, 1e-12)
	require.Equal(t, 0.0, r.Uncertainty)

	t.Run("zero value stays zero", func(t *testing.T) {
		r, err := Round(0, 0)
		require.NoError(t, err)
		require.Equal(t, Rounded{}, r)
	})
}

func TestRound_Errors(t *testing.T) {
	t.Run("negative uncertainty", func(t *testing.T) {
		_, err := Round(1.0, -0.1)
		require.ErrorIs(t, err, check.ErrDegenerateInput)
	})

	t.Run("non-finite inputs", func(t *testing.T) {
		_, err := Round(math.NaN(), 0.1)
		require.ErrorIs(t, err, check.ErrValidation)

		_, err = Round(1.0, math.Inf(1))
		require.ErrorIs(t, err, check.ErrValidation)
	})
}

func TestRoundValue(t *testing.T) {
	require.InDelta(t, 3.1, RoundValue(3.14159), 1e-12)
	require.InDelta(t, 0.0012, RoundValue(0.00123), 1e-15)
	require.InDelta(t, 990, RoundValue(987), 1e-9)
	require.Equal(t, 0.0, RoundValue(0))
}

func TestSeries(t *testing.T) {
	t.Run("element-wise rounding", func(t *testing.T) {
		rs, err := Series([]float64{3.14159, 12.34}, []float64{0.0237, 1.7})
		require.NoError(t, err)
		require.Len(t, rs, 2)
		require.InDelta(t, 3.142, rs[0].Value, 1e-12)
		require.InDelta(t, 0.024, rs[0].Uncertainty, 1e-12)
		require.InDelta(t, 12.3, rs[1].Value, 1e-12)
	})

	t.Run("length mismatch", func(t *testing.T) {
		_, err := Series([]float64{1, 2}, []float64{0.1})
		require.ErrorIs(t, err, check.ErrValidation)
	})

	t.Run("names the failing element", func(t *testing.T) {
		_, err := Series([]float64{1, 2}, []float64{0.1, -1})
		require.ErrorIs(t, err, check.ErrDegenerateInput)
		require.Contains(t, err.Error(), "element 1")
	})
}
