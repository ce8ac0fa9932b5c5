package plot

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/labstat/check"
	"github.com/arloliu/labstat/regress"
)

var (
	testX = []float64{1, 2, 3, 4, 5}
	testY = []float64{2.1, 3.9, 6.2, 7.8, 10.1}
	testU = []float64{0.2, 0.2, 0.3, 0.2, 0.3}
)

func TestScatter_Build(t *testing.T) {
	t.Run("plain scatter", func(t *testing.T) {
		fig, err := Scatter(testX, testY)
		require.NoError(t, err)
		require.NotNil(t, fig.Plot())
	})

	t.Run("full figure", func(t *testing.T) {
		res, err := regress.Fit(testX, testY)
		require.NoError(t, err)

		fig, err := Scatter(testX, testY,
			WithTitle("calibration"),
			WithLabels("U [V]", "I [mA]"),
			WithYErrors(testU),
			WithFitLine(res),
			WithLegend("measurements", "fit"),
			WithGrid(true),
		)
		require.NoError(t, err)
		require.Equal(t, "calibration", fig.Plot().Title.Text)
		require.Equal(t, "U [V]", fig.Plot().X.Label.Text)
	})
}

func TestScatter_Validation(t *testing.T) {
	t.Run("mismatched series", func(t *testing.T) {
		_, err := Scatter(testX, testY[:3])
		require.ErrorIs(t, err, check.ErrValidation)
	})

	t.Run("mismatched error bars", func(t *testing.T) {
		_, err := Scatter(testX, testY, WithYErrors([]float64{0.1}))
		require.ErrorIs(t, err, check.ErrValidation)
	})

	t.Run("negative error bar", func(t *testing.T) {
		_, err := Scatter(testX, testY, WithYErrors([]float64{0.1, -0.1, 0.1, 0.1, 0.1}))
		require.ErrorIs(t, err, check.ErrDegenerateInput)
	})

	t.Run("nil fit result", func(t *testing.T) {
		_, err := Scatter(testX, testY, WithFitLine(nil))
		require.ErrorIs(t, err, check.ErrValidation)
	})

	t.Run("invalid size", func(t *testing.T) {
		_, err := Scatter(testX, testY, WithSize(0, 10))
		require.ErrorIs(t, err, check.ErrValidation)
	})
}

func TestFigure_Save(t *testing.T) {
	fig, err := Scatter(testX, testY, WithSize(10, 8))
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "fig.png")
	require.NoError(t, fig.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	require.Positive(t, info.Size())
}

func TestFigure_WriteTo(t *testing.T) {
	fig, err := Scatter(testX, testY)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, fig.WriteTo(&buf, "svg"))
	require.Contains(t, buf.String(), "<svg")
}
