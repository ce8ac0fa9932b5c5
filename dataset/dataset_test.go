package dataset

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/labstat/check"
	"github.com/arloliu/labstat/format"
)

func sample(t *testing.T) *Dataset {
	t.Helper()

	ds := New("pendulum")
	require.NoError(t, ds.SetColumn("length", []float64{0.2, 0.4, 0.6, 0.8}))
	require.NoError(t, ds.SetColumn("period", []float64{0.9, 1.27, 1.55, 1.8}))

	return ds
}

func TestDataset_Columns(t *testing.T) {
	ds := sample(t)

	t.Run("column lookup", func(t *testing.T) {
		values, err := ds.Column("length")
		require.NoError(t, err)
		require.Len(t, values, 4)

		_, err = ds.Column("mass")
		require.ErrorIs(t, err, check.ErrValidation)
	})

	t.Run("paired access validates", func(t *testing.T) {
		x, y, err := ds.Paired("length", "period")
		require.NoError(t, err)
		require.Len(t, x, 4)
		require.Len(t, y, 4)

		require.NoError(t, ds.SetColumn("short", []float64{1}))
		_, _, err = ds.Paired("length", "short")
		require.ErrorIs(t, err, check.ErrValidation)
	})

	t.Run("names sorted", func(t *testing.T) {
		require.Equal(t, []string{"length", "period", "short"}, ds.ColumnNames())
	})

	t.Run("rejects bad columns", func(t *testing.T) {
		require.ErrorIs(t, ds.SetColumn("", []float64{1}), check.ErrValidation)
		require.ErrorIs(t, ds.SetColumn("v", nil), check.ErrValidation)
		require.ErrorIs(t, ds.SetColumn("v", []float64{math.NaN()}), check.ErrValidation)
	})

	t.Run("id is stable", func(t *testing.T) {
		require.Equal(t, New("pendulum").ID(), ds.ID())
		require.NotEqual(t, New("spring").ID(), ds.ID())
	})
}

func TestEncodeDecode_RoundTrip(t *testing.T) {
	ds := sample(t)

	compressions := []format.CompressionType{
		format.CompressionNone,
		format.CompressionZstd,
		format.CompressionS2,
		format.CompressionLZ4,
	}

	for _, ct := range compressions {
		t.Run(ct.String(), func(t *testing.T) {
			data, err := Encode(ds, WithCompression(ct))
			require.NoError(t, err)

			restored, err := Decode(data)
			require.NoError(t, err)
			require.Equal(t, ds.Name, restored.Name)
			require.Equal(t, ds.Columns, restored.Columns)
		})
	}
}

func TestDecode_RejectsCorruption(t *testing.T) {
	ds := sample(t)
	data, err := Encode(ds, WithCompression(format.CompressionS2))
	require.NoError(t, err)

	t.Run("truncated envelope", func(t *testing.T) {
		_, err := Decode(data[:10])
		require.ErrorIs(t, err, check.ErrValidation)
	})

	t.Run("bad magic", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[0] = 'X'
		_, err := Decode(bad)
		require.ErrorIs(t, err, check.ErrValidation)
		require.Contains(t, err.Error(), "magic")
	})

	t.Run("unsupported version", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[4] = 0x7f
		_, err := Decode(bad)
		require.ErrorIs(t, err, check.ErrValidation)
	})

	t.Run("unknown compression byte", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[5] = 0x7f
		_, err := Decode(bad)
		require.ErrorIs(t, err, check.ErrValidation)
	})

	t.Run("flipped payload byte fails the checksum", func(t *testing.T) {
		bad := append([]byte(nil), data...)
		bad[len(bad)-1] ^= 0xff
		_, err := Decode(bad)
		require.ErrorIs(t, err, check.ErrValidation)
		require.Contains(t, err.Error(), "checksum")
	})
}

func TestEncode_Errors(t *testing.T) {
	t.Run("nil dataset", func(t *testing.T) {
		_, err := Encode(nil)
		require.ErrorIs(t, err, check.ErrValidation)
	})

	t.Run("invalid compression option", func(t *testing.T) {
		_, err := Encode(sample(t), WithCompression(format.CompressionType(0x7f)))
		require.ErrorIs(t, err, check.ErrValidation)
	})

	t.Run("non-finite column injected after SetColumn", func(t *testing.T) {
		ds := sample(t)
		ds.Columns["raw"] = []float64{math.Inf(1)}
		_, err := Encode(ds)
		require.ErrorIs(t, err, check.ErrValidation)
	})
}

func TestSaveLoad(t *testing.T) {
	ds := sample(t)
	path := filepath.Join(t.TempDir(), "pendulum.lsds")

	require.NoError(t, Save(path, ds, WithCompression(format.CompressionZstd)))

	restored, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, ds.Columns, restored.Columns)

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "absent.lsds"))
		require.Error(t, err)
	})
}
