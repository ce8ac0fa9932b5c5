// Package format defines the shared enum types of the dataset envelope.
package format

// CompressionType identifies the compression applied to a dataset payload.
type CompressionType uint8

const (
	CompressionNone CompressionType = 0x1 // CompressionNone represents no compression.
	CompressionZstd CompressionType = 0x2 // CompressionZstd represents Zstandard compression.
	CompressionS2   CompressionType = 0x3 // CompressionS2 represents S2 compression.
	CompressionLZ4  CompressionType = 0x4 // CompressionLZ4 represents LZ4 compression.
)

func (c CompressionType) String() string {
	switch c {
	case CompressionNone:
		return "None"
	case CompressionZstd:
		return "Zstd"
	case CompressionS2:
		return "S2"
	case CompressionLZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Valid reports whether c is a known compression type.
func (c CompressionType) Valid() bool {
	switch c {
	case CompressionNone, CompressionZstd, CompressionS2, CompressionLZ4:
		return true
	default:
		return false
	}
}
