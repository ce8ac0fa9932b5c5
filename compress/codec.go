// Package compress provides the compression codecs used for dataset
// payloads.
//
// Dataset payloads are JSON-encoded column maps, typically a few KB of
// repetitive text, so all codecs trade peak ratio for simplicity and
// allocation-free steady-state operation where the underlying library
// supports it.
package compress

import (
	"fmt"

	"github.com/arloliu/labstat/format"
)

// Compressor compresses a dataset payload.
//
// The returned slice is newly allocated and owned by the caller (except
// for the no-op codec, which passes the input through). The input slice
// is never modified.
type Compressor interface {
	Compress(data []byte) ([]byte, error)
}

// Decompressor restores a payload previously produced by the matching
// Compressor. Corrupted or foreign input yields an error, never a
// truncated result.
type Decompressor interface {
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both directions. All implementations in this package
// are safe for concurrent use.
type Codec interface {
	Compressor
	Decompressor
}

var builtinCodecs = map[format.CompressionType]Codec{
	format.CompressionNone: NewNoOpCompressor(),
	format.CompressionZstd: NewZstdCompressor(),
	format.CompressionS2:   NewS2Compressor(),
	format.CompressionLZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves the built-in Codec for the specified compression type.
func GetCodec(compressionType format.CompressionType) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
