package compress

// ZstdCompressor provides Zstandard compression, the highest-ratio
// codec in the set. Suited to archival of large sweep datasets where
// read frequency is low.
type ZstdCompressor struct{}

var _ Codec = (*ZstdCompressor)(nil)

// NewZstdCompressor creates a new Zstd compressor with default settings.
func NewZstdCompressor() ZstdCompressor {
	return ZstdCompressor{}
}
