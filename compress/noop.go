package compress

// NoOpCompressor bypasses compression, for datasets where the payload
// is small enough that framing overhead would dominate.
//
// Both directions return the input slice as-is without copying; callers
// must not modify the input while the returned slice is in use.
type NoOpCompressor struct{}

var _ Codec = (*NoOpCompressor)(nil)

// NewNoOpCompressor creates a new no-op compressor.
func NewNoOpCompressor() NoOpCompressor {
	return NoOpCompressor{}
}

// Compress returns the input data unchanged.
func (c NoOpCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

// Decompress returns the input data unchanged.
func (c NoOpCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}
