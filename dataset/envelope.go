package dataset

import (
	"encoding/binary"
	"encoding/json"
	"fmt"
	"os"

	"github.com/arloliu/labstat/check"
	"github.com/arloliu/labstat/compress"
	"github.com/arloliu/labstat/format"
	"github.com/arloliu/labstat/internal/hash"
	"github.com/arloliu/labstat/internal/options"
)

// Envelope layout, little-endian:
//
//	offset 0: magic "LSDS" (4 bytes)
//	offset 4: format version (1 byte)
//	offset 5: compression type (1 byte)
//	offset 6: xxHash64 of the compressed payload (8 bytes)
//	offset 14: compressed JSON payload
const (
	envelopeMagic   = "LSDS"
	envelopeVersion = 0x1
	headerSize      = 14
)

type encodeConfig struct {
	compression format.CompressionType
}

// EncodeOption is a functional option for Encode and Save.
type EncodeOption = options.Option[*encodeConfig]

// WithCompression selects the payload compression codec. The default
// is no compression.
func WithCompression(ct format.CompressionType) EncodeOption {
	return func(cfg *encodeConfig) error {
		if !ct.Valid() {
			return fmt.Errorf("%w: unknown compression type %d", check.ErrValidation, uint8(ct))
		}
		cfg.compression = ct

		return nil
	}
}

// Encode serializes the dataset into the envelope format.
func Encode(ds *Dataset, opts ...EncodeOption) ([]byte, error) {
	if ds == nil {
		return nil, fmt.Errorf("%w: nil dataset", check.ErrValidation)
	}
	for name, values := range ds.Columns {
		if err := check.Series(values); err != nil {
			return nil, fmt.Errorf("column %q: %w", name, err)
		}
	}

	cfg := encodeConfig{compression: format.CompressionNone}
	if err := options.Apply(&cfg, opts...); err != nil {
		return nil, err
	}

	payload, err := json.Marshal(ds)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dataset: %w", err)
	}

	codec, err := compress.GetCodec(cfg.compression)
	if err != nil {
		return nil, err
	}
	compressed, err := codec.Compress(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to compress dataset payload: %w", err)
	}

	out := make([]byte, headerSize+len(compressed))
	copy(out[0:4], envelopeMagic)
	out[4] = envelopeVersion
	out[5] = byte(cfg.compression)
	binary.LittleEndian.PutUint64(out[6:14], hash.Sum(compressed))
	copy(out[headerSize:], compressed)

	return out, nil
}

// Decode parses an envelope produced by Encode, verifying the magic
// tag, version and payload checksum before decompressing.
func Decode(data []byte) (*Dataset, error) {
	if len(data) < headerSize {
		return nil, fmt.Errorf("%w: envelope too short: %d bytes", check.ErrValidation, len(data))
	}
	if string(data[0:4]) != envelopeMagic {
		return nil, fmt.Errorf("%w: bad magic %q", check.ErrValidation, data[0:4])
	}
	if data[4] != envelopeVersion {
		return nil, fmt.Errorf("%w: unsupported envelope version %d", check.ErrValidation, data[4])
	}

	compression := format.CompressionType(data[5])
	codec, err := compress.GetCodec(compression)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", check.ErrValidation, err)
	}

	compressed := data[headerSize:]
	if sum := hash.Sum(compressed); sum != binary.LittleEndian.Uint64(data[6:14]) {
		return nil, fmt.Errorf("%w: payload checksum mismatch", check.ErrValidation)
	}

	payload, err := codec.Decompress(compressed)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress dataset payload: %w", err)
	}

	var ds Dataset
	if err := json.Unmarshal(payload, &ds); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dataset: %w", err)
	}

	return &ds, nil
}

// Save encodes the dataset and writes it to path.
func Save(path string, ds *Dataset, opts ...EncodeOption) error {
	data, err := Encode(ds, opts...)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write dataset file: %w", err)
	}

	return nil
}

// Load reads and decodes a dataset file written by Save.
func Load(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read dataset file: %w", err)
	}

	return Decode(data)
}
