package embedstore

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
)

// encodeVector serializes a coordinate vector as a little-endian blob:
// an int32 element count followed by the raw float64 bits. The exact
// bits round-trip, so Load reproduces Save input bit for bit.
func encodeVector(vector []float64) []byte {
	buf := make([]byte, 4+8*len(vector))
	binary.LittleEndian.PutUint32(buf, uint32(len(vector)))
	for i, v := range vector {
		binary.LittleEndian.PutUint64(buf[4+8*i:], math.Float64bits(v))
	}

	return buf
}

// decodeVector parses a blob written by encodeVector.
func decodeVector(data []byte) ([]float64, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: blob shorter than length prefix", ErrCorruptStore)
	}
	n := int(int32(binary.LittleEndian.Uint32(data)))
	if n < 0 || len(data) != 4+8*n {
		return nil, fmt.Errorf("%w: blob length %d does not match %d elements", ErrCorruptStore, len(data), n)
	}

	vector := make([]float64, n)
	r := bytes.NewReader(data[4:])
	if err := binary.Read(r, binary.LittleEndian, vector); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptStore, err)
	}

	return vector, nil
}
