package algorithm

import (
	"encoding/binary"
	"fmt"
	"math"

	mpwerrors "github.com/PolarWolf314/mpw/internal/errors"
)

// EncodeUTF8 returns the UTF-8 bytes of text without a byte order mark.
func EncodeUTF8(text string) []byte {
	return []byte(text)
}

// EncodeUint32BE encodes value as four big-endian bytes.
// Values outside 0..2^32-1 fail with ErrEncodingRange instead of being truncated.
func EncodeUint32BE(value int) ([]byte, error) {
	if value < 0 || uint64(value) > math.MaxUint32 {
		return nil, fmt.Errorf("encoding %d: %w", value, mpwerrors.ErrEncodingRange)
	}
	out := make([]byte, 4)
	binary.BigEndian.PutUint32(out, uint32(value))
	return out, nil
}

// Concat joins parts in call order.
func Concat(parts ...[]byte) []byte {
	total := 0
	for _, p := range parts {
		total += len(p)
	}
	out := make([]byte, 0, total)
	for _, p := range parts {
		out = append(out, p...)
	}
	return out
}

// scopedMessage builds namespace ‖ u32BE(len(name)) ‖ name, the prefix shared
// by the master secret salt and the site seed message.
func scopedMessage(name string) ([]byte, error) {
	nameBytes := EncodeUTF8(name)
	length, err := EncodeUint32BE(len(nameBytes))
	if err != nil {
		return nil, err
	}
	return Concat(EncodeUTF8(Namespace), length, nameBytes), nil
}
