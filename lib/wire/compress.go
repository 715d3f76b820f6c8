// Copyright 2026 The Featseq Authors
// SPDX-License-Identifier: Apache-2.0

package wire

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// CompressionTag identifies the algorithm behind a compressed payload
// frame. The tag is stored in the frame header (1 byte). These values
// are format constants — changing them breaks existing files.
type CompressionTag uint8

const (
	// CompressionNone writes the payload encoding as-is, with no
	// frame. Inside a frame header it marks data that was stored
	// uncompressed because compression did not shrink it.
	CompressionNone CompressionTag = 0

	// CompressionLZ4 is LZ4 block compression: fast decode, moderate
	// ratio. The default when read speed matters more than size.
	CompressionLZ4 CompressionTag = 1

	// CompressionZstd is zstd at the default level. Better ratios on
	// the text-heavy JSON encoding at a higher CPU cost.
	CompressionZstd CompressionTag = 2
)

// String returns the human-readable name of a compression tag.
func (tag CompressionTag) String() string {
	switch tag {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZstd:
		return "zstd"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(tag))
	}
}

// ParseCompressionTag parses a compression tag from its string
// representation.
func ParseCompressionTag(name string) (CompressionTag, error) {
	switch name {
	case "none":
		return CompressionNone, nil
	case "lz4":
		return CompressionLZ4, nil
	case "zstd":
		return CompressionZstd, nil
	default:
		return 0, fmt.Errorf("unknown compression tag: %q", name)
	}
}

// Frame layout: 8-byte magic, 1-byte compression tag, 3 reserved
// bytes, 4-byte little-endian uncompressed size, then the stored
// bytes. The size field lets decompression allocate exactly and
// verify the result.
const (
	frameVersion    = 1
	frameHeaderSize = 16
)

// frameMagic is the compressed-frame signature: the format name plus
// a version byte.
var frameMagic = [8]byte{'F', 'E', 'A', 'T', 'S', 'E', 'Q', frameVersion}

// Compress wraps data in a compressed frame using the given
// algorithm. For CompressionNone it returns data unchanged (no frame,
// no copy). Data that does not shrink under the requested algorithm
// is framed uncompressed, so the output is always either raw bytes or
// a well-formed frame that [Decompress] opens.
func Compress(data []byte, tag CompressionTag) ([]byte, error) {
	if tag == CompressionNone {
		return data, nil
	}
	if len(data) > math.MaxUint32 {
		return nil, fmt.Errorf("payload of %d bytes exceeds the frame size limit", len(data))
	}

	var stored []byte
	var err error
	switch tag {
	case CompressionLZ4:
		stored, err = compressLZ4(data)
	case CompressionZstd:
		stored, err = compressZstd(data)
	default:
		return nil, fmt.Errorf("unsupported compression tag: %d", tag)
	}
	if err != nil {
		if !isIncompressible(err) {
			return nil, err
		}
		stored, tag = data, CompressionNone
	}

	framed := make([]byte, frameHeaderSize+len(stored))
	copy(framed, frameMagic[:])
	framed[8] = byte(tag)
	binary.LittleEndian.PutUint32(framed[12:16], uint32(len(data)))
	copy(framed[frameHeaderSize:], stored)
	return framed, nil
}

// Decompress opens a compressed frame. Bytes that do not start with
// the frame magic pass through unchanged, so callers can feed it any
// payload file before format detection.
func Decompress(data []byte) ([]byte, error) {
	if len(data) < 8 || !bytes.Equal(data[:7], frameMagic[:7]) {
		return data, nil
	}
	if data[7] != frameVersion {
		return nil, fmt.Errorf("unsupported compressed frame version %d", data[7])
	}
	if len(data) < frameHeaderSize {
		return nil, fmt.Errorf("compressed frame truncated: %d bytes, want at least %d", len(data), frameHeaderSize)
	}

	tag := CompressionTag(data[8])
	size := int(binary.LittleEndian.Uint32(data[12:16]))
	stored := data[frameHeaderSize:]

	switch tag {
	case CompressionNone:
		if len(stored) != size {
			return nil, fmt.Errorf("uncompressed frame: %d bytes does not match header size %d", len(stored), size)
		}
		return stored, nil
	case CompressionLZ4:
		return decompressLZ4(stored, size)
	case CompressionZstd:
		return decompressZstd(stored, size)
	default:
		return nil, fmt.Errorf("unsupported compression tag: %d", tag)
	}
}

// LZ4 compression: block-mode LZ4.

func compressLZ4(data []byte) ([]byte, error) {
	bound := lz4.CompressBlockBound(len(data))
	destination := make([]byte, bound)

	written, err := lz4.CompressBlock(data, destination, nil)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}

	// CompressBlock returns 0 when it determines the data is
	// incompressible. Output at least as large as the input is not
	// worth framing as compressed either.
	if written == 0 || written >= len(data) {
		return nil, errIncompressible
	}

	return destination[:written], nil
}

func decompressLZ4(compressed []byte, uncompressedSize int) ([]byte, error) {
	destination := make([]byte, uncompressedSize)
	read, err := lz4.UncompressBlock(compressed, destination)
	if err != nil {
		return nil, fmt.Errorf("lz4 decompress: %w", err)
	}
	if read != uncompressedSize {
		return nil, fmt.Errorf("lz4 decompress: got %d bytes, expected %d", read, uncompressedSize)
	}
	return destination, nil
}

// Zstd compression at the default level.

// zstdEncoder and zstdDecoder are reused across calls to avoid
// repeated initialization overhead. Both are safe for concurrent use.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
	)
	if err != nil {
		panic("wire: zstd encoder initialization failed: " + err.Error())
	}

	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("wire: zstd decoder initialization failed: " + err.Error())
	}
}

func compressZstd(data []byte) ([]byte, error) {
	compressed := zstdEncoder.EncodeAll(data, nil)
	if len(compressed) >= len(data) {
		return nil, errIncompressible
	}
	return compressed, nil
}

func decompressZstd(compressed []byte, uncompressedSize int) ([]byte, error) {
	destination := make([]byte, 0, uncompressedSize)
	result, err := zstdDecoder.DecodeAll(compressed, destination)
	if err != nil {
		return nil, fmt.Errorf("zstd decompress: %w", err)
	}
	if len(result) != uncompressedSize {
		return nil, fmt.Errorf("zstd decompress: got %d bytes, expected %d", len(result), uncompressedSize)
	}
	return result, nil
}

// errIncompressible is returned by the compression primitives when
// the output is not smaller than the input. Compress handles it by
// falling back to an uncompressed frame.
var errIncompressible = fmt.Errorf("data is incompressible")

func isIncompressible(err error) bool {
	return err == errIncompressible
}
