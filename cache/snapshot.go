// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

package cache

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"github.com/cadenza-project/cadenza/lib/codec"
)

// Snapshot container format, version 1:
//
//	offset 0: magic "cs1" (3 bytes)
//	offset 3: compression tag (1 byte)
//	offset 4: uncompressed body size, big-endian uint32 (4 bytes)
//	offset 8: body (deterministic CBOR, possibly compressed)
//
// The body is Core Deterministic Encoding CBOR, so two snapshots of
// the same entity under the same tag are byte-identical and can be
// deduplicated or fingerprinted by hashing the container.
const snapshotHeaderSize = 8

var snapshotMagic = [3]byte{'c', 's', '1'}

// EncodeSnapshot serializes entity to deterministic CBOR and wraps it
// in a tagged snapshot container. When tag is a compressing tag but the
// body does not shrink, the snapshot silently falls back to
// CompressionNone; the caller's tag is a ceiling, not a promise.
func EncodeSnapshot(entity any, tag CompressionTag) ([]byte, error) {
	body, err := codec.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("cache: encode snapshot body: %w", err)
	}
	if len(body) > math.MaxUint32 {
		return nil, fmt.Errorf("cache: snapshot body %d bytes exceeds format limit", len(body))
	}

	compressed, err := compressBody(body, tag)
	if errors.Is(err, errIncompressible) {
		tag = CompressionNone
		compressed = body
	} else if err != nil {
		return nil, err
	}

	container := make([]byte, snapshotHeaderSize, snapshotHeaderSize+len(compressed))
	copy(container, snapshotMagic[:])
	container[3] = byte(tag)
	binary.BigEndian.PutUint32(container[4:8], uint32(len(body)))
	return append(container, compressed...), nil
}

// DecodeSnapshot unwraps a snapshot container and decodes its CBOR
// body into entity.
func DecodeSnapshot(data []byte, entity any) error {
	if len(data) < snapshotHeaderSize {
		return fmt.Errorf("cache: snapshot truncated: %d bytes", len(data))
	}
	if [3]byte(data[:3]) != snapshotMagic {
		return fmt.Errorf("cache: bad snapshot magic %q", data[:3])
	}
	tag := CompressionTag(data[3])
	uncompressedSize := int(binary.BigEndian.Uint32(data[4:8]))

	body, err := decompressBody(data[snapshotHeaderSize:], tag, uncompressedSize)
	if err != nil {
		return err
	}
	if err := codec.Unmarshal(body, entity); err != nil {
		return fmt.Errorf("cache: decode snapshot body: %w", err)
	}
	return nil
}
