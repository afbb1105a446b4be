// Copyright 2026 The Cadenza Authors
// SPDX-License-Identifier: Apache-2.0

// Package resource models binary content referenced by outbound
// payloads. The wire protocol cannot carry binary data inline: a local
// image in an embed is referenced by an attachment:// placeholder
// inside the JSON and shipped as a multipart companion. The transcoder
// only describes what must be uploaded: a Resource is a handle
// (filename plus a way to open the content); the upload subsystem that
// consumes the handles lives elsewhere.
package resource

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/zeebo/blake3"
)

// AttachmentScheme is the URL scheme the protocol uses to reference a
// multipart companion from inside a JSON payload.
const AttachmentScheme = "attachment://"

// Resource is a handle to binary content referenced by a payload.
// Exactly three implementations exist: URL (remote, nothing to
// upload), File (local path), and Bytes (in-memory).
type Resource interface {
	// Filename is the name the content is referenced by. For a given
	// resource value it never changes between calls: the placeholder
	// written into a payload and the multipart part name must agree.
	Filename() string

	// URL is the reference written into the payload: the remote URL
	// for a URL resource, an attachment:// placeholder otherwise.
	URL() string
}

// Opener is implemented by resources that have content to upload.
// URL resources are already remote and do not implement it.
type Opener interface {
	Open() (io.ReadCloser, error)
}

// URL references content that already lives at a remote location.
type URL string

// Filename returns the last path segment of the URL.
func (u URL) Filename() string { return filepath.Base(string(u)) }

// URL returns the remote URL unchanged.
func (u URL) URL() string { return string(u) }

// File references content on the local filesystem.
type File struct {
	// Path is the local path to the content.
	Path string
}

// Filename returns the base name of the local path.
func (f File) Filename() string { return filepath.Base(f.Path) }

// URL returns the attachment placeholder for the file.
func (f File) URL() string { return AttachmentScheme + f.Filename() }

// Open opens the local file for reading.
func (f File) Open() (io.ReadCloser, error) {
	return os.Open(f.Path)
}

// Bytes references in-memory content. Name is optional: when empty,
// the filename is derived from a BLAKE3 digest of the content, so the
// same bytes always produce the same placeholder and re-encoding a
// payload is deterministic.
type Bytes struct {
	// Name is the explicit filename, or "" to derive one from the
	// content hash.
	Name string
	// Data is the content.
	Data []byte
}

// attachmentDomainKey is the 32-byte BLAKE3 keyed-hashing domain for
// derived attachment names. Domain separation keeps these digests from
// colliding with any other BLAKE3 use of the same bytes. The key is
// the ASCII domain name zero-padded to 32 bytes so it stays readable
// in hex dumps.
var attachmentDomainKey = [32]byte{
	'c', 'a', 'd', 'e', 'n', 'z', 'a', '.', 'r', 'e', 's', 'o', 'u', 'r', 'c', 'e',
	'.', 'a', 't', 't', 'a', 'c', 'h', 0, 0, 0, 0, 0, 0, 0, 0, 0,
}

// Filename returns the explicit name, or a content-derived one of the
// form "<16 hex chars>.bin".
func (b Bytes) Filename() string {
	if b.Name != "" {
		return b.Name
	}
	hasher, err := blake3.NewKeyed(attachmentDomainKey[:])
	if err != nil {
		// NewKeyed fails only on a wrong key length; the key is a
		// compile-time constant of the right size.
		panic(fmt.Sprintf("resource: keyed hasher: %v", err))
	}
	hasher.Write(b.Data)
	sum := hasher.Sum(nil)
	return hex.EncodeToString(sum[:8]) + ".bin"
}

// URL returns the attachment placeholder for the content.
func (b Bytes) URL() string { return AttachmentScheme + b.Filename() }

// Open returns a reader over the in-memory content.
func (b Bytes) Open() (io.ReadCloser, error) {
	return io.NopCloser(bytes.NewReader(b.Data)), nil
}
