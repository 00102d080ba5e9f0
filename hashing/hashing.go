// Package hashing provides a deterministic 64-bit hasher for building structural hashes.
package hashing

import (
	"encoding/binary"
	"hash"
	"hash/fnv"
)

// Hasher accumulates typed values into a FNV-1a 64-bit hash.
// Variable length writes are length prefixed so adjacent values cannot run together.
type Hasher struct {
	h   hash.Hash64
	buf [8]byte
}

// New returns an empty Hasher.
func New() *Hasher {
	return &Hasher{h: fnv.New64a()}
}

// WriteTag writes a single discriminant byte.
func (h *Hasher) WriteTag(tag byte) {
	h.buf[0] = tag
	_, _ = h.h.Write(h.buf[:1])
}

func (h *Hasher) WriteBool(b bool) {
	if b {
		h.WriteTag(1)
	} else {
		h.WriteTag(0)
	}
}

func (h *Hasher) WriteUint64(u uint64) {
	binary.LittleEndian.PutUint64(h.buf[:], u)
	_, _ = h.h.Write(h.buf[:])
}

func (h *Hasher) WriteInt64(i int64) {
	h.WriteUint64(uint64(i))
}

// WriteLen writes a container length.
func (h *Hasher) WriteLen(n int) {
	h.WriteUint64(uint64(n))
}

func (h *Hasher) WriteString(s string) {
	h.WriteLen(len(s))
	_, _ = h.h.Write([]byte(s))
}

// Sum64 returns the hash of everything written so far.
func (h *Hasher) Sum64() uint64 {
	return h.h.Sum64()
}
