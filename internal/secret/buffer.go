package secret

import (
	"errors"
	"sync"

	"github.com/stanley-fork/lesspass/internal/common"
)

var ErrEmpty = errors.New("secret: empty source")

const errClosed = "secret: access to closed buffer"

// Buffer holds one secret. It must not be copied after creation.
type Buffer struct {
	mu     sync.Mutex
	data   []byte
	locked bool
	closed bool
}

// NewFromBytes copies source into a new Buffer and zeroes source, so the
// caller's slice no longer holds the secret.
func NewFromBytes(source []byte) (*Buffer, error) {
	if len(source) == 0 {
		return nil, ErrEmpty
	}

	data, locked, err := alloc(len(source))
	if err != nil {
		return nil, err
	}
	copy(data, source)
	common.WipeByteArray(source)

	return &Buffer{data: data, locked: locked}, nil
}

// Bytes returns the secret. The slice points into the buffer's memory; do not
// keep it past Close.
func (b *Buffer) Bytes() []byte {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		panic(errClosed)
	}
	return b.data
}

// Len returns the size of the secret, or zero after Close.
func (b *Buffer) Len() int {
	b.mu.Lock()
	defer b.mu.Unlock()

	return len(b.data)
}

// Locked reports whether the memory is pinned against swapping.
func (b *Buffer) Locked() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.locked
}

// Close zeroes and releases the buffer. Close is idempotent and safe on a nil
// Buffer.
func (b *Buffer) Close() error {
	if b == nil {
		return nil
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return nil
	}
	b.closed = true

	common.WipeByteArray(b.data)
	err := release(b.data, b.locked)
	b.data = nil
	return err
}
