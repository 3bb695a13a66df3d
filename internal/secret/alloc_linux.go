//go:build linux

package secret

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// alloc maps size bytes outside the Go heap. mlock and MADV_DONTDUMP failures
// are tolerated: RLIMIT_MEMLOCK is often tiny in containers.
func alloc(size int) ([]byte, bool, error) {
	data, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANONYMOUS)
	if err != nil {
		return nil, false, fmt.Errorf("secret: mmap failed: %w", err)
	}

	locked := unix.Mlock(data) == nil
	_ = unix.Madvise(data, unix.MADV_DONTDUMP)

	return data, locked, nil
}

func release(data []byte, locked bool) error {
	var firstErr error
	if locked {
		if err := unix.Munlock(data); err != nil {
			firstErr = fmt.Errorf("secret: munlock failed: %w", err)
		}
	}
	if err := unix.Munmap(data); err != nil && firstErr == nil {
		firstErr = fmt.Errorf("secret: munmap failed: %w", err)
	}
	return firstErr
}
