// Package secret holds a master password in memory that the garbage collector
// never sees.
//
// On Linux, Buffer allocates its bytes with an anonymous mmap, locks them
// into RAM with mlock and excludes them from core dumps with
// MADV_DONTDUMP. Locking and the dump exclusion are best effort: a process
// without a memlock allowance still gets an off-heap buffer, and Locked
// reports whether the lock took. On other platforms Buffer is a heap slice
// that is zeroed on Close.
//
// Close zeroes and releases the memory. Any access after Close panics.
package secret
