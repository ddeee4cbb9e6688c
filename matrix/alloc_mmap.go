// SPDX-License-Identifier: MIT

//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package matrix

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/unix"
)

// allocShared maps n float64 values in an anonymous MAP_SHARED region.
// The kernel zero-fills the pages, which matches the heap contract of NewDense.
func allocShared(n int) ([]float64, func() error, error) {
	size := n * int(unsafe.Sizeof(float64(0)))
	b, err := unix.Mmap(-1, 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED|unix.MAP_ANON)
	if err != nil {
		return nil, nil, fmt.Errorf("mmap %d bytes: %w", size, err)
	}
	data := unsafe.Slice((*float64)(unsafe.Pointer(&b[0])), n)

	return data, func() error { return unix.Munmap(b) }, nil
}
