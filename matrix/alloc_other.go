// SPDX-License-Identifier: MIT

//go:build !(linux || darwin || freebsd || netbsd || openbsd || dragonfly)

package matrix

func allocShared(int) ([]float64, func() error, error) {
	return nil, nil, ErrSharedMappingUnsupported
}
