// SPDX-License-Identifier: MIT

// Package matrix: functional options for Dense construction.
//
// Defaults:
//   - heap allocation (make([]float64, r*c)), zero-filled.
//   - NaN/Inf rejected by Set and by view writes.
package matrix

// Numeric and allocation policy defaults.
const (
	// DefaultValidateNaNInf toggles strict finite-value validation on Set and view writes.
	DefaultValidateNaNInf = true

	// DefaultSharedMapping selects the Go heap as backing storage.
	DefaultSharedMapping = false
)

// Option mutates construction options. Safe to apply repeatedly.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
	sharedMapping  bool // DefaultSharedMapping
}

// WithValidateNaNInf sets whether Set and view writes reject NaN/±Inf.
func WithValidateNaNInf(on bool) Option {
	return func(o *Options) { o.validateNaNInf = on }
}

// WithSharedMapping backs the buffer by an anonymous MAP_SHARED mapping.
// The region exists before any worker is spawned and stays mapped until
// Dense.Close. Views over it are typed windows, never copies.
func WithSharedMapping() Option {
	return func(o *Options) { o.sharedMapping = true }
}

// gatherOptions resolves user options over the documented defaults.
func gatherOptions(user ...Option) Options {
	o := Options{
		validateNaNInf: DefaultValidateNaNInf,
		sharedMapping:  DefaultSharedMapping,
	}
	for _, opt := range user {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
