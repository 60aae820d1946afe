// SPDX-License-Identifier: MIT

package loader

import "errors"

var (
	// ErrOpen indicates the input file could not be opened.
	ErrOpen = errors.New("loader: cannot open input")

	// ErrMalformedHeader indicates the header tokens are missing or not integers.
	ErrMalformedHeader = errors.New("loader: malformed header")

	// ErrUnsupportedKind indicates a type flag other than 0 or 1.
	ErrUnsupportedKind = errors.New("loader: unsupported element kind")
)
