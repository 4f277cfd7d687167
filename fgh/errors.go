// SPDX-License-Identifier: MIT

package fgh

import "errors"

var (
	// ErrNilSubscript is returned by Expand when the subscript is nil.
	ErrNilSubscript = errors.New("fgh: nil subscript")

	// ErrNegativeValue is returned by Expand when the argument is negative.
	ErrNegativeValue = errors.New("fgh: negative argument")
)
