// SPDX-License-Identifier: MIT
// Package ordinal: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the
// ordinal package. All operations MUST return these sentinels and tests MUST
// check them via errors.Is. No operation panics on user-triggered error
// conditions; panics are reserved for programmer errors (nil receivers).

package ordinal

import "errors"

var (
	// ErrNegative is returned when a negative integer is offered where an
	// ordinal is required (construction, AddInt, MulInt, PowInt, ...).
	ErrNegative = errors.New("ordinal: negative integers are not ordinals")

	// ErrUnknownName is returned by FromName for an unrecognized alias.
	ErrUnknownName = errors.New("ordinal: unknown named ordinal")

	// ErrNotFinite is returned by Int when the ordinal is not below ω.
	ErrNotFinite = errors.New("ordinal: transfinite ordinal has no integer value")

	// ErrNotSuccessor is returned by Predecessor when the ordinal is zero or
	// a limit ordinal; x-1 is only defined when the value is some x+1.
	ErrNotSuccessor = errors.New("ordinal: predecessor requires a successor ordinal")

	// ErrNotLimit is returned when a fundamental sequence is requested for
	// zero or a successor ordinal. The error fires at sequence construction,
	// never at first index access.
	ErrNotLimit = errors.New("ordinal: fundamental sequence requires a limit ordinal")

	// ErrNegativeIndex is returned by Index for an index below zero.
	ErrNegativeIndex = errors.New("ordinal: sequence index must be non-negative")

	// ErrNilOrdinal is returned when a nil *Ordinal reaches an entry point
	// that can report it instead of dereferencing.
	ErrNilOrdinal = errors.New("ordinal: nil ordinal")
)
