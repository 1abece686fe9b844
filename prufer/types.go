// Package prufer defines codec options, method selectors and sentinel errors.
package prufer

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// Sentinel errors for codec operations.
var (
	// ErrInvalidInput indicates malformed arguments: a nil or too-small tree,
	// a code entry outside the alphabet, an unusable alphabet or option.
	ErrInvalidInput = errors.New("prufer: invalid input")

	// ErrInvariantViolation indicates that no eligible label existed at some
	// step. It means the input was not a tree (Encode) or the alphabet
	// bookkeeping broke down (Decode); it is not recoverable by retrying.
	ErrInvariantViolation = errors.New("prufer: invariant violation")
)

// MethodScan selects the linear-scan minimum search (O(n²), the default).
const MethodScan = "scan"

// MethodHeap selects the min-heap minimum search (O(n log n)).
const MethodHeap = "heap"

// Options configures Encode and Decode.
// Use DefaultOptions() for the zero-configuration setup.
type Options struct {
	// Method is MethodScan or MethodHeap.
	Method string

	// Alphabet, when non-nil, replaces 1..n as the label set of a decoded tree.
	// Ignored by Encode, which always uses the tree's own labels.
	Alphabet []int

	// Validate makes Encode run tree.Validate before encoding.
	Validate bool

	// Logger receives a debug line per elimination/attachment step.
	Logger *log.Logger

	// internal error recorded during option parsing
	err error
}

// Option configures Options via functional arguments.
type Option func(*Options)

// DefaultOptions returns MethodScan, the default alphabet, no validation and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Method: MethodScan,
		Logger: log.NewWithOptions(io.Discard, log.Options{}),
	}
}

// WithMethod selects the minimum-search strategy.
// An unknown name is recorded and surfaces as ErrInvalidInput from Encode/Decode.
func WithMethod(m string) Option {
	return func(o *Options) {
		switch m {
		case MethodScan, MethodHeap:
			o.Method = m
		default:
			o.err = fmt.Errorf("%w: unknown method %q", ErrInvalidInput, m)
		}
	}
}

// WithAlphabet decodes over a custom injective label set instead of 1..n.
// The set must hold exactly len(code)+2 positive, unique labels.
func WithAlphabet(labels ...int) Option {
	return func(o *Options) {
		// non-nil even for zero labels, so Decode rejects an explicit empty set
		o.Alphabet = append(make([]int, 0, len(labels)), labels...)
	}
}

// WithValidation makes Encode reject inputs that are not trees with ErrInvalidInput
// instead of producing an unspecified sequence.
func WithValidation() Option {
	return func(o *Options) { o.Validate = true }
}

// WithLogger routes per-step debug tracing to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// resolve applies opts over the defaults and returns the first recorded option error.
func resolve(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}
