/*
Package stream implements the sentinel terminated scanner shared by the
object and enemy data decoders.

Both streams are a sequence of fixed width records starting at offset zero.
Before each record the byte under the cursor is compared against a sentinel
value; when it matches, scanning stops and the sentinel and anything after
it are ignored. Running off the end of the input before the sentinel is an
error rather than an implicit end of stream.
*/
package stream

import (
	"errors"
	"fmt"
)

const (
	// Sentinel marks the end of object data, and of enemy data in the
	// canonical region layout
	Sentinel = 0xfd

	// RecordSize is the width of a standard record
	RecordSize = 2
)

// ErrTruncated is returned when the input ends before the sentinel
var ErrTruncated = errors.New("stream: truncated before sentinel")

// OffsetError records the byte offset at which scanning failed
type OffsetError struct {
	Offset int
	Err    error
}

func (e *OffsetError) Error() string {
	return fmt.Sprintf("%s at offset %d", e.Err, e.Offset)
}

func (e *OffsetError) Unwrap() error {
	return e.Err
}

// WidthFunc returns the size of the record starting with b
type WidthFunc func(b byte) int

// Fixed returns a WidthFunc for records that are always n bytes
func Fixed(n int) WidthFunc {
	return func(byte) int { return n }
}

// Scanner steps through a record stream. Successive calls to Scan return
// each record in turn until the sentinel is reached or an error occurs.
type Scanner struct {
	b        []byte
	sentinel byte
	width    WidthFunc

	offset int
	record []byte
	err    error
	done   bool
}

// Option configures a Scanner
type Option func(*Scanner)

// WithSentinel overrides the default Sentinel
func WithSentinel(sentinel byte) Option {
	return func(s *Scanner) {
		s.sentinel = sentinel
	}
}

// WithWidth overrides the default fixed RecordSize
func WithWidth(width WidthFunc) Option {
	return func(s *Scanner) {
		s.width = width
	}
}

// NewScanner returns a Scanner reading from b. The slice is never modified.
func NewScanner(b []byte, options ...Option) *Scanner {
	s := &Scanner{
		b:        b,
		sentinel: Sentinel,
		width:    Fixed(RecordSize),
		offset:   -1,
	}
	for _, o := range options {
		o(s)
	}
	return s
}

func (s *Scanner) fail(offset int) bool {
	s.err = &OffsetError{Offset: offset, Err: ErrTruncated}
	s.record = nil
	s.done = true
	return false
}

// Scan advances to the next record. It returns false at the sentinel or
// on error; Err distinguishes the two.
func (s *Scanner) Scan() bool {
	if s.done {
		return false
	}

	next := 0
	if s.offset >= 0 {
		next = s.offset + len(s.record)
	}

	if next >= len(s.b) {
		return s.fail(next)
	}

	if s.b[next] == s.sentinel {
		s.offset = next
		s.record = nil
		s.done = true
		return false
	}

	n := s.width(s.b[next])
	if n < 1 {
		n = 1
	}
	if next+n > len(s.b) {
		return s.fail(next)
	}

	s.offset = next
	s.record = s.b[next : next+n : next+n]

	return true
}

// Record returns the current record. The returned slice aliases the input.
func (s *Scanner) Record() []byte {
	return s.record
}

// Offset returns the offset of the current record, or of the sentinel once
// Scan has returned false without error
func (s *Scanner) Offset() int {
	return s.offset
}

// Err returns the first error encountered, if any
func (s *Scanner) Err() error {
	return s.err
}
