// SPDX-License-Identifier: MIT

package loader

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/sqmatrix/matrix"
)

// MaxDimension bounds N so that 2·N² element tokens cannot overflow int.
const MaxDimension = 1 << 15

// Header is the first line of an input file.
type Header struct {
	Dimension int  // N, 0 < N <= MaxDimension
	Kind      Kind // element kind for both matrices
}

// Dataset is the result of one read pass: the validated header plus the raw
// literals of both matrices. It holds no file handle.
type Dataset struct {
	Header Header
	Source string // path passed to Load, empty for Read

	tokens []string // exactly 2·N² literals, matrix 1 first
}

// Load opens path, reads it with Read and closes it before returning,
// whether or not the read succeeded.
// Errors:
//   - ErrOpen (wrapping the os error) when the file cannot be opened.
//   - everything Read returns, prefixed with path.
func Load(path string) (ds *Dataset, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrOpen, path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			ds, err = nil, fmt.Errorf("%s: close: %w", path, cerr)
		}
	}()

	if ds, err = Read(f); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	ds.Source = path

	return ds, nil
}

// Read consumes the header and 2·N² element tokens from r.
// It is Scan over a fresh matrix.Tokenizer.
func Read(r io.Reader) (*Dataset, error) {
	return Scan(matrix.NewTokenizer(r))
}

// Scan consumes the header and 2·N² element tokens from src. Tokens after
// the second matrix stay in src, so a caller can keep reading answers from
// the same stream.
// Implementation:
//   - Stage 1: two header tokens, both base-10 integers.
//   - Stage 2: N must be in (0, MaxDimension]; the flag must be 0 or 1.
//   - Stage 3: collect 2·N² tokens; extra tokens are left unread.
//
// Errors:
//   - ErrMalformedHeader, matrix.ErrInvalidDimensions, ErrUnsupportedKind,
//     matrix.ErrShortInput (naming which matrix ran out).
//
// Literal syntax is not checked here; Pair does that once the element type is known.
func Scan(tok matrix.TokenSource) (*Dataset, error) {
	h, err := readHeader(tok)
	if err != nil {
		return nil, err
	}

	cells := h.Dimension * h.Dimension
	tokens := make([]string, 0, min(2*cells, 4096))
	var t string
	for i := 0; i < 2*cells; i++ {
		if t, err = tok.Next(); err != nil {
			return nil, fmt.Errorf("matrix %d: %w", i/cells+1, err)
		}
		tokens = append(tokens, t)
	}

	return &Dataset{Header: h, tokens: tokens}, nil
}

// readHeader parses "N kind". N is validated before the kind.
func readHeader(tok matrix.TokenSource) (Header, error) {
	var vals [2]int
	for i, name := range [2]string{"dimension", "type flag"} {
		t, err := tok.Next()
		if err != nil {
			return Header{}, fmt.Errorf("%w: missing %s: %w", ErrMalformedHeader, name, err)
		}
		if vals[i], err = strconv.Atoi(t); err != nil {
			return Header{}, fmt.Errorf("%w: %s %q is not an integer", ErrMalformedHeader, name, t)
		}
	}

	n := vals[0]
	if n <= 0 {
		return Header{}, fmt.Errorf("header dimension %d: %w", n, matrix.ErrInvalidDimensions)
	}
	if n > MaxDimension {
		return Header{}, fmt.Errorf("%w: dimension %d exceeds %d", ErrMalformedHeader, n, MaxDimension)
	}
	kind, err := ParseKind(vals[1])
	if err != nil {
		return Header{}, err
	}

	return Header{Dimension: n, Kind: kind}, nil
}

// Pair decodes both matrices of ds as element type T.
// Errors:
//   - matrix.ErrBadLiteral when a literal does not fit T (e.g. "2.5" for int64),
//     prefixed with "matrix 1" or "matrix 2".
func Pair[T matrix.Number](ds *Dataset) (first, second *matrix.Square[T], err error) {
	n := ds.Header.Dimension
	src := &sliceSource{tokens: ds.tokens}

	if first, err = matrix.Decode[T](src, n); err != nil {
		return nil, nil, fmt.Errorf("matrix 1: %w", err)
	}
	if second, err = matrix.Decode[T](src, n); err != nil {
		return nil, nil, fmt.Errorf("matrix 2: %w", err)
	}

	return first, second, nil
}

// sliceSource replays pre-read tokens as a matrix.TokenSource.
type sliceSource struct {
	tokens []string
	pos    int
}

func (s *sliceSource) Next() (string, error) {
	if s.pos >= len(s.tokens) {
		return "", fmt.Errorf("after %d tokens: %w", s.pos, matrix.ErrShortInput)
	}
	t := s.tokens[s.pos]
	s.pos++

	return t, nil
}
