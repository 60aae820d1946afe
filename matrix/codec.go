// SPDX-License-Identifier: MIT

// Package matrix - textual codec.
//
// Input: whitespace-separated numeric literals, row-major, n*n per matrix.
// Integer element kinds accept base-10 integer literals (range checked against
// the kind's bit size); floating-point kinds accept decimal literals.
//
// Output: n lines of n fields, each field right-aligned in a fixed-width
// column (DefaultCellWidth) and each line terminated by "\n".

package matrix

import (
	"bufio"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
)

const (
	ctxTokenizer = "Tokenizer"
	ctxDecode    = "Decode"
	ctxFill      = "Fill"
)

// ---------- Tokens ----------

// Tokenizer is a TokenSource over an io.Reader, splitting on whitespace.
// The scanner buffers ahead of the token it returns, so consumers of one
// stream (header reader, Decode calls, answer prompts) must share one Tokenizer.
type Tokenizer struct {
	sc    *bufio.Scanner
	count int // tokens handed out so far
}

var _ TokenSource = (*Tokenizer)(nil)

// NewTokenizer wraps r in a word-splitting scanner.
func NewTokenizer(r io.Reader) *Tokenizer {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	return &Tokenizer{sc: sc}
}

// Next returns the next token.
// Errors:
//   - ErrShortInput (also matching io.ErrUnexpectedEOF) once r is exhausted.
//   - the underlying read error, wrapped, if r fails.
func (t *Tokenizer) Next() (string, error) {
	if t.sc.Scan() {
		t.count++
		return t.sc.Text(), nil
	}
	if err := t.sc.Err(); err != nil {
		return "", fmt.Errorf("%s: read after %d tokens: %w", ctxTokenizer, t.count, err)
	}

	return "", fmt.Errorf("%s: input ended after %d tokens: %w: %w",
		ctxTokenizer, t.count, ErrShortInput, io.ErrUnexpectedEOF)
}

// Count returns how many tokens Next has returned so far.
func (t *Tokenizer) Count() int { return t.count }

// ---------- Element kinds ----------

// elementClass groups the reflect kinds a Number can have.
type elementClass int

const (
	classSigned elementClass = iota
	classUnsigned
	classFloat
)

// classOf reports the class and bit size of T.
func classOf[T Number]() (elementClass, int) {
	typ := reflect.TypeFor[T]()
	switch typ.Kind() {
	case reflect.Float32, reflect.Float64:
		return classFloat, typ.Bits()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return classUnsigned, typ.Bits()
	default:
		return classSigned, typ.Bits()
	}
}

// ParseElement parses one literal of element type T.
// Errors:
//   - ErrBadLiteral with the offending token and T's type name.
func ParseElement[T Number](token string) (T, error) {
	class, bits := classOf[T]()
	var (
		v   T
		err error
	)
	switch class {
	case classFloat:
		if !isDecimal(token) {
			err = strconv.ErrSyntax
			break
		}
		var f float64
		if f, err = strconv.ParseFloat(token, bits); err == nil {
			v = T(f)
		}
	case classUnsigned:
		var u uint64
		if u, err = strconv.ParseUint(token, 10, bits); err == nil {
			v = T(u)
		}
	default:
		var i int64
		if i, err = strconv.ParseInt(token, 10, bits); err == nil {
			v = T(i)
		}
	}
	if err != nil {
		return v, fmt.Errorf("%w %q for %s", ErrBadLiteral, token, reflect.TypeFor[T]())
	}

	return v, nil
}

// isDecimal reports whether token is a plain decimal literal:
// [+-] digits [. digits] [(e|E) [+-] digits], with at least one mantissa
// digit on either side of the point. It rejects what strconv.ParseFloat
// accepts beyond that (nan, inf, hex mantissas, underscores).
func isDecimal(token string) bool {
	i, n := 0, len(token)
	digits := func() int {
		start := i
		for i < n && token[i] >= '0' && token[i] <= '9' {
			i++
		}
		return i - start
	}

	if i < n && (token[i] == '+' || token[i] == '-') {
		i++
	}
	mantissa := digits()
	if i < n && token[i] == '.' {
		i++
		mantissa += digits()
	}
	if mantissa == 0 {
		return false
	}
	if i < n && (token[i] == 'e' || token[i] == 'E') {
		i++
		if i < n && (token[i] == '+' || token[i] == '-') {
			i++
		}
		if digits() == 0 {
			return false
		}
	}

	return i == n
}

// FormatElement renders v: integers in base 10, floats in %g style with
// precision significant digits (trailing zeros dropped, exponent for very
// large or small magnitudes).
func FormatElement[T Number](v T, precision int) string {
	class, bits := classOf[T]()
	switch class {
	case classFloat:
		return strconv.FormatFloat(float64(v), 'g', precision, bits)
	case classUnsigned:
		return strconv.FormatUint(uint64(v), 10)
	default:
		return strconv.FormatInt(int64(v), 10)
	}
}

// ---------- Decode ----------

// Decode reads n*n tokens from src in row-major order into a new n×n matrix.
// Implementation:
//   - Stage 1: NewSquare(n) (ErrInvalidDimensions for n<=0).
//   - Stage 2: Fill from src.
//
// Errors:
//   - ErrInvalidDimensions, ErrShortInput, ErrBadLiteral (wrapped with the cell).
//
// No partially filled matrix is ever returned.
// Complexity: O(n²).
func Decode[T Number](src TokenSource, n int) (*Square[T], error) {
	m, err := NewSquare[T](n)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ctxDecode, err)
	}
	if err = m.Fill(src); err != nil {
		return nil, err
	}

	return m, nil
}

// Fill overwrites every cell of m with the next n*n tokens from src.
// Values are staged in a scratch buffer and committed only once all n*n
// tokens parsed, so on error m is unchanged.
// Complexity: Time O(n²), Space O(n²).
func (m *Square[T]) Fill(src TokenSource) error {
	if src == nil {
		return fmt.Errorf("%s: nil token source: %w", ctxFill, ErrShortInput)
	}

	staged := make([]T, len(m.data))
	var (
		tok string
		err error
	)
	for idx := range staged {
		if tok, err = src.Next(); err != nil {
			return fmt.Errorf("%s: cell (%d,%d): %w", ctxFill, idx/m.n, idx%m.n, err)
		}
		if staged[idx], err = ParseElement[T](tok); err != nil {
			return fmt.Errorf("%s: cell (%d,%d): %w", ctxFill, idx/m.n, idx%m.n, err)
		}
	}
	copy(m.data, staged)

	return nil
}

// ---------- Render ----------

// Render writes the matrix to w: n lines, each with n right-aligned
// fixed-width fields.
// Errors: whatever w.Write returns.
// Complexity: O(n²).
func (m *Square[T]) Render(w io.Writer, opts ...RenderOption) error {
	_, err := io.WriteString(w, m.render(gatherRenderOptions(opts...)))

	return err
}

// render builds the textual form for the resolved options.
func (m *Square[T]) render(o RenderOptions) string {
	var b strings.Builder
	b.Grow(m.n * (m.n*o.cellWidth + 1))
	var i, j, base int
	for i = 0; i < m.n; i++ { // iterate rows deterministically
		base = i * m.n
		for j = 0; j < m.n; j++ {
			fmt.Fprintf(&b, "%*s", o.cellWidth, FormatElement(m.data[base+j], o.precision))
		}
		b.WriteByte('\n')
	}

	return b.String()
}
