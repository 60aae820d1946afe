// SPDX-License-Identifier: MIT

package session

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/sqmatrix/loader"
	"github.com/katalvlaran/sqmatrix/matrix"
)

// Options configures a Session. The zero value is a quiet, unstyled,
// non-interactive session with default rendering.
type Options struct {
	// Interactive writes prompt text before each answer is read.
	Interactive bool

	// Styled renders headings with lipgloss (for terminals).
	Styled bool

	// CellWidth and Precision feed matrix.WithCellWidth / WithPrecision;
	// zero keeps the matrix defaults, negative values panic in New.
	CellWidth int
	Precision int

	// Logger receives skipped-operation warnings and debug events.
	// nil discards them.
	Logger *slog.Logger
}

// Session holds the answer stream and output of one run.
type Session struct {
	answers matrix.TokenSource
	out     io.Writer
	opts    Options
	logger  *slog.Logger
	render  []matrix.RenderOption
	heading lipgloss.Style

	err error // first write error; later writes are skipped
}

// New creates a Session reading answers from in and writing results to out.
func New(in io.Reader, out io.Writer, opts Options) *Session {
	return NewWithSource(matrix.NewTokenizer(in), out, opts)
}

// NewWithSource is New over an existing token stream, for callers that read
// the input file name or the dataset from the same stream first.
func NewWithSource(answers matrix.TokenSource, out io.Writer, opts Options) *Session {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if opts.Precision == 0 {
		opts.Precision = matrix.DefaultPrecision
	}

	render := []matrix.RenderOption{matrix.WithPrecision(opts.Precision)}
	if opts.CellWidth != 0 {
		render = append(render, matrix.WithCellWidth(opts.CellWidth))
	}

	return &Session{
		answers: answers,
		out:     out,
		opts:    opts,
		logger:  logger,
		render:  render,
		heading: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	}
}

// Run executes the full sequence for ds, choosing the element type from
// ds.Header.Kind.
func (s *Session) Run(ds *loader.Dataset) error {
	s.logger.Debug("session starting",
		"source", ds.Source,
		"dimension", ds.Header.Dimension,
		"kind", ds.Header.Kind.String(),
	)

	switch ds.Header.Kind {
	case loader.KindInteger:
		return run[int64](s, ds)
	case loader.KindFloat:
		return run[float64](s, ds)
	default:
		return fmt.Errorf("kind %d: %w", int(ds.Header.Kind), loader.ErrUnsupportedKind)
	}
}

// run is the whole sequence for one element type.
func run[T matrix.Number](s *Session, ds *loader.Dataset) error {
	first, second, err := loader.Pair[T](ds)
	if err != nil {
		return err
	}
	n := first.Dimension()

	show(s, "Matrix 1:", first)
	show(s, "Matrix 2:", second)

	sum, err := first.Add(second)
	if err != nil {
		return err
	}
	show(s, "Added Matrix (Matrix1 + Matrix2):", sum)

	product, err := first.Mul(second)
	if err != nil {
		return err
	}
	show(s, "Multiplied Matrix (Matrix1 x Matrix2):", product)

	s.printf("\nSum of main and secondary diagonal elements (Matrix1): %s\n",
		matrix.FormatElement(first.DiagonalSum(), s.opts.Precision))

	// Row swap.
	r1, err := ask[int](s, "row index1", fmt.Sprintf("Enter row index1 to swap (0 to %d): ", n-1))
	if err != nil {
		return err
	}
	r2, err := ask[int](s, "row index2", fmt.Sprintf("Enter row index2 to swap (0 to %d): ", n-1))
	if err != nil {
		return err
	}
	if err = first.SwapRows(r1, r2); err != nil {
		s.logger.Warn("row swap skipped", "row1", r1, "row2", r2, "dimension", n, "error", err)
	}
	show(s, fmt.Sprintf("Matrix 1 after swapping rows %d and %d:", r1, r2), first)

	// Column swap.
	s.prompt("For matrix 1\n")
	c1, err := ask[int](s, "column index1", fmt.Sprintf("Enter column index1 to swap (0 to %d): ", n-1))
	if err != nil {
		return err
	}
	c2, err := ask[int](s, "column index2", fmt.Sprintf("Enter column index2 to swap (0 to %d): ", n-1))
	if err != nil {
		return err
	}
	if err = first.SwapColumns(c1, c2); err != nil {
		s.logger.Warn("column swap skipped", "column1", c1, "column2", c2, "dimension", n, "error", err)
	}
	show(s, fmt.Sprintf("Matrix 1 after swapping columns %d and %d:", c1, c2), first)

	// Element update.
	s.prompt("For matrix 1\n")
	row, err := ask[int](s, "row index", fmt.Sprintf("Enter row index (0 to %d): ", n-1))
	if err != nil {
		return err
	}
	col, err := ask[int](s, "column index", fmt.Sprintf("Enter column index (0 to %d): ", n-1))
	if err != nil {
		return err
	}
	value, err := ask[T](s, "new value", "Enter new value: ")
	if err != nil {
		return err
	}
	if err = first.UpdateElement(row, col, value); err != nil {
		s.logger.Warn("element update skipped", "row", row, "column", col, "dimension", n, "error", err)
	}
	show(s, "Updated Matrix:", first)

	s.logger.Debug("session finished", "dimension", n)

	return s.err
}

// ask writes prompt (interactive only) and reads one answer of type T.
func ask[T matrix.Number](s *Session, what, prompt string) (T, error) {
	var zero T
	s.prompt(prompt)
	if s.err != nil {
		return zero, s.err
	}

	tok, err := s.answers.Next()
	if err != nil {
		return zero, fmt.Errorf("reading %s: %w", what, err)
	}
	v, err := matrix.ParseElement[T](tok)
	if err != nil {
		return zero, fmt.Errorf("%w: %s %q", ErrBadAnswer, what, tok)
	}

	return v, nil
}

// show prints a blank line, the heading and the rendered matrix.
func show[T matrix.Number](s *Session, title string, m *matrix.Square[T]) {
	s.printf("\n%s\n", s.title(title))
	if s.err == nil {
		s.err = m.Render(s.out, s.render...)
	}
}

// prompt writes text only in interactive mode.
func (s *Session) prompt(text string) {
	if s.opts.Interactive {
		s.printf("%s", text)
	}
}

// title styles a heading when the session is styled.
func (s *Session) title(text string) string {
	if s.opts.Styled {
		return s.heading.Render(text)
	}

	return text
}

// printf writes to out unless an earlier write failed.
func (s *Session) printf(format string, args ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.out, format, args...)
}
