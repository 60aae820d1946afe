// Package session runs the sqmatrix sequence over a loaded dataset:
// print both matrices, their sum, their product and the diagonal sum of the
// first one, then ask for a row swap, a column swap and an element update on
// the first matrix, printing it after each step.
//
// The sequence is written once, generic over the element type, and selected
// by the dataset's Kind. Bad indices in the interactive steps are logged and
// skipped; malformed or missing answers abort the session.
package session
