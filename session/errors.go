// SPDX-License-Identifier: MIT

package session

import "errors"

// ErrBadAnswer indicates an interactive answer that is not a valid literal
// of the requested type.
var ErrBadAnswer = errors.New("session: invalid answer")
