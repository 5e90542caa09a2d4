package app

import "errors"

// ErrAnswerMismatch is returned by Run when a unit printed an answer that
// differs from the configured known answer.
var ErrAnswerMismatch = errors.New("answer mismatch")
