package errors

import stderrors "errors"

// Is, As and New forward to the standard library so callers can import this
// package in place of "errors".
func Is(err, target error) bool { return stderrors.Is(err, target) }

func As(err error, target any) bool { return stderrors.As(err, target) }

func New(text string) error { return stderrors.New(text) }
