package domain

import "errors"

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrAlreadyEnrolled  = errors.New("student already signed up")
	ErrActivityFull     = errors.New("activity is full")
	ErrNotEnrolled      = errors.New("student not registered")
)
