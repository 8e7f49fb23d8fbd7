package interpreter

import "errors"

var (
	// ErrStackUnderflow is returned when a subroutine return is executed with an empty stack.
	ErrStackUnderflow = errors.New("stack underflow")
	// ErrStackOverflow is returned when a subroutine call is executed with a full stack.
	ErrStackOverflow = errors.New("stack overflow")
	// ErrAddressOutOfRange is returned for memory accesses past MaxAddress.
	ErrAddressOutOfRange = errors.New("address out of range")
)
