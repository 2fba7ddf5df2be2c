package error

import "fmt"

type UnknownCoinError struct {
	name string
}

type NonPositiveValueError struct {
	name  string
	value float64
}

func NewUnknownCoinError(name string) *UnknownCoinError {
	return &UnknownCoinError{name: name}
}

func NewNonPositiveValueError(name string, value float64) *NonPositiveValueError {
	return &NonPositiveValueError{name: name, value: value}
}

func (e *UnknownCoinError) Error() string {
	return fmt.Sprintf("unknown coin: %s", e.name)
}

func (e *NonPositiveValueError) Error() string {
	return fmt.Sprintf("%s must have a positive value, %v given", e.name, e.value)
}

type MalformedCoinError struct {
	length int
}

func NewMalformedCoinError(length int) *MalformedCoinError {
	return &MalformedCoinError{length: length}
}

func (e *MalformedCoinError) Error() string {
	return fmt.Sprintf("malformed coin encoding: %d bytes", e.length)
}
