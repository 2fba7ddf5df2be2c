package error

import (
	"fmt"
	"runtime"
)

type Code uint32

const (
	InvalidPositionErrorCode Code = iota
	EmptyListErrorCode
	IndexOutOfRangeErrorCode
	EndOfSequenceErrorCode
	UnsupportedBackwardTraversalErrorCode
	IllegalCursorStateErrorCode
	BinaryWriteErrorCode
	BinaryReadErrorCode
	ReadConfigErrorCode
	ParseConfigErrorCode
	InvalidConfigErrorCode
)

var codeNames = map[Code]string{
	InvalidPositionErrorCode:              "InvalidPosition",
	EmptyListErrorCode:                    "EmptyList",
	IndexOutOfRangeErrorCode:              "IndexOutOfRange",
	EndOfSequenceErrorCode:                "EndOfSequence",
	UnsupportedBackwardTraversalErrorCode: "UnsupportedBackwardTraversal",
	IllegalCursorStateErrorCode:           "IllegalCursorState",
	BinaryWriteErrorCode:                  "BinaryWrite",
	BinaryReadErrorCode:                   "BinaryRead",
	ReadConfigErrorCode:                   "ReadConfig",
	ParseConfigErrorCode:                  "ParseConfig",
	InvalidConfigErrorCode:                "InvalidConfig",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("Code(%d)", uint32(c))
}

// Sentinels for errors.Is. Every StackTraceError matches the sentinel with the same code.
var (
	ErrInvalidPosition              = &StackTraceError{Msg: "invalid position", ErrorCode: InvalidPositionErrorCode}
	ErrEmptyList                    = &StackTraceError{Msg: "list is empty", ErrorCode: EmptyListErrorCode}
	ErrIndexOutOfRange              = &StackTraceError{Msg: "index out of range", ErrorCode: IndexOutOfRangeErrorCode}
	ErrEndOfSequence                = &StackTraceError{Msg: "no more elements", ErrorCode: EndOfSequenceErrorCode}
	ErrUnsupportedBackwardTraversal = &StackTraceError{Msg: "previous is not supported by a singly linked list", ErrorCode: UnsupportedBackwardTraversalErrorCode}
	ErrIllegalCursorState           = &StackTraceError{Msg: "next must be called before remove or set", ErrorCode: IllegalCursorStateErrorCode}
)

// StackTraceError wraps any error and captures a stack trace
type StackTraceError struct {
	Msg       string
	Stack     string
	ErrorCode Code
}

func NewStackTraceError(msg string, errorCode Code) *StackTraceError {
	buf := make([]byte, 1024*8)
	n := runtime.Stack(buf, false)
	return &StackTraceError{Msg: msg, Stack: string(buf[:n]), ErrorCode: errorCode}
}

func NewInvalidPositionError(position, size int) *StackTraceError {
	return NewStackTraceError(fmt.Sprintf("invalid position %d for list of size %d", position, size), InvalidPositionErrorCode)
}

func NewIndexOutOfRangeError(index, size int) *StackTraceError {
	return NewStackTraceError(fmt.Sprintf("index %d out of range [0, %d]", index, size), IndexOutOfRangeErrorCode)
}

func (e *StackTraceError) Error() string {
	return e.Msg
}

// Trace renders the message followed by the captured stack.
func (e *StackTraceError) Trace() string {
	return fmt.Sprintf("%s\nStack trace:\n%s", e.Msg, e.Stack)
}

func (e *StackTraceError) Is(target error) bool {
	t, ok := target.(*StackTraceError)
	return ok && t.ErrorCode == e.ErrorCode
}
