package parser

import (
	"simple-list/internal/platform"
	platformerror "simple-list/internal/platform/error"
	"simple-list/internal/platform/helper"

	"github.com/hashicorp/go-msgpack/codec"
)

// EncodeList encodes the list contents head to tail as one msgpack array.
func EncodeList[T any](l *platform.SingleLinkedList[T]) ([]byte, error) {
	// Create a new msgpack handle
	handle := new(codec.MsgpackHandle)

	var encoded []byte
	enc := codec.NewEncoderBytes(&encoded, handle)
	if err := enc.Encode(l.Values()); err != nil {
		return nil, platformerror.NewStackTraceError(err.Error(), platformerror.BinaryWriteErrorCode)
	}

	helper.Log.Debugf("Encoded %d elements into %d bytes", l.Count(), len(encoded))
	return encoded, nil
}

// DecodeList rebuilds a list from EncodeList output, preserving order.
func DecodeList[T any](data []byte, equals platform.EqFunc[T]) (*platform.SingleLinkedList[T], error) {
	// Create a new msgpack handle
	handle := new(codec.MsgpackHandle)

	var values []T
	dec := codec.NewDecoderBytes(data, handle)
	if err := dec.Decode(&values); err != nil {
		return nil, platformerror.NewStackTraceError(err.Error(), platformerror.BinaryReadErrorCode)
	}

	l := platform.NewSingleLinkedList(equals)
	// appending through a cursor keeps the rebuild linear
	it := l.Iterator()
	for _, v := range values {
		it.Add(v)
	}

	helper.Log.Debugf("Decoded %d elements from %d bytes", l.Count(), len(data))
	return l, nil
}
