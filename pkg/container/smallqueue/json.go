// Copyright 2026 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// See the License for the specific language governing permissions and
// limitations under the License.

package smallqueue

import (
	"bytes"

	jsoniter "github.com/json-iterator/go"
	cerror "github.com/pingcap/smallqueue/pkg/errors"
)

var jsonAPI = jsoniter.Config{
	EscapeHTML:  false,
	SortMapKeys: false,
}.Froze()

// MarshalJSON encodes the queue as a JSON array in FIFO order. The value
// receiver lets queues held by value, e.g. as struct fields, encode too.
func (q SmallQueue[T]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	stream := jsonAPI.BorrowStream(&buf)
	defer jsonAPI.ReturnStream(stream)

	stream.WriteArrayStart()
	first := true
	q.rangeElems(func(elem T) {
		if !first {
			stream.WriteMore()
		}
		first = false
		stream.WriteVal(elem)
	})
	stream.WriteArrayEnd()

	if stream.Error != nil {
		return nil, cerror.WrapError(cerror.ErrEncodeFailed, stream.Error, "small queue")
	}
	if err := stream.Flush(); err != nil {
		return nil, cerror.WrapError(cerror.ErrEncodeFailed, err, "small queue")
	}
	return buf.Bytes(), nil
}

// UnmarshalJSON replaces the content of the queue with the elements of a JSON
// array. The queue is left unchanged if data cannot be decoded.
func (q *SmallQueue[T]) UnmarshalJSON(data []byte) error {
	var elems []T
	if err := jsonAPI.Unmarshal(data, &elems); err != nil {
		return cerror.WrapError(cerror.ErrDecodeFailed, err, "small queue")
	}

	decoded := New[T]()
	for _, elem := range elems {
		decoded.Add(elem)
	}
	*q = decoded
	return nil
}
