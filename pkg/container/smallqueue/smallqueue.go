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
	"fmt"
	"strings"

	"github.com/pingcap/smallqueue/pkg/deque"
)

// manyBlockLen is the block length of the deque backing the many state.
const manyBlockLen = 16

type state uint8

const (
	stateEmpty state = iota
	stateSingle
	stateMany
)

func (s state) String() string {
	switch s {
	case stateEmpty:
		return "empty"
	case stateSingle:
		return "single"
	case stateMany:
		return "many"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// SmallQueue is a FIFO queue optimized for holding zero or one element.
// The zero value is an empty queue ready to use.
//
// Only the payload of the current state is kept: single is valid only in
// stateSingle and many is non-nil only in stateMany, where it always holds at
// least two elements.
//
// A SmallQueue holding two or more elements shares its deque with any copy,
// so a queue must not be copied after the first Add. Passing a queue by
// value to String or MarshalJSON is fine, they only read it.
type SmallQueue[T any] struct {
	state  state
	single T
	many   *deque.Deque[T]
}

// New creates an empty queue.
func New[T any]() SmallQueue[T] {
	return SmallQueue[T]{}
}

// Of creates a queue holding elem.
func Of[T any](elem T) SmallQueue[T] {
	return SmallQueue[T]{
		state:  stateSingle,
		single: elem,
	}
}

// Add inserts elem at the tail of the queue.
func (q *SmallQueue[T]) Add(elem T) {
	switch q.state {
	case stateEmpty:
		q.single = elem
		q.state = stateSingle
	case stateSingle:
		many := deque.NewDeque[T](manyBlockLen)
		many.PushBack(q.takeSingle())
		many.PushBack(elem)
		q.many = many
		q.state = stateMany
	case stateMany:
		q.many.PushBack(elem)
	}
}

// Remove removes and returns the head of the queue. It returns false if the
// queue is empty, in which case the queue is left untouched.
func (q *SmallQueue[T]) Remove() (T, bool) {
	switch q.state {
	case stateSingle:
		q.state = stateEmpty
		return q.takeSingle(), true
	case stateMany:
		// many always holds at least two elements, so neither pop can fail.
		result, _ := q.many.PopFront()
		if q.many.Length() == 1 {
			remaining, _ := q.many.PopFront()
			q.many = nil
			q.single = remaining
			q.state = stateSingle
		}
		return result, true
	}
	var zero T
	return zero, false
}

// takeSingle returns the inline element and clears its slot.
func (q *SmallQueue[T]) takeSingle() T {
	elem := q.single
	var zero T
	q.single = zero
	return elem
}

// IsEmpty indicates whether the queue is empty.
func (q *SmallQueue[T]) IsEmpty() bool {
	return q.state == stateEmpty
}

// Len returns the number of elements in the queue.
func (q *SmallQueue[T]) Len() int {
	switch q.state {
	case stateSingle:
		return 1
	case stateMany:
		return q.many.Length()
	}
	return 0
}

// Peek returns the head of the queue without removing it.
func (q *SmallQueue[T]) Peek() (T, bool) {
	switch q.state {
	case stateSingle:
		return q.single, true
	case stateMany:
		return q.many.Front()
	}
	var zero T
	return zero, false
}

// rangeElems calls fn on every element from head to tail.
func (q SmallQueue[T]) rangeElems(fn func(elem T)) {
	switch q.state {
	case stateSingle:
		fn(q.single)
	case stateMany:
		it := q.many.ForwardIterator()
		for elem, ok := it.Next(); ok; elem, ok = it.Next() {
			fn(elem)
		}
	}
}

// String renders the queue in FIFO order, e.g. "[]", "[1]" or "[1 2 3]".
// It has a value receiver so that fmt uses it for plain queue values too.
func (q SmallQueue[T]) String() string {
	var b strings.Builder
	b.WriteByte('[')
	first := true
	q.rangeElems(func(elem T) {
		if !first {
			b.WriteByte(' ')
		}
		first = false
		fmt.Fprint(&b, elem)
	})
	b.WriteByte(']')
	return b.String()
}
