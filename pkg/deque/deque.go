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

package deque

import (
	"github.com/pingcap/log"
	"github.com/pingcap/smallqueue/pkg/list"
	"go.uber.org/zap"
)

const defaultBlockLen = 128

// Deque is a double-ended queue implemented by a doubly linked list of
// fixed-size blocks. Attention, it's not thread-safe.
type Deque[T any] struct {
	blockLen int
	zero     T

	blocks *list.List[[]T]
	length int

	// front and back point to the first and last value of the deque.
	front int
	back  int
}

// NewDequeDefault creates a Deque with the default block length.
func NewDequeDefault[T any]() *Deque[T] {
	return NewDeque[T](defaultBlockLen)
}

// NewDeque creates a Deque whose blocks hold blockLen values each.
// blockLen must be at least 2.
func NewDeque[T any](blockLen int) *Deque[T] {
	if blockLen < 2 {
		log.Panic("deque block length must be at least 2", zap.Int("blockLen", blockLen))
	}
	d := &Deque[T]{
		blockLen: blockLen,
		blocks:   list.NewList[[]T](),
	}
	d.blocks.PushBack(make([]T, blockLen))
	d.resetEmpty()
	return d
}

// Length returns the number of values in the deque.
func (d *Deque[T]) Length() int {
	return d.length
}

// Empty indicates whether the deque is empty.
func (d *Deque[T]) Empty() bool {
	return d.length == 0
}

// resetEmpty centers the cursors in the only remaining block, so that both
// ends can grow before a new block is needed.
func (d *Deque[T]) resetEmpty() {
	d.front = d.blockLen / 2
	d.back = d.blockLen/2 - 1
}

// Front returns the first value.
func (d *Deque[T]) Front() (T, bool) {
	if d.length == 0 {
		return d.zero, false
	}
	return d.blocks.Front().Value[d.front], true
}

// Back returns the last value.
func (d *Deque[T]) Back() (T, bool) {
	if d.length == 0 {
		return d.zero, false
	}
	return d.blocks.Back().Value[d.back], true
}

// PushBack appends a value at the back.
func (d *Deque[T]) PushBack(item T) {
	block := d.blocks.Back().Value
	if d.back == d.blockLen-1 {
		// the last block is full
		block = make([]T, d.blockLen)
		d.blocks.PushBack(block)
		d.back = -1
	}

	d.back++
	block[d.back] = item
	d.length++
}

// PushFront prepends a value at the front.
func (d *Deque[T]) PushFront(item T) {
	block := d.blocks.Front().Value
	if d.front == 0 {
		// the first block is full
		block = make([]T, d.blockLen)
		d.blocks.PushFront(block)
		d.front = d.blockLen
	}

	d.front--
	block[d.front] = item
	d.length++
}

// PopFront removes and returns the first value.
func (d *Deque[T]) PopFront() (T, bool) {
	if d.length == 0 {
		return d.zero, false
	}

	le := d.blocks.Front()
	block := le.Value
	item := block[d.front]
	// don't pin the popped value
	block[d.front] = d.zero
	d.front++
	d.length--

	switch {
	case d.length == 0:
		d.resetEmpty()
	case d.front == d.blockLen:
		d.blocks.Remove(le)
		d.front = 0
	}
	return item, true
}

// PopBack removes and returns the last value.
func (d *Deque[T]) PopBack() (T, bool) {
	if d.length == 0 {
		return d.zero, false
	}

	le := d.blocks.Back()
	block := le.Value
	item := block[d.back]
	block[d.back] = d.zero
	d.back--
	d.length--

	switch {
	case d.length == 0:
		d.resetEmpty()
	case d.back == -1:
		d.blocks.Remove(le)
		d.back = d.blockLen - 1
	}
	return item, true
}

// ForwardIter iterates a deque from front to back. It must not be used after
// the deque is modified.
type ForwardIter[T any] struct {
	block  *list.Element[[]T]
	length int
	idx    int
}

// ForwardIterator returns an iterator positioned at the front of the deque.
func (d *Deque[T]) ForwardIterator() *ForwardIter[T] {
	return &ForwardIter[T]{
		block:  d.blocks.Front(),
		length: d.length,
		idx:    d.front,
	}
}

// Next returns the next value, or false once the iterator is exhausted.
func (it *ForwardIter[T]) Next() (T, bool) {
	var zero T
	if it.length == 0 {
		return zero, false
	}

	block := it.block.Value
	item := block[it.idx]
	it.idx++
	it.length--

	if it.idx == len(block) && it.length > 0 {
		it.block = it.block.Next()
		it.idx = 0
	}
	return item, true
}
