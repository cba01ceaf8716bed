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
	"math/rand"
	"testing"

	edeque "github.com/edwingeng/deque"
	"github.com/stretchr/testify/require"
)

const testCaseSize = 10007

func drain[T any](d *Deque[T]) []T {
	res := make([]T, 0, d.Length())
	it := d.ForwardIterator()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		res = append(res, v)
	}
	return res
}

func TestDequeEmpty(t *testing.T) {
	t.Parallel()

	d := NewDequeDefault[int]()
	require.True(t, d.Empty())
	require.Equal(t, 0, d.Length())
	_, ok := d.Front()
	require.False(t, ok)
	_, ok = d.Back()
	require.False(t, ok)
	_, ok = d.PopFront()
	require.False(t, ok)
	_, ok = d.PopBack()
	require.False(t, ok)
	require.Empty(t, drain(d))
}

func TestDequePushPop(t *testing.T) {
	t.Parallel()

	d := NewDeque[int](4)
	for i := 0; i < 10; i++ {
		d.PushBack(i)
	}
	for i := -1; i > -6; i-- {
		d.PushFront(i)
	}
	require.Equal(t, 15, d.Length())
	require.Equal(t, []int{-5, -4, -3, -2, -1, 0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, drain(d))

	front, ok := d.Front()
	require.True(t, ok)
	require.Equal(t, -5, front)
	back, ok := d.Back()
	require.True(t, ok)
	require.Equal(t, 9, back)

	for i := -5; i < 3; i++ {
		v, ok := d.PopFront()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	for i := 9; i >= 3; i-- {
		v, ok := d.PopBack()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
	require.True(t, d.Empty())
	require.Equal(t, 1, d.blocks.Len())

	// the deque is reusable after being drained
	d.PushBack(42)
	v, ok := d.PopBack()
	require.True(t, ok)
	require.Equal(t, 42, v)
}

func TestDequeReleasesPoppedValues(t *testing.T) {
	t.Parallel()

	d := NewDeque[*int](2)
	for i := 0; i < 5; i++ {
		v := i
		d.PushBack(&v)
	}
	for i := 0; i < 4; i++ {
		_, ok := d.PopFront()
		require.True(t, ok)
	}
	require.Equal(t, 1, d.Length())
	for e := d.blocks.Front(); e != nil; e = e.Next() {
		for i, p := range e.Value {
			if e == d.blocks.Front() && i == d.front {
				require.NotNil(t, p)
				continue
			}
			require.Nil(t, p)
		}
	}
}

func TestDequeInvalidBlockLen(t *testing.T) {
	t.Parallel()

	require.Panics(t, func() {
		NewDeque[int](1)
	})
}

func TestDequeRandomAgainstModel(t *testing.T) {
	t.Parallel()

	d := NewDeque[int](8)
	model := edeque.NewDeque()
	for i := 0; i < testCaseSize; i++ {
		switch rand.Intn(4) {
		case 0:
			d.PushBack(i)
			model.PushBack(i)
		case 1:
			d.PushFront(i)
			model.PushFront(i)
		case 2:
			v, ok := d.PopFront()
			require.Equal(t, !model.Empty(), ok)
			if ok {
				require.Equal(t, model.PopFront().(int), v)
			}
		case 3:
			v, ok := d.PopBack()
			require.Equal(t, !model.Empty(), ok)
			if ok {
				require.Equal(t, model.PopBack().(int), v)
			}
		}
		require.Equal(t, model.Len(), d.Length())
	}

	expected := make([]int, 0, model.Len())
	for !model.Empty() {
		expected = append(expected, model.PopFront().(int))
	}
	require.Equal(t, expected, drain(d))
}

func BenchmarkDequePushPop(b *testing.B) {
	d := NewDequeDefault[int]()
	for i := 0; i < b.N; i++ {
		d.PushBack(i)
		d.PushBack(i)
		d.PopFront()
		d.PopFront()
	}
}
