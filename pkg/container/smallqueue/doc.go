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

// Package smallqueue provides SmallQueue, a FIFO queue that stores zero or one
// element inline and only allocates once a second element is added.
//
// A SmallQueue is always in exactly one of three states:
//
//	empty   no element
//	single  one element stored in the queue value itself
//	many    two or more elements kept in a heap-backed deque
//
// The deque is created on the single -> many transition and dropped again as
// soon as the queue shrinks back to one element, so a queue that mostly holds
// zero or one element never keeps heap memory around.
//
// SmallQueue is not thread-safe. Callers sharing a queue between goroutines
// must guard it with their own lock.
package smallqueue
