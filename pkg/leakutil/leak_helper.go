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

package leakutil

import (
	"testing"

	"go.uber.org/goleak"
)

// defaultOpts is the default ignore list for goleak.
var defaultOpts = []goleak.Option{
	// started by pingcap/log when a file logger is initialized.
	goleak.IgnoreTopFunction("gopkg.in/natefinch/lumberjack%2ev2.(*Logger).millRun"),
}

// VerifyNone marks the given test as failed if any extra goroutines are
// found by goleak. It uses the default ignore list plus options.
func VerifyNone(t *testing.T, options ...goleak.Option) {
	opts := append(append([]goleak.Option{}, defaultOpts...), options...)
	goleak.VerifyNone(t, opts...)
}

// SetUpLeakTest verifies that no goroutine is left running once all tests of
// the package finish.
func SetUpLeakTest(m *testing.M, options ...goleak.Option) {
	opts := append(append([]goleak.Option{}, defaultOpts...), options...)
	goleak.VerifyTestMain(m, opts...)
}
