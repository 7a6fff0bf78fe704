package assertion

import (
	"fmt"
	"strings"
)

// fakeT records failures instead of stopping the test.
type fakeT struct {
	errors  []string
	failed  bool
	helpers int
}

func (f *fakeT) Errorf(format string, args ...any) {
	f.errors = append(f.errors, fmt.Sprintf(format, args...))
}

func (f *fakeT) FailNow() {
	f.failed = true
}

func (f *fakeT) Helper() {
	f.helpers++
}

func (f *fakeT) output() string {
	return strings.Join(f.errors, "\n")
}
