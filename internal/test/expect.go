package test

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// Expect compares two values and fails the test if they are different.
func Expect[T any](
	t FailerT,
	failMessage string,
	got, want T,
	transforms ...func(T) T,
) {
	t.Helper()

	for _, fn := range transforms {
		got = fn(got)
		want = fn(want)
	}

	if diff := cmp.Diff(
		want,
		got,
		cmpopts.EquateEmpty(),
	); diff != "" {
		t.Log(failMessage)
		t.Fatal(diff)
	}
}

// ExpectPanic calls fn and fails the test unless it panics with the given
// value.
func ExpectPanic(
	t FailerT,
	want any,
	fn func(),
) {
	t.Helper()

	defer func() {
		t.Helper()

		switch got := recover(); got {
		case nil:
			t.Fatal("expected fn() to panic, but it returned")
		case want:
			// success! fn panicked with the expected value
		default:
			t.Fatalf("unexpected panic value: got %v, want %v", got, want)
		}
	}()

	fn()
}
