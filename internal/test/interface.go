package test

import (
	"testing"

	"pgregory.net/rapid"
)

// FailerT is the subset of the [testing.TB] interface that is used by parts of
// this package that only need to cause tests to fail.
//
// It is satisfied by [*testing.T], [*testing.B] and [*rapid.T].
type FailerT interface {
	Helper()
	Log(...any)
	Logf(string, ...any)
	Fatal(...any)
	Fatalf(string, ...any)
	Error(...any)
	Errorf(string, ...any)
}

var (
	_ FailerT = (testing.TB)(nil)
	_ FailerT = (*rapid.T)(nil)
)
