package pkg

import (
	"errors"
	"fmt"
	"testing"

	"golang.org/x/xerrors"
)

func TestSentinelErrorsDistinct(t *testing.T) {
	sentinels := []error{
		ErrAlreadyRunning,
		ErrNotRunning,
		ErrSubscription,
		ErrEnumeration,
		ErrMonitor,
		ErrClosed,
		ErrCancelled,
		ErrContextClosed,
	}
	for i, a := range sentinels {
		for j, b := range sentinels {
			if i != j && errors.Is(a, b) {
				t.Errorf("sentinel %v must not match %v", a, b)
			}
		}
	}
}

func TestSentinelMatchThroughWrap(t *testing.T) {
	cause := errors.New("EACCES")
	err := fmt.Errorf("%w: bind kernel broadcast group: %w", ErrSubscription, cause)

	if !errors.Is(err, ErrSubscription) {
		t.Error("wrapped error must match ErrSubscription")
	}
	if !errors.Is(err, cause) {
		t.Error("wrapped error must preserve the platform cause")
	}
	if errors.Is(err, ErrEnumeration) {
		t.Error("wrapped error must not match unrelated sentinels")
	}
}

func TestSentinelMatchThroughXerrorsWrap(t *testing.T) {
	err := xerrors.Errorf("startup subscription did not complete: %w", ErrMonitor)

	if !errors.Is(err, ErrMonitor) {
		t.Error("wrapped error must match ErrMonitor")
	}
}
