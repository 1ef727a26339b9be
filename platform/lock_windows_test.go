//go:build windows

package platform

import (
	"errors"
	"fmt"
	"os"
	"testing"
)

func TestTryLock_SecondAttemptFails(t *testing.T) {
	name := fmt.Sprintf(`Local\pasteprime-test-%d`, os.Getpid())

	first, err := TryLock(name)
	if err != nil {
		t.Fatalf("first TryLock() error = %v", err)
	}
	defer first.Release()

	if _, err := TryLock(name); !errors.Is(err, ErrAlreadyRunning) {
		t.Fatalf("second TryLock() error = %v, want ErrAlreadyRunning", err)
	}

	if err := first.Release(); err != nil {
		t.Fatalf("Release() error = %v", err)
	}
	if err := first.Release(); err != nil {
		t.Fatalf("second Release() error = %v", err)
	}
}

func TestTryLock_EmptyName(t *testing.T) {
	if _, err := TryLock(""); err == nil {
		t.Fatal("TryLock(\"\") should fail")
	}
}
