//go:build linux

package linux

import (
	"testing"
	"time"

	"golang.org/x/sys/unix"
)

// =============================================================================
// Waiter Tests
// =============================================================================

func newPipeWaiter(t *testing.T) (*waiter, int) {
	t.Helper()

	var fds [2]int
	if err := unix.Pipe2(fds[:], unix.O_CLOEXEC); err != nil {
		t.Fatalf("pipe2: %v", err)
	}
	t.Cleanup(func() { unix.Close(fds[1]) })

	w, err := newWaiter(fds[0])
	if err != nil {
		unix.Close(fds[0])
		t.Fatalf("newWaiter: %v", err)
	}
	t.Cleanup(func() {
		w.close()
		unix.Close(fds[0])
	})

	return w, fds[1]
}

func TestWaiter_ReadableReturns(t *testing.T) {
	w, wr := newPipeWaiter(t)

	if _, err := unix.Write(wr, []byte{1}); err != nil {
		t.Fatalf("write: %v", err)
	}

	done := make(chan bool, 1)
	go func() {
		woken, err := w.wait()
		if err != nil {
			t.Errorf("wait: %v", err)
		}
		done <- woken
	}()

	select {
	case woken := <-done:
		if woken {
			t.Error("wait reported wakeup for a readable descriptor")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("wait did not return for readable descriptor")
	}
}

func TestWaiter_WakeUnblocks(t *testing.T) {
	w, _ := newPipeWaiter(t)

	done := make(chan bool, 1)
	go func() {
		woken, err := w.wait()
		if err != nil {
			t.Errorf("wait: %v", err)
		}
		done <- woken
	}()

	// Give the goroutine a moment to block, then wake it.
	time.Sleep(10 * time.Millisecond)
	if err := w.wake(); err != nil {
		t.Fatalf("wake: %v", err)
	}

	select {
	case woken := <-done:
		if !woken {
			t.Error("wait did not report the wakeup")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("wake did not unblock wait")
	}
}
