package clock

import (
	"testing"
	"time"
)

var epoch = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func TestFake_AfterFiresOnlyOncePastDeadline(t *testing.T) {
	c := Fake(epoch)
	ch := c.After(10 * time.Second)

	c.Advance(9 * time.Second)
	select {
	case <-ch:
		t.Fatal("After fired before its deadline")
	default:
	}

	c.Advance(time.Second)
	select {
	case got := <-ch:
		if !got.Equal(epoch.Add(10 * time.Second)) {
			t.Fatalf("After delivered %v, want %v", got, epoch.Add(10*time.Second))
		}
	default:
		t.Fatal("After did not fire at its deadline")
	}

	if n := c.pending(); n != 0 {
		t.Fatalf("pending = %d after firing, want 0", n)
	}
}

func TestFake_AfterNonPositiveIsImmediate(t *testing.T) {
	c := Fake(epoch)
	select {
	case <-c.After(0):
	default:
		t.Fatal("After(0) was not ready immediately")
	}
}

func TestFake_TickerDropsWhenUnread(t *testing.T) {
	c := Fake(epoch)
	tk := c.NewTicker(time.Second)

	c.Advance(5 * time.Second)
	<-tk.C
	select {
	case <-tk.C:
		t.Fatal("ticker buffered more than one tick")
	default:
	}

	tk.Stop()
	c.Advance(5 * time.Second)
	select {
	case <-tk.C:
		t.Fatal("stopped ticker still ticking")
	default:
	}
}

func TestFake_BlockUntilReturnsOnceWaitersRegistered(t *testing.T) {
	c := Fake(epoch)
	done := make(chan struct{})
	go func() {
		c.BlockUntil(2)
		close(done)
	}()

	c.After(time.Minute)
	c.NewTicker(time.Second)

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("BlockUntil did not return after two waiters were registered")
	}
}
