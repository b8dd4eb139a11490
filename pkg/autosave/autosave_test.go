package autosave

import (
	"sync"
	"testing"
	"time"
)

type recorder struct {
	mu       sync.Mutex
	saves    int
	contents []string
	value    string
	ok       bool
}

func newRecorder() *recorder {
	return &recorder{ok: true}
}

func (r *recorder) setValue(v string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.value = v
}

func (r *recorder) save() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.ok {
		return false
	}
	r.saves++
	r.contents = append(r.contents, r.value)
	return true
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

func (r *recorder) last() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.contents) == 0 {
		return ""
	}
	return r.contents[len(r.contents)-1]
}

func TestDebounceCoalescesEdits(t *testing.T) {
	r := newRecorder()
	c := New(80*time.Millisecond, r.save)
	defer c.Close()

	// Three edits well inside the quiet period must produce exactly one
	// save, containing the content from the third edit.
	for _, v := range []string{"W", "We", "Went hiking"} {
		r.setValue(v)
		c.Edit()
		time.Sleep(20 * time.Millisecond)
	}

	time.Sleep(200 * time.Millisecond)
	if got := r.count(); got != 1 {
		t.Fatalf("saves = %d, want 1", got)
	}
	if got := r.last(); got != "Went hiking" {
		t.Fatalf("saved content = %q, want the last edit", got)
	}
	if c.State() != Idle {
		t.Fatalf("state = %v after successful save, want Idle", c.State())
	}
}

func TestFlushSavesImmediately(t *testing.T) {
	r := newRecorder()
	c := New(time.Hour, r.save)
	defer c.Close()

	r.setValue("manual")
	c.Edit()
	if !c.Flush() {
		t.Fatalf("flush reported failure")
	}
	if got := r.count(); got != 1 {
		t.Fatalf("saves = %d, want 1", got)
	}

	// The armed timer must have been cancelled by Flush.
	time.Sleep(50 * time.Millisecond)
	if got := r.count(); got != 1 {
		t.Fatalf("timer fired after flush: saves = %d", got)
	}
}

func TestFailedSaveStaysDirty(t *testing.T) {
	r := newRecorder()
	r.ok = false
	c := New(30*time.Millisecond, r.save)
	defer c.Close()

	c.Edit()
	time.Sleep(100 * time.Millisecond)
	if !c.Dirty() {
		t.Fatalf("failed save must leave the coordinator dirty")
	}

	// Recovery: the next edit retries and succeeds.
	r.mu.Lock()
	r.ok = true
	r.mu.Unlock()
	r.setValue("retried")
	c.Edit()
	time.Sleep(100 * time.Millisecond)
	if got := r.count(); got != 1 {
		t.Fatalf("saves = %d, want 1 after retry", got)
	}
	if c.Dirty() {
		t.Fatalf("coordinator still dirty after successful retry")
	}
}

func TestCloseCancelsPendingSave(t *testing.T) {
	r := newRecorder()
	c := New(30*time.Millisecond, r.save)

	c.Edit()
	c.Close()
	time.Sleep(100 * time.Millisecond)
	if got := r.count(); got != 0 {
		t.Fatalf("save fired after close: saves = %d", got)
	}
}

func TestIdleWithoutEdits(t *testing.T) {
	c := New(0, func() bool { return true })
	defer c.Close()
	if c.State() != Idle || c.Dirty() {
		t.Fatalf("fresh coordinator must be idle")
	}
}

func TestEditDuringInFlightSaveIsKept(t *testing.T) {
	var mu sync.Mutex
	var contents []string
	value := "first"

	// The save takes long enough that an edit can land while it runs.
	save := func() bool {
		mu.Lock()
		v := value
		mu.Unlock()
		time.Sleep(100 * time.Millisecond)
		mu.Lock()
		contents = append(contents, v)
		mu.Unlock()
		return true
	}

	c := New(150*time.Millisecond, save)
	defer c.Close()

	c.Edit()
	// The timer fires at 150ms; at 200ms the save is still running.
	time.Sleep(200 * time.Millisecond)

	mu.Lock()
	value = "second"
	mu.Unlock()
	c.Edit()

	if !c.Dirty() {
		t.Fatalf("edit during an in-flight save must mark the coordinator dirty")
	}

	// The first save completing must not clear the dirty flag, and the
	// re-armed timer must persist the second edit.
	time.Sleep(500 * time.Millisecond)

	mu.Lock()
	got := append([]string(nil), contents...)
	mu.Unlock()
	if len(got) != 2 || got[1] != "second" {
		t.Fatalf("contents = %v, want both edits saved", got)
	}
	if c.Dirty() || c.State() != Idle {
		t.Fatalf("state = %v dirty = %v after both saves, want clean", c.State(), c.Dirty())
	}
}
