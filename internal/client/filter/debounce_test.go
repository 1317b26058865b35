package filter

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu    sync.Mutex
	terms []string
	fired chan struct{}
}

func newRecorder() *recorder {
	return &recorder{fired: make(chan struct{}, 16)}
}

func (r *recorder) fn(term string) {
	r.mu.Lock()
	r.terms = append(r.terms, term)
	r.mu.Unlock()
	r.fired <- struct{}{}
}

func (r *recorder) got() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.terms...)
}

func TestDebouncer_OnlyLatestFires(t *testing.T) {
	rec := newRecorder()
	d := NewDebouncer(20*time.Millisecond, rec.fn)
	defer d.Stop()

	d.Schedule("a")
	d.Schedule("al")
	d.Schedule("ali")

	select {
	case <-rec.fired:
	case <-time.After(time.Second):
		t.Fatal("debounced function never ran")
	}

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, []string{"ali"}, rec.got())
}

func TestDebouncer_SeparateBursts(t *testing.T) {
	rec := newRecorder()
	d := NewDebouncer(10*time.Millisecond, rec.fn)
	defer d.Stop()

	d.Schedule("x")
	<-rec.fired
	d.Schedule("y")
	<-rec.fired

	assert.Equal(t, []string{"x", "y"}, rec.got())
}

func TestDebouncer_StopCancels(t *testing.T) {
	rec := newRecorder()
	d := NewDebouncer(20*time.Millisecond, rec.fn)

	d.Schedule("a")
	d.Stop()
	d.Schedule("b")

	time.Sleep(80 * time.Millisecond)
	require.Empty(t, rec.got())
}

func TestNewDebouncer_DefaultDelay(t *testing.T) {
	d := NewDebouncer(0, func(string) {})
	assert.Equal(t, DefaultDelay, d.delay)
}
