package sync

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDebouncer_CollapsesBurst(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(50*time.Millisecond, func() { calls.Add(1) })

	for i := 0; i < 5; i++ {
		d.Schedule()
	}
	assert.True(t, d.Pending())

	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
	time.Sleep(150 * time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, d.Pending())
}

func TestDebouncer_RescheduleDelaysCall(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(100*time.Millisecond, func() { calls.Add(1) })

	d.Schedule()
	time.Sleep(60 * time.Millisecond)
	d.Schedule()
	time.Sleep(60 * time.Millisecond)

	// первый таймер уже истек бы, но был заменен
	assert.Equal(t, int32(0), calls.Load())
	assert.Eventually(t, func() bool { return calls.Load() == 1 }, time.Second, 5*time.Millisecond)
}

func TestDebouncer_Cancel(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(20*time.Millisecond, func() { calls.Add(1) })

	assert.False(t, d.Cancel())

	d.Schedule()
	assert.True(t, d.Cancel())
	assert.False(t, d.Pending())

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
}

func TestDebouncer_Flush(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(time.Hour, func() { calls.Add(1) })

	assert.False(t, d.Flush(), "nothing pending")
	assert.Equal(t, int32(0), calls.Load())

	d.Schedule()
	assert.True(t, d.Flush())
	assert.Equal(t, int32(1), calls.Load())
	assert.False(t, d.Pending())
}

func TestDebouncer_FlushWaitsForRunningCall(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	var finished atomic.Bool

	d := NewDebouncer(10*time.Millisecond, func() {
		close(started)
		<-release
		finished.Store(true)
	})
	d.Schedule()

	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}
	// таймер уже снят, ожидающего вызова нет, но fn еще работает
	assert.False(t, d.Pending())

	flushed := make(chan bool, 1)
	go func() { flushed <- d.Flush() }()

	select {
	case <-flushed:
		t.Fatal("Flush returned while the call was still running")
	case <-time.After(50 * time.Millisecond):
	}

	close(release)
	select {
	case ok := <-flushed:
		assert.False(t, ok, "nothing was pending")
		assert.True(t, finished.Load())
	case <-time.After(time.Second):
		t.Fatal("Flush did not return")
	}
}

func TestDebouncer_Stop(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(20*time.Millisecond, func() { calls.Add(1) })

	d.Schedule()
	d.Stop()
	d.Schedule()

	time.Sleep(60 * time.Millisecond)
	assert.Equal(t, int32(0), calls.Load())
	assert.False(t, d.Pending())
}

func TestNewDebouncer_DefaultDelay(t *testing.T) {
	d := NewDebouncer(0, func() {})
	assert.Equal(t, DefaultDebounce, d.delay)
}
