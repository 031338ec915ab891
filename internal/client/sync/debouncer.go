package sync

import (
	"sync"
	"time"
)

// DefaultDebounce задержка отправки коллекции после последнего изменения
const DefaultDebounce = 1000 * time.Millisecond

// Debouncer откладывает вызов fn на delay после последнего Schedule.
// В каждый момент ожидает не больше одного вызова: новый Schedule
// отменяет предыдущий.
type Debouncer struct {
	fn       func()
	timer    *time.Timer
	idle     *sync.Cond
	delay    time.Duration
	gen      uint64
	running  int
	mu       sync.Mutex
	stopped  bool
}

// NewDebouncer создает Debouncer. delay <= 0 заменяется на DefaultDebounce.
func NewDebouncer(delay time.Duration, fn func()) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	d := &Debouncer{delay: delay, fn: fn}
	d.idle = sync.NewCond(&d.mu)
	return d
}

// Schedule (пере)запускает отложенный вызов
func (d *Debouncer) Schedule() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.cancelLocked()
	gen := d.gen
	d.timer = time.AfterFunc(d.delay, func() { d.fire(gen) })
}

// Cancel отменяет ожидающий вызов. Возвращает true, если он был.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.cancelLocked()
}

// Pending сообщает, ожидает ли вызов
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Flush выполняет ожидающий вызов немедленно в текущей горутине и
// дожидается вызова, уже запущенного таймером.
// Возвращает false, если ничего не ожидало.
func (d *Debouncer) Flush() bool {
	flushed := d.Cancel()
	if flushed {
		d.fn()
	}
	d.wait()
	return flushed
}

// Stop отменяет ожидающий вызов и запрещает новые
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.cancelLocked()
	d.stopped = true
}

func (d *Debouncer) cancelLocked() bool {
	// смена поколения гасит таймер, который уже сработал и ждет мьютекс
	d.gen++
	if d.timer == nil {
		return false
	}
	d.timer.Stop()
	d.timer = nil
	return true
}

func (d *Debouncer) fire(gen uint64) {
	d.mu.Lock()
	if gen != d.gen || d.stopped {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	// вызов учитывается под мьютексом, поэтому Flush его не пропустит
	d.running++
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.running--
		d.idle.Broadcast()
		d.mu.Unlock()
	}()
	d.fn()
}

// wait дожидается вызовов, запущенных таймером
func (d *Debouncer) wait() {
	d.mu.Lock()
	defer d.mu.Unlock()
	for d.running > 0 {
		d.idle.Wait()
	}
}
