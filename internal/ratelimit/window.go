package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/Gunvolt24/dayplan/internal/domain"
	"github.com/Gunvolt24/dayplan/internal/ports"
	"github.com/Gunvolt24/dayplan/pkg/metrics"
)

// Проверка, что SlidingWindow удовлетворяет порту RateGovernor.
var _ ports.RateGovernor = (*SlidingWindow)(nil)

// SlidingWindow — ограничитель исходящих вызовов по скользящему окну.
// Инвариант: в любой момент число отметок внутри окна не превышает maxCalls.
// Отметки старше окна отбрасываются лениво при каждой проверке.
// Состояние живёт только в памяти процесса.
type SlidingWindow struct {
	maxCalls int
	window   time.Duration

	calls []time.Time // упорядочены по возрастанию; calls[0] — старейшая

	now func() time.Time

	mu sync.Mutex
}

// NewSlidingWindow — конструктор. Неположительные параметры заменяются
// значениями по умолчанию (100 вызовов / 60 секунд).
func NewSlidingWindow(maxCalls int, window time.Duration) *SlidingWindow {
	if maxCalls <= 0 {
		maxCalls = 100
	}
	if window <= 0 {
		window = time.Minute
	}
	return &SlidingWindow{
		maxCalls: maxCalls,
		window:   window,
		now:      time.Now,
	}
}

// TryAcquire — true, если слот свободен; вызов при этом учитывается.
func (w *SlidingWindow) TryAcquire() bool {
	now := w.now()

	w.mu.Lock()
	defer w.mu.Unlock()

	w.pruneLocked(now)
	if len(w.calls) < w.maxCalls {
		w.calls = append(w.calls, now)
		return true
	}
	return false
}

// Acquire — блокирует до освобождения слота либо отмены контекста.
// Длительность ожидания: window - (now - oldest), не меньше нуля.
func (w *SlidingWindow) Acquire(ctx context.Context) error {
	for {
		if w.TryAcquire() {
			return nil
		}

		wait := w.waitDuration()
		metrics.RateWaits.Inc()

		timer := time.NewTimer(wait)
		select {
		case <-ctx.Done():
			timer.Stop()
			return ctx.Err()
		case <-timer.C:
		}
	}
}

// Status — текущее число вызовов в окне и остаток ёмкости.
func (w *SlidingWindow) Status() domain.RateStatus {
	now := w.now()

	w.mu.Lock()
	defer w.mu.Unlock()

	w.pruneLocked(now)
	current := len(w.calls)
	return domain.RateStatus{
		CurrentCalls:   current,
		MaxCalls:       w.maxCalls,
		WindowSeconds:  w.window.Seconds(),
		CallsRemaining: w.maxCalls - current,
	}
}

// waitDuration — сколько ждать до выхода старейшей отметки из окна.
func (w *SlidingWindow) waitDuration() time.Duration {
	now := w.now()

	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.calls) == 0 {
		return 0
	}
	wait := w.window - now.Sub(w.calls[0])
	if wait < 0 {
		wait = 0
	}
	return wait
}

// pruneLocked — отбрасывает отметки старше окна. Вызывается под мьютексом.
func (w *SlidingWindow) pruneLocked(now time.Time) {
	cutoff := now.Add(-w.window)
	i := 0
	for i < len(w.calls) && !w.calls[i].After(cutoff) {
		i++
	}
	if i > 0 {
		w.calls = append(w.calls[:0], w.calls[i:]...)
	}
}
