package ports

import (
	"context"

	"github.com/Gunvolt24/dayplan/internal/domain"
)

// RateGovernor — ограничитель исходящих поисковых вызовов
// по скользящему окну.
type RateGovernor interface {
	// TryAcquire — true, если слот есть (вызов при этом учитывается).
	TryAcquire() bool

	// Acquire — блокирует вызывающего до освобождения слота либо отмены
	// контекста. Ожидание — чистая задержка по времени, не I/O.
	Acquire(ctx context.Context) error

	// Status — текущее число вызовов в окне и остаток ёмкости.
	Status() domain.RateStatus
}
