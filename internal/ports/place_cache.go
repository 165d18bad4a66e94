package ports

import (
	"context"

	"github.com/Gunvolt24/dayplan/internal/domain"
)

// PlaceCache — интерфейс кэша результатов поиска мест.
// Требования к реализации: потокобезопасность; ключ — отпечаток запроса
// (domain.Fingerprint); возврат копий пула; внутренние сбои не должны
// приводить к панике — они деградируют до промаха.
type PlaceCache interface {
	// Get — вернуть пул по отпечатку; (pool, true) при попадании,
	// (nil, false) при промахе или истечении TTL (протухшая запись удаляется).
	Get(ctx context.Context, fingerprint string) (domain.CandidatePool, bool)

	// Put — сохранить пул; после вставки размер кэша не превышает ёмкость.
	Put(ctx context.Context, fingerprint string, pool domain.CandidatePool) error

	// Stats — текущая статистика кэша (считается по требованию).
	Stats() domain.CacheStats
}
