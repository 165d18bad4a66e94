package domain

import (
	"fmt"
	"sort"
	"strings"
)

// Fingerprint — детерминированный ключ кэша для поискового запроса.
// Строится из названия точки старта, отсортированного набора категорий
// (без дубликатов), координат с округлением до 2 знаков (~1 км сетка)
// и радиуса поиска в метрах. Порядок категорий на результат не влияет.
func Fingerprint(locationName string, categories []string, origin LatLng, radiusMeters int) string {
	unique := make([]string, 0, len(categories))
	seen := make(map[string]struct{}, len(categories))
	for _, c := range categories {
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		unique = append(unique, c)
	}
	sort.Strings(unique)

	return fmt.Sprintf("%s_%s_%.2f_%.2f_%d",
		locationName,
		strings.Join(unique, "_"),
		origin.Lat,
		origin.Lng,
		radiusMeters,
	)
}
