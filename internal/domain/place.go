package domain

import "sort"

// LatLng — географические координаты точки.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Place — место, полученное от поискового провайдера.
// После получения не изменяется; Category проставляется
// агрегатором по запрошенной категории поиска.
type Place struct {
	Name           string  `json:"name"`
	Address        string  `json:"address"`
	Category       string  `json:"category"`
	DistanceMeters int     `json:"distance_meters"`
	URL            string  `json:"url,omitempty"`
	Lat            float64 `json:"lat"`
	Lng            float64 `json:"lng"`
}

// CandidatePool — итоговый набор кандидатов: категория → места.
// Создаётся один раз за агрегацию и далее не изменяется.
type CandidatePool map[string][]Place

// Total — суммарное число мест во всех категориях.
func (p CandidatePool) Total() int {
	n := 0
	for _, places := range p {
		n += len(places)
	}
	return n
}

// Flatten — плоский список мест в детерминированном порядке категорий.
// Используется при передаче кандидатов в стадию генерации.
func (p CandidatePool) Flatten() []Place {
	out := make([]Place, 0, p.Total())
	for _, category := range sortedKeys(p) {
		out = append(out, p[category]...)
	}
	return out
}

// Clone — глубокая копия пула; кэш выдаёт и принимает копии,
// чтобы внешние изменения не затрагивали его внутреннее состояние.
func (p CandidatePool) Clone() CandidatePool {
	if p == nil {
		return nil
	}
	cloned := make(CandidatePool, len(p))
	for category, places := range p {
		cloned[category] = append([]Place(nil), places...)
	}
	return cloned
}

func sortedKeys(p CandidatePool) []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
