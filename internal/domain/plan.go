package domain

// PlanRequest — входные параметры планирования прогулки.
// Origin задаётся явно либо разрешается геокодером по LocationName.
type PlanRequest struct {
	LocationName string   `json:"location"`
	Origin       *LatLng  `json:"origin,omitempty"`
	Companion    string   `json:"companion"`
	Budget       string   `json:"budget"`
	StartHour    int      `json:"start_hour"`
	Categories   []string `json:"categories,omitempty"`
	RadiusMeters int      `json:"radius_meters,omitempty"`
}

// Plan — результат планирования: набор кандидатов, маршрут и рассказ.
type Plan struct {
	Origin     LatLng        `json:"origin"`
	Categories []string      `json:"categories"`
	Pool       CandidatePool `json:"pool"`
	Route      string        `json:"route"`
	Narrative  string        `json:"narrative"`
}

// LocationSuggestion — подсказка автодополнения по названию места.
type LocationSuggestion struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Location LatLng `json:"location"`
}

// CacheStats — срез состояния кэша результатов; считается по требованию.
type CacheStats struct {
	TotalEntries       int     `json:"total_entries"`
	Capacity           int     `json:"capacity"`
	UtilizationPercent float64 `json:"utilization_percent"`
	ExpiredEntries     int     `json:"expired_entries"`
	ActiveEntries      int     `json:"active_entries"`
}

// RateStatus — срез состояния ограничителя запросов.
type RateStatus struct {
	CurrentCalls   int     `json:"current_calls"`
	MaxCalls       int     `json:"max_calls"`
	WindowSeconds  float64 `json:"window_seconds"`
	CallsRemaining int     `json:"calls_remaining"`
}

// SystemStats — сводка для эндпоинта наблюдаемости.
type SystemStats struct {
	Cache CacheStats `json:"cache"`
	Rate  RateStatus `json:"rate"`
}
