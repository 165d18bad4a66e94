package ollama

import (
	"fmt"
	"strings"

	"github.com/Gunvolt24/dayplan/internal/domain"
)

// Все выбранные места должны лежать в пешей доступности друг от друга.
const maxWalkMeters = 800

// Подсказки модели по типу компании: что искать и чего избегать.
var companionGuidance = map[string]struct {
	prefer string
	avoid  string
}{
	domain.CompanionSolo: {
		prefer: "quiet atmosphere, personal reflection, cultural depth, unique experiences",
		avoid:  "overly crowded or group-focused venues",
	},
	domain.CompanionCouple: {
		prefer: "romantic atmosphere, intimate settings, shared experiences",
		avoid:  "family-oriented or business-focused venues",
	},
	domain.CompanionFriends: {
		prefer: "social atmosphere, fun activities, entertainment value",
		avoid:  "quiet, isolated or strictly romantic venues",
	},
	domain.CompanionFamily: {
		prefer: "all-ages appeal, educational value, safe environment",
		avoid:  "adult-only or expensive venues",
	},
}

// buildRoutePrompt — промпт стадии выбора: из списка кандидатов модель
// берёт ровно 4-5 мест, копируя названия дословно.
func buildRoutePrompt(req domain.PlanRequest, candidates []domain.Place) string {
	guidance, ok := companionGuidance[strings.ToLower(req.Companion)]
	if !ok {
		guidance = companionGuidance[domain.CompanionSolo]
	}

	var sb strings.Builder
	sb.WriteString("You are a travel planner for ")
	sb.WriteString(strings.ToLower(req.Companion))
	sb.WriteString(" outings in Seoul.\n\n")

	fmt.Fprintf(&sb, "TASK: Select EXACTLY 4-5 locations from the candidates below for a one-day outing near %s.\n\n", locationLabel(req))
	fmt.Fprintf(&sb, "CONTEXT:\n- Companion: %s\n- Budget: %s\n- Start time: %d:00 (%s)\n\n",
		req.Companion, req.Budget, req.StartHour, timeOfDay(req.StartHour))

	sb.WriteString("CANDIDATES:\n")
	for i, p := range candidates {
		fmt.Fprintf(&sb, "%d. %s | %s | %s | %dm\n", i+1, p.Name, p.Category, p.Address, p.DistanceMeters)
	}

	fmt.Fprintf(&sb, `
RULES:
- Select EXACTLY 4-5 places, never fewer than 4 and never more than 5.
- All selected places must be within %dm walking distance of each other.
- Mix different categories for variety.
- Prefer: %s.
- Avoid: %s.
- Copy the EXACT place names from the list; do not invent new places.

OUTPUT FORMAT (one line per place):
1. [exact place name] - [one short reason]
`, maxWalkMeters, guidance.prefer, guidance.avoid)

	return sb.String()
}

// buildNarrativePrompt — промпт стадии рассказа: по готовому маршруту
// модель пишет 3-4 предложения на каждое место.
func buildNarrativePrompt(req domain.PlanRequest, route string) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "You are a travel writer creating a detailed itinerary for a %s outing in Seoul starting at %d:00.\n\n",
		strings.ToLower(req.Companion), req.StartHour)

	sb.WriteString("Cover ALL locations of this route, in order, with 3-4 sentences each:\n\n")
	sb.WriteString(route)

	fmt.Fprintf(&sb, `

Budget: %s.

FORMAT (for every location):
1. LOCATION 1: [place name]
   [3-4 sentences about the atmosphere and the experience]

Keep the tone warm and engaging. Cover every location from the route, skip none.
`, req.Budget)

	return sb.String()
}

// locationLabel — человекочитаемое название точки старта.
func locationLabel(req domain.PlanRequest) string {
	if req.LocationName != "" {
		return req.LocationName
	}
	return domain.DefaultOriginName
}

// timeOfDay — грубая классификация времени старта для контекста модели.
func timeOfDay(startHour int) string {
	switch {
	case startHour < 12:
		return "morning"
	case startHour < 17:
		return "afternoon"
	default:
		return "evening"
	}
}
