package ollama

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/ollama/ollama/api"

	"github.com/Gunvolt24/dayplan/internal/domain"
	"github.com/Gunvolt24/dayplan/internal/ports"
)

// Проверка, что Generator удовлетворяет порту PlanGenerator.
var _ ports.PlanGenerator = (*Generator)(nil)

// Значения по умолчанию для локального Ollama.
const (
	DefaultBaseURL        = "http://localhost:11434"
	DefaultRouteModel     = "phi3.5"
	DefaultNarrativeModel = "qwen2.5"
)

// Generator — генерация маршрута и рассказа через Ollama.
// Две стадии используют разные модели: лёгкая выбирает места,
// более крупная пишет связный текст.
type Generator struct {
	client         *api.Client
	routeModel     string
	narrativeModel string
	log            ports.Logger
}

// NewGenerator — конструктор. Пустые параметры заменяются значениями
// по умолчанию.
func NewGenerator(baseURL, routeModel, narrativeModel string, timeout time.Duration, log ports.Logger) (*Generator, error) {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if routeModel == "" {
		routeModel = DefaultRouteModel
	}
	if narrativeModel == "" {
		narrativeModel = DefaultNarrativeModel
	}
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}

	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse base url: %w", err)
	}

	return &Generator{
		client:         api.NewClient(u, &http.Client{Timeout: timeout}),
		routeModel:     routeModel,
		narrativeModel: narrativeModel,
		log:            log,
	}, nil
}

// GenerateRoute — выбрать из кандидатов 4-5 мест и вернуть нумерованный
// маршрут в текстовом виде.
func (g *Generator) GenerateRoute(ctx context.Context, req domain.PlanRequest, candidates []domain.Place) (string, error) {
	if len(candidates) == 0 {
		return "", fmt.Errorf("generate route: no candidates")
	}

	out, err := g.complete(ctx, g.routeModel, buildRoutePrompt(req, candidates))
	if err != nil {
		return "", fmt.Errorf("generate route: %w", err)
	}
	g.log.Infof(ctx, "route generated: model=%s candidates=%d chars=%d", g.routeModel, len(candidates), len(out))
	return out, nil
}

// GenerateNarrative — составить связный рассказ по готовому маршруту.
func (g *Generator) GenerateNarrative(ctx context.Context, req domain.PlanRequest, route string) (string, error) {
	if strings.TrimSpace(route) == "" {
		return "", fmt.Errorf("generate narrative: empty route")
	}

	out, err := g.complete(ctx, g.narrativeModel, buildNarrativePrompt(req, route))
	if err != nil {
		return "", fmt.Errorf("generate narrative: %w", err)
	}
	g.log.Infof(ctx, "narrative generated: model=%s chars=%d", g.narrativeModel, len(out))
	return out, nil
}

// complete — один непотоковый вызов генерации; ответ собирается целиком.
func (g *Generator) complete(ctx context.Context, model, prompt string) (string, error) {
	stream := false
	var sb strings.Builder

	err := g.client.Generate(ctx, &api.GenerateRequest{
		Model:  model,
		Prompt: prompt,
		Stream: &stream,
	}, func(resp api.GenerateResponse) error {
		sb.WriteString(resp.Response)
		return nil
	})
	if err != nil {
		return "", fmt.Errorf("ollama generate (%s): %w", model, err)
	}

	text := strings.TrimSpace(sb.String())
	if text == "" {
		return "", fmt.Errorf("ollama generate (%s): empty response", model)
	}
	return text, nil
}
