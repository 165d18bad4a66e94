package rest

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/dayplan/internal/domain"
	"github.com/Gunvolt24/dayplan/internal/ports"
	"github.com/Gunvolt24/dayplan/internal/usecase"
	"github.com/Gunvolt24/dayplan/pkg/httpx"
)

// Handler — HTTP-обработчики поверх прикладного сервиса планирования.
type Handler struct {
	service   ports.PlannerService
	validator ports.PlanValidator
	log       ports.Logger
	timeout   time.Duration // верхняя граница на запрос; генерация небыстрая
}

// NewHandler — DI-конструктор. timeout <= 0 заменяется на 2 минуты.
func NewHandler(service ports.PlannerService, validator ports.PlanValidator, log ports.Logger, timeout time.Duration) *Handler {
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	return &Handler{service: service, validator: validator, log: log, timeout: timeout}
}

// NewRouter — сборка роутера: middleware, маршруты, статика.
// otelServiceName пустой — трассировка HTTP-слоя выключена.
func NewRouter(h *Handler, staticDir, otelServiceName string) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpx.RequestIDMiddleware())
	if otelServiceName != "" {
		r.Use(otelgin.Middleware(otelServiceName))
	}
	r.Use(httpx.RequestLogger(h.log))

	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		if allow := allowedMethods(r, c.Request.URL.Path); len(allow) > 0 {
			c.Header("Allow", strings.Join(allow, ", "))
		}
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.POST("/plan", h.createPlan)
	r.POST("/places/search", h.searchPlaces)
	r.GET("/locations/suggest", h.suggestLocations)
	r.GET("/options", h.getOptions)
	r.GET("/stats", h.getStats)

	if staticDir != "" {
		r.Static("/static", staticDir)
		r.StaticFile("/", filepath.Join(staticDir, "index.html"))
	}

	return r
}

// createPlan — полный цикл планирования: кандидаты, маршрут, рассказ.
func (h *Handler) createPlan(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	plan, err := h.service.PlanOuting(ctx, req)
	if err != nil {
		h.respondPipelineError(c, "PlanOuting", err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// searchPlaces — только конвейер сбора кандидатов, без генерации.
func (h *Handler) searchPlaces(c *gin.Context) {
	req, ok := h.bindRequest(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	pool, err := h.service.AcquirePlaces(ctx, req)
	if err != nil {
		h.respondPipelineError(c, "AcquirePlaces", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"total": pool.Total(), "places": pool})
}

// suggestLocations — подсказки по частичному названию (?q=, опционально ?limit=).
func (h *Handler) suggestLocations(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "empty query"})
		return
	}
	limit, offset := httpx.ParseLimitOffset(c, 5, 10)

	suggestions, err := h.service.SuggestLocations(c.Request.Context(), query)
	if err != nil {
		h.log.Errorf(c.Request.Context(), "SuggestLocations failed q=%q err=%v", query, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "location service unavailable"})
		return
	}
	if offset >= len(suggestions) {
		suggestions = nil
	} else if rest := suggestions[offset:]; len(rest) > limit {
		suggestions = rest[:limit]
	} else {
		suggestions = rest
	}
	c.JSON(http.StatusOK, gin.H{"suggestions": suggestions})
}

// getOptions — справочники для формы запроса: категории на выбор,
// типы компании и уровни бюджета.
func (h *Handler) getOptions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"categories": domain.UserSelectableCategories,
		"companions": domain.CompanionTypes,
		"budgets":    domain.BudgetLevels,
	})
}

// getStats — сводка состояния кэша и ограничителя.
func (h *Handler) getStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Stats())
}

// bindRequest — разбор и валидация тела запроса; при отказе сам пишет 400.
func (h *Handler) bindRequest(c *gin.Context) (domain.PlanRequest, bool) {
	var req domain.PlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return domain.PlanRequest{}, false
	}
	if err := h.validator.Validate(c.Request.Context(), &req); err != nil {
		h.log.Warnf(c.Request.Context(), "request rejected err=%v", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return domain.PlanRequest{}, false
	}
	return req, true
}

// respondPipelineError — единое сопоставление ошибок конвейера со статусами:
// нет мест — 404, отказ внешних сервисов — 502.
func (h *Handler) respondPipelineError(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()
	if errors.Is(err, usecase.ErrNoPlacesFound) {
		h.log.Warnf(ctx, "%s: no places found", op)
		c.JSON(http.StatusNotFound, gin.H{"error": "no places found for this request"})
		return
	}
	h.log.Errorf(ctx, "%s failed err=%v", op, err)
	c.JSON(http.StatusBadGateway, gin.H{"error": "upstream service failure"})
}

// allowedMethods — методы, зарегистрированные для пути (для заголовка Allow).
func allowedMethods(r *gin.Engine, path string) []string {
	var out []string
	for _, route := range r.Routes() {
		if route.Path == path {
			out = append(out, route.Method)
		}
	}
	return out
}
