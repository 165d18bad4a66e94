package validate

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Gunvolt24/dayplan/internal/domain"
	"github.com/Gunvolt24/dayplan/internal/ports"
)

// Проверка, что PlanValidator удовлетворяет порту PlanValidator.
var _ ports.PlanValidator = (*PlanValidator)(nil)

// ErrInvalidRequest — базовая (sentinel error) ошибка валидации.
var ErrInvalidRequest = errors.New("plan request validation failed")

const maxRadiusMeters = 20000

// PlanValidator — структура для валидации запроса планирования.
// Пустые companion/budget/start_hour допустимы: сервис подставит
// значения по умолчанию.
type PlanValidator struct{}

// NewPlanValidator — конструктор PlanValidator.
// Возвращает ErrInvalidRequest (с обёрнутой причиной) при любой проблеме.
func NewPlanValidator() *PlanValidator { return &PlanValidator{} }

// Validate — проверяет корректность полей запроса.
func (v *PlanValidator) Validate(_ context.Context, req *domain.PlanRequest) error {
	if req == nil {
		return fmt.Errorf("%w: запрос не может быть nil", ErrInvalidRequest)
	}
	if err := v.validateProfile(req); err != nil {
		return err
	}
	if err := v.validateGeo(req); err != nil {
		return err
	}
	return v.validateCategories(req.Categories)
}

// validateProfile — тип компании, бюджет и время старта.
func (v *PlanValidator) validateProfile(req *domain.PlanRequest) error {
	if req.Companion != "" && !contains(domain.CompanionTypes, strings.ToLower(req.Companion)) {
		return fmt.Errorf("%w: companion %q не поддерживается", ErrInvalidRequest, req.Companion)
	}
	if req.Budget != "" && !contains(domain.BudgetLevels, strings.ToLower(req.Budget)) {
		return fmt.Errorf("%w: budget %q не поддерживается", ErrInvalidRequest, req.Budget)
	}
	if req.StartHour < 0 || req.StartHour > 23 {
		return fmt.Errorf("%w: start_hour должен быть в диапазоне 0..23", ErrInvalidRequest)
	}
	return nil
}

// validateGeo — координаты и радиус поиска.
func (v *PlanValidator) validateGeo(req *domain.PlanRequest) error {
	if req.Origin != nil {
		if req.Origin.Lat < -90 || req.Origin.Lat > 90 {
			return fmt.Errorf("%w: origin.lat вне диапазона -90..90", ErrInvalidRequest)
		}
		if req.Origin.Lng < -180 || req.Origin.Lng > 180 {
			return fmt.Errorf("%w: origin.lng вне диапазона -180..180", ErrInvalidRequest)
		}
	}
	if req.RadiusMeters < 0 || req.RadiusMeters > maxRadiusMeters {
		return fmt.Errorf("%w: radius_meters должен быть в диапазоне 0..%d", ErrInvalidRequest, maxRadiusMeters)
	}
	return nil
}

// validateCategories — список категорий без пустых значений.
func (v *PlanValidator) validateCategories(categories []string) error {
	for i, c := range categories {
		if strings.TrimSpace(c) == "" {
			return fmt.Errorf("%w: categories[%d] пуст", ErrInvalidRequest, i)
		}
	}
	return nil
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
