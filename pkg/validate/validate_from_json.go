package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/dayplan/internal/domain"
	"github.com/Gunvolt24/dayplan/internal/ports"
)

// ValidateRequestFromJSON — валидация запроса планирования из JSON.
func ValidateRequestFromJSON(ctx context.Context, validator ports.PlanValidator, raw []byte) (*domain.PlanRequest, error) {
	var req domain.PlanRequest
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		return nil, fmt.Errorf("invalid json: %w", err)
	}
	// гарантируем отсутствие полей вне структуры
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("invalid json: trailing data")
	}
	if err := validator.Validate(ctx, &req); err != nil {
		return nil, err
	}
	return &req, nil
}
