package handler

import (
	"context"
	"fmt"

	"github.com/pkordes/field-notes/backend/internal/handler/gen"
)

// GetHealth handles GET /healthz.
// It reports {"status":"ok"} once the note store answers a List. A store
// that fails the probe surfaces as a 500 through the strict error handler.
func (s *Server) GetHealth(ctx context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	if s.notes != nil {
		if _, err := s.notes.List(ctx); err != nil {
			return nil, fmt.Errorf("handler.GetHealth: %w", err)
		}
	}
	return gen.GetHealth200JSONResponse{Status: "ok"}, nil
}
