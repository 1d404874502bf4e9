package http

import (
	"net/http"

	"github.com/harichselvamc/inventory-app-backend/internal/usecase"
)

type HealthHandler struct {
	healthUsecase usecase.HealthUC
}

func NewHealthHandler(healthUsecase usecase.HealthUC) *HealthHandler {
	return &HealthHandler{healthUsecase: healthUsecase}
}

// health
//
//	@Summary	Проверка работоспособности
//	@Tags		health
//	@Produce	json
//	@Success	200	{object}	HealthResponse
//	@Router		/health [get]
func (h *HealthHandler) health(w http.ResponseWriter, r *http.Request) {
	status := h.healthUsecase.Status()
	WriteSuccess(w, http.StatusOK, &HealthResponse{Status: status.Status})
}
