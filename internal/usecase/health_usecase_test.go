package usecase_test

import (
	"testing"

	"github.com/harichselvamc/inventory-app-backend/internal/usecase"
	"github.com/stretchr/testify/assert"
)

// Пейлоад считается один раз и далее переиспользуется.
func TestHealthStatus_Stable(t *testing.T) {
	uc := usecase.NewHealthUC()

	first := uc.Status()
	second := uc.Status()

	assert.Equal(t, "ok", first.Status)
	assert.Equal(t, first.StartedAt, second.StartedAt)
	assert.Same(t, first, second)
}
