package usecase

import (
	"sync"
	"time"
)

// HealthUseCase отдаёт статус процесса. Ответ вычисляется один раз
// на время жизни процесса и далее переиспользуется.
type HealthUseCase struct {
	once   sync.Once
	status *HealthStatus
}

func NewHealthUC() *HealthUseCase {
	return &HealthUseCase{}
}

func (h *HealthUseCase) Status() *HealthStatus {
	h.once.Do(func() {
		h.status = &HealthStatus{
			Status:    "ok",
			StartedAt: time.Now().UTC(),
		}
	})

	return h.status
}
