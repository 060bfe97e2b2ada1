package get_statistics

import (
	"net/http"

	"github.com/bedylmz/toolshare-fe/internal/api/handlers"
)

type Handler struct {
	service StatisticsService
	logger  Logger
}

func NewHandler(service StatisticsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/statistics
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.GetStatistics(r.Context())
	if err != nil {
		h.logger.Error("GET /statistics - Failed to get statistics: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /statistics - Statistics retrieved")
	handlers.RespondJSON(w, http.StatusOK, result)
}
