package handlers

import (
	"net/http"

	"autoflow/internal/usecase"
	"autoflow/pkg"

	"github.com/gin-gonic/gin"
)

// StatisticsHandler serves the admin dashboard snapshot.

type StatisticsHandler struct {
	usecase usecase.IStatisticsUseCase
}

func NewStatisticsHandler(uc usecase.IStatisticsUseCase) *StatisticsHandler {
	return &StatisticsHandler{usecase: uc}
}

func (h *StatisticsHandler) Dashboard(c *gin.Context) {
	stats, err := h.usecase.Dashboard(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, stats)
}
