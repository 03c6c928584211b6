package handlers

import (
	"net/http"
	"strings"

	response "autoflow/internal/adapter/http/dto/response"
	"autoflow/internal/usecase"
	"autoflow/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// ShowroomHandler serves the public, unauthenticated vehicle surface.

type ShowroomHandler struct {
	usecase usecase.IShowroomUseCase
}

func NewShowroomHandler(uc usecase.IShowroomUseCase) *ShowroomHandler {
	return &ShowroomHandler{usecase: uc}
}

func (h *ShowroomHandler) Search(c *gin.Context) {
	filter := usecase.ShowroomFilter{
		Make:  c.Query("make"),
		Model: c.Query("model"),
	}

	var err error
	if filter.PriceMin, err = parsePriceQuery(c.Query("price_min")); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	if filter.PriceMax, err = parsePriceQuery(c.Query("price_max")); err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	vehicles, err := h.usecase.Search(c.Request.Context(), filter)
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromVehicles(vehicles))
}

func (h *ShowroomHandler) Detail(c *gin.Context) {
	vehicle, err := h.usecase.PublicDetail(c.Request.Context(), c.Param("id"))
	if err != nil {
		appErr := mapVehicleError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromVehicle(vehicle))
}

func parsePriceQuery(raw string) (*decimal.Decimal, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
