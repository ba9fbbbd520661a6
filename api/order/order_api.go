package order

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	salesEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/sales"
	salesRepo "github.com/DoTranTuyen/fullstack-dath/model/repository/sales"
	orderService "github.com/DoTranTuyen/fullstack-dath/service/order"
)

// RegisterOrderRoutes sets up the order API. Line status changes go
// through the state machine only.
func RegisterOrderRoutes(apiGroup *echo.Group, db *gorm.DB) {
	svc := orderService.NewService(db)
	orders := salesRepo.NewOrderRepository(db)

	g := apiGroup.Group("/orders")

	// POST /api/orders – open a kitchen ticket with its lines
	g.POST("", func(c echo.Context) error {
		var body struct {
			InvoiceID uint                     `json:"invoice_id"`
			Items     []orderService.LineInput `json:"items"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		o, err := svc.Create(c.Request().Context(), body.InvoiceID, body.Items)
		if err != nil {
			if errors.Is(err, orderService.ErrEmptyOrder) {
				return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
			}
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, o)
	})

	g.GET("/:id", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
		}
		o, err := orders.FindByID(nil, uint(id))
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "order not found"})
		}
		lines, err := svc.Lines(c.Request().Context(), o.ID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"order": o, "items": lines})
	})

	// PUT /api/orders/:id/status – order header transition
	g.PUT("/:id/status", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid order id"})
		}
		var body struct {
			Status string `json:"status"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		err = svc.TransitionOrder(c.Request().Context(), nil, uint(id), salesEntity.LineStatus(body.Status))
		return transitionResponse(c, err)
	})

	// PUT /api/orders/details/:detailID/status – single line transition;
	// completing a line fires the stock deduction exactly once
	g.PUT("/details/:detailID/status", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("detailID"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid detail id"})
		}
		var body struct {
			Status string `json:"status"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		err = svc.Transition(c.Request().Context(), nil, uint(id), salesEntity.LineStatus(body.Status), nil)
		return transitionResponse(c, err)
	})
}

func transitionResponse(c echo.Context, err error) error {
	switch {
	case err == nil:
		return c.JSON(http.StatusOK, echo.Map{"ok": true})
	case errors.Is(err, orderService.ErrUnknownStatus):
		return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
	case errors.Is(err, orderService.ErrInvalidTransition):
		return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
	case errors.Is(err, gorm.ErrRecordNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	default:
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
}
