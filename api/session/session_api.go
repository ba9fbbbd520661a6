package session

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	sessionService "github.com/DoTranTuyen/fullstack-dath/service/session"
)

// RegisterSessionRoutes sets up the table-session API. Close is the
// all-or-nothing consistency boundary for everything under a session.
func RegisterSessionRoutes(apiGroup *echo.Group, db *gorm.DB) {
	svc := sessionService.NewService(db)

	g := apiGroup.Group("/sessions")

	g.POST("", func(c echo.Context) error {
		var body struct {
			CustomerID uint `json:"customer_id"`
			TableID    uint `json:"table_id"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if body.CustomerID == 0 || body.TableID == 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "customer_id and table_id are required"})
		}
		sess, err := svc.Open(c.Request().Context(), body.CustomerID, body.TableID)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, sess)
	})

	g.POST("/:id/close", func(c echo.Context) error {
		start := time.Now()
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid session id"})
		}
		sess, err := svc.Close(c.Request().Context(), uint(id), nil)
		if err != nil {
			switch {
			case errors.Is(err, sessionService.ErrSessionClosed):
				return c.JSON(http.StatusConflict, echo.Map{"error": err.Error()})
			case errors.Is(err, gorm.ErrRecordNotFound):
				return c.JSON(http.StatusNotFound, echo.Map{"error": "session not found"})
			default:
				return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
			}
		}
		c.Response().Header().Set("X-Request-Duration-ms", strconv.FormatInt(time.Since(start).Milliseconds(), 10))
		return c.JSON(http.StatusOK, sess)
	})

	apiGroup.POST("/invoices/:id/settle", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid invoice id"})
		}
		var body struct {
			PaymentMethod string `json:"payment_method"`
			Discount      int    `json:"discount"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if err := svc.Settle(c.Request().Context(), uint(id), body.PaymentMethod, body.Discount); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"ok": true})
	})
}
