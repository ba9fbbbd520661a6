package table

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	diningEntity "github.com/DoTranTuyen/fullstack-dath/model/entity/dining"
	diningRepo "github.com/DoTranTuyen/fullstack-dath/model/repository/dining"
	diningService "github.com/DoTranTuyen/fullstack-dath/service/dining"
)

// RegisterTableRoutes sets up the table and reservation API.
func RegisterTableRoutes(apiGroup *echo.Group, db *gorm.DB, svc *diningService.Service) {
	tables := diningRepo.NewTableRepository(db)
	reservations := diningRepo.NewReservationRepository(db)

	g := apiGroup.Group("/tables")

	g.GET("", func(c echo.Context) error {
		rows, err := tables.All()
		if err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, rows)
	})

	g.POST("", func(c echo.Context) error {
		var t diningEntity.Table
		if err := c.Bind(&t); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if t.Capacity == 0 {
			t.Capacity = 4
		}
		if t.Status == "" {
			t.Status = diningEntity.TableAvailable
		}
		if err := svc.Save(c.Request().Context(), &t, false); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, t)
	})

	// POST /api/tables/:id/qr?force=true – regenerate the join QR
	g.POST("/:id/qr", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid table id"})
		}
		t, err := tables.FindByID(uint(id))
		if err != nil {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "table not found"})
		}
		force := c.QueryParam("force") == "true"
		if err := svc.Save(c.Request().Context(), t, force); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, t)
	})

	r := apiGroup.Group("/reservations")

	r.POST("", func(c echo.Context) error {
		var res diningEntity.TableReservation
		if err := c.Bind(&res); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		if res.Name == "" || res.PhoneNumber == "" || res.PartySize <= 0 {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "name, phone_number and positive party_size are required"})
		}
		if res.Status == "" {
			res.Status = diningEntity.ReservationPending
		}
		if err := reservations.Create(&res); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusCreated, res)
	})

	r.PUT("/:id/status", func(c echo.Context) error {
		id, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid reservation id"})
		}
		var body struct {
			Status string `json:"status"`
		}
		if err := c.Bind(&body); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": err.Error()})
		}
		switch body.Status {
		case diningEntity.ReservationPending, diningEntity.ReservationConfirmed,
			diningEntity.ReservationCancelled, diningEntity.ReservationCompleted:
		default:
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "unknown reservation status"})
		}
		if err := reservations.SetStatus(uint(id), body.Status); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"ok": true})
	})
}
