package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"reserva-backend/services"
	"reserva-backend/utils"

	"github.com/gin-gonic/gin"
)

type CalendarController struct {
	Bookings *services.BookingService
	Spaces   services.SpaceService
}

func NewCalendarController(bookings *services.BookingService, spaces services.SpaceService) *CalendarController {
	return &CalendarController{Bookings: bookings, Spaces: spaces}
}

// scopeFromQuery reads the ?spaces= csv. An absent param means the default
// state: every space included. A present-but-empty value is an explicit
// empty scope (everything toggled off).
func scopeFromQuery(c *gin.Context) services.SpaceScope {
	raw, ok := c.GetQuery("spaces")
	if !ok {
		return nil
	}
	return services.ScopeFromIDs(strings.Split(raw, ","))
}

// GetMonth handles GET /api/calendar/:year/:month.
func (cc *CalendarController) GetMonth(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil || year < 1 {
		utils.JSONError(c, http.StatusBadRequest, "invalid year")
		return
	}
	month, err := strconv.Atoi(c.Param("month"))
	if err != nil || month < 1 || month > 12 {
		utils.JSONError(c, http.StatusBadRequest, "invalid month")
		return
	}

	bookings, err := cc.Bookings.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	// The space list rides along so the client can render the scope
	// selector without a second request.
	spaces, err := cc.Spaces.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	cells := services.MonthGrid(year, time.Month(month), bookings, scopeFromQuery(c))
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"year":   year,
		"month":  month,
		"cells":  cells,
		"spaces": spaces,
	})
}

// GetDay handles GET /api/calendar/day/:date where :date is 2006-01-02.
func (cc *CalendarController) GetDay(c *gin.Context) {
	date := c.Param("date")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
		return
	}

	bookings, err := cc.Bookings.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	agenda := services.DayAgenda(date, bookings, scopeFromQuery(c))
	utils.JSONSuccess(c, http.StatusOK, gin.H{
		"date":     date,
		"bookings": agenda,
	})
}
