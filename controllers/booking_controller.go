// controllers/booking_controller.go
package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"reserva-backend/models"
	"reserva-backend/services"
	"reserva-backend/utils"

	"github.com/gin-gonic/gin"
)

type BookingController struct {
	Bookings  *services.BookingService
	Customers *services.CustomerService
}

func NewBookingController(bookings *services.BookingService, customers *services.CustomerService) *BookingController {
	return &BookingController{Bookings: bookings, Customers: customers}
}

func (bc *BookingController) filterFromQuery(c *gin.Context) services.BookingFilter {
	var f services.BookingFilter
	if err := c.ShouldBindQuery(&f); err != nil {
		log.Printf("warning: ignoring malformed booking filter: %v", err)
		f.Reset()
	}
	return f
}

func (bc *BookingController) listFiltered(c *gin.Context, f services.BookingFilter) {
	// Status-dependent read: normalize expired bookings first. A sweep
	// failure only means stale statuses until the next load.
	if err := bc.Bookings.SweepExpirations(); err != nil {
		log.Printf("warning: expiry sweep failed: %v", err)
	}

	list, err := bc.Bookings.List()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	if !f.IsZero() {
		names, err := bc.Customers.NameIndex()
		if err != nil {
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
			return
		}
		list = f.Apply(list, names)
	}

	utils.JSONSuccess(c, http.StatusOK, list)
}

// GetBookings handles GET /api/bookings. The filter dimensions arrive as
// query params (search, category, status, space, from, to); absent params
// match everything.
func (bc *BookingController) GetBookings(c *gin.Context) {
	bc.listFiltered(c, bc.filterFromQuery(c))
}

// GetVisits handles GET /api/visits: the same collection scoped to the
// visita category.
func (bc *BookingController) GetVisits(c *gin.Context) {
	f := bc.filterFromQuery(c)
	f.Category = services.CategoryVisit
	bc.listFiltered(c, f)
}

func (bc *BookingController) GetBooking(c *gin.Context) {
	b, err := bc.Bookings.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, b)
}

func (bc *BookingController) CreateBooking(c *gin.Context) {
	var b models.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if b.Status == "" {
		b.Status = models.StatusPending
	}
	if b.Type == "" {
		b.Type = models.TypePaid
	}
	bc.createAndRespond(c, &b)
}

// CreateVisit handles POST /api/visits. Whatever the payload says, a visit
// is stored as a booking with status visita.
func (bc *BookingController) CreateVisit(c *gin.Context) {
	var b models.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	b.Status = models.StatusVisit
	if b.EventName == "" {
		b.EventName = "Visita Técnica"
	}
	bc.createAndRespond(c, &b)
}

func (bc *BookingController) createAndRespond(c *gin.Context, b *models.Booking) {
	if err := bc.Bookings.Create(b); err != nil {
		if strings.HasPrefix(err.Error(), "validation:") {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, b)
}

func (bc *BookingController) UpdateBooking(c *gin.Context) {
	var b models.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	updated, err := bc.Bookings.Update(c.Param("id"), &b)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrBookingNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error())
		case strings.HasPrefix(err.Error(), "validation:"):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (bc *BookingController) DeleteBooking(c *gin.Context) {
	if err := bc.Bookings.Delete(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrBookingNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": c.Param("id")})
}
