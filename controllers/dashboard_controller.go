package controllers

import (
	"log"
	"net/http"

	"reserva-backend/services"
	"reserva-backend/utils"

	"github.com/gin-gonic/gin"
)

type DashboardController struct {
	Dashboard *services.DashboardService
	Bookings  *services.BookingService
	Customers *services.CustomerService
}

func NewDashboardController(dashboard *services.DashboardService, bookings *services.BookingService, customers *services.CustomerService) *DashboardController {
	return &DashboardController{Dashboard: dashboard, Bookings: bookings, Customers: customers}
}

// GetKPIs handles GET /api/dashboard/kpis.
func (dc *DashboardController) GetKPIs(c *gin.Context) {
	if err := dc.Bookings.SweepExpirations(); err != nil {
		log.Printf("warning: expiry sweep failed: %v", err)
	}

	kpis, err := dc.Dashboard.KPIs()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, kpis)
}

// GetValues handles GET /api/dashboard/values: confirmed vs pending revenue.
func (dc *DashboardController) GetValues(c *gin.Context) {
	if err := dc.Bookings.SweepExpirations(); err != nil {
		log.Printf("warning: expiry sweep failed: %v", err)
	}

	names, err := dc.Customers.NameIndex()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}

	summary, err := dc.Dashboard.FinancialSummary(names)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, summary)
}
