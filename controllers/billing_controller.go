package controllers

import (
	"errors"
	"log"
	"net/http"

	"reserva-backend/models"
	"reserva-backend/services"
	"reserva-backend/utils"

	"github.com/gin-gonic/gin"
)

type BillingController struct {
	Billing *services.BillingService
}

func NewBillingController(billing *services.BillingService) *BillingController {
	return &BillingController{Billing: billing}
}

// ---------------- Plans ----------------

func (bc *BillingController) GetPlans(c *gin.Context) {
	list, err := bc.Billing.ListPlans()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (bc *BillingController) CreatePlan(c *gin.Context) {
	var p models.Plan
	if err := c.ShouldBindJSON(&p); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := bc.Billing.CreatePlan(&p); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, p)
}

func (bc *BillingController) UpdatePlan(c *gin.Context) {
	var p models.Plan
	if err := c.ShouldBindJSON(&p); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	updated, err := bc.Billing.UpdatePlan(c.Param("id"), &p)
	if err != nil {
		if errors.Is(err, services.ErrPlanNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (bc *BillingController) DeletePlan(c *gin.Context) {
	if err := bc.Billing.DeletePlan(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrPlanNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// ---------------- Subscriptions ----------------

func (bc *BillingController) GetSubscriptions(c *gin.Context) {
	// Same advisory normalization pattern as booking expiry.
	if err := bc.Billing.MarkOverdueSubscriptions(); err != nil {
		log.Printf("warning: overdue sweep failed: %v", err)
	}
	list, err := bc.Billing.ListSubscriptions()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (bc *BillingController) CreateSubscription(c *gin.Context) {
	var sub models.Subscription
	if err := c.ShouldBindJSON(&sub); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := bc.Billing.CreateSubscription(&sub); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, sub)
}

func (bc *BillingController) UpdateSubscription(c *gin.Context) {
	var sub models.Subscription
	if err := c.ShouldBindJSON(&sub); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	updated, err := bc.Billing.UpdateSubscription(c.Param("id"), &sub)
	if err != nil {
		if errors.Is(err, services.ErrSubscriptionNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, updated)
}

func (bc *BillingController) DeleteSubscription(c *gin.Context) {
	if err := bc.Billing.DeleteSubscription(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrSubscriptionNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": c.Param("id")})
}

// ---------------- Payments ----------------

func (bc *BillingController) GetPayments(c *gin.Context) {
	list, err := bc.Billing.ListPayments()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func (bc *BillingController) CreatePayment(c *gin.Context) {
	var p models.Payment
	if err := c.ShouldBindJSON(&p); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := bc.Billing.CreatePayment(&p); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, p)
}
