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

var responsibleService services.ResponsibleService

func GetResponsibles(c *gin.Context) {
	list, err := responsibleService.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, list)
}

func CreateResponsible(c *gin.Context) {
	var r models.Responsible
	if err := c.ShouldBindJSON(&r); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := responsibleService.Create(&r); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, r)
}

func UpdateResponsible(c *gin.Context) {
	var r models.Responsible
	if err := c.ShouldBindJSON(&r); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	if err := responsibleService.Update(c.Param("id"), &r); err != nil {
		if errors.Is(err, services.ErrResponsibleNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, r)
}

func DeleteResponsible(c *gin.Context) {
	if err := responsibleService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrResponsibleNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": c.Param("id")})
}
