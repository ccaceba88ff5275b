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

var spaceService services.SpaceService

// ----------------------------------------------------
// 1. Get Spaces (GET /api/spaces)
// ----------------------------------------------------

func GetSpaces(c *gin.Context) {
	spaces, err := spaceService.GetAll()
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, spaces)
}

// ----------------------------------------------------
// 2. Create Space (POST /api/spaces)
// ----------------------------------------------------

func CreateSpace(c *gin.Context) {
	var space models.Space
	if err := c.ShouldBindJSON(&space); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	space.Name = strings.TrimSpace(space.Name)
	space.Address = strings.TrimSpace(space.Address)

	if err := spaceService.Create(&space); err != nil {
		if strings.HasPrefix(err.Error(), "validation:") {
			utils.JSONError(c, http.StatusBadRequest, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, space)
}

// ----------------------------------------------------
// 3. Update Space (PUT /api/spaces/:id)
// ----------------------------------------------------

func UpdateSpace(c *gin.Context) {
	var space models.Space
	if err := c.ShouldBindJSON(&space); err != nil {
		log.Printf("❌ JSON BINDING ERROR (400): %v", err)
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}

	if err := spaceService.Update(c.Param("id"), &space); err != nil {
		switch {
		case errors.Is(err, services.ErrSpaceNotFound):
			utils.JSONError(c, http.StatusNotFound, err.Error())
		case strings.HasPrefix(err.Error(), "validation:"):
			utils.JSONError(c, http.StatusBadRequest, err.Error())
		default:
			utils.JSONError(c, http.StatusInternalServerError, err.Error())
		}
		return
	}
	utils.JSONSuccess(c, http.StatusOK, space)
}

// ----------------------------------------------------
// 4. Delete Space (DELETE /api/spaces/:id)
// ----------------------------------------------------

func DeleteSpace(c *gin.Context) {
	if err := spaceService.Delete(c.Param("id")); err != nil {
		if errors.Is(err, services.ErrSpaceNotFound) {
			utils.JSONError(c, http.StatusNotFound, err.Error())
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, err.Error())
		return
	}
	utils.JSONSuccess(c, http.StatusOK, gin.H{"deleted": c.Param("id")})
}
