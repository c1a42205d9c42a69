package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/campus-events/api/internal/models"
	"github.com/campus-events/api/internal/services"
)

func ListRegistrations(rs *services.RegistrationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		regs, err := rs.ListAll(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.ListResponse(regs, len(regs)))
	}
}

func ListEventRegistrations(rs *services.RegistrationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		eventID := strings.TrimSpace(c.Param("id"))
		if eventID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("event ID is required"))
			return
		}

		regs, err := rs.ListForEvent(c.Request.Context(), eventID)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse("event not found"))
				return
			}
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.ListResponse(regs, len(regs)))
	}
}

func CreateRegistration(rs *services.RegistrationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reg models.Registration
		if err := c.ShouldBindJSON(&reg); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		created, err := rs.Register(c.Request.Context(), &reg)
		if err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse("event not found"))
				return
			}
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(created, "Registered successfully"))
	}
}

func CancelRegistration(rs *services.RegistrationService) gin.HandlerFunc {
	return func(c *gin.Context) {
		regID := strings.TrimSpace(c.Param("id"))
		if regID == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("registration ID is required"))
			return
		}

		if err := rs.Cancel(c.Request.Context(), regID); err != nil {
			if errors.Is(err, models.ErrNotFound) {
				c.JSON(http.StatusNotFound, models.ErrorResponse("registration not found"))
				return
			}
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "Registration cancelled successfully"))
	}
}
