package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/campus-events/api/internal/models"
	"github.com/campus-events/api/internal/services"
)

func ListCertificates(cs *services.CertificateService) gin.HandlerFunc {
	return func(c *gin.Context) {
		certs, err := cs.Certificates(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.ListResponse(certs, len(certs)))
	}
}
