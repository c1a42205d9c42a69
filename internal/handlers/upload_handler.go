package handlers

import (
	"net/http"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/gin-gonic/gin"

	"github.com/campus-events/api/internal/helpers"
	"github.com/campus-events/api/internal/models"
)

// UploadFile accepts a multipart "file" field and returns the hosted URL.
// Used for ancillary assets (event banners and the like), not by the core
// event/registration flow.
func UploadFile(cld *cloudinary.Cloudinary) gin.HandlerFunc {
	return func(c *gin.Context) {
		fileHeader, err := c.FormFile("file")
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("file is required"))
			return
		}

		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("failed to read uploaded file"))
			return
		}
		defer file.Close()

		url, err := helpers.UploadFile(c.Request.Context(), cld, file, helpers.EventsFolder)
		if err != nil {
			_ = c.Error(err)
			return
		}

		c.JSON(http.StatusOK, models.SuccessResponse(gin.H{"url": url}, "File uploaded successfully"))
	}
}
