package helpers

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

const (
	EventsFolder = "events"
	AssetsFolder = "assets"
)

// UploadFile pushes a single file to Cloudinary and returns its secure URL.
func UploadFile(ctx context.Context, cld *cloudinary.Cloudinary, file io.Reader, folder string) (string, error) {
	if cld == nil {
		return "", fmt.Errorf("cloudinary client is not initialized")
	}

	uploadResult, err := cld.Upload.Upload(ctx, file, uploader.UploadParams{
		Folder: folder,
		Tags:   []string{"campus-events"},
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload file: %v", err)
	}
	return uploadResult.SecureURL, nil
}

// StringTrim removes surrounding whitespace and stray quotes that show up
// when clients pass path values through JSON templates.
func StringTrim(s string) string {
	s = strings.TrimSpace(s)
	return strings.Trim(s, "\"'")
}
