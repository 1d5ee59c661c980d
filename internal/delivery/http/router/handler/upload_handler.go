package handler

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/MatheusHenriquePrates/rankfome-backend/internal/delivery/http/response"
	"github.com/MatheusHenriquePrates/rankfome-backend/internal/domain/service"
)

// allowedImageExtensions whitelists the accepted upload extensions.
var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// UploadHandler persists multipart image uploads through the blob storage.
type UploadHandler struct {
	storage service.ImageStorage
}

// NewUploadHandler is the constructor for UploadHandler, injected by Fx.
func NewUploadHandler(storage service.ImageStorage) *UploadHandler {
	return &UploadHandler{storage: storage}
}

// Upload handles the multipart image upload request. The stored path is
// returned for later use as a store or product image_path.
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "image file is required")
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		return response.BadRequest(c, "INVALID_INPUT", "extension must be jpg, jpeg, png, gif or webp")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded file")
	}
	defer file.Close()

	contentType := fileHeader.Header.Get("Content-Type")
	path, err := h.storage.Save(c.Request().Context(), fileHeader.Filename, contentType, file)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{"path": path}, "Image uploaded successfully")
}
