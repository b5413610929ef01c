package handler

import (
	"github.com/labstack/echo/v4"

	"portfolia/internal/domain/entity"
	"portfolia/internal/domain/repository"
	"portfolia/internal/infrastructure/storage"
	"portfolia/pkg/errors"
	"portfolia/pkg/logger"
	"portfolia/pkg/response"
	"portfolia/pkg/utils"
)

// Upload size cap, enforced before streaming to the bucket.
const maxUploadSize = 10 << 20 // 10 MB

var allowedUploadTypes = map[string]bool{
	"image/jpeg":    true,
	"image/png":     true,
	"image/gif":     true,
	"image/webp":    true,
	"image/svg+xml": true,
}

type MediaHandler struct {
	storageClient *storage.CloudStorageClient
	mediaRepo     repository.MediaRepository
}

func NewMediaHandler(storageClient *storage.CloudStorageClient, mediaRepo repository.MediaRepository) *MediaHandler {
	return &MediaHandler{
		storageClient: storageClient,
		mediaRepo:     mediaRepo,
	}
}

// Upload stores an image in the public bucket and returns its URL. Admin
// only; covers, avatars and project screenshots all come through here.
func (h *MediaHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Missing file field", err))
	}
	if fileHeader.Size > maxUploadSize {
		return response.Error(c, errors.BadRequest("File exceeds the 10 MB limit", nil))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedUploadTypes[contentType] {
		return response.Error(c, errors.BadRequest("Unsupported file type", nil))
	}

	folder := c.FormValue("folder")
	if folder == "" {
		folder = "uploads"
	}

	src, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read upload", err))
	}
	defer src.Close()

	url, objectName, err := h.storageClient.UploadFile(c.Request().Context(), src, contentType, folder)
	if err != nil {
		return response.Error(c, errors.Internal("Upload failed", err))
	}

	uid, _ := c.Get("uid").(string)
	media := &entity.MediaFile{
		URL:         url,
		ObjectName:  objectName,
		Folder:      folder,
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		Size:        fileHeader.Size,
		UploadedBy:  uid,
	}
	// The object is already live; a bookkeeping failure should not fail the upload.
	if err := h.mediaRepo.Create(c.Request().Context(), media); err != nil {
		logger.Error("Failed to record media metadata for %s: %v", objectName, err)
	}

	return response.Created(c, media)
}

func (h *MediaHandler) List(c echo.Context) error {
	params := utils.GetPaginationParams(c)

	files, total, err := h.mediaRepo.List(c.Request().Context(), params.PageSize, params.Offset)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Paginated(c, files, total, params.Page, params.PageSize)
}
