package handler

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/dto"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/middleware"
	"github.com/ngongmathias/Bara-prototype-sub001/internal/service"
)

const (
	defaultUploadFolder = "businesses"
	sniffLength         = 512
)

var imageExtensions = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

var uploadFolders = map[string]struct{}{
	"businesses":  {},
	"logos":       {},
	"events":      {},
	"marketplace": {},
	"reviews":     {},
}

// AdminUploadHandler handles CSV imports and image uploads for administrators.
type AdminUploadHandler struct {
	businesses *service.BusinessesService
	storage    ImageStorage
	maxBytes   int64
	now        func() time.Time
}

// NewAdminUploadHandler wires a handler backed by the businesses service and image storage.
func NewAdminUploadHandler(businesses *service.BusinessesService, storage ImageStorage, maxBytes int64) *AdminUploadHandler {
	if maxBytes <= 0 {
		maxBytes = 5 << 20
	}
	return &AdminUploadHandler{businesses: businesses, storage: storage, maxBytes: maxBytes, now: time.Now}
}

// ImportBusinesses handles POST /admin/businesses/import requests.
func (h *AdminUploadHandler) ImportBusinesses(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return Error(c, http.StatusBadRequest, "missing csv file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return Error(c, http.StatusBadRequest, "unable to open file")
	}
	defer file.Close()

	summary, err := h.businesses.ImportCSV(c.Request().Context(), file)
	if err != nil {
		return ServiceError(c, err, "failed to process csv")
	}
	return Success(c, http.StatusOK, "businesses CSV processed", summary)
}

// UploadImage handles POST /admin/uploads. The optional folder form value
// groups objects by what they illustrate.
func (h *AdminUploadHandler) UploadImage(c echo.Context) error {
	folder := strings.ToLower(strings.TrimSpace(c.FormValue("folder")))
	if folder == "" {
		folder = defaultUploadFolder
	}
	if _, ok := uploadFolders[folder]; !ok {
		return Error(c, http.StatusBadRequest, "invalid folder")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return Error(c, http.StatusBadRequest, "missing image file")
	}
	if fileHeader.Size > h.maxBytes {
		return Error(c, http.StatusRequestEntityTooLarge, fmt.Sprintf("image exceeds %d bytes", h.maxBytes))
	}

	file, err := fileHeader.Open()
	if err != nil {
		return Error(c, http.StatusBadRequest, "unable to open file")
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxBytes+1))
	if err != nil {
		return Error(c, http.StatusBadRequest, "unable to read file")
	}
	if int64(len(data)) > h.maxBytes {
		return Error(c, http.StatusRequestEntityTooLarge, fmt.Sprintf("image exceeds %d bytes", h.maxBytes))
	}
	if len(data) == 0 {
		return Error(c, http.StatusBadRequest, "image is empty")
	}

	contentType, ext, err := sniffImage(data)
	if err != nil {
		return Error(c, http.StatusUnsupportedMediaType, err.Error())
	}

	now := h.now().UTC()
	path := fmt.Sprintf("%s/%04d/%02d/%s%s", folder, now.Year(), int(now.Month()), uuid.NewString(), ext)
	requestID := middleware.RequestIDFromContext(c)

	url, err := h.storage.PutObject(c.Request().Context(), path, contentType, data, requestID)
	if err != nil {
		log.Printf("image_upload_failed request_id=%s path=%s err=%v", requestID, path, err)
		return Error(c, http.StatusBadGateway, "failed to store image")
	}

	return Success(c, http.StatusCreated, "image uploaded", dto.UploadResponse{
		URL:         url,
		Path:        path,
		ContentType: contentType,
		Size:        int64(len(data)),
	})
}

func sniffImage(data []byte) (string, string, error) {
	head := data
	if len(head) > sniffLength {
		head = head[:sniffLength]
	}
	contentType := http.DetectContentType(head)
	ext, ok := imageExtensions[contentType]
	if !ok {
		return "", "", errors.New("unsupported image type " + contentType)
	}
	return contentType, ext, nil
}
