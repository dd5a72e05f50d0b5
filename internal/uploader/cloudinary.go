// Package uploader talks to the Cloudinary unsigned upload endpoint.
// The browser uploaded directly with a public preset; this client does the
// same, so no server-side proxy or signing is involved.
package uploader

import (
	"context"
	"fmt"
	"io"
	"mime"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/holidaysri/holidaysri-client/internal/models"
	apperrors "github.com/holidaysri/holidaysri-client/pkg/errors"
	"github.com/holidaysri/holidaysri-client/pkg/logger"
)

// MaxFileSize is the per-file ceiling checked before any bytes are sent
const MaxFileSize = 5 * 1024 * 1024

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

// uploadResponse is Cloudinary's reply; only the durable URL and the
// opaque asset id are kept.
type uploadResponse struct {
	SecureURL string `json:"secure_url"`
	PublicID  string `json:"public_id"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// Client uploads images to a single Cloudinary cloud with one unsigned preset
type Client struct {
	http         *resty.Client
	cloudName    string
	uploadPreset string
}

// New creates an upload client. baseURL is overridable for tests; empty
// means the public Cloudinary API.
func New(baseURL, cloudName, uploadPreset string) *Client {
	if baseURL == "" {
		baseURL = "https://api.cloudinary.com"
	}
	return &Client{
		http:         resty.New().SetBaseURL(baseURL).SetTimeout(60 * time.Second),
		cloudName:    cloudName,
		uploadPreset: uploadPreset,
	}
}

// ValidateImageType checks the file name maps to an allowed image MIME type
func ValidateImageType(fileName string) error {
	contentType := mime.TypeByExtension(strings.ToLower(filepath.Ext(fileName)))
	if i := strings.Index(contentType, ";"); i >= 0 {
		contentType = contentType[:i]
	}
	if !allowedTypes[strings.ToLower(contentType)] {
		return apperrors.ValidationError(fileName, "not an image file (allowed: jpeg, png, webp, gif)")
	}
	return nil
}

// ValidateImageSize checks the file fits under the 5MB ceiling
func ValidateImageSize(fileName string, size int64) error {
	if size > MaxFileSize {
		return apperrors.ValidationError(fileName,
			fmt.Sprintf("file too large: %d bytes (max %d bytes)", size, MaxFileSize))
	}
	return nil
}

// Upload sends one file to the asset host and returns its {url, publicId}
// handles. Validation failures never reach the network; transport or
// non-2xx failures come back as ErrUploadFailed and leave nothing half-done.
func (c *Client) Upload(ctx context.Context, fileName string, size int64, r io.Reader) (models.UploadedImage, error) {
	start := time.Now()

	if err := ValidateImageType(fileName); err != nil {
		return models.UploadedImage{}, err
	}
	if err := ValidateImageSize(fileName, size); err != nil {
		return models.UploadedImage{}, err
	}
	if c.cloudName == "" {
		return models.UploadedImage{}, apperrors.UploadError(fileName, fmt.Errorf("cloudinary cloud name is not configured"))
	}

	var result uploadResponse
	var apiErr errorResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetFileReader("file", fileName, r).
		SetFormData(map[string]string{
			"upload_preset": c.uploadPreset,
			"cloud_name":    c.cloudName,
		}).
		SetResult(&result).
		SetError(&apiErr).
		Post(fmt.Sprintf("/v1_1/%s/image/upload", c.cloudName))

	duration := time.Since(start).Seconds()

	if err != nil {
		logger.LogAPICall("cloudinary", "upload", "error", duration,
			zap.Error(err), zap.String("file", fileName))
		return models.UploadedImage{}, apperrors.UploadError(fileName, err)
	}
	if resp.IsError() {
		msg := apiErr.Error.Message
		if msg == "" {
			msg = resp.Status()
		}
		logger.LogAPICall("cloudinary", "upload", "error", duration,
			zap.String("file", fileName), zap.Int("status", resp.StatusCode()))
		return models.UploadedImage{}, apperrors.UploadError(fileName, fmt.Errorf("%s", msg))
	}

	logger.LogAPICall("cloudinary", "upload", "success", duration,
		zap.String("file", fileName), zap.Int64("size_bytes", size))

	return models.UploadedImage{URL: result.SecureURL, PublicID: result.PublicID}, nil
}
