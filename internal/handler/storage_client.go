package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"google.golang.org/api/idtoken"

	"github.com/ngongmathias/Bara-prototype-sub001/internal/config"
)

// ImageStorage stores uploaded images and returns their public URL.
type ImageStorage interface {
	PutObject(ctx context.Context, path, contentType string, body []byte, requestID string) (string, error)
}

// StorageClient writes objects to the storage REST endpoint.
type StorageClient struct {
	client     *http.Client
	baseURL    string
	bucket     string
	serviceKey string
}

// NewStorageClient builds a storage client. Without a service key and an
// explicit client it authenticates with a Google ID token when one is
// available.
func NewStorageClient(client *http.Client, cfg config.StorageConfig) *StorageClient {
	if cfg.BaseURL == "" {
		panic("storage base url must not be empty")
	}
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
		if cfg.ServiceKey == "" {
			if idc, err := idtoken.NewClient(context.Background(), baseURL); err == nil {
				client = idc
			}
		}
	}
	return &StorageClient{
		client:     client,
		baseURL:    baseURL,
		bucket:     cfg.Bucket,
		serviceKey: cfg.ServiceKey,
	}
}

// PutObject uploads body under path in the configured bucket.
func (c *StorageClient) PutObject(ctx context.Context, path, contentType string, body []byte, requestID string) (string, error) {
	path = strings.TrimLeft(path, "/")
	url := fmt.Sprintf("%s/object/%s/%s", c.baseURL, c.bucket, path)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to create storage request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.ContentLength = int64(len(body))
	if c.serviceKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.serviceKey)
	}
	if requestID != "" {
		req.Header.Set("X-Request-ID", requestID)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("storage request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return "", fmt.Errorf("storage error: %s", extractStorageError(resp.Body))
	}
	return c.PublicURL(path), nil
}

// PublicURL is the address an uploaded object is served from.
func (c *StorageClient) PublicURL(path string) string {
	return fmt.Sprintf("%s/object/public/%s/%s", c.baseURL, c.bucket, strings.TrimLeft(path, "/"))
}

func extractStorageError(body io.Reader) string {
	data, err := io.ReadAll(body)
	if err != nil || len(data) == 0 {
		return "storage returned an error"
	}

	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil {
		if payload.Message != "" {
			return payload.Message
		}
		if payload.Error != "" {
			return payload.Error
		}
	}
	return string(data)
}

var _ ImageStorage = (*StorageClient)(nil)
