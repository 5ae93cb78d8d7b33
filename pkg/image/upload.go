package image

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"go.uber.org/zap"
)

// ErrEncoding reports that the local image could not be read or
// encoded. Fatal: do not retry with the same reference.
var ErrEncoding = errors.New("image: encode failed")

// UploadError reports a failed transfer to the image host. Whether to
// retry or abort the enclosing submission is the caller's decision.
type UploadError struct {
	Status int
	Err    error
}

func (e *UploadError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("image: upload: status %d", e.Status)
	}
	return fmt.Sprintf("image: upload: %v", e.Err)
}

func (e *UploadError) Unwrap() error { return e.Err }

// hostResponse is the image host's envelope.
type hostResponse struct {
	Success bool `json:"success"`
	Data    struct {
		Link string `json:"link"`
	} `json:"data"`
}

// Uploader pushes one encoded image to the external image host and
// returns the durable URL. At most one attempt per call.
type Uploader struct {
	Endpoint  string
	ClientKey string
	HTTP      *http.Client
	Logger    *zap.Logger
}

// Upload reads localRef, encodes it, and POSTs it as the image form
// field. A response with success=false is an upload fault even on a
// 2xx status.
func (u *Uploader) Upload(ctx context.Context, localRef string) (string, error) {
	logger := u.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	raw, err := os.ReadFile(localRef)
	if err != nil {
		return "", fmt.Errorf("%w: read %q: %v", ErrEncoding, localRef, err)
	}
	if len(raw) == 0 {
		return "", fmt.Errorf("%w: %q is empty", ErrEncoding, localRef)
	}
	encoded := base64.StdEncoding.EncodeToString(raw)

	form := url.Values{}
	form.Set("image", encoded)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u.Endpoint,
		strings.NewReader(form.Encode()))
	if err != nil {
		return "", &UploadError{Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	if u.ClientKey != "" {
		req.Header.Set("Authorization", "Client-ID "+u.ClientKey)
	}

	logger.Debug("uploading image",
		zap.String("ref", localRef), zap.Int("bytes", len(raw)))

	resp, err := u.HTTP.Do(req)
	if err != nil {
		return "", &UploadError{Err: err}
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", &UploadError{Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &UploadError{Err: err}
	}

	var hr hostResponse
	if err := json.Unmarshal(body, &hr); err != nil {
		return "", &UploadError{Err: fmt.Errorf("decode: %w", err)}
	}
	if !hr.Success {
		return "", &UploadError{Err: errors.New("host reported failure")}
	}
	if hr.Data.Link == "" {
		return "", &UploadError{Err: errors.New("host returned no link")}
	}

	logger.Debug("image uploaded", zap.String("link", hr.Data.Link))
	return hr.Data.Link, nil
}
