package image

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func denied(context.Context) bool { return false }

func writeImage(t *testing.T, dir, name string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte("fake-jpeg-bytes"), 0o644))
	return path
}

func TestLibrarySourceAcquire(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "latte.jpg")

	s := &LibrarySource{Dir: dir, Path: "latte.jpg"}
	got, err := s.Acquire(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeAcquired, got.Outcome)
	assert.Equal(t, filepath.Join(dir, "latte.jpg"), got.Ref)
}

func TestLibrarySourceCancelled(t *testing.T) {
	s := &LibrarySource{Dir: t.TempDir(), Path: "  "}
	got, err := s.Acquire(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeCancelled, got.Outcome)
}

func TestLibrarySourceDenied(t *testing.T) {
	dir := t.TempDir()
	writeImage(t, dir, "latte.jpg")

	s := &LibrarySource{Dir: dir, Path: "latte.jpg", Grant: denied}
	got, err := s.Acquire(context.Background())
	require.NoError(t, err, "denial is an outcome, not an error")
	assert.Equal(t, OutcomeDenied, got.Outcome)
}

func TestLibrarySourceMissingFile(t *testing.T) {
	s := &LibrarySource{Dir: t.TempDir(), Path: "nope.jpg"}
	_, err := s.Acquire(context.Background())
	assert.Error(t, err)
}

func TestCameraSourceDenied(t *testing.T) {
	s := &CameraSource{Command: "true", Grant: denied}
	got, err := s.Acquire(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeDenied, got.Outcome)
}

func TestCameraSourceCleanExitWithoutFileIsCancelled(t *testing.T) {
	s := &CameraSource{Command: "true", StagingDir: t.TempDir()}
	got, err := s.Acquire(context.Background())
	require.NoError(t, err)
	assert.Equal(t, OutcomeCancelled, got.Outcome)
}

func TestCameraSourceUnconfigured(t *testing.T) {
	s := &CameraSource{}
	_, err := s.Acquire(context.Background())
	assert.Error(t, err)
}

func TestUpload(t *testing.T) {
	dir := t.TempDir()
	ref := writeImage(t, dir, "mocha.jpg")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Client-ID test-key", r.Header.Get("Authorization"))
		require.NoError(t, r.ParseForm())

		decoded, err := base64.StdEncoding.DecodeString(r.PostForm.Get("image"))
		require.NoError(t, err)
		assert.Equal(t, "fake-jpeg-bytes", string(decoded))

		_, _ = w.Write([]byte(`{"success":true,"data":{"link":"https://img.example/abc.jpg"}}`))
	}))
	defer srv.Close()

	u := &Uploader{Endpoint: srv.URL, ClientKey: "test-key", HTTP: srv.Client()}
	link, err := u.Upload(context.Background(), ref)
	require.NoError(t, err)
	assert.Equal(t, "https://img.example/abc.jpg", link)
}

func TestUploadHostReportsFailure(t *testing.T) {
	dir := t.TempDir()
	ref := writeImage(t, dir, "mocha.jpg")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"success":false}`))
	}))
	defer srv.Close()

	u := &Uploader{Endpoint: srv.URL, HTTP: srv.Client()}
	_, err := u.Upload(context.Background(), ref)
	var ue *UploadError
	assert.ErrorAs(t, err, &ue, "success=false must be an upload fault")
}

func TestUploadNon2xx(t *testing.T) {
	dir := t.TempDir()
	ref := writeImage(t, dir, "mocha.jpg")

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	u := &Uploader{Endpoint: srv.URL, HTTP: srv.Client()}
	_, err := u.Upload(context.Background(), ref)
	var ue *UploadError
	require.ErrorAs(t, err, &ue)
	assert.Equal(t, http.StatusServiceUnavailable, ue.Status)
}

func TestUploadEncodingFault(t *testing.T) {
	u := &Uploader{Endpoint: "http://unused.invalid", HTTP: http.DefaultClient}
	_, err := u.Upload(context.Background(), filepath.Join(t.TempDir(), "missing.jpg"))
	assert.ErrorIs(t, err, ErrEncoding)
}
