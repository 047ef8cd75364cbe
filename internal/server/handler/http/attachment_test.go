package http

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func newTestServer(t *testing.T, hosted bool) (*httptest.Server, string) {
	t.Helper()
	dir := t.TempDir()
	attachment := &AttachmentHandler{Dir: dir, Hosted: hosted, Log: zap.NewNop()}
	health := &HealthHandler{Environment: "test"}
	srv := httptest.NewServer(NewRouter(attachment, health, zap.NewNop()))
	t.Cleanup(srv.Close)
	return srv, dir
}

func multipartBody(t *testing.T, field, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(field, filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestUpload(t *testing.T) {
	srv, dir := newTestServer(t, false)

	body, contentType := multipartBody(t, "file", "report.pdf", "pdf bytes")
	res, err := http.Post(srv.URL+"/upload", contentType, body)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("got status %d; want 200", res.StatusCode)
	}

	var got UploadResponse
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Success {
		t.Error("success = false; want true")
	}
	if got.OriginalName != "report.pdf" {
		t.Errorf("originalName = %q; want %q", got.OriginalName, "report.pdf")
	}
	if filepath.Ext(got.Filename) != ".pdf" {
		t.Errorf("stored filename %q should keep the .pdf extension", got.Filename)
	}
	if got.Filename == "report.pdf" {
		t.Error("stored filename should not be the original name")
	}
	if got.URL != "/uploads/"+got.Filename {
		t.Errorf("url = %q; want /uploads/%s", got.URL, got.Filename)
	}
	if got.Size != int64(len("pdf bytes")) {
		t.Errorf("size = %d; want %d", got.Size, len("pdf bytes"))
	}

	data, err := os.ReadFile(filepath.Join(dir, got.Filename))
	if err != nil {
		t.Fatalf("stored file: %v", err)
	}
	if string(data) != "pdf bytes" {
		t.Errorf("stored content = %q; want %q", data, "pdf bytes")
	}
}

func TestUpload_UniqueStoredNames(t *testing.T) {
	srv, _ := newTestServer(t, false)

	names := map[string]bool{}
	for i := 0; i < 2; i++ {
		body, contentType := multipartBody(t, "file", "same.txt", "x")
		res, err := http.Post(srv.URL+"/upload", contentType, body)
		if err != nil {
			t.Fatalf("post: %v", err)
		}
		var got UploadResponse
		if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
			t.Fatalf("decode: %v", err)
		}
		res.Body.Close()
		names[got.Filename] = true
	}
	if len(names) != 2 {
		t.Errorf("two uploads of the same file produced %d stored names; want 2", len(names))
	}
}

func TestUpload_MissingField(t *testing.T) {
	srv, _ := newTestServer(t, false)

	body, contentType := multipartBody(t, "document", "report.pdf", "pdf bytes")
	res, err := http.Post(srv.URL+"/upload", contentType, body)
	if err != nil {
		t.Fatalf("post: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusBadRequest {
		t.Fatalf("got status %d; want 400", res.StatusCode)
	}
	var got map[string]string
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["error"] == "" {
		t.Error("error message missing from response")
	}
}

func TestUpload_TooLarge(t *testing.T) {
	handler := &AttachmentHandler{Dir: t.TempDir(), Log: zap.NewNop()}

	body, contentType := multipartBody(t, "file", "huge.bin", strings.Repeat("a", MaxUploadSize+1))
	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	handler.Upload(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("got status %d; want 400", rec.Code)
	}
}

func TestDelete(t *testing.T) {
	srv, dir := newTestServer(t, false)
	stored := filepath.Join(dir, "ab12cd.txt")
	if err := os.WriteFile(stored, []byte("x"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/uploads/ab12cd.txt", nil)
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("got status %d; want 200", res.StatusCode)
	}
	if _, err := os.Stat(stored); !os.IsNotExist(err) {
		t.Error("file still exists after delete")
	}
}

func TestDelete_NotFound(t *testing.T) {
	srv, _ := newTestServer(t, false)

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/uploads/missing.txt", nil)
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusNotFound {
		t.Fatalf("got status %d; want 404", res.StatusCode)
	}
	var got map[string]string
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["error"] != "File not found" {
		t.Errorf("error = %q; want %q", got["error"], "File not found")
	}
}

func TestDelete_HostedNoOp(t *testing.T) {
	srv, dir := newTestServer(t, true)
	stored := filepath.Join(dir, "ab12cd.txt")
	if err := os.WriteFile(stored, []byte("x"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	req, _ := http.NewRequest(http.MethodDelete, srv.URL+"/uploads/ab12cd.txt", nil)
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("delete: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("got status %d; want 200", res.StatusCode)
	}
	var got struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Success || got.Message != "File deletion not supported in production" {
		t.Errorf("got %+v; want hosted no-op message", got)
	}
	if _, err := os.Stat(stored); err != nil {
		t.Error("hosted delete should leave the file in place")
	}
}

func TestServeUploadedFile(t *testing.T) {
	srv, dir := newTestServer(t, false)
	if err := os.WriteFile(filepath.Join(dir, "ab12cd.txt"), []byte("served"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	res, err := http.Get(srv.URL + "/uploads/ab12cd.txt")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer res.Body.Close()

	data, _ := io.ReadAll(res.Body)
	if res.StatusCode != http.StatusOK || string(data) != "served" {
		t.Errorf("got %d %q; want 200 %q", res.StatusCode, data, "served")
	}
}

func TestHealth(t *testing.T) {
	srv, _ := newTestServer(t, false)

	res, err := http.Get(srv.URL + "/api/health")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		t.Fatalf("got status %d; want 200", res.StatusCode)
	}
	var got map[string]string
	if err := json.NewDecoder(res.Body).Decode(&got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got["status"] != "OK" {
		t.Errorf("status = %q; want OK", got["status"])
	}
	if got["environment"] != "test" {
		t.Errorf("environment = %q; want test", got["environment"])
	}
	if got["timestamp"] == "" {
		t.Error("timestamp missing")
	}
}
