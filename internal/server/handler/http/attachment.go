// Package http provides HTTP handlers for the attachment service:
// file upload, deletion, and health reporting.
package http

import (
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxUploadSize is the largest accepted upload in bytes.
const MaxUploadSize = 10 << 20

// AttachmentHandler handles file upload and deletion requests.
type AttachmentHandler struct {
	// Dir is the directory uploaded files are stored in.
	Dir string
	// Hosted disables deletion on serverless deployments, where the
	// filesystem is ephemeral and files are dropped on redeploy anyway.
	Hosted bool
	// Log is the request-scoped structured logger.
	Log *zap.Logger
}

// UploadResponse represents the JSON payload returned after a successful
// upload. URL is the path the stored file is served under.
type UploadResponse struct {
	Success      bool   `json:"success"`
	Filename     string `json:"filename"`
	OriginalName string `json:"originalName"`
	URL          string `json:"url"`
	Size         int64  `json:"size"`
}

// Upload handles multipart file uploads on the "file" form field.
// The stored filename is a fresh UUID with the original extension, so
// uploads never collide or overwrite each other. Bodies above
// MaxUploadSize are rejected with 400.
func (h *AttachmentHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxUploadSize)

	file, header, err := r.FormFile("file")
	if err != nil {
		respondError(w, http.StatusBadRequest, "No file uploaded")
		return
	}
	defer file.Close()

	stored := uuid.NewString() + filepath.Ext(header.Filename)
	dst, err := os.Create(filepath.Join(h.Dir, stored))
	if err != nil {
		h.Log.Error("create upload file", zap.String("filename", stored), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Upload failed")
		return
	}
	defer dst.Close()

	size, err := io.Copy(dst, file)
	if err != nil {
		h.Log.Error("write upload file", zap.String("filename", stored), zap.Error(err))
		os.Remove(dst.Name())
		respondError(w, http.StatusInternalServerError, "Upload failed")
		return
	}

	h.Log.Info("file uploaded",
		zap.String("filename", stored),
		zap.String("originalName", header.Filename),
		zap.Int64("size", size))

	respondJSON(w, http.StatusOK, UploadResponse{
		Success:      true,
		Filename:     stored,
		OriginalName: header.Filename,
		URL:          "/uploads/" + stored,
		Size:         size,
	})
}

// Delete removes a stored file by its server filename. On hosted
// deployments deletion is reported as a successful no-op.
func (h *AttachmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	filename := chi.URLParam(r, "filename")
	// Strip any path components so the target stays inside Dir.
	filename = filepath.Base(filename)
	if filename == "." || filename == string(filepath.Separator) {
		respondError(w, http.StatusBadRequest, "Invalid filename")
		return
	}

	if h.Hosted {
		respondJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "File deletion not supported in production",
		})
		return
	}

	err := os.Remove(filepath.Join(h.Dir, filename))
	if os.IsNotExist(err) {
		respondError(w, http.StatusNotFound, "File not found")
		return
	}
	if err != nil {
		h.Log.Error("delete file", zap.String("filename", filename), zap.Error(err))
		respondError(w, http.StatusInternalServerError, "Delete failed")
		return
	}

	h.Log.Info("file deleted", zap.String("filename", filename))
	respondJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": "File deleted",
	})
}

func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	respondJSON(w, status, map[string]string{"error": msg})
}
