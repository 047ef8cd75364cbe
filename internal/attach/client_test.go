package attach

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestUpload(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/upload" {
			t.Errorf("got %s %s; want POST /upload", r.Method, r.URL.Path)
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("form file: %v", err)
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		if string(data) != "hello" {
			t.Errorf("got body %q; want %q", data, "hello")
		}

		json.NewEncoder(w).Encode(map[string]any{
			"success":      true,
			"filename":     "ab12cd.txt",
			"originalName": header.Filename,
			"url":          "/uploads/ab12cd.txt",
			"size":         5,
		})
	}))
	defer srv.Close()

	c := NewClientHTTP(srv.URL, srv.Client())
	att, err := c.Upload(context.Background(), "notes.txt", 5, strings.NewReader("hello"))
	if err != nil {
		t.Fatalf("upload: %v", err)
	}

	if att.Name != "notes.txt" {
		t.Errorf("Name = %q; want %q", att.Name, "notes.txt")
	}
	if att.Filename != "ab12cd.txt" {
		t.Errorf("Filename = %q; want %q", att.Filename, "ab12cd.txt")
	}
	if att.URL != "/uploads/ab12cd.txt" {
		t.Errorf("URL = %q; want %q", att.URL, "/uploads/ab12cd.txt")
	}
	if att.Size != 5 {
		t.Errorf("Size = %d; want 5", att.Size)
	}
}

func TestUpload_TooLargeRejectedLocally(t *testing.T) {
	called := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	}))
	defer srv.Close()

	c := NewClientHTTP(srv.URL, srv.Client())
	_, err := c.Upload(context.Background(), "huge.bin", MaxUploadSize+1, strings.NewReader(""))
	if err != ErrTooLarge {
		t.Fatalf("got %v; want ErrTooLarge", err)
	}
	if called {
		t.Error("oversize upload reached the server")
	}
}

func TestUpload_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{"error": "disk full"})
	}))
	defer srv.Close()

	c := NewClientHTTP(srv.URL, srv.Client())
	_, err := c.Upload(context.Background(), "notes.txt", 5, strings.NewReader("hello"))
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("got %v; want service error message", err)
	}
}

func TestRemove(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete || r.URL.Path != "/uploads/ab12cd.txt" {
			t.Errorf("got %s %s; want DELETE /uploads/ab12cd.txt", r.Method, r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{"success": true, "message": "File deleted successfully"})
	}))
	defer srv.Close()

	c := NewClientHTTP(srv.URL, srv.Client())
	if err := c.Remove(context.Background(), "ab12cd.txt"); err != nil {
		t.Fatalf("remove: %v", err)
	}
}

func TestRemove_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(map[string]any{"error": "File not found"})
	}))
	defer srv.Close()

	c := NewClientHTTP(srv.URL, srv.Client())
	err := c.Remove(context.Background(), "missing.txt")
	if err == nil || !strings.Contains(err.Error(), "File not found") {
		t.Fatalf("got %v; want not-found error", err)
	}
}

func TestCheckHealth(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/health" {
			t.Errorf("got path %s; want /api/health", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"status":      "OK",
			"timestamp":   "2025-03-12T10:00:00Z",
			"environment": "development",
		})
	}))
	defer srv.Close()

	c := NewClientHTTP(srv.URL, srv.Client())
	h, err := c.CheckHealth(context.Background())
	if err != nil {
		t.Fatalf("health: %v", err)
	}
	if h.Status != "OK" || h.Environment != "development" {
		t.Errorf("got %+v; want OK/development", h)
	}
}
