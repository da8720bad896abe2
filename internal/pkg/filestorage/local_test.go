package filestorage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func uploadedFile(t *testing.T, name, content string) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("file", name)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	writer.Close()

	req := httptest.NewRequest("POST", "/", &body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	_, header, err := req.FormFile("file")
	if err != nil {
		t.Fatalf("parse form file: %v", err)
	}
	return header
}

func TestSaveAndDeleteFile(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("new storage: %v", err)
	}

	path, err := storage.SaveFile(uploadedFile(t, "resume.pdf", "pdf bytes"), SubdirResumes)
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(path, "uploads/"+SubdirResumes+"/") {
		t.Fatalf("path = %q, want uploads/%s/ prefix", path, SubdirResumes)
	}
	if filepath.Ext(path) != ".pdf" {
		t.Fatalf("path = %q, original extension lost", path)
	}

	rel := strings.TrimPrefix(path, "uploads/")
	physical := filepath.Join(storage.basePath, filepath.FromSlash(rel))
	data, err := os.ReadFile(physical)
	if err != nil {
		t.Fatalf("read saved file: %v", err)
	}
	if string(data) != "pdf bytes" {
		t.Fatalf("saved content = %q", data)
	}

	if err := storage.DeleteFile(path); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := os.Stat(physical); !os.IsNotExist(err) {
		t.Fatal("file still present after delete")
	}
}

func TestSaveFileNilHeader(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("new storage: %v", err)
	}

	path, err := storage.SaveFile(nil, SubdirVerbal)
	if err != nil || path != "" {
		t.Fatalf("path = %q, err = %v, want empty and nil", path, err)
	}
}

func TestDeleteFileSafety(t *testing.T) {
	storage, err := NewLocalStorage(t.TempDir())
	if err != nil {
		t.Fatalf("new storage: %v", err)
	}

	// Missing files are already deleted
	if err := storage.DeleteFile("uploads/resumes/gone.pdf"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}

	// Paths escaping the storage root are rejected
	if err := storage.DeleteFile("uploads/../../etc/passwd"); err == nil {
		t.Fatal("path traversal accepted")
	}

	if err := storage.DeleteFile(""); err != nil {
		t.Fatalf("delete empty path: %v", err)
	}
}
