package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/pets-paws/pets-paws-backend/internal/repository/memory"
	"github.com/pets-paws/pets-paws-backend/internal/service"
)

type stubStorage struct {
	objectNames []string
	err         error
}

func (s *stubStorage) Upload(ctx context.Context, bucket, objectName, contentType string, reader io.Reader, size int64) (string, error) {
	s.objectNames = append(s.objectNames, objectName)
	if s.err != nil {
		return "", s.err
	}
	return "https://storage/" + bucket + "/" + objectName, nil
}

func newMediaTestServer(t *testing.T, storage *stubStorage) *testServer {
	t.Helper()

	users := memory.NewUserRepo()
	sessions := memory.NewSessionRepo()
	auth := service.NewAuthService(users, sessions, 7*24*time.Hour)
	mediaService := service.NewMediaService(storage, service.MediaServiceConfig{Bucket: "pets"})

	e := NewRouter([]string{"*"})
	RegisterAuth(e, auth)
	RegisterMedia(e, auth, mediaService)

	return &testServer{e: e, users: users, sessions: sessions}
}

func multipartUpload(t *testing.T, fileName, contentType string, content []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", `form-data; name="file"; filename="`+fileName+`"`)
	header.Set("Content-Type", contentType)
	part, err := writer.CreatePart(header)
	if err != nil {
		t.Fatalf("create multipart part: %v", err)
	}
	if _, err := part.Write(content); err != nil {
		t.Fatalf("write multipart part: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("close multipart writer: %v", err)
	}
	return body, writer.FormDataContentType()
}

func postUpload(t *testing.T, srv *testServer, token, fileName, contentType string, content []byte) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	body, formContentType := multipartUpload(t, fileName, contentType, content)
	req := httptest.NewRequest(http.MethodPost, "/api/upload/image", body)
	req.Header.Set(echo.HeaderContentType, formContentType)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	srv.e.ServeHTTP(rec, req)

	var payload map[string]any
	if rec.Body.Len() > 0 {
		if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
			t.Fatalf("invalid JSON response: %v\n%s", err, rec.Body.String())
		}
	}
	return rec, payload
}

func TestUploadImageEndpoint(t *testing.T) {
	storage := &stubStorage{}
	srv := newMediaTestServer(t, storage)
	ngoToken := srv.signup(t, "ngo@example.com", "Happy Paws", "NGO")
	adopterToken := srv.signup(t, "adopter@example.com", "Alex", "Adopter")

	rec, _ := postUpload(t, srv, "", "rex.jpg", "image/jpeg", []byte("jpeg bytes"))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("anonymous upload should answer 401, got %d", rec.Code)
	}

	rec, payload := postUpload(t, srv, adopterToken, "rex.jpg", "image/jpeg", []byte("jpeg bytes"))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("adopter upload should answer 403, got %d", rec.Code)
	}
	if payload["error"] != "Only NGOs can upload pet images" {
		t.Fatalf("unexpected 403 message: %v", payload["error"])
	}

	rec, payload = postUpload(t, srv, ngoToken, "rex.jpg", "image/jpeg", []byte("jpeg bytes"))
	if rec.Code != http.StatusOK {
		t.Fatalf("NGO upload returned %d: %s", rec.Code, rec.Body.String())
	}
	url, _ := payload["image_url"].(string)
	if !strings.Contains(url, "pets_paws/") {
		t.Fatalf("expected image_url under pets_paws/, got %q", url)
	}
	if len(storage.objectNames) != 1 {
		t.Fatalf("expected one stored object, got %d", len(storage.objectNames))
	}

	rec, _ = postUpload(t, srv, ngoToken, "anim.gif", "image/gif", []byte("GIF89a"))
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("gif upload should answer 400, got %d", rec.Code)
	}
}
