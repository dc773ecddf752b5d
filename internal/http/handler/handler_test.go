package handler

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"docvault/internal/model"
	serviceMocks "docvault/internal/service/mocks"
	"docvault/internal/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestLivenessProbe(t *testing.T) {
	app := fiber.New()
	app.Get("/healthz", LivenessProbe())

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	resp, _ := app.Test(req)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func multipartBody(t *testing.T, fileName, content string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", fileName)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func TestUploadDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Post("/orgs/:org_id/documents", UploadDocument(mockSvc))

	t.Run("success", func(t *testing.T) {
		body, ct := multipartBody(t, "report.pdf", "pdf bytes")

		expectedDoc := &model.Document{
			OrgID:    "org-7",
			Filename: "report.pdf",
			Key:      "prod_org_org-7/report.pdf",
		}
		mockSvc.On("UploadStream", mock.Anything, "org-7", "report.pdf", mock.Anything, mock.Anything, mock.Anything).
			Return(expectedDoc, nil).Once()

		req := httptest.NewRequest(http.MethodPost, "/orgs/org-7/documents", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		var result model.Document
		json.NewDecoder(resp.Body).Decode(&result)
		assert.Equal(t, "prod_org_org-7/report.pdf", result.Key)
		mockSvc.AssertExpectations(t)
	})

	t.Run("no file", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/orgs/org-7/documents", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "FILE_REQUIRED", res.Error.Code)
	})

	t.Run("storage permission error", func(t *testing.T) {
		body, ct := multipartBody(t, "report.pdf", "pdf bytes")

		mockSvc.On("UploadStream", mock.Anything, "org-7", "report.pdf", mock.Anything, mock.Anything, mock.Anything).
			Return(nil, storage.ErrPermission).Once()

		req := httptest.NewRequest(http.MethodPost, "/orgs/org-7/documents", body)
		req.Header.Set("Content-Type", ct)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "PERMISSION_DENIED", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestIssueLink(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Get("/orgs/:org_id/documents/:file_name/link", IssueLink(mockSvc))

	t.Run("success", func(t *testing.T) {
		expires := time.Now().UTC().Add(15 * time.Minute)
		mockSvc.On("SignedLink", mock.Anything, "org-7", "report.pdf").
			Return(&model.SignedLink{URL: "https://s.example.com/x?sig=abc", ExpiresAt: expires}, nil).Once()

		req := httptest.NewRequest(http.MethodGet, "/orgs/org-7/documents/report.pdf/link", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var link model.SignedLink
		json.NewDecoder(resp.Body).Decode(&link)
		assert.Equal(t, "https://s.example.com/x?sig=abc", link.URL)
		assert.WithinDuration(t, expires, link.ExpiresAt, time.Second)
		mockSvc.AssertExpectations(t)
	})

	t.Run("object absent", func(t *testing.T) {
		mockSvc.On("SignedLink", mock.Anything, "org-7", "ghost.pdf").
			Return(nil, storage.ErrNotFound).Once()

		req := httptest.NewRequest(http.MethodGet, "/orgs/org-7/documents/ghost.pdf/link", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "NOT_FOUND", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})

	t.Run("upstream auth failure", func(t *testing.T) {
		mockSvc.On("SignedLink", mock.Anything, "org-7", "report.pdf").
			Return(nil, storage.ErrAuth).Once()

		req := httptest.NewRequest(http.MethodGet, "/orgs/org-7/documents/report.pdf/link", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		var res errorPayload
		json.NewDecoder(resp.Body).Decode(&res)
		assert.Equal(t, "UPSTREAM_AUTH", res.Error.Code)
		mockSvc.AssertExpectations(t)
	})
}

func TestDeleteDocument(t *testing.T) {
	mockSvc := new(serviceMocks.MockDocumentService)
	app := fiber.New()
	app.Delete("/orgs/:org_id/documents/:file_name", DeleteDocument(mockSvc))

	t.Run("success", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, "org-2", "old.csv").Return(nil).Once()

		req := httptest.NewRequest(http.MethodDelete, "/orgs/org-2/documents/old.csv", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})

	t.Run("transport failure", func(t *testing.T) {
		mockSvc.On("Delete", mock.Anything, "org-2", "old.csv").
			Return(storage.ErrTransport).Once()

		req := httptest.NewRequest(http.MethodDelete, "/orgs/org-2/documents/old.csv", nil)
		resp, _ := app.Test(req)

		assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
		mockSvc.AssertExpectations(t)
	})
}
