package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	baseURL = envOr("E2E_BASE_URL", "")
	apiKey  = envOr("E2E_API_KEY", "pack-challenge-api-key")
)

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func skipWithoutServer(t *testing.T) {
	t.Helper()
	if baseURL == "" {
		t.Skip("E2E_BASE_URL not set, skipping end-to-end test")
	}
}

func TestResourceFullWorkflow(t *testing.T) {
	skipWithoutServer(t)
	client := &http.Client{Timeout: 30 * time.Second}

	// 1. Health check
	resp, err := client.Get(baseURL + "/health")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// 2. Requests without a key are rejected
	req, _ := http.NewRequest(http.MethodGet, baseURL+"/api/resources", nil)
	resp, err = client.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// 3. Upload a resource
	title := fmt.Sprintf("e2e resource %d", time.Now().UnixNano())
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for field, value := range map[string]string{
		"title":       title,
		"description": "uploaded by the e2e suite",
		"category":    "example",
		"language":    "english",
		"provider":    "pack",
		"role":        "Mentor / Coach",
	} {
		require.NoError(t, writer.WriteField(field, value))
	}
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="e2e.txt"`)
	header.Set("Content-Type", "text/plain")
	part, err := writer.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write([]byte("e2e payload"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req, _ = http.NewRequest(http.MethodPost, baseURL+"/api/resources", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	req.Header.Set("X-API-Key", apiKey)

	resp, err = client.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var uploadResp struct {
		Success bool `json:"success"`
		Data    struct {
			ID       int64  `json:"id"`
			Title    string `json:"title"`
			FileName string `json:"file_name"`
		} `json:"data"`
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, json.Unmarshal(body, &uploadResp))
	require.True(t, uploadResp.Success)
	require.NotZero(t, uploadResp.Data.ID)
	assert.Equal(t, title, uploadResp.Data.Title)

	// 4. The uploaded resource appears in the list
	req, _ = http.NewRequest(http.MethodGet, baseURL+"/api/resources", nil)
	req.Header.Set("X-API-Key", apiKey)
	resp, err = client.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var listResp struct {
		Data []struct {
			ID int64 `json:"id"`
		} `json:"data"`
	}
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, json.Unmarshal(body, &listResp))

	found := false
	for _, r := range listResp.Data {
		if r.ID == uploadResp.Data.ID {
			found = true
		}
	}
	assert.True(t, found, "uploaded resource missing from list")

	// 5. Fetch it by id (byte stream or no-storage note depending on mode)
	req, _ = http.NewRequest(http.MethodGet, fmt.Sprintf("%s/api/resources/%d", baseURL, uploadResp.Data.ID), nil)
	req.Header.Set("X-API-Key", apiKey)
	resp, err = client.Do(req)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	// 6. Summary counts the upload
	req, _ = http.NewRequest(http.MethodGet, baseURL+"/api/resources/summary", nil)
	req.Header.Set("X-API-Key", apiKey)
	resp, err = client.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var summaryResp struct {
		Data struct {
			TotalResources int64 `json:"total_resources"`
		} `json:"data"`
	}
	body, _ = io.ReadAll(resp.Body)
	resp.Body.Close()
	require.NoError(t, json.Unmarshal(body, &summaryResp))
	assert.GreaterOrEqual(t, summaryResp.Data.TotalResources, int64(1))
}

func TestUnknownResourceReturns404(t *testing.T) {
	skipWithoutServer(t)
	client := &http.Client{Timeout: 10 * time.Second}

	req, _ := http.NewRequest(http.MethodGet, baseURL+"/api/resources/999999", nil)
	req.Header.Set("X-API-Key", apiKey)
	resp, err := client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
