package web

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"syncronic.com/empmonitor/config"
	"syncronic.com/empmonitor/monitor"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestApp(t *testing.T, origins ...string) *monitor.App {
	t.Helper()
	cfg := &config.Config{
		CORSOrigins: origins,
		Database: config.DatabaseConfig{
			Driver:         "sqlite",
			DSN:            ":memory:",
			MaxConnections: 1,
			LogLevel:       "silent",
		},
		Storage: config.StorageConfig{
			Backend:       config.BackendLocal,
			UploadDir:     t.TempDir(),
			URLPrefix:     "/uploads",
			MaxUploadSize: 1 << 20,
		},
	}
	app, err := monitor.New(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { app.Close() })
	return app
}

func TestPing(t *testing.T) {
	r := NewRouter(newTestApp(t))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"pong"}`, rec.Body.String())
}

func TestUploadedFilesAreServed(t *testing.T) {
	r := NewRouter(newTestApp(t))

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("employeeId", "emp-1"))
	fw, err := w.CreateFormFile("screenshot", "screen.png")
	require.NoError(t, err)
	_, err = fw.Write([]byte("png-bytes"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/log", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var out struct {
		Log struct {
			ScreenshotURL string `json:"screenshot_url"`
		} `json:"log"`
	}
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&out))
	require.NotEmpty(t, out.Log.ScreenshotURL)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, out.Log.ScreenshotURL, nil))
	require.Equal(t, http.StatusOK, rec.Code)
	data, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(data))
}

func TestCORS(t *testing.T) {
	tests := []struct {
		name    string
		origins []string
		origin  string
		want    string
	}{
		{name: "wildcard", origins: []string{"*"}, origin: "http://viewer.local", want: "*"},
		{name: "listed", origins: []string{"http://viewer.local"}, origin: "http://viewer.local", want: "http://viewer.local"},
		{name: "unlisted", origins: []string{"http://viewer.local"}, origin: "http://evil.local", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRouter(newTestApp(t, tt.origins...))

			req := httptest.NewRequest(http.MethodGet, "/logs", nil)
			req.Header.Set("Origin", tt.origin)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.want, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}

func TestCorsConfig(t *testing.T) {
	assert.True(t, corsConfig(nil).AllowAllOrigins)
	assert.True(t, corsConfig([]string{"*"}).AllowAllOrigins)

	c := corsConfig([]string{"http://a.local", "http://b.local"})
	assert.False(t, c.AllowAllOrigins)
	assert.Equal(t, []string{"http://a.local", "http://b.local"}, c.AllowOrigins)
	assert.Contains(t, c.AllowMethods, http.MethodDelete)
}
