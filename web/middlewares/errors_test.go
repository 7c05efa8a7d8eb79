package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recordingNotifier struct {
	messages chan string
}

func (n *recordingNotifier) Error(message string) error {
	n.messages <- message
	return nil
}

func newRouter(logger *zap.Logger, notifier Notifier) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorReporter(logger, notifier))
	r.GET("/ok", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.GET("/fail", func(c *gin.Context) {
		c.Error(errors.New("connection refused")).SetMeta("Failed to fetch logs.")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch logs."})
	})
	return r
}

func TestErrorReporter_LogsAndNotifies(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	notifier := &recordingNotifier{messages: make(chan string, 1)}
	r := newRouter(zap.New(core), notifier)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/fail", nil))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	entries := logs.FilterMessage("Failed to fetch logs.").All()
	require.Len(t, entries, 1)
	assert.Equal(t, "/fail", entries[0].ContextMap()["path"])
	assert.Equal(t, int64(http.StatusInternalServerError), entries[0].ContextMap()["status"])

	select {
	case msg := <-notifier.messages:
		assert.Contains(t, msg, "Failed to fetch logs.")
		assert.Contains(t, msg, "connection refused")
	case <-time.After(time.Second):
		t.Fatal("notifier was not called")
	}
}

func TestErrorReporter_QuietOnSuccess(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	r := newRouter(zap.New(core), nil)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ok", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 0, logs.Len())
}
