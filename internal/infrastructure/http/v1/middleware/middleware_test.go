package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"salespoint/pkg/logger"
)

func newObservedLogger() (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &logger.Logger{SugaredLogger: zap.New(core).Sugar()}, logs
}

func TestRecoveryWritesErrorResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Recovery())
	router.Use(Trace())
	router.Use(ErrorHandler())
	router.GET("/boom", func(c *gin.Context) {
		panic("kaboom")
	})

	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	// ErrorHandler has already unwound when the panic is recovered, so
	// Recovery must answer the client itself.
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestRecoveryKeepsWrittenResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(Recovery())
	router.GET("/half", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": "partial"})
		panic("after write")
	})

	req := httptest.NewRequest(http.MethodGet, "/half", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"data":"partial"}`, rec.Body.String())
}

func TestLoggerInstalledInRequestContext(t *testing.T) {
	gin.SetMode(gin.TestMode)

	log, logs := newObservedLogger()

	router := gin.New()
	router.Use(Trace())
	router.Use(Logger(log))
	router.GET("/ping", func(c *gin.Context) {
		logger.Info(c.Request.Context(), "inside handler")
		c.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	// Both the handler's context log and the request log land on the
	// configured logger, not the package default.
	require.Equal(t, 1, logs.FilterMessage("inside handler").Len())
	require.Equal(t, 1, logs.FilterMessage("http request").Len())

	// The context logger carries the trace fields set by Trace.
	entry := logs.FilterMessage("inside handler").All()[0]
	fields := entry.ContextMap()
	assert.NotEmpty(t, fields["trace_id"])
	assert.NotEmpty(t, fields["request_id"])
}
