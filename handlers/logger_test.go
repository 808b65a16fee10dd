package handlers

import (
	"net/http/httptest"
	"testing"

	"tripmate/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGetLogger_FallsBackToGlobalLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	require.Same(t, utils.GetLogger(), getLogger(c))
}

func TestGetLogger_PrefersRequestScopedLogger(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	scoped := zap.NewNop()
	c.Set("logger", scoped)
	require.Same(t, scoped, getLogger(c))
}
