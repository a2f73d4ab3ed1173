package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/corplearn/training-admin-api/internal/service"
)

func TestStudentHandlerSaveBadJSON(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewStudentHandler(service.NewStudentService(nil, validator.New(), zap.NewNop()), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPut, "/students/a1", strings.NewReader(`not json`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "a1"}}

	handler.Save(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStudentHandlerSaveValidationError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewStudentHandler(service.NewStudentService(nil, validator.New(), zap.NewNop()), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	req, _ := http.NewRequest(http.MethodPut, "/students/a1", strings.NewReader(`{"name":"","email":"bad"}`))
	req.Header.Set("Content-Type", "application/json")
	c.Request = req
	c.Params = gin.Params{{Key: "id", Value: "a1"}}

	handler.Save(c)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
