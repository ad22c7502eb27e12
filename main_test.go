package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"cafeteria-api/config"
)

// TestHealthCheck is a unit test for the healthCheck handler function
func TestHealthCheck(t *testing.T) {
	gin.SetMode(gin.TestMode)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	healthCheck(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err, "Response should be valid JSON")
	assert.Equal(t, true, response["success"])
	assert.Equal(t, "Cafeteria API is running", response["message"])
}

// TestSetupRouter verifies the full route table responds.
func TestSetupRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := setupMainTestDB(t)
	config.SetDB(db)

	router := setupRouter(&config.Config{StaffPassword: "123"})
	assert.NotNil(t, router)

	paths := []string{"/health", "/cardapio", "/garcons", "/mesas", "/historico"}
	for _, path := range paths {
		req, _ := http.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code, "GET %s should respond 200", path)
	}
}
