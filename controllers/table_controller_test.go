package controllers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"cafeteria-api/models"
)

func TestListTables(t *testing.T) {
	db := setupTestDB(t)
	ana := "Ana Silva"
	db.Create(&models.Table{ID: "1", Name: "Mesa 01", Status: models.TableStatusFree})
	db.Create(&models.Table{ID: "2", Name: "Mesa 02", Status: models.TableStatusOccupied, WaiterName: &ana})

	router := setupTestRouter()
	router.GET("/mesas", ListTables)

	w := performRequest(router, http.MethodGet, "/mesas", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := parseResponse(t, w)
	assert.True(t, response["success"].(bool))
	data := response["data"].([]interface{})
	assert.Len(t, data, 2)

	first := data[0].(map[string]interface{})
	assert.Equal(t, "Mesa 01", first["nome"])
	assert.Equal(t, "livre", first["status"])
	assert.Nil(t, first["garcom_nome"])

	second := data[1].(map[string]interface{})
	assert.Equal(t, "ocupada", second["status"])
	assert.Equal(t, "Ana Silva", second["garcom_nome"])
}

func TestOccupyTable(t *testing.T) {
	tests := []struct {
		name           string
		tableID        string
		requestBody    map[string]interface{}
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Occupy a free table",
			tableID:        "1",
			requestBody:    map[string]interface{}{"garcomNome": "Ana Silva", "clienteNome": "Carlos"},
			expectedStatus: http.StatusOK,
		},
		{
			name:           "Occupy an occupied table",
			tableID:        "2",
			requestBody:    map[string]interface{}{"garcomNome": "Bruno Costa"},
			expectedStatus: http.StatusConflict,
			expectedError:  "TABLE_ALREADY_OCCUPIED",
		},
		{
			name:           "Occupy an unknown table",
			tableID:        "99",
			requestBody:    map[string]interface{}{"garcomNome": "Ana Silva"},
			expectedStatus: http.StatusNotFound,
			expectedError:  "TABLE_NOT_FOUND",
		},
		{
			name:           "Missing waiter name",
			tableID:        "1",
			requestBody:    map[string]interface{}{},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "VALIDATION_ERROR",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			ana := "Ana Silva"
			db.Create(&models.Table{ID: "1", Name: "Mesa 01", Status: models.TableStatusFree})
			db.Create(&models.Table{ID: "2", Name: "Mesa 02", Status: models.TableStatusOccupied, WaiterName: &ana})

			router := setupTestRouter()
			router.PUT("/mesas/:id/ocupar", OccupyTable)

			w := performRequest(router, http.MethodPut, "/mesas/"+tt.tableID+"/ocupar", tt.requestBody)
			assert.Equal(t, tt.expectedStatus, w.Code)

			response := parseResponse(t, w)
			if tt.expectedError != "" {
				assert.Equal(t, tt.expectedError, errorCode(t, response))
				return
			}

			data := response["data"].(map[string]interface{})
			assert.Equal(t, "ocupada", data["status"])
			assert.Equal(t, tt.requestBody["garcomNome"], data["garcom_nome"])
		})
	}
}

func TestOccupyTable_ConflictLeavesAssignmentUnchanged(t *testing.T) {
	db := setupTestDB(t)
	ana := "Ana Silva"
	db.Create(&models.Table{ID: "2", Name: "Mesa 02", Status: models.TableStatusOccupied, WaiterName: &ana})

	router := setupTestRouter()
	router.PUT("/mesas/:id/ocupar", OccupyTable)

	w := performRequest(router, http.MethodPut, "/mesas/2/ocupar", map[string]interface{}{"garcomNome": "Bruno Costa"})
	assert.Equal(t, http.StatusConflict, w.Code)

	var table models.Table
	assert.NoError(t, db.First(&table, "id = ?", "2").Error)
	if assert.NotNil(t, table.WaiterName) {
		assert.Equal(t, "Ana Silva", *table.WaiterName)
	}
}

func TestReleaseTable(t *testing.T) {
	db := setupTestDB(t)
	ana := "Ana Silva"
	carlos := "Carlos"
	db.Create(&models.Table{ID: "1", Name: "Mesa 01", Status: models.TableStatusOccupied, WaiterName: &ana, CustomerName: &carlos})

	router := setupTestRouter()
	router.PUT("/mesas/:id/liberar", ReleaseTable)

	w := performRequest(router, http.MethodPut, "/mesas/1/liberar", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	var table models.Table
	assert.NoError(t, db.First(&table, "id = ?", "1").Error)
	assert.Equal(t, models.TableStatusFree, table.Status)
	assert.Nil(t, table.WaiterName)
	assert.Nil(t, table.CustomerName)

	// A second release reports the table as already free.
	w = performRequest(router, http.MethodPut, "/mesas/1/liberar", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "TABLE_ALREADY_FREE", errorCode(t, parseResponse(t, w)))
}

func TestReleaseTable_NotFound(t *testing.T) {
	setupTestDB(t)

	router := setupTestRouter()
	router.PUT("/mesas/:id/liberar", ReleaseTable)

	w := performRequest(router, http.MethodPut, "/mesas/99/liberar", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "TABLE_NOT_FOUND", errorCode(t, parseResponse(t, w)))
}
