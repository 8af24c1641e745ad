package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/washerhq/carwash-api/internal/audit"
	infraRepo "github.com/washerhq/carwash-api/internal/infra/repository"
	"github.com/washerhq/carwash-api/internal/models"
	ucCustomer "github.com/washerhq/carwash-api/internal/usecase/customer"
)

func setupCustomerRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Customer{},
		&models.Vehicle{},
		&models.Appointment{},
		&models.Payment{},
		&models.AuditLog{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	repo := infraRepo.NewWashGormRepository(db)
	dispatcher := audit.NewDispatcher(audit.New(db))

	h := NewCustomerHandler(
		ucCustomer.NewCreate(repo, dispatcher),
		ucCustomer.NewGet(repo),
		ucCustomer.NewList(repo),
		ucCustomer.NewUpdate(repo, dispatcher),
		ucCustomer.NewDelete(repo, dispatcher),
	)

	r := gin.New()
	r.POST("/customers", h.Create)
	r.GET("/customers", h.List)
	r.GET("/customers/:id", h.Get)
	r.PUT("/customers/:id", h.Update)
	r.DELETE("/customers/:id", h.Delete)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestCustomerCreateAndGet(t *testing.T) {
	r := setupCustomerRouter(t)

	w := doJSON(t, r, http.MethodPost, "/customers", gin.H{
		"name":  "Nora Velez",
		"email": "nora@example.com",
		"phone": "3015559999",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Nora Velez", created.Name)

	w = doJSON(t, r, http.MethodGet, "/customers/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "nora@example.com")
}

func TestCustomerCreateInvalidPhone(t *testing.T) {
	r := setupCustomerRouter(t)

	w := doJSON(t, r, http.MethodPost, "/customers", gin.H{
		"name":  "Nora Velez",
		"email": "nora@example.com",
		"phone": "12345",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "validation_error")
	assert.Contains(t, w.Body.String(), "phone")
}

func TestCustomerGetNotFound(t *testing.T) {
	r := setupCustomerRouter(t)

	w := doJSON(t, r, http.MethodGet, "/customers/42", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "not_found")
	assert.Contains(t, w.Body.String(), "Customer not found with id 42")
}

func TestCustomerInvalidIDParam(t *testing.T) {
	r := setupCustomerRouter(t)

	w := doJSON(t, r, http.MethodGet, "/customers/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "invalid_id")
}

func TestCustomerPartialUpdate(t *testing.T) {
	r := setupCustomerRouter(t)

	w := doJSON(t, r, http.MethodPost, "/customers", gin.H{
		"name":  "Nora Velez",
		"email": "nora@example.com",
		"phone": "3015559999",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPut, "/customers/1", gin.H{
		"phone": "3015550000",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Customer
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "3015550000", updated.Phone)
	assert.Equal(t, "Nora Velez", updated.Name)
	assert.Equal(t, "nora@example.com", updated.Email)
}

func TestCustomerDelete(t *testing.T) {
	r := setupCustomerRouter(t)

	w := doJSON(t, r, http.MethodPost, "/customers", gin.H{
		"name":  "Nora Velez",
		"email": "nora@example.com",
		"phone": "3015559999",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodDelete, "/customers/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/customers/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCustomerList(t *testing.T) {
	r := setupCustomerRouter(t)

	for _, name := range []string{"Ana Ruiz", "Beto Mora"} {
		w := doJSON(t, r, http.MethodPost, "/customers", gin.H{
			"name":  name,
			"email": "contact@example.com",
			"phone": "3015559999",
		})
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/customers", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var payload struct {
		Data  []models.Customer `json:"data"`
		Total int               `json:"total"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	assert.Equal(t, 2, payload.Total)
	assert.Len(t, payload.Data, 2)
}
