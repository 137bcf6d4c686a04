package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realestate/server/internal/property"
	"realestate/server/internal/repository"
)

func setupRouter(t *testing.T) (*gin.Engine, *repository.MemoryRepository) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	repo := repository.NewMemoryRepository()
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	now := func() time.Time {
		return time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)
	}
	service := property.NewService(repo, logger, now)

	router := gin.New()
	router.Use(RequestID())
	SetupRoutes(router, service, logger)
	return router, repo
}

func performRequest(router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == nil {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validCreateBody() []byte {
	return []byte(`{
		"address": "123 Main St",
		"city": "Houston",
		"state": "TX",
		"zip_code": "77001",
		"price": 350000,
		"monthly_rent": 2100,
		"bedrooms": 3,
		"bathrooms": 2.5,
		"square_feet": 1800,
		"year_built": 2005,
		"property_type": "House"
	}`)
}

func TestHealthCheck(t *testing.T) {
	router, _ := setupRouter(t)

	w := performRequest(router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCreateProperty_Returns201(t *testing.T) {
	router, repo := setupRouter(t)

	w := performRequest(router, http.MethodPost, "/api/properties", validCreateBody())

	assert.Equal(t, http.StatusCreated, w.Code)

	var result property.CreateResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)
	assert.Equal(t, 1, result.ID)
	assert.Equal(t, "Property created successfully", result.Message)
	assert.Equal(t, 1, repo.Len())
}

func TestCreateProperty_ValidationFailureReturns400(t *testing.T) {
	router, repo := setupRouter(t)

	body := []byte(`{
		"address": "123 Main St",
		"city": "Houston",
		"state": "TX",
		"zip_code": "77001",
		"price": 0,
		"monthly_rent": 2100,
		"bedrooms": 3,
		"bathrooms": 2.5,
		"square_feet": 1800,
		"year_built": 2005
	}`)
	w := performRequest(router, http.MethodPost, "/api/properties", body)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var result property.CreateResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.False(t, result.Success)
	assert.Equal(t, "Validation failed", result.Message)
	assert.Contains(t, result.Errors, "Price must be greater than 0")
	assert.Equal(t, 0, repo.Len())
}

func TestCreateProperty_InvalidJSONReturns400(t *testing.T) {
	router, _ := setupRouter(t)

	w := performRequest(router, http.MethodPost, "/api/properties", []byte(`{"address":`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetProperty_Returns200(t *testing.T) {
	router, _ := setupRouter(t)
	performRequest(router, http.MethodPost, "/api/properties", validCreateBody())

	w := performRequest(router, http.MethodGet, "/api/properties/1", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var dto property.PropertyDTO
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &dto))
	assert.Equal(t, 1, dto.ID)
	assert.Equal(t, "Houston", dto.City)
	assert.True(t, dto.IsAvailable)
}

func TestGetProperty_NotFoundReturns404(t *testing.T) {
	router, _ := setupRouter(t)

	w := performRequest(router, http.MethodGet, "/api/properties/42", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Property with ID 42 not found")
}

func TestGetProperty_InvalidIDReturns400(t *testing.T) {
	router, _ := setupRouter(t)

	w := performRequest(router, http.MethodGet, "/api/properties/abc", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateProperty_Returns200(t *testing.T) {
	router, repo := setupRouter(t)
	performRequest(router, http.MethodPost, "/api/properties", validCreateBody())

	w := performRequest(router, http.MethodPut, "/api/properties/1", []byte(`{"price": 425000}`))

	assert.Equal(t, http.StatusOK, w.Code)

	var result property.UpdateResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.True(t, result.Success)

	stored, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "425000", stored.Price.String())
	assert.Equal(t, "123 Main St", stored.Address)
	require.NotNil(t, stored.LastUpdatedUtc)
}

func TestUpdateProperty_NotFoundReturns404(t *testing.T) {
	router, _ := setupRouter(t)

	w := performRequest(router, http.MethodPut, "/api/properties/99", []byte(`{"price": 425000}`))

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Property with ID 99 not found")
}

func TestUpdateProperty_ValidationFailureReturns400(t *testing.T) {
	router, _ := setupRouter(t)
	performRequest(router, http.MethodPost, "/api/properties", validCreateBody())

	w := performRequest(router, http.MethodPut, "/api/properties/1", []byte(`{"state": "Texas"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "State must be 2 characters")
}

func TestUpdateProperty_MismatchedIDReturns400(t *testing.T) {
	router, _ := setupRouter(t)
	performRequest(router, http.MethodPost, "/api/properties", validCreateBody())

	w := performRequest(router, http.MethodPut, "/api/properties/1", []byte(`{"id": 2, "price": 425000}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "ID in URL does not match ID in request body")
}

func TestUpdateProperty_ZeroBodyIDUsesPathID(t *testing.T) {
	router, repo := setupRouter(t)
	performRequest(router, http.MethodPost, "/api/properties", validCreateBody())

	w := performRequest(router, http.MethodPut, "/api/properties/1", []byte(`{"id": 0, "price": 430000}`))

	assert.Equal(t, http.StatusOK, w.Code)

	stored, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "430000", stored.Price.String())
}

func TestDeleteProperty_Returns200(t *testing.T) {
	router, repo := setupRouter(t)
	performRequest(router, http.MethodPost, "/api/properties", validCreateBody())

	w := performRequest(router, http.MethodDelete, "/api/properties/1", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Property 1 deleted successfully")
	assert.Equal(t, 0, repo.Len())
}

func TestDeleteProperty_NotFoundReturns404(t *testing.T) {
	router, _ := setupRouter(t)

	w := performRequest(router, http.MethodDelete, "/api/properties/999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Property with ID 999 not found")
}

func TestListProperties_FiltersAndPaginates(t *testing.T) {
	router, _ := setupRouter(t)

	cities := []string{"Houston", "Austin", "Houston", "Dallas", "San Antonio"}
	for _, city := range cities {
		body := []byte(`{
			"address": "1 Test Ln",
			"city": "` + city + `",
			"state": "TX",
			"zip_code": "77001",
			"price": 300000,
			"monthly_rent": 1500,
			"bedrooms": 2,
			"bathrooms": 2,
			"square_feet": 1200,
			"year_built": 2000
		}`)
		w := performRequest(router, http.MethodPost, "/api/properties", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := performRequest(router, http.MethodGet, "/api/properties?city=hous&pageNumber=1&pageSize=10", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var result property.ListResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Len(t, result.Properties, 2)
	assert.Equal(t, 2, result.TotalCount)
	assert.Equal(t, 1, result.TotalPages)
	assert.False(t, result.HasNextPage)
}

func TestListProperties_PageBeyondLastIsEmpty(t *testing.T) {
	router, _ := setupRouter(t)
	performRequest(router, http.MethodPost, "/api/properties", validCreateBody())

	w := performRequest(router, http.MethodGet, "/api/properties?pageNumber=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var result property.ListResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Empty(t, result.Properties)
	assert.Equal(t, 1, result.TotalCount)
}

func TestGetAvailableProperties_Returns200(t *testing.T) {
	router, _ := setupRouter(t)
	performRequest(router, http.MethodPost, "/api/properties", validCreateBody())

	w := performRequest(router, http.MethodGet, "/api/properties/available", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var result property.ListResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 1, result.TotalCount)
}

func TestGetPropertiesByCity_Returns200(t *testing.T) {
	router, _ := setupRouter(t)
	performRequest(router, http.MethodPost, "/api/properties", validCreateBody())

	w := performRequest(router, http.MethodGet, "/api/properties/city/Houston", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var result property.ListResult
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	assert.Equal(t, 1, result.TotalCount)
}

func TestRequestID_EchoedInResponse(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "test-id-123")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, "test-id-123", w.Header().Get("X-Request-ID"))
}

func TestRequestID_GeneratedWhenAbsent(t *testing.T) {
	router, _ := setupRouter(t)

	w := performRequest(router, http.MethodGet, "/health", nil)

	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
