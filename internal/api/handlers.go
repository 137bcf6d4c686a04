package api

import (
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	"realestate/server/internal/property"
	"realestate/server/internal/validation"
)

type Handler struct {
	service *property.Service
	logger  *logrus.Logger
}

// CreatePropertyRequest is the JSON body for POST /api/properties. Decimal
// fields accept both JSON numbers and strings.
type CreatePropertyRequest struct {
	Address      string          `json:"address"`
	City         string          `json:"city"`
	State        string          `json:"state"`
	ZipCode      string          `json:"zip_code"`
	Price        decimal.Decimal `json:"price"`
	MonthlyRent  decimal.Decimal `json:"monthly_rent"`
	Bedrooms     int             `json:"bedrooms"`
	Bathrooms    decimal.Decimal `json:"bathrooms"`
	SquareFeet   int             `json:"square_feet"`
	YearBuilt    int             `json:"year_built"`
	PropertyType string          `json:"property_type"`
}

// UpdatePropertyRequest is the JSON body for PUT /api/properties/:id.
// Omitted fields keep their stored value.
type UpdatePropertyRequest struct {
	ID           int              `json:"id"`
	Address      *string          `json:"address"`
	City         *string          `json:"city"`
	State        *string          `json:"state"`
	ZipCode      *string          `json:"zip_code"`
	Price        *decimal.Decimal `json:"price"`
	MonthlyRent  *decimal.Decimal `json:"monthly_rent"`
	Bedrooms     *int             `json:"bedrooms"`
	Bathrooms    *decimal.Decimal `json:"bathrooms"`
	SquareFeet   *int             `json:"square_feet"`
	YearBuilt    *int             `json:"year_built"`
	PropertyType *string          `json:"property_type"`
}

func NewHandler(service *property.Service, logger *logrus.Logger) *Handler {
	if logger == nil {
		logger = logrus.New()
		logger.SetFormatter(&logrus.JSONFormatter{})
		logger.SetOutput(os.Stdout)
	}

	return &Handler{
		service: service,
		logger:  logger,
	}
}

// log returns an entry carrying the request id set by the RequestID
// middleware.
func (h *Handler) log(c *gin.Context) *logrus.Entry {
	return h.logger.WithField("request_id", c.GetString(requestIDKey))
}

func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) ListProperties(c *gin.Context) {
	query := property.ListQuery{PageNumber: 1, PageSize: 10}

	if v := c.Query("isAvailable"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			h.log(c).WithError(err).Warn("Ignoring invalid isAvailable filter")
		} else {
			query.IsAvailable = &b
		}
	}

	query.City = c.Query("city")

	if v := c.Query("minPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			h.log(c).WithError(err).Warn("Ignoring invalid minPrice filter")
		} else {
			query.MinPrice = &d
		}
	}

	if v := c.Query("maxPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			h.log(c).WithError(err).Warn("Ignoring invalid maxPrice filter")
		} else {
			query.MaxPrice = &d
		}
	}

	if v := c.Query("minBedrooms"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			h.log(c).WithError(err).Warn("Ignoring invalid minBedrooms filter")
		} else {
			query.MinBedrooms = &n
		}
	}

	if n, err := strconv.Atoi(c.DefaultQuery("pageNumber", "1")); err == nil {
		query.PageNumber = n
	}
	if n, err := strconv.Atoi(c.DefaultQuery("pageSize", "10")); err == nil {
		query.PageSize = n
	}

	result, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		h.log(c).WithError(err).Error("Failed to list properties")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get properties"})
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) GetProperty(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property ID"})
		return
	}

	dto, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		h.log(c).WithError(err).Error("Failed to get property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get property"})
		return
	}
	if dto == nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Property with ID " + strconv.Itoa(id) + " not found"})
		return
	}

	c.JSON(http.StatusOK, dto)
}

func (h *Handler) CreateProperty(c *gin.Context) {
	var req CreatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log(c).WithError(err).Warn("Failed to parse create request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result, err := h.service.Create(c.Request.Context(), validation.CreateRequest{
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Price:        req.Price,
		MonthlyRent:  req.MonthlyRent,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		SquareFeet:   req.SquareFeet,
		YearBuilt:    req.YearBuilt,
		PropertyType: req.PropertyType,
	})
	if err != nil {
		h.log(c).WithError(err).Error("Failed to create property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "An unexpected error occurred while creating the property"})
		return
	}
	if !result.Success {
		h.log(c).WithField("message", result.Message).Warn("Property creation rejected")
		c.JSON(http.StatusBadRequest, result)
		return
	}

	c.JSON(http.StatusCreated, result)
}

func (h *Handler) UpdateProperty(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property ID"})
		return
	}

	var req UpdatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.log(c).WithError(err).Warn("Failed to parse update request")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	// The body id is optional; when omitted or zero the URL id wins. A
	// conflicting non-zero body id is rejected.
	if req.ID != 0 && req.ID != id {
		c.JSON(http.StatusBadRequest, gin.H{"error": "ID in URL does not match ID in request body"})
		return
	}

	result, err := h.service.Update(c.Request.Context(), validation.UpdateRequest{
		ID:           id,
		Address:      req.Address,
		City:         req.City,
		State:        req.State,
		ZipCode:      req.ZipCode,
		Price:        req.Price,
		MonthlyRent:  req.MonthlyRent,
		Bedrooms:     req.Bedrooms,
		Bathrooms:    req.Bathrooms,
		SquareFeet:   req.SquareFeet,
		YearBuilt:    req.YearBuilt,
		PropertyType: req.PropertyType,
	})
	if err != nil {
		h.log(c).WithError(err).Error("Failed to update property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update property"})
		return
	}
	if !result.Success {
		h.log(c).WithField("message", result.Message).Warn("Property update rejected")
		if strings.Contains(result.Message, "not found") {
			c.JSON(http.StatusNotFound, result)
			return
		}
		c.JSON(http.StatusBadRequest, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *Handler) DeleteProperty(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid property ID"})
		return
	}

	result, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		h.log(c).WithError(err).Error("Failed to delete property")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete property"})
		return
	}
	if !result.Success {
		c.JSON(http.StatusNotFound, result)
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetAvailableProperties serves the paginated availability listing through
// the same filter engine as ListProperties.
func (h *Handler) GetAvailableProperties(c *gin.Context) {
	available := true
	query := property.ListQuery{IsAvailable: &available, PageNumber: 1, PageSize: 10}

	if n, err := strconv.Atoi(c.DefaultQuery("pageNumber", "1")); err == nil {
		query.PageNumber = n
	}
	if n, err := strconv.Atoi(c.DefaultQuery("pageSize", "10")); err == nil {
		query.PageSize = n
	}

	result, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		h.log(c).WithError(err).Error("Failed to get available properties")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get properties"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// GetPropertiesByCity serves the paginated city search through the filter
// engine, which matches city as a case-insensitive substring.
func (h *Handler) GetPropertiesByCity(c *gin.Context) {
	query := property.ListQuery{City: c.Param("city"), PageNumber: 1, PageSize: 10}

	if n, err := strconv.Atoi(c.DefaultQuery("pageNumber", "1")); err == nil {
		query.PageNumber = n
	}
	if n, err := strconv.Atoi(c.DefaultQuery("pageSize", "10")); err == nil {
		query.PageSize = n
	}

	result, err := h.service.List(c.Request.Context(), query)
	if err != nil {
		h.log(c).WithError(err).Error("Failed to get properties by city")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get properties"})
		return
	}

	c.JSON(http.StatusOK, result)
}
