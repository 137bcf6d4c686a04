package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DomainError signals that a property would violate a domain invariant.
// Construction stops at the first violated rule, so a DomainError always
// carries a single message.
type DomainError struct {
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

type Property struct {
	ID             int             `gorm:"primaryKey;autoIncrement" json:"id"`
	Address        string          `gorm:"size:200" json:"address"`
	City           string          `gorm:"size:100" json:"city"`
	State          string          `gorm:"size:2" json:"state"`
	ZipCode        string          `gorm:"size:5" json:"zip_code"`
	Price          decimal.Decimal `gorm:"type:decimal(18,2)" json:"price"`
	MonthlyRent    decimal.Decimal `gorm:"type:decimal(18,2)" json:"monthly_rent"`
	Bedrooms       int             `json:"bedrooms"`
	Bathrooms      decimal.Decimal `gorm:"type:decimal(4,1)" json:"bathrooms"`
	SquareFeet     int             `json:"square_feet"`
	YearBuilt      int             `json:"year_built"`
	PropertyType   string          `gorm:"size:50" json:"property_type"`
	IsAvailable    bool            `json:"is_available"`
	ListedDateUtc  time.Time       `json:"listed_date_utc"`
	LastUpdatedUtc *time.Time      `json:"last_updated_utc"`
}

// PropertyCreationData carries the fields needed to construct a new Property.
type PropertyCreationData struct {
	Address      string
	City         string
	State        string
	ZipCode      string
	Price        decimal.Decimal
	MonthlyRent  decimal.Decimal
	Bedrooms     int
	Bathrooms    decimal.Decimal
	SquareFeet   int
	YearBuilt    int
	PropertyType string
}

// PropertyUpdateData is a partial update: nil fields keep their current value.
type PropertyUpdateData struct {
	Address      *string
	City         *string
	State        *string
	ZipCode      *string
	Price        *decimal.Decimal
	MonthlyRent  *decimal.Decimal
	Bedrooms     *int
	Bathrooms    *decimal.Decimal
	SquareFeet   *int
	YearBuilt    *int
	PropertyType *string
}

var (
	maxPrice     = decimal.NewFromInt(10_000_000)
	maxRent      = decimal.NewFromInt(100_000)
	maxBathrooms = decimal.NewFromInt(20)
)

// NewProperty validates the creation data and builds the entity. This is the
// second line of defense behind the request validator: it stops at the first
// violated invariant so a property can never reach the store in an invalid
// state, even if a caller skipped request validation. The current time is
// passed in so the year-built bound stays deterministic under test.
func NewProperty(data PropertyCreationData, now time.Time) (*Property, error) {
	if err := validateCreationData(data, now); err != nil {
		return nil, err
	}

	propertyType := data.PropertyType
	if propertyType == "" {
		propertyType = "Apartment"
	}

	return &Property{
		Address:       data.Address,
		City:          data.City,
		State:         data.State,
		ZipCode:       data.ZipCode,
		Price:         data.Price,
		MonthlyRent:   data.MonthlyRent,
		Bedrooms:      data.Bedrooms,
		Bathrooms:     data.Bathrooms,
		SquareFeet:    data.SquareFeet,
		YearBuilt:     data.YearBuilt,
		PropertyType:  propertyType,
		IsAvailable:   true,
		ListedDateUtc: now.UTC(),
	}, nil
}

func validateCreationData(data PropertyCreationData, now time.Time) error {
	if strings.TrimSpace(data.Address) == "" {
		return &DomainError{Message: "Address is required"}
	}
	if strings.TrimSpace(data.City) == "" {
		return &DomainError{Message: "City is required"}
	}
	if strings.TrimSpace(data.State) == "" || len(data.State) != 2 {
		return &DomainError{Message: "State must be 2 characters"}
	}
	if strings.TrimSpace(data.ZipCode) == "" || len(data.ZipCode) != 5 {
		return &DomainError{Message: "ZipCode must be 5 digits"}
	}
	if !data.Price.IsPositive() {
		return &DomainError{Message: "Price must be greater than 0"}
	}
	if data.Price.GreaterThan(maxPrice) {
		return &DomainError{Message: "Price cannot exceed $10,000,000"}
	}
	if !data.MonthlyRent.IsPositive() {
		return &DomainError{Message: "Monthly Rent must be greater than 0"}
	}
	if data.MonthlyRent.GreaterThan(maxRent) {
		return &DomainError{Message: "Monthly rent cannot exceed $100,000"}
	}
	if data.Bedrooms < 0 || data.Bedrooms > 20 {
		return &DomainError{Message: "Bedrooms must be between 0 and 20"}
	}
	// The domain floor for bathrooms is 0, looser than the request-level
	// rule of 0.5. Both bounds are kept on purpose; see DESIGN.md.
	if data.Bathrooms.IsNegative() || data.Bathrooms.GreaterThan(maxBathrooms) {
		return &DomainError{Message: "Bathrooms must be between 0 and 20"}
	}
	if data.SquareFeet <= 0 {
		return &DomainError{Message: "Square feet must be greater than 0"}
	}
	if data.SquareFeet > 50_000 {
		return &DomainError{Message: "Square feet cannot exceed 50,000"}
	}
	if data.YearBuilt < 1800 || data.YearBuilt > now.Year() {
		return &DomainError{Message: fmt.Sprintf("Year built must be between 1800 and %d", now.Year())}
	}
	return nil
}

// ApplyUpdate merges the provided fields into the property, keeping the
// current value wherever the update leaves a field unset. LastUpdatedUtc is
// stamped on every call, whether or not any field actually changed. The
// merged state is not re-validated against the domain invariants; the
// request validator is the gate on the update path.
func (p *Property) ApplyUpdate(data PropertyUpdateData, now time.Time) {
	if data.Address != nil {
		p.Address = *data.Address
	}
	if data.City != nil {
		p.City = *data.City
	}
	if data.State != nil {
		p.State = *data.State
	}
	if data.ZipCode != nil {
		p.ZipCode = *data.ZipCode
	}
	if data.Price != nil {
		p.Price = *data.Price
	}
	if data.MonthlyRent != nil {
		p.MonthlyRent = *data.MonthlyRent
	}
	if data.Bedrooms != nil {
		p.Bedrooms = *data.Bedrooms
	}
	if data.Bathrooms != nil {
		p.Bathrooms = *data.Bathrooms
	}
	if data.SquareFeet != nil {
		p.SquareFeet = *data.SquareFeet
	}
	if data.YearBuilt != nil {
		p.YearBuilt = *data.YearBuilt
	}
	if data.PropertyType != nil {
		p.PropertyType = *data.PropertyType
	}

	updated := now.UTC()
	p.LastUpdatedUtc = &updated
}

// MarkAvailable flags the property as available. Idempotent.
func (p *Property) MarkAvailable() {
	p.IsAvailable = true
}

// MarkOccupied flags the property as occupied. Idempotent.
func (p *Property) MarkOccupied() {
	p.IsAvailable = false
}
