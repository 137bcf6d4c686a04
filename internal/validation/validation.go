package validation

import (
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"
)

// zipPattern matches exactly five ASCII digits.
var zipPattern = regexp.MustCompile(`^\d{5}$`)

var (
	maxPrice     = decimal.NewFromInt(10_000_000)
	maxRent      = decimal.NewFromInt(100_000)
	minBathrooms = decimal.NewFromFloat(0.5)
	maxBathrooms = decimal.NewFromInt(20)
)

// CreateRequest carries the raw fields of a property creation call, before
// any entity is touched.
type CreateRequest struct {
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

// UpdateRequest carries a partial update. Nil fields are not validated and
// leave the stored value untouched when the update is applied.
type UpdateRequest struct {
	ID           int
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

// Result lists every violated rule, in rule-table order.
type Result struct {
	Valid  bool
	Errors []string
}

// Validator checks incoming requests against the property rule table. Every
// rule is evaluated independently so the caller sees all violations at once.
// The clock is injected so the year-built upper bound is deterministic in
// tests.
type Validator struct {
	now func() time.Time
}

func NewValidator(now func() time.Time) *Validator {
	if now == nil {
		now = time.Now
	}
	return &Validator{now: now}
}

// ValidateCreate checks a creation request against the full rule table.
func (v *Validator) ValidateCreate(req CreateRequest) Result {
	var errs []string

	if req.Address == "" {
		errs = append(errs, "Address is required")
	}
	if len(req.Address) > 200 {
		errs = append(errs, "Address cannot exceed 200 characters")
	}

	if req.City == "" {
		errs = append(errs, "City is required")
	}
	if len(req.City) > 100 {
		errs = append(errs, "City cannot exceed 100 characters")
	}

	if req.State == "" {
		errs = append(errs, "State is required")
	}
	if len(req.State) != 2 {
		errs = append(errs, "State must be 2 characters")
	}

	if req.ZipCode == "" {
		errs = append(errs, "ZipCode is required")
	}
	if !zipPattern.MatchString(req.ZipCode) {
		errs = append(errs, "ZipCode must be 5 digits")
	}

	errs = append(errs, v.checkPrice(req.Price)...)
	errs = append(errs, v.checkMonthlyRent(req.MonthlyRent)...)
	errs = append(errs, v.checkBedrooms(req.Bedrooms)...)
	errs = append(errs, v.checkBathrooms(req.Bathrooms)...)
	errs = append(errs, v.checkSquareFeet(req.SquareFeet)...)
	errs = append(errs, v.checkYearBuilt(req.YearBuilt)...)

	return Result{Valid: len(errs) == 0, Errors: errs}
}

// ValidateUpdate checks a partial update request. The identifier must be
// positive; beyond that, only the fields present in the request are held
// against the rule table.
func (v *Validator) ValidateUpdate(req UpdateRequest) Result {
	var errs []string

	if req.ID <= 0 {
		errs = append(errs, "Id must be greater than 0")
	}

	if req.Address != nil {
		if *req.Address == "" {
			errs = append(errs, "Address is required")
		}
		if len(*req.Address) > 200 {
			errs = append(errs, "Address cannot exceed 200 characters")
		}
	}

	if req.City != nil {
		if *req.City == "" {
			errs = append(errs, "City is required")
		}
		if len(*req.City) > 100 {
			errs = append(errs, "City cannot exceed 100 characters")
		}
	}

	if req.State != nil {
		if *req.State == "" {
			errs = append(errs, "State is required")
		}
		if len(*req.State) != 2 {
			errs = append(errs, "State must be 2 characters")
		}
	}

	if req.ZipCode != nil {
		if *req.ZipCode == "" {
			errs = append(errs, "ZipCode is required")
		}
		if !zipPattern.MatchString(*req.ZipCode) {
			errs = append(errs, "ZipCode must be 5 digits")
		}
	}

	if req.Price != nil {
		errs = append(errs, v.checkPrice(*req.Price)...)
	}
	if req.MonthlyRent != nil {
		errs = append(errs, v.checkMonthlyRent(*req.MonthlyRent)...)
	}
	if req.Bedrooms != nil {
		errs = append(errs, v.checkBedrooms(*req.Bedrooms)...)
	}
	if req.Bathrooms != nil {
		errs = append(errs, v.checkBathrooms(*req.Bathrooms)...)
	}
	if req.SquareFeet != nil {
		errs = append(errs, v.checkSquareFeet(*req.SquareFeet)...)
	}
	if req.YearBuilt != nil {
		errs = append(errs, v.checkYearBuilt(*req.YearBuilt)...)
	}

	return Result{Valid: len(errs) == 0, Errors: errs}
}

func (v *Validator) checkPrice(price decimal.Decimal) []string {
	var errs []string
	if !price.IsPositive() {
		errs = append(errs, "Price must be greater than 0")
	}
	if price.GreaterThan(maxPrice) {
		errs = append(errs, "Price cannot exceed $10,000,000")
	}
	return errs
}

func (v *Validator) checkMonthlyRent(rent decimal.Decimal) []string {
	var errs []string
	if !rent.IsPositive() {
		errs = append(errs, "Monthly rent must be greater than 0")
	}
	if rent.GreaterThan(maxRent) {
		errs = append(errs, "Monthly rent cannot exceed $100,000")
	}
	return errs
}

func (v *Validator) checkBedrooms(bedrooms int) []string {
	if bedrooms < 0 || bedrooms > 20 {
		return []string{"Bedrooms must be between 0 and 20"}
	}
	return nil
}

func (v *Validator) checkBathrooms(bathrooms decimal.Decimal) []string {
	if bathrooms.LessThan(minBathrooms) || bathrooms.GreaterThan(maxBathrooms) {
		return []string{"Bathrooms must be between 0.5 and 20"}
	}
	return nil
}

func (v *Validator) checkSquareFeet(squareFeet int) []string {
	var errs []string
	if squareFeet <= 0 {
		errs = append(errs, "Square feet must be greater than 0")
	}
	if squareFeet > 50_000 {
		errs = append(errs, "Square feet cannot exceed 50,000")
	}
	return errs
}

func (v *Validator) checkYearBuilt(yearBuilt int) []string {
	currentYear := v.now().Year()
	if yearBuilt < 1800 || yearBuilt > currentYear {
		return []string{fmt.Sprintf("Year built must be between 1800 and %d", currentYear)}
	}
	return nil
}
