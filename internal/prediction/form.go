package prediction

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	apperrors "github.com/lesotho-gov/healthcost/internal/shared/errors"
)

// DemographicForm carries raw field values as captured from a client form.
// Numeric fields arrive as text; the insured toggle arrives as a boolean.
type DemographicForm struct {
	Age              string `json:"age"`
	Sex              string `json:"sex"`
	Region           string `json:"region"`
	Insured          bool   `json:"is_insured"`
	Employment       string `json:"employment"`
	HouseholdSize    string `json:"household_size"`
	HealthcareAccess string `json:"primary_healthcare_access"`
	AnnualIncome     string `json:"annual_income"`
	HealthcareType   string `json:"healthcare_type"`
}

// EconomicForm carries raw field values for the economic-indicator model
type EconomicForm struct {
	PriceIndex        string `json:"price_index"`
	HospitalBeds      string `json:"hospital_beds"`
	PublicSpendingPct string `json:"public_spending_pct"`
}

// NewFormValidator returns a validator with the closed-set field rules
// registered. Error reporting uses the wire field names from json tags.
func NewFormValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	_ = v.RegisterValidation("sex", func(fl validator.FieldLevel) bool {
		return Sex(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("region", func(fl validator.FieldLevel) bool {
		return Region(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("employment", func(fl validator.FieldLevel) bool {
		return Employment(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("access", func(fl validator.FieldLevel) bool {
		return AccessLevel(fl.Field().String()).IsValid()
	})
	_ = v.RegisterValidation("healthcare_type", func(fl validator.FieldLevel) bool {
		return HealthcareType(fl.Field().String()).IsValid()
	})

	return v
}

// Validate parses and checks every field, returning either a fully typed
// profile or a validation error carrying a message per failing field. No
// network or storage access happens here.
func (f DemographicForm) Validate(v *validator.Validate) (*DemographicProfile, *apperrors.AppError) {
	fields := map[string]string{}

	required := map[string]string{
		"age":                       f.Age,
		"sex":                       f.Sex,
		"region":                    f.Region,
		"employment":                f.Employment,
		"household_size":            f.HouseholdSize,
		"primary_healthcare_access": f.HealthcareAccess,
		"annual_income":             f.AnnualIncome,
		"healthcare_type":           f.HealthcareType,
	}
	for name, value := range required {
		if strings.TrimSpace(value) == "" {
			fields[name] = "is required"
		}
	}

	profile := &DemographicProfile{
		Sex:              Sex(strings.TrimSpace(f.Sex)),
		Region:           Region(strings.TrimSpace(f.Region)),
		Insured:          f.Insured,
		Employment:       Employment(strings.TrimSpace(f.Employment)),
		HealthcareAccess: AccessLevel(strings.TrimSpace(f.HealthcareAccess)),
		HealthcareType:   HealthcareType(strings.TrimSpace(f.HealthcareType)),
	}
	profile.Age = parseIntField(fields, "age", f.Age)
	profile.HouseholdSize = parseIntField(fields, "household_size", f.HouseholdSize)
	profile.AnnualIncome = parseFloatField(fields, "annual_income", f.AnnualIncome)

	if len(fields) > 0 {
		return nil, apperrors.Validation("invalid form input", fields)
	}

	if err := v.Struct(profile); err != nil {
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fieldMessage(fe)
		}
		return nil, apperrors.Validation("invalid form input", fields)
	}

	return profile, nil
}

// Validate parses the three indicator fields, all required floats
func (f EconomicForm) Validate(_ *validator.Validate) (*EconomicIndicators, *apperrors.AppError) {
	fields := map[string]string{}

	required := map[string]string{
		"price_index":         f.PriceIndex,
		"hospital_beds":       f.HospitalBeds,
		"public_spending_pct": f.PublicSpendingPct,
	}
	for name, value := range required {
		if strings.TrimSpace(value) == "" {
			fields[name] = "is required"
		}
	}

	indicators := &EconomicIndicators{}
	indicators.PriceIndex = parseFloatField(fields, "price_index", f.PriceIndex)
	indicators.HospitalBeds = parseFloatField(fields, "hospital_beds", f.HospitalBeds)
	indicators.PublicSpendingPct = parseFloatField(fields, "public_spending_pct", f.PublicSpendingPct)

	if len(fields) > 0 {
		return nil, apperrors.Validation("invalid form input", fields)
	}

	return indicators, nil
}

func parseIntField(fields map[string]string, name, value string) int {
	if _, failed := fields[name]; failed {
		return 0
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		fields[name] = "must be a whole number"
		return 0
	}
	return n
}

func parseFloatField(fields map[string]string, name, value string) float64 {
	if _, failed := fields[name]; failed {
		return 0
	}
	n, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
	if err != nil {
		fields[name] = "must be a number"
		return 0
	}
	return n
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "sex":
		return "must be one of: male, female"
	case "region":
		return "must be one of: " + regionList()
	case "employment":
		return "must be one of: employed, unemployed, self-employed"
	case "access":
		return "must be one of: easy, moderate, difficult"
	case "healthcare_type":
		return "must be one of: public, private"
	}
	return fmt.Sprintf("failed %s check", fe.Tag())
}

func regionList() string {
	names := make([]string, 0, len(Regions()))
	for _, r := range Regions() {
		names = append(names, string(r))
	}
	return strings.Join(names, ", ")
}
