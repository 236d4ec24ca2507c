package prediction

import (
	"testing"

	apperrors "github.com/lesotho-gov/healthcost/internal/shared/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDemographicForm() DemographicForm {
	return DemographicForm{
		Age:              "34",
		Sex:              "male",
		Region:           "Maseru",
		Insured:          true,
		Employment:       "employed",
		HouseholdSize:    "4",
		HealthcareAccess: "easy",
		AnnualIncome:     "32000.0",
		HealthcareType:   "public",
	}
}

func TestDemographicFormValidate(t *testing.T) {
	v := NewFormValidator()

	profile, appErr := validDemographicForm().Validate(v)
	require.Nil(t, appErr)
	require.NotNil(t, profile)

	assert.Equal(t, 34, profile.Age)
	assert.Equal(t, SexMale, profile.Sex)
	assert.Equal(t, RegionMaseru, profile.Region)
	assert.True(t, profile.Insured)
	assert.Equal(t, Employed, profile.Employment)
	assert.Equal(t, 4, profile.HouseholdSize)
	assert.Equal(t, AccessEasy, profile.HealthcareAccess)
	assert.Equal(t, 32000.0, profile.AnnualIncome)
	assert.Equal(t, HealthcarePublic, profile.HealthcareType)
}

func TestDemographicFormRequiredFields(t *testing.T) {
	v := NewFormValidator()

	profile, appErr := DemographicForm{}.Validate(v)
	require.Nil(t, profile)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)

	for _, field := range []string{
		"age", "sex", "region", "employment", "household_size",
		"primary_healthcare_access", "annual_income", "healthcare_type",
	} {
		assert.Equal(t, "is required", appErr.Details[field], "field %s", field)
	}
}

func TestDemographicFormFieldErrors(t *testing.T) {
	v := NewFormValidator()

	tests := []struct {
		name    string
		mutate  func(f *DemographicForm)
		field   string
		message string
	}{
		{
			name:    "age not a number",
			mutate:  func(f *DemographicForm) { f.Age = "thirty-four" },
			field:   "age",
			message: "must be a whole number",
		},
		{
			name:    "age not positive",
			mutate:  func(f *DemographicForm) { f.Age = "0" },
			field:   "age",
			message: "must be greater than 0",
		},
		{
			name:    "household size not positive",
			mutate:  func(f *DemographicForm) { f.HouseholdSize = "-2" },
			field:   "household_size",
			message: "must be greater than 0",
		},
		{
			name:    "income not a number",
			mutate:  func(f *DemographicForm) { f.AnnualIncome = "lots" },
			field:   "annual_income",
			message: "must be a number",
		},
		{
			name:    "income negative",
			mutate:  func(f *DemographicForm) { f.AnnualIncome = "-1" },
			field:   "annual_income",
			message: "must be at least 0",
		},
		{
			name:   "sex outside closed set",
			mutate: func(f *DemographicForm) { f.Sex = "other" },
			field:  "sex",
		},
		{
			name:   "region outside closed set",
			mutate: func(f *DemographicForm) { f.Region = "Gauteng" },
			field:  "region",
		},
		{
			name:   "employment outside closed set",
			mutate: func(f *DemographicForm) { f.Employment = "retired" },
			field:  "employment",
		},
		{
			name:   "access outside closed set",
			mutate: func(f *DemographicForm) { f.HealthcareAccess = "impossible" },
			field:  "primary_healthcare_access",
		},
		{
			name:   "healthcare type outside closed set",
			mutate: func(f *DemographicForm) { f.HealthcareType = "traditional" },
			field:  "healthcare_type",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validDemographicForm()
			tt.mutate(&form)

			profile, appErr := form.Validate(v)
			require.Nil(t, profile)
			require.NotNil(t, appErr)
			assert.Equal(t, apperrors.KindValidation, appErr.Kind)
			require.Contains(t, appErr.Details, tt.field)
			if tt.message != "" {
				assert.Equal(t, tt.message, appErr.Details[tt.field])
			}
		})
	}
}

func TestDemographicFormAllRegionsAccepted(t *testing.T) {
	v := NewFormValidator()

	for _, region := range Regions() {
		form := validDemographicForm()
		form.Region = string(region)

		profile, appErr := form.Validate(v)
		require.Nil(t, appErr, "region %s", region)
		assert.Equal(t, region, profile.Region)
	}
}

func TestEconomicFormValidate(t *testing.T) {
	v := NewFormValidator()

	form := EconomicForm{
		PriceIndex:        "104.2",
		HospitalBeds:      "1.3",
		PublicSpendingPct: "8.1",
	}

	indicators, appErr := form.Validate(v)
	require.Nil(t, appErr)
	assert.Equal(t, 104.2, indicators.PriceIndex)
	assert.Equal(t, 1.3, indicators.HospitalBeds)
	assert.Equal(t, 8.1, indicators.PublicSpendingPct)
}

func TestEconomicFormErrors(t *testing.T) {
	v := NewFormValidator()

	indicators, appErr := EconomicForm{PriceIndex: "abc"}.Validate(v)
	require.Nil(t, indicators)
	require.NotNil(t, appErr)
	assert.Equal(t, apperrors.KindValidation, appErr.Kind)
	assert.Equal(t, "must be a number", appErr.Details["price_index"])
	assert.Equal(t, "is required", appErr.Details["hospital_beds"])
	assert.Equal(t, "is required", appErr.Details["public_spending_pct"])
}
