package prediction

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDemographicPayload(t *testing.T) {
	profile := &DemographicProfile{
		Age:              34,
		Sex:              SexMale,
		Region:           RegionMaseru,
		Insured:          true,
		Employment:       Employed,
		HouseholdSize:    4,
		HealthcareAccess: AccessEasy,
		AnnualIncome:     32000.0,
		HealthcareType:   HealthcarePublic,
	}

	payload := BuildDemographicPayload(profile)

	assert.Equal(t, 34, payload.Age)
	assert.Equal(t, "male", payload.Sex)
	assert.Equal(t, "Maseru", payload.Region)
	assert.Equal(t, 1, payload.IsInsured)
	assert.Equal(t, "employed", payload.Employment)
	assert.Equal(t, 4, payload.HouseholdSize)
	assert.Equal(t, "easy", payload.PrimaryHealthcareAccess)
	assert.Equal(t, 32000.0, payload.AnnualIncome)
	assert.Equal(t, "public", payload.HealthcareType)
}

// The insured flag must serialize as an integer 0/1, never a boolean literal
func TestInsuredFlagEncoding(t *testing.T) {
	insured := BuildDemographicPayload(&DemographicProfile{Insured: true})
	uninsured := BuildDemographicPayload(&DemographicProfile{Insured: false})

	insuredJSON, err := json.Marshal(insured)
	require.NoError(t, err)
	uninsuredJSON, err := json.Marshal(uninsured)
	require.NoError(t, err)

	assert.Contains(t, string(insuredJSON), `"is_insured":1`)
	assert.Contains(t, string(uninsuredJSON), `"is_insured":0`)
	assert.NotContains(t, string(insuredJSON), "true")
	assert.NotContains(t, string(uninsuredJSON), "false")
}

// Wire field names must match the remote contract exactly
func TestDemographicPayloadFieldNames(t *testing.T) {
	raw, err := json.Marshal(BuildDemographicPayload(&DemographicProfile{}))
	require.NoError(t, err)

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &fields))

	expected := []string{
		"age", "sex", "region", "is_insured", "employment",
		"household_size", "primary_healthcare_access", "annual_income",
		"healthcare_type",
	}
	assert.Len(t, fields, len(expected))
	for _, name := range expected {
		assert.Contains(t, fields, name)
	}
}

func TestBuildEconomicPayload(t *testing.T) {
	payload := BuildEconomicPayload(&EconomicIndicators{
		PriceIndex:        104.2,
		HospitalBeds:      1.3,
		PublicSpendingPct: 8.1,
	})

	raw, err := json.Marshal(payload)
	require.NoError(t, err)

	var fields map[string]float64
	require.NoError(t, json.Unmarshal(raw, &fields))
	assert.Equal(t, map[string]float64{
		"price_index":         104.2,
		"hospital_beds":       1.3,
		"public_spending_pct": 8.1,
	}, fields)
}
