package prediction

// DemographicPayload matches the field names and types the demographic
// prediction service expects. The insured flag is an integer 0/1 on the
// wire, never a boolean.
type DemographicPayload struct {
	Age                     int     `json:"age"`
	Sex                     string  `json:"sex"`
	Region                  string  `json:"region"`
	IsInsured               int     `json:"is_insured"`
	Employment              string  `json:"employment"`
	HouseholdSize           int     `json:"household_size"`
	PrimaryHealthcareAccess string  `json:"primary_healthcare_access"`
	AnnualIncome            float64 `json:"annual_income"`
	HealthcareType          string  `json:"healthcare_type"`
}

// EconomicPayload matches the economic-indicator service contract
type EconomicPayload struct {
	PriceIndex        float64 `json:"price_index"`
	HospitalBeds      float64 `json:"hospital_beds"`
	PublicSpendingPct float64 `json:"public_spending_pct"`
}

// BuildDemographicPayload maps a validated profile onto the wire shape.
// Pure type coercion only: enum strings pass through untouched and nothing
// is defaulted — missing data was already rejected at validation.
func BuildDemographicPayload(p *DemographicProfile) DemographicPayload {
	insured := 0
	if p.Insured {
		insured = 1
	}
	return DemographicPayload{
		Age:                     p.Age,
		Sex:                     string(p.Sex),
		Region:                  string(p.Region),
		IsInsured:               insured,
		Employment:              string(p.Employment),
		HouseholdSize:           p.HouseholdSize,
		PrimaryHealthcareAccess: string(p.HealthcareAccess),
		AnnualIncome:            p.AnnualIncome,
		HealthcareType:          string(p.HealthcareType),
	}
}

// BuildEconomicPayload maps validated indicators onto the wire shape
func BuildEconomicPayload(in *EconomicIndicators) EconomicPayload {
	return EconomicPayload{
		PriceIndex:        in.PriceIndex,
		HospitalBeds:      in.HospitalBeds,
		PublicSpendingPct: in.PublicSpendingPct,
	}
}
