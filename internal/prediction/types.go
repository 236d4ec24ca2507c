package prediction

// Variant names select which upstream contract the gateway speaks. The two
// deployed prediction services expose incompatible schemas and are never
// mixed in one process.
const (
	VariantDemographic = "demographic"
	VariantEconomic    = "economic"
)

// Sex is the gender category the demographic model was trained on
type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

func (s Sex) IsValid() bool {
	switch s {
	case SexMale, SexFemale:
		return true
	}
	return false
}

// Region is one of the eight administrative districts of Lesotho the model
// was trained on
type Region string

const (
	RegionQuthing     Region = "Quthing"
	RegionThabaTseka  Region = "Thaba-Tseka"
	RegionButhaButhe  Region = "Butha-Buthe"
	RegionMafeteng    Region = "Mafeteng"
	RegionMohalesHoek Region = "Mohale's Hoek"
	RegionQachasNek   Region = "Qacha's Nek"
	RegionLeribe      Region = "Leribe"
	RegionMaseru      Region = "Maseru"
)

// Regions returns the closed set of accepted district names
func Regions() []Region {
	return []Region{
		RegionQuthing, RegionThabaTseka, RegionButhaButhe, RegionMafeteng,
		RegionMohalesHoek, RegionQachasNek, RegionLeribe, RegionMaseru,
	}
}

func (r Region) IsValid() bool {
	for _, known := range Regions() {
		if r == known {
			return true
		}
	}
	return false
}

// Employment is the employment status category
type Employment string

const (
	Employed     Employment = "employed"
	Unemployed   Employment = "unemployed"
	SelfEmployed Employment = "self-employed"
)

func (e Employment) IsValid() bool {
	switch e {
	case Employed, Unemployed, SelfEmployed:
		return true
	}
	return false
}

// AccessLevel describes how hard primary healthcare is to reach
type AccessLevel string

const (
	AccessEasy      AccessLevel = "easy"
	AccessModerate  AccessLevel = "moderate"
	AccessDifficult AccessLevel = "difficult"
)

func (a AccessLevel) IsValid() bool {
	switch a {
	case AccessEasy, AccessModerate, AccessDifficult:
		return true
	}
	return false
}

// HealthcareType is the healthcare system the individual uses
type HealthcareType string

const (
	HealthcarePublic  HealthcareType = "public"
	HealthcarePrivate HealthcareType = "private"
)

func (h HealthcareType) IsValid() bool {
	switch h {
	case HealthcarePublic, HealthcarePrivate:
		return true
	}
	return false
}

// DemographicProfile is the validated, typed input for the demographic
// model. It only exists after every field has parsed successfully;
// partially-filled input never reaches the client.
type DemographicProfile struct {
	Age              int            `json:"age" validate:"gt=0"`
	Sex              Sex            `json:"sex" validate:"sex"`
	Region           Region         `json:"region" validate:"region"`
	Insured          bool           `json:"is_insured"`
	Employment       Employment     `json:"employment" validate:"employment"`
	HouseholdSize    int            `json:"household_size" validate:"gt=0"`
	HealthcareAccess AccessLevel    `json:"primary_healthcare_access" validate:"access"`
	AnnualIncome     float64        `json:"annual_income" validate:"gte=0"`
	HealthcareType   HealthcareType `json:"healthcare_type" validate:"healthcare_type"`
}

// EconomicIndicators is the validated input for the economic-indicator model
type EconomicIndicators struct {
	PriceIndex        float64 `json:"price_index"`
	HospitalBeds      float64 `json:"hospital_beds"` // beds per 1,000 population
	PublicSpendingPct float64 `json:"public_spending_pct"`
}

// Estimate is the decoded success payload from the prediction service.
// Cost carries the upstream value exactly; rounding happens at render time.
type Estimate struct {
	Cost      float64
	Info      string
	ModelUsed string
}
