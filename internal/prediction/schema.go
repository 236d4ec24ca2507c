package prediction

import (
	"encoding/json"
	"fmt"

	apperrors "github.com/lesotho-gov/healthcost/internal/shared/errors"
)

// Schema decodes one upstream response shape. The demographic and economic
// services expose incompatible contracts, so a Client is bound to exactly
// one schema for its lifetime.
type Schema interface {
	Variant() string
	DecodeEstimate(body []byte) (*Estimate, *apperrors.AppError)
}

// SchemaFor returns the schema adapter for a configured variant
func SchemaFor(variant string) (Schema, error) {
	switch variant {
	case VariantDemographic:
		return demographicSchema{}, nil
	case VariantEconomic:
		return economicSchema{}, nil
	}
	return nil, fmt.Errorf("unknown prediction variant %q", variant)
}

type demographicSchema struct{}

func (demographicSchema) Variant() string { return VariantDemographic }

// DecodeEstimate expects {"predicted_healthcare_cost": n, "confidence_info": s}
// plus optional model metadata
func (demographicSchema) DecodeEstimate(body []byte) (*Estimate, *apperrors.AppError) {
	var resp struct {
		PredictedHealthcareCost *float64 `json:"predicted_healthcare_cost"`
		ConfidenceInfo          string   `json:"confidence_info"`
		ModelUsed               string   `json:"model_used"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, apperrors.Schema("response is not valid JSON")
	}
	if resp.PredictedHealthcareCost == nil {
		return nil, apperrors.Schema("response missing predicted_healthcare_cost")
	}
	return &Estimate{
		Cost:      *resp.PredictedHealthcareCost,
		Info:      resp.ConfidenceInfo,
		ModelUsed: resp.ModelUsed,
	}, nil
}

type economicSchema struct{}

func (economicSchema) Variant() string { return VariantEconomic }

// DecodeEstimate expects {"prediction": n}
func (economicSchema) DecodeEstimate(body []byte) (*Estimate, *apperrors.AppError) {
	var resp struct {
		Prediction *float64 `json:"prediction"`
	}
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, apperrors.Schema("response is not valid JSON")
	}
	if resp.Prediction == nil {
		return nil, apperrors.Schema("response missing prediction")
	}
	return &Estimate{Cost: *resp.Prediction}, nil
}
