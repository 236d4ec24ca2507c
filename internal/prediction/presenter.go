package prediction

import (
	"fmt"

	apperrors "github.com/lesotho-gov/healthcost/internal/shared/errors"
)

// failureNotice is what end users see for any settled failure. The error
// kind stays available for logs and metrics but is not exposed as prose.
const failureNotice = "We could not get an estimate right now. Please try again."

// Presenter renders settled prediction outcomes for display
type Presenter struct {
	currencyPrefix string
}

// NewPresenter creates a presenter. The prefix renders in front of the
// estimated cost (M for Lesotho Loti).
func NewPresenter(currencyPrefix string) *Presenter {
	return &Presenter{currencyPrefix: currencyPrefix}
}

// View is the rendered outcome of one submission
type View struct {
	Status      string  `json:"status"` // success or failure
	DisplayCost string  `json:"display_cost,omitempty"`
	Cost        float64 `json:"predicted_cost,omitempty"`
	Info        string  `json:"confidence_info,omitempty"`
	ModelUsed   string  `json:"model_used,omitempty"`
	Notice      string  `json:"notice,omitempty"`
	Kind        string  `json:"kind,omitempty"`
}

// Success renders an estimate: the cost to two decimal places behind the
// currency prefix, with the auxiliary text passed through verbatim
func (p *Presenter) Success(est *Estimate) View {
	return View{
		Status:      "success",
		DisplayCost: fmt.Sprintf("%s%.2f", p.currencyPrefix, est.Cost),
		Cost:        est.Cost,
		Info:        est.Info,
		ModelUsed:   est.ModelUsed,
	}
}

// Failure renders the generic notice, tagged with the error kind for
// diagnostics
func (p *Presenter) Failure(err error) View {
	return View{
		Status: "failure",
		Notice: failureNotice,
		Kind:   string(apperrors.KindOf(err)),
	}
}
