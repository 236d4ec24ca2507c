package prediction

import (
	"testing"

	apperrors "github.com/lesotho-gov/healthcost/internal/shared/errors"
	"github.com/stretchr/testify/assert"
)

func TestPresenterSuccess(t *testing.T) {
	p := NewPresenter("M")

	view := p.Success(&Estimate{Cost: 812.5, Info: "R²=0.92", ModelUsed: "Random Forest"})

	assert.Equal(t, "success", view.Status)
	assert.Equal(t, "M812.50", view.DisplayCost)
	assert.Equal(t, 812.5, view.Cost)
	assert.Equal(t, "R²=0.92", view.Info)
	assert.Equal(t, "Random Forest", view.ModelUsed)
	assert.Empty(t, view.Notice)
}

func TestPresenterRounding(t *testing.T) {
	p := NewPresenter("M")

	tests := []struct {
		cost float64
		want string
	}{
		{812.5, "M812.50"},
		{812.506, "M812.51"},
		{1000, "M1000.00"},
		{0.4, "M0.40"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, p.Success(&Estimate{Cost: tt.cost}).DisplayCost)
	}
}

// The failure view is distinct from success and never exposes technical
// detail beyond the kind tag
func TestPresenterFailure(t *testing.T) {
	p := NewPresenter("M")

	view := p.Failure(apperrors.Transport(assert.AnError))

	assert.Equal(t, "failure", view.Status)
	assert.NotEmpty(t, view.Notice)
	assert.Empty(t, view.DisplayCost)
	assert.Equal(t, string(apperrors.KindTransport), view.Kind)

	server := p.Failure(apperrors.Server(500, "boom"))
	assert.Equal(t, view.Notice, server.Notice, "all failure kinds share one user notice")
	assert.Equal(t, string(apperrors.KindServer), server.Kind)
}
