package domain_test

import (
	"testing"

	"go-onboarding-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestStageValidity(t *testing.T) {
	for _, stage := range domain.ValidStages() {
		assert.True(t, stage.IsValid(), "stage %s", stage)
	}
	assert.False(t, domain.Stage("warmup").IsValid())
	assert.False(t, domain.Stage("").IsValid())
}

func TestEstimatedDays(t *testing.T) {
	assert.Equal(t, 1, domain.EstimatedDays(domain.StagePrepare))
	assert.Equal(t, 1, domain.EstimatedDays(domain.StageOrient))
	assert.Equal(t, 5, domain.EstimatedDays(domain.StageLand))
	assert.Equal(t, 4, domain.EstimatedDays(domain.StageIntegrate))
	assert.Equal(t, 30, domain.EstimatedDays(domain.StageExcel))

	// unknown stages fall back to the default estimate
	assert.Equal(t, 30, domain.EstimatedDays(domain.Stage("warmup")))
}
