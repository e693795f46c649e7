package domain

// Stage is one of the five fixed onboarding phases an employee progresses through.
type Stage string

const (
	StagePrepare   Stage = "prepare"
	StageOrient    Stage = "orient"
	StageLand      Stage = "land"
	StageIntegrate Stage = "integrate"
	StageExcel     Stage = "excel"
)

// ValidStages returns all stages in progression order
func ValidStages() []Stage {
	return []Stage{StagePrepare, StageOrient, StageLand, StageIntegrate, StageExcel}
}

// IsValid checks if the stage is one of the five known values
func (s Stage) IsValid() bool {
	for _, valid := range ValidStages() {
		if s == valid {
			return true
		}
	}
	return false
}

// stageDays holds the estimated duration of each stage in days.
var stageDays = map[Stage]int{
	StagePrepare:   1,
	StageOrient:    1,
	StageLand:      5,
	StageIntegrate: 4,
	StageExcel:     30,
}

// defaultStageDays is the fallback for any unmapped stage value.
const defaultStageDays = 30

// EstimatedDays returns the planned number of days an employee spends in the
// given stage. It is used to derive the estimated completion date whenever the
// stage changes.
func EstimatedDays(s Stage) int {
	if days, ok := stageDays[s]; ok {
		return days
	}
	return defaultStageDays
}
