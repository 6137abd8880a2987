package service

import (
	"github.com/launchpadhq/launchpad-api/internal/model"
)

// Score bounds: 24 questions on a 1-5 Likert scale.
const (
	MinTotalScore = 0
	MaxTotalScore = 120
)

// ReadinessBandService classifies a total score into one of the four
// readiness bands. The ladder is evaluated top-down, first match wins, and
// must stay identical to the thresholds published on result pages.
type ReadinessBandService interface {
	BandForScore(totalScore int) string
	RangeForBand(band string) string
}

type readinessBandService struct{}

func NewReadinessBandService() ReadinessBandService {
	return &readinessBandService{}
}

func (s *readinessBandService) BandForScore(totalScore int) string {
	switch {
	case totalScore >= 96:
		return model.BandInternshipReady
	case totalScore >= 72:
		return model.BandOnTrack
	case totalScore >= 48:
		return model.BandBuildingFoundation
	default:
		return model.BandEarlyExplorer
	}
}

// RangeForBand returns the score bucket shown on public share pages.
func (s *readinessBandService) RangeForBand(band string) string {
	switch band {
	case model.BandInternshipReady:
		return "96-120"
	case model.BandOnTrack:
		return "72-95"
	case model.BandBuildingFoundation:
		return "48-71"
	default:
		return "0-47"
	}
}
