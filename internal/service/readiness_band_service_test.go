package service_test

import (
	"testing"

	"github.com/launchpadhq/launchpad-api/internal/model"
	"github.com/launchpadhq/launchpad-api/internal/service"
	"github.com/stretchr/testify/assert"
)

func TestBandForScore(t *testing.T) {
	bands := service.NewReadinessBandService()

	cases := []struct {
		score int
		band  string
	}{
		{0, model.BandEarlyExplorer},
		{24, model.BandEarlyExplorer},
		{47, model.BandEarlyExplorer},
		{48, model.BandBuildingFoundation},
		{71, model.BandBuildingFoundation},
		{72, model.BandOnTrack},
		{95, model.BandOnTrack},
		{96, model.BandInternshipReady},
		{120, model.BandInternshipReady},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.band, bands.BandForScore(tc.score), "score %d", tc.score)
	}
}

func TestRangeForBand(t *testing.T) {
	bands := service.NewReadinessBandService()

	assert.Equal(t, "96-120", bands.RangeForBand(model.BandInternshipReady))
	assert.Equal(t, "72-95", bands.RangeForBand(model.BandOnTrack))
	assert.Equal(t, "48-71", bands.RangeForBand(model.BandBuildingFoundation))
	assert.Equal(t, "0-47", bands.RangeForBand(model.BandEarlyExplorer))
}
