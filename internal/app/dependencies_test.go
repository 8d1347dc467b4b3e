package app

import (
	"testing"

	"github.com/freebusy/freebusy/internal/config"
	"github.com/freebusy/freebusy/internal/test_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildDependencies(t *testing.T) {
	db := test_utils.SetupTestDB(t)
	cfg := config.Application{
		Timezone: config.Timezone{
			Reference: "America/Toronto",
			Default:   "America/Toronto",
		},
		Availability: config.Availability{
			LookaheadDays: 7,
			WorkStartHour: 9,
			WorkEndHour:   17,
			StrictWindow:  true,
		},
		Calendars: config.Calendars{ShowAll: true},
		Output:    config.Output{Target: "stdout"},
	}
	require.NoError(t, cfg.Validate())

	deps := BuildDependencies(db, cfg)

	assert.NotNil(t, deps.EventStore)
	assert.NotNil(t, deps.CalendarHandler)
	assert.NotNil(t, deps.Clock)
	assert.NotNil(t, deps.AvailabilityService)
	assert.NotNil(t, deps.ReportRenderer)
	assert.NotNil(t, deps.ScheduleRenderer)
	assert.NotNil(t, deps.AvailabilityHandler)
}
