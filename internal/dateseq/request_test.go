package dateseq

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBusinessFilter_Keep(t *testing.T) {
	// The week of 2015-01-05: Monday the 5th through Sunday the 11th.
	week := map[time.Weekday]time.Time{
		time.Monday:    date(2015, time.January, 5),
		time.Tuesday:   date(2015, time.January, 6),
		time.Wednesday: date(2015, time.January, 7),
		time.Thursday:  date(2015, time.January, 8),
		time.Friday:    date(2015, time.January, 9),
		time.Saturday:  date(2015, time.January, 10),
		time.Sunday:    date(2015, time.January, 11),
	}

	tests := []struct {
		filter BusinessFilter
		kept   []time.Weekday
	}{
		{FilterNone, []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
			time.Friday, time.Saturday, time.Sunday}},
		{FilterBusiness, []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday}},
		{FilterNonBusiness, []time.Weekday{time.Saturday, time.Sunday}},
		{FilterBusiness6, []time.Weekday{
			time.Monday, time.Tuesday, time.Wednesday, time.Thursday,
			time.Friday, time.Saturday}},
		{FilterNonBusiness6, []time.Weekday{time.Sunday}},
	}

	for _, tt := range tests {
		t.Run(tt.filter.String(), func(t *testing.T) {
			keptSet := make(map[time.Weekday]bool, len(tt.kept))
			for _, wd := range tt.kept {
				keptSet[wd] = true
			}
			for wd, day := range week {
				assert.Equal(t, keptSet[wd], tt.filter.Keep(day), "%v", wd)
			}
		})
	}
}

func TestIsoWeekday(t *testing.T) {
	assert.Equal(t, 1, isoWeekday(date(2015, time.January, 5)))  // Monday
	assert.Equal(t, 6, isoWeekday(date(2015, time.January, 10))) // Saturday
	assert.Equal(t, 7, isoWeekday(date(2015, time.January, 11))) // Sunday
}

func TestRequest_Bounded(t *testing.T) {
	assert.False(t, (&Request{}).Bounded())
	assert.True(t, (&Request{To: datePtr(2015, time.January, 1)}).Bounded())
	assert.True(t, (&Request{Limit: 5}).Bounded())
}

func TestRequest_IncrementDefaultsToOneDay(t *testing.T) {
	r := &Request{}
	assert.Equal(t, DefaultIncrement, r.increment())

	r.Increment = Duration{Weeks: 2}
	assert.Equal(t, Duration{Weeks: 2}, r.increment())
}

func TestRequest_Validate(t *testing.T) {
	valid := &Request{From: date(2015, time.January, 1), Limit: 10, Format: "%Y-%m"}
	require.NoError(t, valid.Validate())

	var ce *ConfigError

	negLimit := &Request{Limit: -3}
	require.ErrorAs(t, negLimit.Validate(), &ce)
	assert.Equal(t, ErrCodeInvalidLimit, ce.Code)

	badFormat := &Request{Format: "%Y-%q"}
	require.ErrorAs(t, badFormat.Validate(), &ce)
	assert.Equal(t, ErrCodeInvalidFormat, ce.Code)
}

func TestConfigError_Error(t *testing.T) {
	withField := &ConfigError{Code: ErrCodeInvalidLimit, Message: "limit must be positive", Field: "limit"}
	assert.Equal(t, "INVALID_LIMIT: limit must be positive (field=limit)", withField.Error())

	bare := &ConfigError{Code: ErrCodeUnboundedRequest, Message: "no bound"}
	assert.Equal(t, "UNBOUNDED_REQUEST: no bound", bare.Error())
}
