package dateseq

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration_IsZero(t *testing.T) {
	assert.True(t, Duration{}.IsZero())
	assert.False(t, Duration{Days: 1}.IsZero())
	assert.False(t, Duration{Clock: time.Second}.IsZero())
	assert.False(t, DefaultIncrement.IsZero())
}

func TestDuration_HasClockPart(t *testing.T) {
	assert.False(t, Duration{Days: 3}.HasClockPart())
	assert.False(t, Duration{Years: 1, Months: 2, Weeks: 3, Days: 4}.HasClockPart())
	assert.True(t, Duration{Clock: time.Minute}.HasClockPart())
	assert.True(t, Duration{Days: 1, Clock: time.Hour}.HasClockPart())
}

func TestDuration_AddTo(t *testing.T) {
	base := date(2015, time.January, 31)

	tests := []struct {
		name string
		d    Duration
		want time.Time
	}{
		{"days", Duration{Days: 3}, date(2015, time.February, 3)},
		{"weeks", Duration{Weeks: 2}, date(2015, time.February, 14)},
		{"months normalize", Duration{Months: 1}, date(2015, time.March, 3)},
		{"years", Duration{Years: 1}, date(2016, time.January, 31)},
		{"clock only", Duration{Clock: 90 * time.Minute},
			time.Date(2015, time.January, 31, 1, 30, 0, 0, time.UTC)},
		{"mixed", Duration{Days: 1, Clock: 6 * time.Hour},
			time.Date(2015, time.February, 1, 6, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.d.AddTo(base))
		})
	}
}

func TestDuration_SubFrom_InvertsAddTo(t *testing.T) {
	base := date(2015, time.June, 15)
	durations := []Duration{
		{Days: 1},
		{Weeks: 3},
		{Days: 10, Clock: 4 * time.Hour},
		{Years: 2, Months: 1},
	}
	for _, d := range durations {
		assert.Equal(t, base, d.SubFrom(d.AddTo(base)), "duration %s", d)
	}
}

func TestDuration_AddTo_DoesNotMutate(t *testing.T) {
	base := date(2015, time.January, 1)
	Duration{Days: 5}.AddTo(base)
	assert.Equal(t, date(2015, time.January, 1), base)
}

func TestDuration_String(t *testing.T) {
	assert.Equal(t, "0", Duration{}.String())
	assert.Equal(t, "1 day", Duration{Days: 1}.String())
	assert.Equal(t, "3 days", Duration{Days: 3}.String())
	assert.Equal(t, "1 year 2 months", Duration{Years: 1, Months: 2}.String())
	assert.Equal(t, "1 week 1h30m0s", Duration{Weeks: 1, Clock: 90 * time.Minute}.String())
}
