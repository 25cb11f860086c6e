package gnssgo_test

import (
	"testing"

	"gnssgo"

	"github.com/stretchr/testify/assert"
)

func Test_FixedClock_ReportsInjectedTime(t *testing.T) {
	assert := assert.New(t)
	ep := []float64{2022, 3, 1, 0, 0, 0}
	want := gnssgo.Epoch2Time(ep)
	clk := gnssgo.FixedClock{T: want}
	assert.Equal(want.Time, clk.Now().Time)
	assert.Equal(want.Sec, clk.Now().Sec)
}

func Test_AdjGpsWeek_RollsOverNearSystemClock(t *testing.T) {
	assert := assert.New(t)
	/* a truncated 10-bit week (0-1023) must resolve back to the exact
	* current full week, since the truncated value and the current week
	* always agree mod 1024. */
	var w int
	gnssgo.Time2GpsT(gnssgo.Utc2GpsT(gnssgo.SystemClock.Now()), &w)
	adjusted := gnssgo.AdjGpsWeek(w % 1024)
	assert.Equal(w, adjusted)
}
