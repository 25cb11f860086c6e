package gnssgo_test

import (
	"testing"

	"gnssgo"

	"github.com/stretchr/testify/assert"
)

func Test_SatNo_SatSys_RoundTrip(t *testing.T) {
	assert := assert.New(t)

	sat := gnssgo.SatNo(gnssgo.SYS_GPS, 5)
	assert.NotEqual(0, sat)
	var prn int
	sys := gnssgo.SatSys(sat, &prn)
	assert.Equal(gnssgo.SYS_GPS, sys)
	assert.Equal(5, prn)

	sat = gnssgo.SatNo(gnssgo.SYS_GLO, 10)
	sys = gnssgo.SatSys(sat, &prn)
	assert.Equal(gnssgo.SYS_GLO, sys)
	assert.Equal(10, prn)
}

func Test_SatNo_RejectsOutOfRangePrn(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(0, gnssgo.SatNo(gnssgo.SYS_GPS, 0))
	assert.Equal(0, gnssgo.SatNo(gnssgo.SYS_GPS, 999))
}

func Test_SatId2No(t *testing.T) {
	assert := assert.New(t)
	sat := gnssgo.SatId2No("G05")
	expect := gnssgo.SatNo(gnssgo.SYS_GPS, 5)
	assert.Equal(expect, sat)
	assert.Equal(0, gnssgo.SatId2No("?"))
}

/* GetCodePri must resolve the same regardless of where in the options
* string its system's flag appears, and the matching -RLxx/-GLxx/...
* flag must actually promote the named code to top priority rather
* than silently falling through to the codepris table. */
func Test_GetCodePri_OrderIndependent(t *testing.T) {
	assert := assert.New(t)
	code := gnssgo.Obs2Code("1P")
	first := gnssgo.GetCodePri(gnssgo.SYS_GLO, code, "-RL1P -GL1C")
	second := gnssgo.GetCodePri(gnssgo.SYS_GLO, code, "-GL1C -RL1P")
	assert.Equal(first, second)
	assert.Equal(15, first)
}

/* without a matching -RLxx override the same code falls back to its
* position in the codepris table, which for "1P" on GLONASS is not
* the top priority slot. */
func Test_GetCodePri_FallsBackToTableWithoutOverride(t *testing.T) {
	assert := assert.New(t)
	code := gnssgo.Obs2Code("1P")
	withoutOverride := gnssgo.GetCodePri(gnssgo.SYS_GLO, code, "")
	assert.Less(withoutOverride, 15)

	withOverride := gnssgo.GetCodePri(gnssgo.SYS_GLO, code, "-RL1P")
	assert.Equal(15, withOverride)
}

/* a -RLxx/-GLxx/... flag naming a different code on the same system
* demotes that code to priority 0 rather than leaving it at its
* table-assigned priority. */
func Test_GetCodePri_MismatchedOverrideForcesZero(t *testing.T) {
	assert := assert.New(t)
	code := gnssgo.Obs2Code("1C")
	assert.Equal(0, gnssgo.GetCodePri(gnssgo.SYS_GPS, code, "-GL1P"))
}

/* a flag whose %2s capture comes up one character short (the token
* ends right after the band digit) must fall through to the codepris
* table rather than index into a 1-byte str. */
func Test_GetCodePri_ShortOverrideTokenDoesNotPanic(t *testing.T) {
	assert := assert.New(t)
	code := gnssgo.Obs2Code("1C")
	assert.NotPanics(func() {
		gnssgo.GetCodePri(gnssgo.SYS_GPS, code, "-GL1")
	})
	withoutOverride := gnssgo.GetCodePri(gnssgo.SYS_GPS, code, "")
	withShortToken := gnssgo.GetCodePri(gnssgo.SYS_GPS, code, "-GL1")
	assert.Equal(withoutOverride, withShortToken)
}
