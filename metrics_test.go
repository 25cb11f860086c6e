package gnssgo_test

import (
	"testing"

	"gnssgo"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_RegisterMetrics_IsCallerOwned(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	reg := prometheus.NewRegistry()
	require.NoError(gnssgo.RegisterMetrics(reg))
	/* registering the same collectors on the same registry a second time
	* must not error: the core may be initialized more than once per
	* process in a long-running host. */
	require.NoError(gnssgo.RegisterMetrics(reg))

	collectors := gnssgo.Collector()
	rejected, ok := collectors[1].(prometheus.Counter)
	require.True(ok)
	before := testutil.ToFloat64(rejected)
	rejected.Inc()
	after := testutil.ToFloat64(rejected)
	assert.Equal(before+1, after)
}

func Test_DecodeRtcm3_CountsDecodedMessageType(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	collectors := gnssgo.Collector()
	decoded, ok := collectors[0].(*prometheus.CounterVec)
	require.True(ok)

	/* query the "1005" label directly, independent of whatever other
	* tests in this package may have already incremented in this
	* process-wide counter vector. */
	before := testutil.ToFloat64(decoded.WithLabelValues("1005"))

	rtcm := &gnssgo.Rtcm{}
	rtcm.InitRtcm()
	buff, msgLen := type1005Frame()
	copy(rtcm.Buff[:], buff)
	rtcm.MsgLen = msgLen

	ret := rtcm.DecodeRtcm3()
	assert.Equal(5, ret)

	after := testutil.ToFloat64(decoded.WithLabelValues("1005"))
	assert.Equal(before+1, after)
}
