package gnssgo_test

import (
	"testing"

	"gnssgo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

/* bitWriter assembles a byte buffer bit-by-bit, MSB-first within each byte,
* mirroring the read order of GetBitU/GetBits. It exists only to build
* synthetic RTCM3 frames for tests; nothing in the decoder uses it. */
type bitWriter struct {
	buf []byte
	pos int
}

func newBitWriter(n int) *bitWriter {
	return &bitWriter{buf: make([]byte, n)}
}

func (w *bitWriter) putu(value uint32, length int) {
	for i := 0; i < length; i++ {
		bit := (value >> uint(length-1-i)) & 1
		p := w.pos + i
		if bit != 0 {
			w.buf[p/8] |= 1 << uint(7-p%8)
		}
	}
	w.pos += length
}

func (w *bitWriter) puts(value int32, length int) {
	w.putu(uint32(value)&((1<<uint(length))-1), length)
}

/* a hand-built type 1004 (extended L1&L2 GPS RTK observables) frame
* carrying a single satellite, following the same 64-bit fixed header
* skip (decode_type1004 starts its satellite loop at bit 24+64) that
* decode_head1001 itself only partially accounts for. */
func type1004Frame() ([]byte, int) {
	return type1004FramePrn(1, 0)
}

func Test_DecodeRtcm3_Type1004_ObservationsStored(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	rtcm := &gnssgo.Rtcm{}
	rtcm.InitRtcm()

	buff, msgLen := type1004Frame()
	copy(rtcm.Buff[:], buff)
	rtcm.MsgLen = msgLen

	ret := rtcm.DecodeRtcm3()
	require.Equal(1, ret)
	require.Len(rtcm.ObsData.Data, 1)

	sat := gnssgo.SatNo(gnssgo.SYS_GPS, 1)
	assert.Equal(sat, rtcm.ObsData.Data[0].Sat)
	assert.NotZero(rtcm.ObsData.Data[0].P[0])
	assert.NotZero(rtcm.ObsData.Data[0].P[1])
}

/* a second type 1004 frame for a different satellite, decoded against
* an Rtcm that already carries one observation epoch from a prior
* frame. The first frame is flagged sync=1 (more messages follow in
* this epoch), the second sync=0 (epoch complete); this is what
* exercises ObsIndex's scan-then-append path, accumulating both
* satellites into the same epoch, and the now-guarded
* rtcm.ObsData.Data[0].Time read that used to panic against the
* empty slice InitRtcm allocates. */
func type1004FramePrn(prn, sync int) ([]byte, int) {
	w := newBitWriter(30)
	w.buf[0] = 0xD3
	w.buf[1] = 0x00
	w.buf[2] = 0x18
	w.pos = 24
	w.putu(1004, 12)
	w.putu(0, 12)
	w.putu(0, 30)
	w.putu(uint32(sync), 1)
	w.putu(1, 5)
	w.putu(0, 4)

	w.putu(uint32(prn), 6)
	w.putu(0, 1)
	w.putu(1000, 24)
	w.puts(100, 20)
	w.putu(5, 7)
	w.putu(2, 8)
	w.putu(40, 8)
	w.putu(0, 2)
	w.puts(50, 14)
	w.puts(60, 20)
	w.putu(3, 7)
	w.putu(35, 8)

	return w.buf, 27
}

func Test_DecodeRtcm3_Type1004_SecondSatelliteAppends(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	rtcm := &gnssgo.Rtcm{}
	rtcm.InitRtcm()

	buff1, msgLen1 := type1004FramePrn(1, 1)
	copy(rtcm.Buff[:], buff1)
	rtcm.MsgLen = msgLen1
	require.Equal(0, rtcm.DecodeRtcm3())
	require.Len(rtcm.ObsData.Data, 1)

	for i := range rtcm.Buff {
		rtcm.Buff[i] = 0
	}
	buff2, msgLen2 := type1004FramePrn(2, 0)
	copy(rtcm.Buff[:], buff2)
	rtcm.MsgLen = msgLen2
	require.Equal(1, rtcm.DecodeRtcm3())

	require.Len(rtcm.ObsData.Data, 2)
	assert.Equal(gnssgo.SatNo(gnssgo.SYS_GPS, 1), rtcm.ObsData.Data[0].Sat)
	assert.Equal(gnssgo.SatNo(gnssgo.SYS_GPS, 2), rtcm.ObsData.Data[1].Sat)
}

/* an MSM4 GPS frame (type 1074) carrying a single satellite and a
* single signal cell. */
func msm4GpsFrame() ([]byte, int) {
	w := newBitWriter(33)
	w.buf[0] = 0xD3
	w.buf[1] = 0x00
	w.buf[2] = 0x1e
	w.pos = 24
	w.putu(1074, 12) /* message type */
	w.putu(0, 12)    /* station id */
	w.putu(0, 30)    /* tow */
	w.putu(0, 1)     /* sync */
	w.putu(0, 3)     /* iod */
	w.putu(0, 7)     /* time_s */
	w.putu(0, 2)     /* clk_str */
	w.putu(0, 2)     /* clk_ext */
	w.putu(0, 1)     /* smooth */
	w.putu(0, 3)     /* tint_s */

	/* satellite mask: only PRN 1 present */
	w.putu(1, 1)
	for i := 0; i < 63; i++ {
		w.putu(0, 1)
	}
	/* signal mask: only signal id 2 ("1C") present */
	w.putu(0, 1)
	w.putu(1, 1)
	for i := 0; i < 30; i++ {
		w.putu(0, 1)
	}
	/* cell mask: the one sat/sig pair is present */
	w.putu(1, 1)

	w.putu(100, 8) /* range */
	w.putu(50, 10) /* range modulo */

	w.puts(500, 15)  /* pseudorange */
	w.puts(1000, 22) /* phaserange */
	w.putu(5, 4)     /* lock time */
	w.putu(0, 1)     /* half-cycle ambiguity */
	w.putu(40, 6)    /* cnr */

	return w.buf, 33
}

func Test_DecodeRtcm3_Msm4Gps_SavesObservation(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	rtcm := &gnssgo.Rtcm{}
	rtcm.InitRtcm()

	buff, msgLen := msm4GpsFrame()
	copy(rtcm.Buff[:], buff)
	rtcm.MsgLen = msgLen

	ret := rtcm.DecodeRtcm3()
	require.Equal(1, ret)
	require.Len(rtcm.ObsData.Data, 1)

	sat := gnssgo.SatNo(gnssgo.SYS_GPS, 1)
	assert.Equal(sat, rtcm.ObsData.Data[0].Sat)
	assert.NotZero(rtcm.ObsData.Data[0].P[0])
	assert.NotZero(rtcm.ObsData.Data[0].Code[0])
}

/* an MSM7 GPS frame (type 1077), exercising the high-resolution
* pseudorange/phaserange/phaserangerate cell layout and the
* decode_msm_head path that msm.go shares with MSM4-6. */
func msm7GpsFrame() ([]byte, int) {
	w := newBitWriter(39)
	w.buf[0] = 0xD3
	w.buf[1] = 0x00
	w.buf[2] = 0x24
	w.pos = 24
	w.putu(1077, 12)
	w.putu(0, 12)
	w.putu(0, 30)
	w.putu(0, 1)
	w.putu(0, 3)
	w.putu(0, 7)
	w.putu(0, 2)
	w.putu(0, 2)
	w.putu(0, 1)
	w.putu(0, 3)

	w.putu(1, 1)
	for i := 0; i < 63; i++ {
		w.putu(0, 1)
	}
	w.putu(0, 1)
	w.putu(1, 1)
	for i := 0; i < 30; i++ {
		w.putu(0, 1)
	}
	w.putu(1, 1)

	w.putu(100, 8) /* range */
	w.putu(15, 4)  /* extended info */
	w.putu(50, 10) /* range modulo */
	w.puts(20, 14) /* phaserangerate */

	w.puts(2000, 20) /* pseudorange */
	w.puts(3000, 24) /* phaserange */
	w.putu(100, 10)  /* lock time */
	w.putu(0, 1)     /* half-cycle ambiguity */
	w.putu(200, 10)  /* cnr */
	w.puts(300, 15)  /* phaserangerate */

	return w.buf, 39
}

func Test_DecodeRtcm3_Msm7Gps_SavesObservation(t *testing.T) {
	assert := assert.New(t)
	require := require.New(t)

	rtcm := &gnssgo.Rtcm{}
	rtcm.InitRtcm()

	buff, msgLen := msm7GpsFrame()
	copy(rtcm.Buff[:], buff)
	rtcm.MsgLen = msgLen

	ret := rtcm.DecodeRtcm3()
	require.Equal(1, ret)
	require.Len(rtcm.ObsData.Data, 1)

	sat := gnssgo.SatNo(gnssgo.SYS_GPS, 1)
	assert.Equal(sat, rtcm.ObsData.Data[0].Sat)
	assert.NotZero(rtcm.ObsData.Data[0].P[0])
	assert.NotZero(rtcm.ObsData.Data[0].L[0])
	assert.NotZero(rtcm.ObsData.Data[0].D[0])
}

/* a second MSM4 frame, after ObsFlag has already been set by a prior
* non-synchronous frame, must reset the observation buffer rather than
* accumulate into it -- the ObsFlag > 0 branch clears the buffer before
* the Data[0].Time comparison is reached. */
func Test_DecodeRtcm3_Msm4Gps_NewEpochResetsBuffer(t *testing.T) {
	require := require.New(t)

	rtcm := &gnssgo.Rtcm{}
	rtcm.InitRtcm()

	buff, msgLen := msm4GpsFrame()
	copy(rtcm.Buff[:], buff)
	rtcm.MsgLen = msgLen
	require.Equal(1, rtcm.DecodeRtcm3())
	require.Len(rtcm.ObsData.Data, 1)
	require.Equal(1, rtcm.ObsFlag)

	for i := range rtcm.Buff {
		rtcm.Buff[i] = 0
	}
	buff2, msgLen2 := msm4GpsFrame()
	copy(rtcm.Buff[:], buff2)
	rtcm.MsgLen = msgLen2
	require.Equal(1, rtcm.DecodeRtcm3())
	require.Len(rtcm.ObsData.Data, 1)
}
