package gnssgo_test

import (
	"testing"

	"gnssgo"

	"github.com/stretchr/testify/assert"
)

/* a hand-built type 1005 (stationary RTK reference station ARP) frame:
* staid=5, itrf=3, ecef position all zero. DecodeRtcm3 reads rtcm.Buff and
* rtcm.MsgLen directly and performs no CRC check of its own (that happens
* one layer up, in InputRtcm3), so a frame assembled in memory exercises
* the dispatcher and the type-1005 decoder without needing a CRC-24Q
* value computed by hand. */
func type1005Frame() ([]byte, int) {
	buff := make([]byte, 22)
	buff[0] = 0xD3
	buff[1] = 0x00
	buff[2] = 0x13
	buff[3] = 0x3E
	buff[4] = 0xD0
	buff[5] = 0x05
	buff[6] = 0x0C
	return buff, 22
}

func Test_DecodeRtcm3_Type1005(t *testing.T) {
	assert := assert.New(t)
	rtcm := &gnssgo.Rtcm{}
	rtcm.InitRtcm()

	buff, msgLen := type1005Frame()
	copy(rtcm.Buff[:], buff)
	rtcm.MsgLen = msgLen

	ret := rtcm.DecodeRtcm3()
	assert.Equal(5, ret)
	assert.Equal(5, rtcm.StaId)
	assert.Equal(3, rtcm.StaPara.Itrf)
	assert.Equal(0.0, rtcm.StaPara.Pos[0])
	assert.Equal(0.0, rtcm.StaPara.Pos[1])
	assert.Equal(0.0, rtcm.StaPara.Pos[2])
}

/* a staid option mismatch must reject the frame; rtcm.StaId is left as it was. */
func Test_DecodeRtcm3_Type1005_StaidOptionMismatch(t *testing.T) {
	assert := assert.New(t)
	rtcm := &gnssgo.Rtcm{}
	rtcm.InitRtcm()
	rtcm.Opt = "-STA=9"

	buff, msgLen := type1005Frame()
	copy(rtcm.Buff[:], buff)
	rtcm.MsgLen = msgLen

	ret := rtcm.DecodeRtcm3()
	assert.Equal(-1, ret)
}

/* an unhandled message type falls through the closed switch untouched:
* ret stays at its zero value and nothing is decoded, though the frame is
* still counted in Nmsg3 and the per-type metric. Same frame shape
* as type1005Frame but with the 12-bit type field changed from 1005 to
* the omitted stub type 1025 (same staid/itrf/reserved payload). */
func type1025Frame() ([]byte, int) {
	buff := make([]byte, 22)
	buff[0] = 0xD3
	buff[1] = 0x00
	buff[2] = 0x13
	buff[3] = 0x40
	buff[4] = 0x10
	buff[5] = 0x05
	buff[6] = 0x0C
	return buff, 22
}

func Test_DecodeRtcm3_UnsupportedType(t *testing.T) {
	assert := assert.New(t)
	rtcm := &gnssgo.Rtcm{}
	rtcm.InitRtcm()

	buff, msgLen := type1025Frame()
	copy(rtcm.Buff[:], buff)
	rtcm.MsgLen = msgLen

	ret := rtcm.DecodeRtcm3()
	assert.Equal(0, ret)
}
