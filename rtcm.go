/*------------------------------------------------------------------------------
* rtcm.go : rtcm version 3 frame synchronization and decoder state
*
* references :
*     [7]  RTCM Standard 10403.1 - Amendment 5, Differential GNSS (Global
*          Navigation Satellite Systems) Services - version 3, July 1, 2011
*     [17] RTCM Standard 10403.3, Differential GNSS (Global Navigation Satellite
*          Systems) Services - version 3, with amendment 1, April 28, 2020
*-----------------------------------------------------------------------------*/

package gnssgo

import (
	"io"
	"os"
)

const (
	RTCM3PREAMB = 0xD3 /* rtcm ver.3 frame preamble */
)

func retsync(sync int, flag *int) int {
	if sync > 0 {
		*flag = 0
		return 0
	}
	*flag = 1
	return 1
}

/* initialize rtcm control ------------------------------------------------------
* args   : rtcm_t *rtcm     IO  rtcm control struct
* return : status (1:ok,0:memory allocation error)
*-----------------------------------------------------------------------------*/
func (rtcm *Rtcm) InitRtcm() int {
	var time0 Gtime
	var ssr0 SSR

	Trace(4, "init_rtcm:\n")
	if rtcm == nil {
		return 0
	}
	rtcm.StaId, rtcm.StaHealth, rtcm.SeqNo, rtcm.OutType = 0, 0, 0, 0
	rtcm.Time, rtcm.Time_s = time0, time0
	rtcm.StaPara = Sta{}

	for i := range rtcm.Ssr {
		rtcm.Ssr[i] = ssr0
	}
	for i := range rtcm.Dgps {
		rtcm.Dgps[i] = DGps{}
	}
	rtcm.Msg, rtcm.MsgType, rtcm.Opt = "", "", ""
	for i := range rtcm.MsmType {
		rtcm.MsmType[i] = ""
	}
	rtcm.ObsFlag, rtcm.EphSat, rtcm.EphSet = 0, 0, 0
	for i := 0; i < MAXSAT; i++ {
		for j := 0; j < NFREQ+NEXOBS; j++ {
			rtcm.Cp[i][j] = 0.0
			rtcm.Lock[i][j], rtcm.Loss[i][j] = 0, 0
			rtcm.Lltime[i][j] = time0
		}
	}
	rtcm.Nbyte, rtcm.Nbit, rtcm.MsgLen = 0, 0, 0
	rtcm.Word = 0
	for i := range rtcm.Nmsg3 {
		rtcm.Nmsg3[i] = 0
	}

	rtcm.ObsData.Data = make([]ObsD, 0, MAXOBS)
	rtcm.NavData.Ephs = make([]Eph, MAXSAT*2)
	rtcm.NavData.Geph = make([]GEph, MAXPRNGLO)
	rtcm.Clk = SystemClock
	return 1
}

/* free rtcm control -------------------------------------------------------------*/
func (rtcm *Rtcm) FreeRtcm() {
	Trace(4, "free_rtcm:\n")
	rtcm.ObsData.Data = nil
	rtcm.NavData.Ephs = nil
	rtcm.NavData.Geph = nil
}

/* input RTCM 3 message from stream --------------------------------------------
* fetch next RTCM 3 message and input a message from byte stream
* args   : rtcm_t *rtcm     IO  rtcm control struct
*          uint8_t data     I   stream data (1 byte)
* return : status (-1: error message, 0: no message, 1: input observation data,
*                  2: input ephemeris, 5: input station pos/ant parameters,
*                  10: input ssr messages)
* notes  : before firstly calling the function, time in rtcm control struct has
*          to be set to the approximate time within 1/2 week in order to resolve
*          ambiguity of time in rtcm messages.
*
*          to specify input options, set rtcm.Opt to the following option
*          strings separated by spaces.
*
*          -EPHALL  : input all ephemerides (default: only new)
*          -STA=nnn : input only message with STAID=nnn (default: all)
*          -GLss    : select signal ss for GPS MSM (ss=1C,1P,...)
*          -RLss    : select signal ss for GLO MSM (ss=1C,1P,...)
*          -ELss    : select signal ss for GAL MSM (ss=1C,1B,...)
*          -JLss    : select signal ss for QZS MSM (ss=1C,2C,...)
*          -CLss    : select signal ss for BDS MSM (ss=2I,7I,...)
*
*          RTCM 3 message format:
*            +----------+--------+-----------+--------------------+----------+
*            | preamble | 000000 |  length   |    data message    |  parity  |
*            +----------+--------+-----------+--------------------+----------+
*            |<-- 8 --.|<- 6 -.|<-- 10 --.|<--- length x 8 --.|<-- 24 -.|
*-----------------------------------------------------------------------------*/
func (rtcm *Rtcm) InputRtcm3(data uint8) int {
	Trace(4, "input_rtcm3: data=%02x\n", data)

	/* synchronize frame */
	if rtcm.Nbyte == 0 {
		if data != RTCM3PREAMB {
			return 0
		}
		rtcm.Buff[rtcm.Nbyte] = data
		rtcm.Nbyte++
		return 0
	}
	rtcm.Buff[rtcm.Nbyte] = data
	rtcm.Nbyte++

	if rtcm.Nbyte == 3 {
		rtcm.MsgLen = int(GetBitU(rtcm.Buff[:], 14, 10)) + 3 /* length without parity */
	}
	if rtcm.Nbyte < 3 || rtcm.Nbyte < rtcm.MsgLen+3 {
		return 0
	}
	rtcm.Nbyte = 0

	/* check parity */
	if Rtk_CRC24q(rtcm.Buff[:], rtcm.MsgLen) != GetBitU(rtcm.Buff[:], rtcm.MsgLen*8, 24) {
		Trace(2, "rtcm3 parity error: len=%d\n", rtcm.MsgLen)
		rejectedFrames.Inc()
		return 0
	}
	/* decode rtcm3 message */
	return rtcm.DecodeRtcm3()
}

/* input RTCM 3 message from file ------------------------------------------------
* args   : rtcm_t *rtcm     IO  rtcm control struct
*          FILE  *fp        I   file pointer
* return : status (-2: end of file, -1...10: same as InputRtcm3)
*-----------------------------------------------------------------------------*/
func (rtcm *Rtcm) InputRtcm3f(fp *os.File) int {
	Trace(3, "input_rtcm3f: data=%02x\n", 0)

	var c [1]byte
	for i := 0; i < 4096; i++ {
		_, err := fp.Read(c[:])
		if err == io.EOF {
			return -2
		}
		if ret := rtcm.InputRtcm3(c[0]); ret != 0 {
			return ret
		}
	}
	return 0 /* return at every 4k bytes */
}
