package gnssgo

import (
	"fmt"
	"math"
)

/* decode type 1001-1004 message header --------------------------------------*/
func (rtcm *Rtcm) decode_head1001(sync *int) int {
	var (
		tow                float64
		tstr               string
		i                  int = 24
		staid, nsat, ctype int
	)

	ctype = int(GetBitU(rtcm.Buff[:], i, 12))
	i += 12

	if i+52 <= rtcm.MsgLen*8 {
		staid = int(GetBitU(rtcm.Buff[:], i, 12))
		i += 12
		tow = float64(GetBitU(rtcm.Buff[:], i, 30)) * 0.001
		i += 30
		*sync = int(GetBitU(rtcm.Buff[:], i, 1))
		i += 1
		nsat = int(GetBitU(rtcm.Buff[:], i, 5))
	} else {
		Trace(2, "rtcm3 %d length error: len=%d\n", ctype, rtcm.MsgLen)
		return -1
	}
	/* test station ID */
	if rtcm.test_staid(staid) == 0 {
		return -1
	}

	rtcm.AdjWeek(tow)

	Time2Str(rtcm.Time, &tstr, 2)
	Trace(5, "decode_head1001: time=%s nsat=%d sync=%d\n", tstr, nsat, *sync)

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" staid=%4d %s nsat=%2d sync=%d", staid, tstr, nsat, *sync)
	}
	return nsat
}

/* decode type 1001: L1-only GPS RTK observation -----------------------------*/
func (rtcm *Rtcm) decode_type1001() int {
	var sync int
	if rtcm.decode_head1001(&sync) < 0 {
		return -1
	}
	return retsync(sync, &rtcm.ObsFlag)
}

/* decode type 1002: extended L1-only GPS RTK observables --------------------*/
func (rtcm *Rtcm) decode_type1002() int {
	var (
		pr1, cnr1, tt, cp1               float64
		i, j, index, nsat, sync, prn     int
		code, sat, ppr1, lock1, amb, sys int
	)
	freq := FREQ1
	i = 24 + 64
	if nsat = rtcm.decode_head1001(&sync); nsat < 0 {
		return -1
	}

	for j = 0; j < nsat && rtcm.ObsData.N() < MAXOBS+1 && i+74 <= rtcm.MsgLen*8; j++ {
		prn = int(GetBitU(rtcm.Buff[:], i, 6))
		i += 6
		code = int(GetBitU(rtcm.Buff[:], i, 1))
		i += 1
		pr1 = float64(GetBitU(rtcm.Buff[:], i, 24))
		i += 24
		ppr1 = int(GetBits(rtcm.Buff[:], i, 20))
		i += 20
		lock1 = int(GetBitU(rtcm.Buff[:], i, 7))
		i += 7
		amb = int(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
		cnr1 = float64(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
		if prn < 40 {
			sys = SYS_GPS
		} else {
			sys = SYS_SBS
			prn += 80
		}
		if sat = SatNo(sys, prn); sat == 0 {
			Trace(2, "rtcm3 1002 satellite number error: prn=%d\n", prn)
			continue
		}
		if rtcm.ObsFlag > 0 {
			rtcm.ObsData.Data, rtcm.ObsFlag = nil, 0
		} else if len(rtcm.ObsData.Data) > 0 {
			tt = TimeDiff(rtcm.ObsData.Data[0].Time, rtcm.Time)
			if math.Abs(tt) > 1e-9 {
				rtcm.ObsData.Data = nil
			}
		}
		if index = rtcm.ObsData.ObsIndex(rtcm.Time, sat); index < 0 {
			continue
		}
		pr1 = pr1*0.02 + float64(amb)*PRUNIT_GPS
		rtcm.ObsData.Data[index].P[0] = pr1

		if ppr1 != PPR_INVALID {
			cp1 = rtcm.AdjCP(sat, 0, float64(ppr1)*0.0005*freq/CLIGHT)
			rtcm.ObsData.Data[index].L[0] = pr1*freq/CLIGHT + cp1
		}
		rtcm.ObsData.Data[index].LLI[0] = uint8(rtcm.LossOfLock(sat, 0, lock1))
		rtcm.ObsData.Data[index].SNR[0] = SnRatio(cnr1 * 0.25)
		if code > 0 {
			rtcm.ObsData.Data[index].Code[0] = CODE_L1P
		} else {
			rtcm.ObsData.Data[index].Code[0] = CODE_L1C
		}
	}

	return retsync(sync, &rtcm.ObsFlag)
}

/* decode type 1003: L1&L2 gps rtk observables -------------------------------*/
func (rtcm *Rtcm) decode_type1003() int {
	var sync int
	if rtcm.decode_head1001(&sync) < 0 {
		return -1
	}
	return retsync(sync, &rtcm.ObsFlag)
}

/* decode type 1004: extended L1&L2 GPS RTK observables ----------------------*/
func (rtcm *Rtcm) decode_type1004() int {
	var (
		L2codes                            []byte     = []byte{CODE_L2X, CODE_L2P, CODE_L2D, CODE_L2W}
		pr1, cnr1, cnr2, tt, cp1, cp2      float64
		freq                               [2]float64 = [2]float64{FREQ1, FREQ2}
		i, j, index, nsat, sync, prn, sat  int
		code1, code2, pr21, ppr1, ppr2     int
		lock1, lock2, amb, sys             int
	)
	i = 24 + 64
	if nsat = rtcm.decode_head1001(&sync); nsat < 0 {
		return -1
	}

	for j = 0; j < nsat && rtcm.ObsData.N() < MAXOBS+1 && i+125 <= rtcm.MsgLen*8; j++ {
		prn = int(GetBitU(rtcm.Buff[:], i, 6))
		i += 6
		code1 = int(GetBitU(rtcm.Buff[:], i, 1))
		i += 1
		pr1 = float64(GetBitU(rtcm.Buff[:], i, 24))
		i += 24
		ppr1 = int(GetBits(rtcm.Buff[:], i, 20))
		i += 20
		lock1 = int(GetBitU(rtcm.Buff[:], i, 7))
		i += 7
		amb = int(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
		cnr1 = float64(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
		code2 = int(GetBitU(rtcm.Buff[:], i, 2))
		i += 2
		pr21 = int(GetBits(rtcm.Buff[:], i, 14))
		i += 14
		ppr2 = int(GetBits(rtcm.Buff[:], i, 20))
		i += 20
		lock2 = int(GetBitU(rtcm.Buff[:], i, 7))
		i += 7
		cnr2 = float64(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
		if prn < 40 {
			sys = SYS_GPS
		} else {
			sys = SYS_SBS
			prn += 80
		}
		if sat = SatNo(sys, prn); sat == 0 {
			Trace(2, "rtcm3 1004 satellite number error: sys=%d prn=%d\n", sys, prn)
			continue
		}
		if rtcm.ObsFlag > 0 {
			rtcm.ObsData.Data, rtcm.ObsFlag = nil, 0
		} else if len(rtcm.ObsData.Data) > 0 {
			tt = TimeDiff(rtcm.ObsData.Data[0].Time, rtcm.Time)
			if math.Abs(tt) > 1e-9 {
				rtcm.ObsData.Data = nil
			}
		}
		if index = rtcm.ObsData.ObsIndex(rtcm.Time, sat); index < 0 {
			continue
		}
		pr1 = pr1*0.02 + float64(amb)*PRUNIT_GPS
		rtcm.ObsData.Data[index].P[0] = pr1

		if ppr1 != PPR_INVALID {
			cp1 = rtcm.AdjCP(sat, 0, float64(ppr1)*0.0005*freq[0]/CLIGHT)
			rtcm.ObsData.Data[index].L[0] = pr1*freq[0]/CLIGHT + cp1
		}
		rtcm.ObsData.Data[index].LLI[0] = uint8(rtcm.LossOfLock(sat, 0, lock1))
		rtcm.ObsData.Data[index].SNR[0] = SnRatio(cnr1 * 0.25)
		if code1 > 0 {
			rtcm.ObsData.Data[index].Code[0] = CODE_L1P
		} else {
			rtcm.ObsData.Data[index].Code[0] = CODE_L1C
		}

		if pr21 != PR21_INVALID {
			rtcm.ObsData.Data[index].P[1] = pr1 + float64(pr21)*0.02
		}
		if ppr2 != PPR_INVALID {
			cp2 = rtcm.AdjCP(sat, 1, float64(ppr2)*0.0005*freq[1]/CLIGHT)
			rtcm.ObsData.Data[index].L[1] = pr1*freq[1]/CLIGHT + cp2
		}
		rtcm.ObsData.Data[index].LLI[1] = uint8(rtcm.LossOfLock(sat, 1, lock2))
		rtcm.ObsData.Data[index].SNR[1] = SnRatio(cnr2 * 0.25)
		rtcm.ObsData.Data[index].Code[1] = L2codes[code2]
	}
	return retsync(sync, &rtcm.ObsFlag)
}

/* decode type 1009-1012 message header --------------------------------------*/
func (rtcm *Rtcm) decode_head1009(sync *int) int {
	var (
		tod                float64
		tstr               string
		i                  int = 24
		staid, nsat, ctype int
	)

	ctype = int(GetBitU(rtcm.Buff[:], i, 12))
	i += 12

	if i+49 <= rtcm.MsgLen*8 {
		staid = int(GetBitU(rtcm.Buff[:], i, 12))
		i += 12
		tod = float64(GetBitU(rtcm.Buff[:], i, 27)) * 0.001
		i += 27 /* sec in a day */
		*sync = int(GetBitU(rtcm.Buff[:], i, 1))
		i += 1
		nsat = int(GetBitU(rtcm.Buff[:], i, 5))
	} else {
		Trace(2, "rtcm3 %d length error: len=%d\n", ctype, rtcm.MsgLen)
		return -1
	}
	/* test station ID */
	if rtcm.test_staid(staid) == 0 {
		return -1
	}

	rtcm.AdjDay_Glot(tod)

	Time2Str(rtcm.Time, &tstr, 2)
	Trace(5, "decode_head1009: time=%s nsat=%d sync=%d\n", tstr, nsat, *sync)

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" staid=%4d %s nsat=%2d sync=%d", staid, tstr, nsat, *sync)
	}
	return nsat
}

/* decode type 1009: L1-only glonass rtk observables -------------------------*/
func (rtcm *Rtcm) decode_type1009() int {
	var sync int
	if rtcm.decode_head1009(&sync) < 0 {
		return -1
	}
	return retsync(sync, &rtcm.ObsFlag)
}

/* decode type 1010: extended L1-only glonass rtk observables ----------------*/
func (rtcm *Rtcm) decode_type1010() int {
	var (
		pr1, cnr1, tt, cp1, freq1            float64
		i                                    int = 24 + 61
		j, index, nsat, sync, prn, sat, code int
		fcn, ppr1, lock1, amb                int
		sys                                  int = SYS_GLO
	)

	if nsat = rtcm.decode_head1009(&sync); nsat < 0 {
		return -1
	}

	index = 0
	for j = 0; j < nsat && rtcm.ObsData.N() < MAXOBS+1 && i+79 <= rtcm.MsgLen*8; j++ {
		prn = int(GetBitU(rtcm.Buff[:], i, 6))
		i += 6
		code = int(GetBitU(rtcm.Buff[:], i, 1))
		i += 1
		fcn = int(GetBitU(rtcm.Buff[:], i, 5))
		i += 5 /* fcn+7 */
		pr1 = float64(GetBitU(rtcm.Buff[:], i, 25))
		i += 25
		ppr1 = int(GetBits(rtcm.Buff[:], i, 20))
		i += 20
		lock1 = int(GetBitU(rtcm.Buff[:], i, 7))
		i += 7
		amb = int(GetBitU(rtcm.Buff[:], i, 7))
		i += 7
		cnr1 = float64(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
		if sat = SatNo(sys, prn); sat == 0 {
			Trace(2, "rtcm3 1010 satellite number error: prn=%d\n", prn)
			continue
		}
		if rtcm.NavData.Glo_fcn[prn-1] == 0 {
			rtcm.NavData.Glo_fcn[prn-1] = fcn - 7 + 8 /* fcn+8 */
		}
		if rtcm.ObsFlag > 0 {
			rtcm.ObsData.Data, rtcm.ObsFlag = nil, 0
		} else if len(rtcm.ObsData.Data) > 0 {
			tt = TimeDiff(rtcm.ObsData.Data[0].Time, rtcm.Time)
			if math.Abs(tt) > 1e-9 {
				rtcm.ObsData.Data = nil
			}
		}
		if index = rtcm.ObsData.ObsIndex(rtcm.Time, sat); index < 0 {
			continue
		}
		pr1 = pr1*0.02 + float64(amb)*PRUNIT_GLO
		rtcm.ObsData.Data[index].P[0] = pr1

		if ppr1 != PPR_INVALID {
			freq1 = Code2Freq(SYS_GLO, CODE_L1C, fcn-7)
			cp1 = rtcm.AdjCP(sat, 0, float64(ppr1)*0.0005*freq1/CLIGHT)
			rtcm.ObsData.Data[index].L[0] = pr1*freq1/CLIGHT + cp1
		}
		rtcm.ObsData.Data[index].LLI[0] = uint8(rtcm.LossOfLock(sat, 0, lock1))
		rtcm.ObsData.Data[index].SNR[0] = SnRatio(cnr1 * 0.25)

		rtcm.ObsData.Data[index].Code[0] = CODE_L1C
		if code > 0 {
			rtcm.ObsData.Data[index].Code[0] = CODE_L1P
		}
	}
	return retsync(sync, &rtcm.ObsFlag)
}

/* decode type 1011: L1&L2 GLONASS RTK observables ---------------------------*/
func (rtcm *Rtcm) decode_type1011() int {
	var sync int
	if rtcm.decode_head1009(&sync) < 0 {
		return -1
	}
	return retsync(sync, &rtcm.ObsFlag)
}

/* decode type 1012: extended L1&L2 GLONASS RTK observables ------------------*/
func (rtcm *Rtcm) decode_type1012() int {
	var (
		pr1, cnr1, cnr2, tt, cp1            float64
		cp2, freq1, freq2                   float64
		i                                   int = 24 + 61
		j, index, nsat, sync, prn, sat, fcn int
		code1, code2, pr21, ppr1, ppr2       int
		lock1, lock2, amb                    int
	)
	sys := SYS_GLO

	if nsat = rtcm.decode_head1009(&sync); nsat < 0 {
		return -1
	}

	for j = 0; j < nsat && rtcm.ObsData.N() < MAXOBS+1 && i+130 <= rtcm.MsgLen*8; j++ {
		prn = int(GetBitU(rtcm.Buff[:], i, 6))
		i += 6
		code1 = int(GetBitU(rtcm.Buff[:], i, 1))
		i += 1
		fcn = int(GetBitU(rtcm.Buff[:], i, 5))
		i += 5 /* fcn+7 */
		pr1 = float64(GetBitU(rtcm.Buff[:], i, 25))
		i += 25
		ppr1 = int(GetBits(rtcm.Buff[:], i, 20))
		i += 20
		lock1 = int(GetBitU(rtcm.Buff[:], i, 7))
		i += 7
		amb = int(GetBitU(rtcm.Buff[:], i, 7))
		i += 7
		cnr1 = float64(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
		code2 = int(GetBitU(rtcm.Buff[:], i, 2))
		i += 2
		pr21 = int(GetBits(rtcm.Buff[:], i, 14))
		i += 14
		ppr2 = int(GetBits(rtcm.Buff[:], i, 20))
		i += 20
		lock2 = int(GetBitU(rtcm.Buff[:], i, 7))
		i += 7
		cnr2 = float64(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
		if sat = SatNo(sys, prn); sat == 0 {
			Trace(2, "rtcm3 1012 satellite number error: sys=%d prn=%d\n", sys, prn)
			continue
		}
		if rtcm.NavData.Glo_fcn[prn-1] == 0 {
			rtcm.NavData.Glo_fcn[prn-1] = fcn - 7 + 8 /* fcn+8 */
		}
		if rtcm.ObsFlag > 0 {
			rtcm.ObsData.Data, rtcm.ObsFlag = nil, 0
		} else if len(rtcm.ObsData.Data) > 0 {
			tt = TimeDiff(rtcm.ObsData.Data[0].Time, rtcm.Time)
			if math.Abs(tt) > 1e-9 {
				rtcm.ObsData.Data = nil
			}
		}
		if index = rtcm.ObsData.ObsIndex(rtcm.Time, sat); index < 0 {
			continue
		}
		pr1 = pr1*0.02 + float64(amb)*PRUNIT_GLO
		rtcm.ObsData.Data[index].P[0] = pr1

		if ppr1 != PPR_INVALID {
			freq1 = Code2Freq(SYS_GLO, CODE_L1C, fcn-7)
			cp1 = rtcm.AdjCP(sat, 0, float64(ppr1)*0.0005*freq1/CLIGHT)
			rtcm.ObsData.Data[index].L[0] = pr1*freq1/CLIGHT + cp1
		}
		rtcm.ObsData.Data[index].LLI[0] = uint8(rtcm.LossOfLock(sat, 0, lock1))
		rtcm.ObsData.Data[index].SNR[0] = SnRatio(cnr1 * 0.25)
		rtcm.ObsData.Data[index].Code[0] = CODE_L1C
		if code1 > 0 {
			rtcm.ObsData.Data[index].Code[0] = CODE_L1P
		}

		if pr21 != PR21_INVALID {
			rtcm.ObsData.Data[index].P[1] = pr1 + float64(pr21)*0.02
		}
		if ppr2 != PPR_INVALID {
			freq2 = Code2Freq(SYS_GLO, CODE_L2C, fcn-7)
			cp2 = rtcm.AdjCP(sat, 1, float64(ppr2)*0.0005*freq2/CLIGHT)
			rtcm.ObsData.Data[index].L[1] = pr1*freq2/CLIGHT + cp2
		}
		rtcm.ObsData.Data[index].LLI[1] = uint8(rtcm.LossOfLock(sat, 1, lock2))
		rtcm.ObsData.Data[index].SNR[1] = SnRatio(cnr2 * 0.25)
		rtcm.ObsData.Data[index].Code[1] = CODE_L2C
		if code2 > 0 {
			rtcm.ObsData.Data[index].Code[1] = CODE_L2P
		}
	}
	return retsync(sync, &rtcm.ObsFlag)
}
