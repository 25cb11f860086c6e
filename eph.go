package gnssgo

import (
	"fmt"
	"math"
	"strings"
)

/* decode type 1019: GPS ephemerides -----------------------------------------*/
func (rtcm *Rtcm) decode_type1019() int {
	var (
		eph            Eph
		toc, sqrtA, tt float64
		i              int = 24 + 12
		prn, sat, week int
	)
	sys := SYS_GPS
	if i+476 <= rtcm.MsgLen*8 {
		prn = int(GetBitU(rtcm.Buff[:], i, 6))
		i += 6
		week = int(GetBitU(rtcm.Buff[:], i, 10))
		i += 10
		eph.Sva = int(GetBitU(rtcm.Buff[:], i, 4))
		i += 4
		eph.Code = int(GetBitU(rtcm.Buff[:], i, 2))
		i += 2
		eph.Idot = float64(GetBits(rtcm.Buff[:], i, 14)) * P2_43 * SC2RAD
		i += 14
		eph.Iode = int(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
		toc = float64(GetBitU(rtcm.Buff[:], i, 16)) * 16.0
		i += 16
		eph.F2 = float64(GetBits(rtcm.Buff[:], i, 8)) * P2_55
		i += 8
		eph.F1 = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_43
		i += 16
		eph.F0 = float64(GetBits(rtcm.Buff[:], i, 22)) * P2_31
		i += 22
		eph.Iodc = int(GetBitU(rtcm.Buff[:], i, 10))
		i += 10
		eph.Crs = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_5
		i += 16
		eph.Deln = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_43 * SC2RAD
		i += 16
		eph.M0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
		i += 32
		eph.Cuc = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
		i += 16
		eph.E = float64(GetBitU(rtcm.Buff[:], i, 32)) * P2_33
		i += 32
		eph.Cus = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
		i += 16
		sqrtA = float64(GetBitU(rtcm.Buff[:], i, 32)) * P2_19
		i += 32
		eph.Toes = float64(GetBitU(rtcm.Buff[:], i, 16)) * 16.0
		i += 16
		eph.Cic = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
		i += 16
		eph.OMG0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
		i += 32
		eph.Cis = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
		i += 16
		eph.I0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
		i += 32
		eph.Crc = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_5
		i += 16
		eph.Omg = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
		i += 32
		eph.OMGd = float64(GetBits(rtcm.Buff[:], i, 24)) * P2_43 * SC2RAD
		i += 24
		eph.Tgd[0] = float64(GetBits(rtcm.Buff[:], i, 8)) * P2_31
		i += 8
		eph.Svh = int(GetBitU(rtcm.Buff[:], i, 6))
		i += 6
		eph.Flag = int(GetBitU(rtcm.Buff[:], i, 1))
		i += 1
		eph.Fit = 4.0 /* 0:4hr,1:>4hr */
		if GetBitU(rtcm.Buff[:], i, 1) > 0 {
			eph.Fit = 0.0
		}
	} else {
		Trace(2, "rtcm3 1019 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	if prn >= 40 {
		sys = SYS_SBS
		prn += 80
	}
	Trace(4, "decode_type1019: prn=%d iode=%d toe=%.0f\n", prn, eph.Iode, eph.Toes)

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" prn=%2d iode=%3d iodc=%3d week=%d toe=%6.0f toc=%6.0f svh=%02X",
			prn, eph.Iode, eph.Iodc, week, eph.Toes, toc, eph.Svh)
	}
	if sat = SatNo(sys, prn); sat == 0 {
		Trace(2, "rtcm3 1019 satellite number error: prn=%d\n", prn)
		return -1
	}
	eph.Sat = sat
	eph.Week = AdjGpsWeek(week)
	if rtcm.Time.Time == 0 {
		rtcm.Time = Utc2GpsT(rtcm.Clk.Now())
	}
	tt = TimeDiff(GpsT2Time(eph.Week, eph.Toes), rtcm.Time)
	if tt < -302400.0 {
		eph.Week++
	} else if tt >= 302400.0 {
		eph.Week--
	}
	eph.Toe = GpsT2Time(eph.Week, eph.Toes)
	eph.Toc = GpsT2Time(eph.Week, toc)
	eph.Ttr = rtcm.Time
	eph.A = sqrtA * sqrtA
	if !strings.Contains(rtcm.Opt, "-EPHALL") {
		if eph.Iode == rtcm.NavData.Ephs[sat-1].Iode {
			return 0 /* unchanged */
		}
	}
	rtcm.NavData.Ephs[sat-1] = eph
	rtcm.EphSat = sat
	rtcm.EphSet = 0
	return 2
}

/* decode type 1020: GLONASS ephemerides -------------------------------------*/
func (rtcm *Rtcm) decode_type1020() int {
	var (
		geph                                 GEph
		tk_h, tk_m, tk_s, toe, tow, tod, tof float64
		i                                    int = 24 + 12
		prn, sat, week, tb, bn               int
	)
	sys := SYS_GLO

	if i+348 <= rtcm.MsgLen*8 {
		prn = int(GetBitU(rtcm.Buff[:], i, 6))
		i += 6
		geph.Frq = int(GetBitU(rtcm.Buff[:], i, 5)) - 7
		i += 5 + 2 + 2
		tk_h = float64(GetBitU(rtcm.Buff[:], i, 5))
		i += 5
		tk_m = float64(GetBitU(rtcm.Buff[:], i, 6))
		i += 6
		tk_s = float64(GetBitU(rtcm.Buff[:], i, 1)) * 30.0
		i += 1
		bn = int(GetBitU(rtcm.Buff[:], i, 1))
		i += 1 + 1
		tb = int(GetBitU(rtcm.Buff[:], i, 7))
		i += 7
		geph.Vel[0] = getbitg(rtcm.Buff[:], i, 24) * P2_20 * 1e3
		i += 24
		geph.Pos[0] = getbitg(rtcm.Buff[:], i, 27) * P2_11 * 1e3
		i += 27
		geph.Acc[0] = getbitg(rtcm.Buff[:], i, 5) * P2_30 * 1e3
		i += 5
		geph.Vel[1] = getbitg(rtcm.Buff[:], i, 24) * P2_20 * 1e3
		i += 24
		geph.Pos[1] = getbitg(rtcm.Buff[:], i, 27) * P2_11 * 1e3
		i += 27
		geph.Acc[1] = getbitg(rtcm.Buff[:], i, 5) * P2_30 * 1e3
		i += 5
		geph.Vel[2] = getbitg(rtcm.Buff[:], i, 24) * P2_20 * 1e3
		i += 24
		geph.Pos[2] = getbitg(rtcm.Buff[:], i, 27) * P2_11 * 1e3
		i += 27
		geph.Acc[2] = getbitg(rtcm.Buff[:], i, 5) * P2_30 * 1e3
		i += 5 + 1
		geph.Gamn = getbitg(rtcm.Buff[:], i, 11) * P2_40
		i += 11 + 3
		geph.Taun = getbitg(rtcm.Buff[:], i, 22) * P2_30
		i += 22
		geph.DTaun = getbitg(rtcm.Buff[:], i, 5) * P2_30
		i += 5
		geph.Age = int(GetBitU(rtcm.Buff[:], i, 5))
	} else {
		Trace(2, "rtcm3 1020 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	if sat = SatNo(sys, prn); sat == 0 {
		Trace(2, "rtcm3 1020 satellite number error: prn=%d\n", prn)
		return -1
	}
	Trace(4, "decode_type1020: prn=%d tk=%02.0f:%02.0f:%02.0f\n", prn, tk_h, tk_m, tk_s)

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" prn=%2d tk=%02.0f:%02.0f:%02.0f frq=%2d bn=%d tb=%d",
			prn, tk_h, tk_m, tk_s, geph.Frq, bn, tb)
	}
	geph.Sat = sat
	geph.Svh = bn
	geph.Iode = tb & 0x7F
	if rtcm.Time.Time == 0 {
		rtcm.Time = Utc2GpsT(rtcm.Clk.Now())
	}
	tow = Time2GpsT(GpsT2Utc(rtcm.Time), &week)
	tod = math.Mod(tow, 86400.0)
	tow -= tod
	tof = tk_h*3600.0 + tk_m*60.0 + tk_s - 10800.0 /* lt.utc */
	if tof < tod-43200.0 {
		tof += 86400.0
	} else if tof > tod+43200.0 {
		tof -= 86400.0
	}
	geph.Tof = Utc2GpsT(GpsT2Time(week, tow+tof))
	toe = float64(tb)*900.0 - 10800.0 /* lt.utc */
	if toe < tod-43200.0 {
		toe += 86400.0
	} else if toe > tod+43200.0 {
		toe -= 86400.0
	}
	geph.Toe = Utc2GpsT(GpsT2Time(week, tow+toe)) /* utc.gpst */

	if !strings.Contains(rtcm.Opt, "-EPHALL") {
		if math.Abs(TimeDiff(geph.Toe, rtcm.NavData.Geph[prn-1].Toe)) < 1.0 &&
			geph.Svh == rtcm.NavData.Geph[prn-1].Svh {
			return 0 /* unchanged */
		}
	}
	rtcm.NavData.Geph[prn-1] = geph
	rtcm.EphSat = sat
	rtcm.EphSet = 0
	return 2
}

/* decode type 1042/63: Beidou ephemerides -----------------------------------*/
func (rtcm *Rtcm) decode_type1042() int {
	var (
		eph            Eph
		toc, sqrtA, tt float64
		i              int = 24 + 12
		prn, sat, week int
	)
	sys := SYS_CMP

	if i+499 <= rtcm.MsgLen*8 {
		prn = int(GetBitU(rtcm.Buff[:], i, 6))
		i += 6
		week = int(GetBitU(rtcm.Buff[:], i, 13))
		i += 13
		eph.Sva = int(GetBitU(rtcm.Buff[:], i, 4))
		i += 4
		eph.Idot = float64(GetBits(rtcm.Buff[:], i, 14)) * P2_43 * SC2RAD
		i += 14
		eph.Iode = int(GetBitU(rtcm.Buff[:], i, 5))
		i += 5 /* AODE */
		toc = float64(GetBitU(rtcm.Buff[:], i, 17)) * 8.0
		i += 17
		eph.F2 = float64(GetBits(rtcm.Buff[:], i, 11)) * P2_66
		i += 11
		eph.F1 = float64(GetBits(rtcm.Buff[:], i, 22)) * P2_50
		i += 22
		eph.F0 = float64(GetBits(rtcm.Buff[:], i, 24)) * P2_33
		i += 24
		eph.Iodc = int(GetBitU(rtcm.Buff[:], i, 5))
		i += 5 /* AODC */
		eph.Crs = float64(GetBits(rtcm.Buff[:], i, 18)) * P2_6
		i += 18
		eph.Deln = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_43 * SC2RAD
		i += 16
		eph.M0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
		i += 32
		eph.Cuc = float64(GetBits(rtcm.Buff[:], i, 18)) * P2_31
		i += 18
		eph.E = float64(GetBitU(rtcm.Buff[:], i, 32)) * P2_33
		i += 32
		eph.Cus = float64(GetBits(rtcm.Buff[:], i, 18)) * P2_31
		i += 18
		sqrtA = float64(GetBitU(rtcm.Buff[:], i, 32)) * P2_19
		i += 32
		eph.Toes = float64(GetBitU(rtcm.Buff[:], i, 17)) * 8.0
		i += 17
		eph.Cic = float64(GetBits(rtcm.Buff[:], i, 18)) * P2_31
		i += 18
		eph.OMG0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
		i += 32
		eph.Cis = float64(GetBits(rtcm.Buff[:], i, 18)) * P2_31
		i += 18
		eph.I0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
		i += 32
		eph.Crc = float64(GetBits(rtcm.Buff[:], i, 18)) * P2_6
		i += 18
		eph.Omg = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
		i += 32
		eph.OMGd = float64(GetBits(rtcm.Buff[:], i, 24)) * P2_43 * SC2RAD
		i += 24
		eph.Tgd[0] = float64(GetBits(rtcm.Buff[:], i, 10)) * (1e-10)
		i += 10
		eph.Tgd[1] = float64(GetBits(rtcm.Buff[:], i, 10)) * (1e-10)
		i += 10
		eph.Svh = int(GetBitU(rtcm.Buff[:], i, 1))
		i += 1
	} else {
		Trace(2, "rtcm3 1042 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	Trace(4, "decode_type1042: prn=%d iode=%d toe=%.0f\n", prn, eph.Iode, eph.Toes)

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" prn=%2d iode=%3d iodc=%3d week=%d toe=%6.0f toc=%6.0f svh=%02X",
			prn, eph.Iode, eph.Iodc, week, eph.Toes, toc, eph.Svh)
	}
	if sat = SatNo(sys, prn); sat == 0 {
		Trace(2, "rtcm3 1042 satellite number error: prn=%d\n", prn)
		return -1
	}
	eph.Sat = sat
	eph.Week = AdjBDTWeek(week)
	if rtcm.Time.Time == 0 {
		rtcm.Time = Utc2GpsT(rtcm.Clk.Now())
	}
	tt = TimeDiff(BDT2GpsT(BDT2Time(eph.Week, eph.Toes)), rtcm.Time)
	if tt < -302400.0 {
		eph.Week++
	} else if tt >= 302400.0 {
		eph.Week--
	}
	eph.Toe = BDT2GpsT(BDT2Time(eph.Week, eph.Toes)) /* bdt . gpst */
	eph.Toc = BDT2GpsT(BDT2Time(eph.Week, toc))       /* bdt . gpst */
	eph.Ttr = rtcm.Time
	eph.A = sqrtA * sqrtA
	if !strings.Contains(rtcm.Opt, "-EPHALL") {
		if TimeDiff(eph.Toe, rtcm.NavData.Ephs[sat-1].Toe) == 0.0 &&
			eph.Iode == rtcm.NavData.Ephs[sat-1].Iode &&
			eph.Iodc == rtcm.NavData.Ephs[sat-1].Iodc {
			return 0 /* unchanged */
		}
	}
	rtcm.NavData.Ephs[sat-1] = eph
	rtcm.EphSet = 0
	rtcm.EphSat = sat
	return 2
}

/* decode type 1044: QZSS ephemerides -----------------------------------------*/
func (rtcm *Rtcm) decode_type1044() int {
	var (
		eph            Eph
		toc, sqrtA, tt float64
		i              int = 24 + 12
		prn, sat, week int
	)
	sys := SYS_QZS

	if i+473 <= rtcm.MsgLen*8 {
		prn = int(GetBitU(rtcm.Buff[:], i, 4)) + 192
		i += 4
		toc = float64(GetBitU(rtcm.Buff[:], i, 16)) * 16.0
		i += 16
		eph.F2 = float64(GetBits(rtcm.Buff[:], i, 8)) * P2_55
		i += 8
		eph.F1 = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_43
		i += 16
		eph.F0 = float64(GetBits(rtcm.Buff[:], i, 22)) * P2_31
		i += 22
		eph.Iode = int(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
		eph.Crs = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_5
		i += 16
		eph.Deln = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_43 * SC2RAD
		i += 16
		eph.M0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
		i += 32
		eph.Cuc = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
		i += 16
		eph.E = float64(GetBitU(rtcm.Buff[:], i, 32)) * P2_33
		i += 32
		eph.Cus = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
		i += 16
		sqrtA = float64(GetBitU(rtcm.Buff[:], i, 32)) * P2_19
		i += 32
		eph.Toes = float64(GetBitU(rtcm.Buff[:], i, 16)) * 16.0
		i += 16
		eph.Cic = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
		i += 16
		eph.OMG0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
		i += 32
		eph.Cis = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
		i += 16
		eph.I0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
		i += 32
		eph.Crc = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_5
		i += 16
		eph.Omg = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
		i += 32
		eph.OMGd = float64(GetBits(rtcm.Buff[:], i, 24)) * P2_43 * SC2RAD
		i += 24
		eph.Idot = float64(GetBits(rtcm.Buff[:], i, 14)) * P2_43 * SC2RAD
		i += 14
		eph.Code = int(GetBitU(rtcm.Buff[:], i, 2))
		i += 2
		week = int(GetBitU(rtcm.Buff[:], i, 10))
		i += 10
		eph.Sva = int(GetBitU(rtcm.Buff[:], i, 4))
		i += 4
		eph.Svh = int(GetBitU(rtcm.Buff[:], i, 6))
		i += 6
		eph.Tgd[0] = float64(GetBits(rtcm.Buff[:], i, 8)) * P2_31
		i += 8
		eph.Iodc = int(GetBitU(rtcm.Buff[:], i, 10))
		i += 10
		eph.Fit = 2.0 /* 0:2hr,1:>2hr */
		if GetBitU(rtcm.Buff[:], i, 1) > 0 {
			eph.Fit = 0.0
		}
	} else {
		Trace(2, "rtcm3 1044 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	Trace(4, "decode_type1044: prn=%d iode=%d toe=%.0f\n", prn, eph.Iode, eph.Toes)

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" prn=%3d iode=%3d iodc=%3d week=%d toe=%6.0f toc=%6.0f svh=%02X",
			prn, eph.Iode, eph.Iodc, week, eph.Toes, toc, eph.Svh)
	}
	if sat = SatNo(sys, prn); sat == 0 {
		Trace(2, "rtcm3 1044 satellite number error: prn=%d\n", prn)
		return -1
	}
	eph.Sat = sat
	eph.Week = AdjGpsWeek(week)
	if rtcm.Time.Time == 0 {
		rtcm.Time = Utc2GpsT(rtcm.Clk.Now())
	}
	tt = TimeDiff(GpsT2Time(eph.Week, eph.Toes), rtcm.Time)
	if tt < -302400.0 {
		eph.Week++
	} else if tt >= 302400.0 {
		eph.Week--
	}
	eph.Toe = GpsT2Time(eph.Week, eph.Toes)
	eph.Toc = GpsT2Time(eph.Week, toc)
	eph.Ttr = rtcm.Time
	eph.A = sqrtA * sqrtA
	eph.Flag = 1 /* fixed to 1 */
	if !strings.Contains(rtcm.Opt, "-EPHALL") {
		if eph.Iode == rtcm.NavData.Ephs[sat-1].Iode &&
			eph.Iodc == rtcm.NavData.Ephs[sat-1].Iodc {
			return 0 /* unchanged */
		}
	}
	rtcm.NavData.Ephs[sat-1] = eph
	rtcm.EphSat = sat
	rtcm.EphSet = 0
	return 2
}

/* decode type 1045: Galileo F/NAV satellite ephemerides ---------------------*/
func (rtcm *Rtcm) decode_type1045() int {
	var (
		eph                                  Eph
		toc, sqrtA, tt                       float64
		i                                    int = 24 + 12
		prn, sat, week, e5a_hs, e5a_dvs, rsv int
	)
	sys := SYS_GAL

	if strings.Contains(rtcm.Opt, "-GALINAV") {
		return 0
	}

	if i+484 <= rtcm.MsgLen*8 {
		prn = int(GetBitU(rtcm.Buff[:], i, 6))
		i += 6
		week = int(GetBitU(rtcm.Buff[:], i, 12))
		i += 12 /* gst-week */
		eph.Iode = int(GetBitU(rtcm.Buff[:], i, 10))
		i += 10
		eph.Sva = int(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
		eph.Idot = float64(GetBits(rtcm.Buff[:], i, 14)) * P2_43 * SC2RAD
		i += 14
		toc = float64(GetBitU(rtcm.Buff[:], i, 14)) * 60.0
		i += 14
		eph.F2 = float64(GetBits(rtcm.Buff[:], i, 6)) * P2_59
		i += 6
		eph.F1 = float64(GetBits(rtcm.Buff[:], i, 21)) * P2_46
		i += 21
		eph.F0 = float64(GetBits(rtcm.Buff[:], i, 31)) * P2_34
		i += 31
		eph.Crs = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_5
		i += 16
		eph.Deln = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_43 * SC2RAD
		i += 16
		eph.M0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
		i += 32
		eph.Cuc = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
		i += 16
		eph.E = float64(GetBitU(rtcm.Buff[:], i, 32)) * P2_33
		i += 32
		eph.Cus = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
		i += 16
		sqrtA = float64(GetBitU(rtcm.Buff[:], i, 32)) * P2_19
		i += 32
		eph.Toes = float64(GetBitU(rtcm.Buff[:], i, 14)) * 60.0
		i += 14
		eph.Cic = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
		i += 16
		eph.OMG0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
		i += 32
		eph.Cis = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
		i += 16
		eph.I0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
		i += 32
		eph.Crc = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_5
		i += 16
		eph.Omg = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
		i += 32
		eph.OMGd = float64(GetBits(rtcm.Buff[:], i, 24)) * P2_43 * SC2RAD
		i += 24
		eph.Tgd[0] = float64(GetBits(rtcm.Buff[:], i, 10)) * P2_32
		i += 10 /* E5a/E1 */
		e5a_hs = int(GetBitU(rtcm.Buff[:], i, 2))
		i += 2 /* OSHS */
		e5a_dvs = int(GetBitU(rtcm.Buff[:], i, 1))
		i += 1 /* OSDVS */
	} else {
		Trace(2, "rtcm3 1045 length error: len=%d,%d\n", rtcm.MsgLen, rsv)
		return -1
	}
	Trace(4, "decode_type1045: prn=%d iode=%d toe=%.0f\n", prn, eph.Iode, eph.Toes)

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" prn=%2d iode=%3d week=%d toe=%6.0f toc=%6.0f hs=%d dvs=%d",
			prn, eph.Iode, week, eph.Toes, toc, e5a_hs, e5a_dvs)
	}
	if sat = SatNo(sys, prn); sat == 0 {
		Trace(2, "rtcm3 1045 satellite number error: prn=%d\n", prn)
		return -1
	}
	if strings.Contains(rtcm.Opt, "-GALINAV") {
		return 0
	}
	eph.Sat = sat
	eph.Week = week + 1024 /* gal-week = gst-week + 1024 */
	if rtcm.Time.Time == 0 {
		rtcm.Time = Utc2GpsT(rtcm.Clk.Now())
	}
	tt = TimeDiff(GpsT2Time(eph.Week, eph.Toes), rtcm.Time)
	if tt < -302400.0 {
		eph.Week++
	} else if tt >= 302400.0 {
		eph.Week--
	}
	eph.Toe = GpsT2Time(eph.Week, eph.Toes)
	eph.Toc = GpsT2Time(eph.Week, toc)
	eph.Ttr = rtcm.Time
	eph.A = sqrtA * sqrtA
	eph.Svh = (e5a_hs << 4) + (e5a_dvs << 3)
	eph.Code = (1 << 1) + (1 << 8) /* data source = F/NAV+E5a */
	eph.Iodc = eph.Iode
	if !strings.Contains(rtcm.Opt, "-EPHALL") {
		if eph.Iode == rtcm.NavData.Ephs[sat-1+MAXSAT].Iode {
			return 0 /* unchanged */
		}
	}
	rtcm.NavData.Ephs[sat-1+MAXSAT] = eph
	rtcm.EphSat = sat
	rtcm.EphSet = 1 /* F/NAV */
	return 2
}

/* decode type 1046: Galileo I/NAV satellite ephemerides ---------------------*/
func (rtcm *Rtcm) decode_type1046() int {
	var (
		eph                    Eph
		toc, sqrtA, tt         float64
		i                      int = 24 + 12
		prn, sat, week, e5b_hs int
		e5b_dvs, e1_hs, e1_dvs int
	)
	sys := SYS_GAL

	if strings.Contains(rtcm.Opt, "-GALFNAV") {
		return 0
	}

	if i+492 <= rtcm.MsgLen*8 {
		prn = int(GetBitU(rtcm.Buff[:], i, 6))
		i += 6
		week = int(GetBitU(rtcm.Buff[:], i, 12))
		i += 12
		eph.Iode = int(GetBitU(rtcm.Buff[:], i, 10))
		i += 10
		eph.Sva = int(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
		eph.Idot = float64(GetBits(rtcm.Buff[:], i, 14)) * P2_43 * SC2RAD
		i += 14
		toc = float64(GetBitU(rtcm.Buff[:], i, 14)) * 60.0
		i += 14
		eph.F2 = float64(GetBits(rtcm.Buff[:], i, 6)) * P2_59
		i += 6
		eph.F1 = float64(GetBits(rtcm.Buff[:], i, 21)) * P2_46
		i += 21
		eph.F0 = float64(GetBits(rtcm.Buff[:], i, 31)) * P2_34
		i += 31
		eph.Crs = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_5
		i += 16
		eph.Deln = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_43 * SC2RAD
		i += 16
		eph.M0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
		i += 32
		eph.Cuc = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
		i += 16
		eph.E = float64(GetBitU(rtcm.Buff[:], i, 32)) * P2_33
		i += 32
		eph.Cus = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
		i += 16
		sqrtA = float64(GetBitU(rtcm.Buff[:], i, 32)) * P2_19
		i += 32
		eph.Toes = float64(GetBitU(rtcm.Buff[:], i, 14)) * 60.0
		i += 14
		eph.Cic = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
		i += 16
		eph.OMG0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
		i += 32
		eph.Cis = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
		i += 16
		eph.I0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
		i += 32
		eph.Crc = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_5
		i += 16
		eph.Omg = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
		i += 32
		eph.OMGd = float64(GetBits(rtcm.Buff[:], i, 24)) * P2_43 * SC2RAD
		i += 24
		eph.Tgd[0] = float64(GetBits(rtcm.Buff[:], i, 10)) * P2_32
		i += 10 /* E5a/E1 */
		eph.Tgd[1] = float64(GetBits(rtcm.Buff[:], i, 10)) * P2_32
		i += 10 /* E5b/E1 */
		e5b_hs = int(GetBitU(rtcm.Buff[:], i, 2))
		i += 2 /* E5b OSHS */
		e5b_dvs = int(GetBitU(rtcm.Buff[:], i, 1))
		i += 1 /* E5b OSDVS */
		e1_hs = int(GetBitU(rtcm.Buff[:], i, 2))
		i += 2 /* E1 OSHS */
		e1_dvs = int(GetBitU(rtcm.Buff[:], i, 1))
		i += 1 /* E1 OSDVS */
	} else {
		Trace(2, "rtcm3 1046 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	Trace(4, "decode_type1046: prn=%d iode=%d toe=%.0f\n", prn, eph.Iode, eph.Toes)

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" prn=%2d iode=%3d week=%d toe=%6.0f toc=%6.0f hs=%d %d dvs=%d %d",
			prn, eph.Iode, week, eph.Toes, toc, e5b_hs, e1_hs, e5b_dvs, e1_dvs)
	}
	if sat = SatNo(sys, prn); sat == 0 {
		Trace(2, "rtcm3 1046 satellite number error: prn=%d\n", prn)
		return -1
	}
	if strings.Contains(rtcm.Opt, "-GALFNAV") {
		return 0
	}
	eph.Sat = sat
	eph.Week = week + 1024 /* gal-week = gst-week + 1024 */
	if rtcm.Time.Time == 0 {
		rtcm.Time = Utc2GpsT(rtcm.Clk.Now())
	}
	tt = TimeDiff(GpsT2Time(eph.Week, eph.Toes), rtcm.Time)
	if tt < -302400.0 {
		eph.Week++
	} else if tt >= 302400.0 {
		eph.Week--
	}
	eph.Toe = GpsT2Time(eph.Week, eph.Toes)
	eph.Toc = GpsT2Time(eph.Week, toc)
	eph.Ttr = rtcm.Time
	eph.A = sqrtA * sqrtA
	eph.Svh = (e5b_hs << 7) + (e5b_dvs << 6) + (e1_hs << 1) + (e1_dvs << 0)
	eph.Code = (1 << 0) + (1 << 2) + (1 << 9) /* data source = I/NAV+E1+E5b */
	eph.Iodc = eph.Iode
	if !strings.Contains(rtcm.Opt, "-EPHALL") {
		if eph.Iode == rtcm.NavData.Ephs[sat-1].Iode {
			return 0 /* unchanged */
		}
	}
	rtcm.NavData.Ephs[sat-1] = eph
	rtcm.EphSat = sat
	rtcm.EphSet = 0 /* I/NAV */
	return 2
}
