package gnssgo

import "fmt"

/* decode type 1005: stationary RTK reference station ARP --------------------*/
func (rtcm *Rtcm) decode_type1005() int {
	var (
		rr, re, pos    [3]float64
		i              int = 24 + 12
		j, staid, itrf int
	)

	if i+140 == rtcm.MsgLen*8 {
		staid = int(GetBitU(rtcm.Buff[:], i, 12))
		i += 12
		itrf = int(GetBitU(rtcm.Buff[:], i, 6))
		i += 6 + 4
		rr[0] = getbits_38(rtcm.Buff[:], i)
		i += 38 + 2
		rr[1] = getbits_38(rtcm.Buff[:], i)
		i += 38 + 2
		rr[2] = getbits_38(rtcm.Buff[:], i)
	} else {
		Trace(2, "rtcm3 1005 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	if rtcm.OutType > 0 {
		for j = 0; j < 3; j++ {
			re[j] = rr[j] * 0.0001
		}
		Ecef2Pos(re[:], pos[:])
		rtcm.MsgType += fmt.Sprintf(" staid=%4d pos=%.8f %.8f %.3f", staid, pos[0]*R2D, pos[1]*R2D, pos[2])
	}
	/* test station id */
	if rtcm.test_staid(staid) == 0 {
		return -1
	}

	rtcm.StaPara.Name = fmt.Sprintf("%04d", staid)
	rtcm.StaPara.DelType = 0 /* xyz */
	for j = 0; j < 3; j++ {
		rtcm.StaPara.Pos[j] = rr[j] * 0.0001
		rtcm.StaPara.Del[j] = 0.0
	}
	rtcm.StaPara.Hgt = 0.0
	rtcm.StaPara.Itrf = itrf
	return 5
}

/* decode type 1006: stationary RTK reference station ARP with height --------*/
func (rtcm *Rtcm) decode_type1006() int {
	var (
		rr, re, pos    [3]float64
		anth           float64
		i              int = 24 + 12
		j, staid, itrf int
	)

	if i+156 <= rtcm.MsgLen*8 {
		staid = int(GetBitU(rtcm.Buff[:], i, 12))
		i += 12
		itrf = int(GetBitU(rtcm.Buff[:], i, 6))
		i += 6 + 4
		rr[0] = float64(getbits_38(rtcm.Buff[:], i))
		i += 38 + 2
		rr[1] = float64(getbits_38(rtcm.Buff[:], i))
		i += 38 + 2
		rr[2] = float64(getbits_38(rtcm.Buff[:], i))
		i += 38
		anth = float64(GetBitU(rtcm.Buff[:], i, 16))
	} else {
		Trace(2, "rtcm3 1006 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	if rtcm.OutType > 0 {
		for j = 0; j < 3; j++ {
			re[j] = rr[j] * 0.0001
		}
		Ecef2Pos(re[:], pos[:])
		rtcm.MsgType += fmt.Sprintf(" staid=%4d pos=%.8f %.8f %.3f anth=%.3f", staid, pos[0]*R2D,
			pos[1]*R2D, pos[2], anth*0.0001)
	}
	/* test station id */
	if rtcm.test_staid(staid) == 0 {
		return -1
	}

	rtcm.StaPara.Name = fmt.Sprintf("%04d", staid)
	rtcm.StaPara.DelType = 1 /* xyz */
	for j = 0; j < 3; j++ {
		rtcm.StaPara.Pos[j] = rr[j] * 0.0001
		rtcm.StaPara.Del[j] = 0.0
	}
	rtcm.StaPara.Hgt = anth * 0.0001
	rtcm.StaPara.Itrf = itrf
	return 5
}

/* decode type 1007: antenna descriptor --------------------------------------*/
func (rtcm *Rtcm) decode_type1007() int {
	var (
		des                [32]byte
		i                  int = 24 + 12
		j, staid, n, setup int
	)

	n = int(GetBitU(rtcm.Buff[:], i+12, 8))

	if i+28+8*n <= rtcm.MsgLen*8 {
		staid = int(GetBitU(rtcm.Buff[:], i, 12))
		i += 12 + 8
		for j = 0; j < n && j < 31; j++ {
			des[j] = byte(GetBitU(rtcm.Buff[:], i, 8))
			i += 8
		}
		setup = int(GetBitU(rtcm.Buff[:], i, 8))
	} else {
		Trace(2, "rtcm3 1007 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" staid=%4d", staid)
	}
	/* test station ID */
	if rtcm.test_staid(staid) == 0 {
		return -1
	}

	rtcm.StaPara.Name = fmt.Sprintf("%04d", staid)
	rtcm.StaPara.AntDes = string(des[:n])
	rtcm.StaPara.AntSetup = setup
	rtcm.StaPara.AntSno = ""
	return 5
}

/* decode type 1008: antenna descriptor & serial number ----------------------*/
func (rtcm *Rtcm) decode_type1008() int {
	var (
		des, sno              [32]byte
		i                     int = 24 + 12
		j, staid, n, m, setup int
	)

	n = int(GetBitU(rtcm.Buff[:], i+12, 8))
	m = int(GetBitU(rtcm.Buff[:], i+28+8*n, 8))

	if i+36+8*(n+m) <= rtcm.MsgLen*8 {
		staid = int(GetBitU(rtcm.Buff[:], i, 12))
		i += 12 + 8
		for j = 0; j < n && j < 31; j++ {
			des[j] = byte(GetBitU(rtcm.Buff[:], i, 8))
			i += 8
		}
		setup = int(GetBitU(rtcm.Buff[:], i, 8))
		i += 8 + 8
		for j = 0; j < m && j < 31; j++ {
			sno[j] = byte(GetBitU(rtcm.Buff[:], i, 8))
			i += 8
		}
	} else {
		Trace(2, "rtcm3 1008 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" staid=%4d", staid)
	}
	/* test station ID */
	if rtcm.test_staid(staid) == 0 {
		return -1
	}

	rtcm.StaPara.Name = fmt.Sprintf("%04d", staid)
	rtcm.StaPara.AntDes = string(des[:n])
	rtcm.StaPara.AntSetup = setup
	rtcm.StaPara.AntSno = string(sno[:m])
	return 5
}

/* decode type 1013: system parameters, not carried downstream ---------------*/
func (rtcm *Rtcm) decode_type1013() int {
	return 0
}

/* decode type 1029: unicode text string --------------------------------------*/
func (rtcm *Rtcm) decode_type1029() int {
	var (
		msg                              [128]rune
		i                                int = 24 + 12
		j, staid, mjd, tod, nchar, cunit int
	)

	if i+60 <= rtcm.MsgLen*8 {
		staid = int(GetBitU(rtcm.Buff[:], i, 12))
		i += 12
		mjd = int(GetBitU(rtcm.Buff[:], i, 16))
		i += 16
		tod = int(GetBitU(rtcm.Buff[:], i, 17))
		i += 17
		nchar = int(GetBitU(rtcm.Buff[:], i, 7))
		i += 7
		cunit = int(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
	} else {
		Trace(2, "rtcm3 1029 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	if i+nchar*8 > rtcm.MsgLen*8 {
		Trace(2, "rtcm3 1029 length error: len=%d nchar=%d%d%d%d\n", rtcm.MsgLen, nchar, mjd, tod, cunit)
		return -1
	}
	for j = 0; j < nchar && j < 126; j++ {
		msg[j] = rune(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
	}
	rtcm.Msg = string(msg[:])

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" staid=%4d text=%s", staid, rtcm.Msg)
	}
	return 0
}

/* decode type 1033: receiver and antenna descriptor -------------------------*/
func (rtcm *Rtcm) decode_type1033() int {
	var (
		des, sno, rec, ver, rsn           [32]byte
		i                                 int = 24 + 12
		j, staid, n, m, n1, n2, n3, setup int
	)

	n = int(GetBitU(rtcm.Buff[:], i+12, 8))
	m = int(GetBitU(rtcm.Buff[:], i+28+8*n, 8))
	n1 = int(GetBitU(rtcm.Buff[:], i+36+8*(n+m), 8))
	n2 = int(GetBitU(rtcm.Buff[:], i+44+8*(n+m+n1), 8))
	n3 = int(GetBitU(rtcm.Buff[:], i+52+8*(n+m+n1+n2), 8))

	if i+60+8*(n+m+n1+n2+n3) <= rtcm.MsgLen*8 {
		staid = int(GetBitU(rtcm.Buff[:], i, 12))
		i += 12 + 8
		for j = 0; j < n && j < 31; j++ {
			des[j] = byte(GetBitU(rtcm.Buff[:], i, 8))
			i += 8
		}
		setup = int(GetBitU(rtcm.Buff[:], i, 8))
		i += 8 + 8
		for j = 0; j < m && j < 31; j++ {
			sno[j] = byte(GetBitU(rtcm.Buff[:], i, 8))
			i += 8
		}
		i += 8
		for j = 0; j < n1 && j < 31; j++ {
			rec[j] = byte(GetBitU(rtcm.Buff[:], i, 8))
			i += 8
		}
		i += 8
		for j = 0; j < n2 && j < 31; j++ {
			ver[j] = byte(GetBitU(rtcm.Buff[:], i, 8))
			i += 8
		}
		i += 8
		for j = 0; j < n3 && j < 31; j++ {
			rsn[j] = byte(GetBitU(rtcm.Buff[:], i, 8))
			i += 8
		}
	} else {
		Trace(2, "rtcm3 1033 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" staid=%4d", staid)
	}
	/* test station id */
	if rtcm.test_staid(staid) == 0 {
		return -1
	}

	rtcm.StaPara.Name = fmt.Sprintf("%04d", staid)
	rtcm.StaPara.AntDes = string(des[:n])
	rtcm.StaPara.AntSetup = setup
	rtcm.StaPara.AntSno = string(sno[:m])
	rtcm.StaPara.Type = string(rec[:n1])
	rtcm.StaPara.RecVer = string(ver[:n2])
	rtcm.StaPara.RecSN = string(rsn[:n3])

	Trace(5, "rtcm3 1033: ant=%s:%s rec=%s:%s:%s\n", string(des[:]), string(sno[:]), string(rec[:]), string(ver[:]), string(rsn[:]))
	return 5
}

/* decode type 1230: GLONASS L1 and L2 code-phase biases ---------------------*/
func (rtcm *Rtcm) decode_type1230() int {
	var j, staid, align, mask, bias int
	i := 24 + 12
	if i+20 >= rtcm.MsgLen*8 {
		Trace(2, "rtcm3 1230: length error len=%d\n", rtcm.MsgLen)
		return -1
	}
	staid = int(GetBitU(rtcm.Buff[:], i, 12))
	i += 12
	align = int(GetBitU(rtcm.Buff[:], i, 1))
	i += 1 + 3
	mask = int(GetBitU(rtcm.Buff[:], i, 4))
	i += 4

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" staid=%4d align=%d mask=0x%X", staid, align, mask)
	}
	/* test station ID */
	if rtcm.test_staid(staid) == 0 {
		return -1
	}

	rtcm.StaPara.Glo_cp_align = align
	for j = 0; j < 4; j++ {
		rtcm.StaPara.Glo_cp_bias[j] = 0.0
	}
	for j = 0; j < 4 && i+16 <= rtcm.MsgLen*8; j++ {
		if mask&(1<<(3-j)) == 0 {
			continue
		}
		bias = int(GetBits(rtcm.Buff[:], i, 16))
		i += 16
		if bias != -32768 {
			rtcm.StaPara.Glo_cp_bias[j] = float64(bias) * 0.02
		}
	}
	return 5
}
