package gnssgo

import "fmt"

/* SSR signal and tracking mode IDs -------------------------------------------*/
var (
	ssr_sig_gps [32]uint8 = [32]uint8{
		CODE_L1C, CODE_L1P, CODE_L1W, CODE_L1S, CODE_L1L, CODE_L2C, CODE_L2D, CODE_L2S,
		CODE_L2L, CODE_L2X, CODE_L2P, CODE_L2W, 0, 0, CODE_L5I, CODE_L5Q}
	ssr_sig_glo [32]uint8 = [32]uint8{
		CODE_L1C, CODE_L1P, CODE_L2C, CODE_L2P, CODE_L4A, CODE_L4B, CODE_L6A, CODE_L6B,
		CODE_L3I, CODE_L3Q}
	ssr_sig_gal [32]uint8 = [32]uint8{
		CODE_L1A, CODE_L1B, CODE_L1C, 0, 0, CODE_L5I, CODE_L5Q, 0,
		CODE_L7I, CODE_L7Q, 0, CODE_L8I, CODE_L8Q, 0, CODE_L6A, CODE_L6B,
		CODE_L6C}
	ssr_sig_qzs [32]uint8 = [32]uint8{
		CODE_L1C, CODE_L1S, CODE_L1L, CODE_L2S, CODE_L2L, 0, CODE_L5I, CODE_L5Q,
		0, CODE_L6S, CODE_L6L, 0, 0, 0, 0, 0,
		0, CODE_L6E}
	ssr_sig_cmp [32]uint8 = [32]uint8{
		CODE_L2I, CODE_L2Q, 0, CODE_L6I, CODE_L6Q, 0, CODE_L7I, CODE_L7Q,
		0, CODE_L1D, CODE_L1P, 0, CODE_L5D, CODE_L5P, 0, CODE_L1A,
		0, 0, CODE_L6A}
	ssr_sig_sbs [32]uint8 = [32]uint8{
		CODE_L1C, CODE_L5I, CODE_L5Q}

	/* SSR update intervals --------------------------------------------------*/
	ssrudint [16]float64 = [16]float64{
		1, 2, 5, 10, 15, 30, 60, 120, 240, 300, 600, 900, 1800, 3600, 7200, 10800}
)

/* per-system field widths and signal table for SSR messages. IRN is not
* carried, so the miss flag covers it along with any other unknown system. */
func selectsys(sys int) (int, int, int, int, []uint8, bool) {
	var (
		np, ni, nj, offp int
		sigs             []uint8
		miss             bool = false
	)
	switch sys {
	case SYS_GPS:
		np, ni, nj, offp = 6, 8, 0, 0
		sigs = ssr_sig_gps[:]
	case SYS_GLO:
		np, ni, nj, offp = 5, 8, 0, 0
		sigs = ssr_sig_glo[:]
	case SYS_GAL:
		np, ni, nj, offp = 6, 10, 0, 0
		sigs = ssr_sig_gal[:]
	case SYS_QZS:
		np, ni, nj, offp = 4, 8, 0, 192
		sigs = ssr_sig_qzs[:]
	case SYS_CMP:
		np, ni, nj, offp = 6, 10, 24, 1
		sigs = ssr_sig_cmp[:]
	case SYS_SBS:
		np, ni, nj, offp = 6, 9, 24, 120
		sigs = ssr_sig_sbs[:]
	default:
		miss = true
	}
	return np, ni, nj, offp, sigs, miss
}

/* decode SSR message epoch time ---------------------------------------------*/
func (rtcm *Rtcm) DecodeSsrEpoch(sys, subtype int) int {
	var tod, tow float64
	i := 24 + 12

	if subtype == 0 { /* RTCM SSR */

		if sys == SYS_GLO {
			tod = float64(GetBitU(rtcm.Buff[:], i, 17))
			i += 17
			rtcm.AdjDay_Glot(tod)
		} else {
			tow = float64(GetBitU(rtcm.Buff[:], i, 20))
			i += 20
			rtcm.AdjWeek(tow)
		}
	} else { /* IGS SSR */
		i += 3 + 8
		tow = float64(GetBitU(rtcm.Buff[:], i, 20))
		i += 20
		rtcm.AdjWeek(tow)
	}
	return i
}

/* decode SSR 1,4 message header ----------------------------------------------*/
func (rtcm *Rtcm) decode_ssr1_head(sys, subtype int, sync,
	iod *int, udint *float64, refd, hsize *int) int {
	var (
		tstr                         string
		nsat, udi, provid, solid, ns int
	)
	i := 24 + 12
	if subtype == 0 { /* RTCM SSR */
		ns = 6
		if sys == SYS_QZS {
			ns = 4
		}
		if sys == SYS_GLO {
			if i+53+ns > rtcm.MsgLen*8 {
				return -1
			}
		} else {
			if i+50+ns > rtcm.MsgLen*8 {
				return -1
			}
		}
	} else { /* IGS SSR */
		ns = 6
		if i+3+8+50+ns > rtcm.MsgLen*8 {
			return -1
		}
	}
	i = rtcm.DecodeSsrEpoch(sys, subtype)
	udi = int(GetBitU(rtcm.Buff[:], i, 4))
	i += 4
	*sync = int(GetBitU(rtcm.Buff[:], i, 1))
	i += 1
	if subtype == 0 { /* RTCM SSR */
		*refd = int(GetBitU(rtcm.Buff[:], i, 1))
		i += 1 /* satellite ref datum */
	}
	*iod = int(GetBitU(rtcm.Buff[:], i, 4))
	i += 4 /* IOD SSR */
	provid = int(GetBitU(rtcm.Buff[:], i, 16))
	i += 16 /* provider ID */
	solid = int(GetBitU(rtcm.Buff[:], i, 4))
	i += 4           /* solution ID */
	if subtype > 0 { /* IGS SSR */
		*refd = int(GetBitU(rtcm.Buff[:], i, 1))
		i += 1 /* global/regional CRS indicator */
	}
	nsat = int(GetBitU(rtcm.Buff[:], i, ns))
	i += ns
	*udint = ssrudint[udi]

	Time2Str(rtcm.Time, &tstr, 2)
	Trace(5, "decode_ssr1_head: time=%s sys=%d subtype=%d nsat=%d sync=%d iod=%d provid=%d solid=%d\n", tstr, sys, subtype, nsat, *sync, *iod, provid, solid)

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" %s nsat=%2d iod=%2d udi=%2d sync=%d", tstr, nsat, *iod, udi,
			*sync)
	}
	*hsize = i
	return nsat
}

/* decode SSR 2,3,5,6 message header -------------------------------------------*/
func (rtcm *Rtcm) decode_ssr2_head(sys, subtype int, sync,
	iod *int, udint *float64, hsize *int) int {
	var (
		tstr                         string
		nsat, udi, provid, solid, ns int
	)
	i := 24 + 12
	if subtype == 0 { /* RTCM SSR */
		ns = 6
		if sys == SYS_QZS {
			ns = 4
		}

		if sys == SYS_GLO {
			if i+52+ns > rtcm.MsgLen*8 {
				return -1
			}
		} else {
			if i+49+ns > rtcm.MsgLen*8 {
				return -1
			}
		}
	} else {
		ns = 6
		if i+3+8+49+ns > rtcm.MsgLen*8 {
			return -1
		}
	}
	i = rtcm.DecodeSsrEpoch(sys, subtype)
	udi = int(GetBitU(rtcm.Buff[:], i, 4))
	i += 4
	*sync = int(GetBitU(rtcm.Buff[:], i, 1))
	i += 1
	*iod = int(GetBitU(rtcm.Buff[:], i, 4))
	i += 4
	provid = int(GetBitU(rtcm.Buff[:], i, 16))
	i += 16 /* provider ID */
	solid = int(GetBitU(rtcm.Buff[:], i, 4))
	i += 4 /* solution ID */
	nsat = int(GetBitU(rtcm.Buff[:], i, ns))
	i += ns
	*udint = ssrudint[udi]

	Time2Str(rtcm.Time, &tstr, 2)
	Trace(5, "decode_ssr2_head: time=%s sys=%d subtype=%d nsat=%d sync=%d iod=%d provid=%d solid=%d\n", tstr, sys, subtype, nsat, *sync, *iod, provid, solid)

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" %s nsat=%2d iod=%2d udi=%2d sync=%d", tstr, nsat, *iod, udi,
			*sync)
	}
	*hsize = i
	return nsat
}

/* decode SSR 1: orbit corrections ---------------------------------------------*/
func (rtcm *Rtcm) decode_ssr1(sys, subtype int) int {
	var (
		udint                                      float64
		deph, ddeph                                [3]float64
		i, j, k, ctype, sync, iod, nsat, prn, sat   int
		iode, iodcrc, refd, np, ni, nj, offp        int
	)

	ctype = int(GetBitU(rtcm.Buff[:], 24, 12))

	if nsat = rtcm.decode_ssr1_head(sys, subtype, &sync, &iod, &udint, &refd, &i); nsat < 0 {
		Trace(2, "rtcm3 %d length error: len=%d\n", ctype, rtcm.MsgLen)
		return -1
	}
	var miss bool
	np, ni, nj, offp, _, miss = selectsys(sys)
	if miss {
		if sync > 0 {
			return 0
		} else {
			return 10
		}
	}
	if subtype > 0 { /* IGS SSR */
		np, ni, nj, offp = 6, 8, 0, 0
		switch sys {
		case SYS_CMP:
			offp = 0
		case SYS_SBS:
			offp = 119
		}
	}
	for j = 0; j < nsat && i+121+np+ni+nj <= rtcm.MsgLen*8; j++ {
		prn = int(GetBitU(rtcm.Buff[:], i, np)) + offp
		i += np
		iode = int(GetBitU(rtcm.Buff[:], i, ni))
		i += ni
		iodcrc = int(GetBitU(rtcm.Buff[:], i, nj))
		i += nj
		deph[0] = float64(GetBits(rtcm.Buff[:], i, 22)) * (1e-4)
		i += 22
		deph[1] = float64(GetBits(rtcm.Buff[:], i, 20)) * (4e-4)
		i += 20
		deph[2] = float64(GetBits(rtcm.Buff[:], i, 20)) * (4e-4)
		i += 20
		ddeph[0] = float64(GetBits(rtcm.Buff[:], i, 21)) * (1e-6)
		i += 21
		ddeph[1] = float64(GetBits(rtcm.Buff[:], i, 19)) * (4e-6)
		i += 19
		ddeph[2] = float64(GetBits(rtcm.Buff[:], i, 19)) * (4e-6)
		i += 19

		if sat = SatNo(sys, prn); sat == 0 {
			Trace(2, "rtcm3 %d satellite number error: prn=%d\n", ctype, prn)
			continue
		}
		rtcm.Ssr[sat-1].T0[0] = rtcm.Time
		rtcm.Ssr[sat-1].Udi[0] = udint
		rtcm.Ssr[sat-1].Iod[0] = iod
		rtcm.Ssr[sat-1].Iode = iode     /* SBAS/BDS: toe/t0 modulo */
		rtcm.Ssr[sat-1].IodCrc = iodcrc /* SBAS/BDS: IOD CRC */
		rtcm.Ssr[sat-1].Refd = refd

		for k = 0; k < 3; k++ {
			rtcm.Ssr[sat-1].Deph[k] = deph[k]
			rtcm.Ssr[sat-1].Ddeph[k] = ddeph[k]
		}
		rtcm.Ssr[sat-1].Update = 1
	}

	if sync > 0 {
		return 0
	} else {
		return 10
	}
}

/* decode SSR 2: clock corrections ----------------------------------------------*/
func (rtcm *Rtcm) decode_ssr2(sys, subtype int) int {
	var (
		udint                     float64
		dclk                      [3]float64
		i, j, k, ctype, sync, iod int
		nsat, prn, sat            int
	)

	ctype = int(GetBitU(rtcm.Buff[:], 24, 12))

	if nsat = rtcm.decode_ssr2_head(sys, subtype, &sync, &iod, &udint, &i); nsat < 0 {
		Trace(2, "rtcm3 %d length error: len=%d\n", ctype, rtcm.MsgLen)
		return -1
	}
	np, _, _, offp, _, miss := selectsys(sys)
	if miss {
		if sync > 0 {
			return 0
		} else {
			return 10
		}
	}
	if subtype > 0 { /* IGS SSR */
		np = 6
		switch sys {
		case SYS_CMP:
			offp = 0
		case SYS_SBS:
			offp = 119
		}
	}
	for j = 0; j < nsat && i+70+np <= rtcm.MsgLen*8; j++ {
		prn = int(GetBitU(rtcm.Buff[:], i, np)) + offp
		i += np
		dclk[0] = float64(GetBits(rtcm.Buff[:], i, 22)) * 1e-4
		i += 22
		dclk[1] = float64(GetBits(rtcm.Buff[:], i, 21)) * 1e-6
		i += 21
		dclk[2] = float64(GetBits(rtcm.Buff[:], i, 27)) * 2e-8
		i += 27

		if sat = SatNo(sys, prn); sat == 0 {
			Trace(2, "rtcm3 %d satellite number error: prn=%d\n", ctype, prn)
			continue
		}
		rtcm.Ssr[sat-1].T0[1] = rtcm.Time
		rtcm.Ssr[sat-1].Udi[1] = udint
		rtcm.Ssr[sat-1].Iod[1] = iod

		for k = 0; k < 3; k++ {
			rtcm.Ssr[sat-1].Dclk[k] = dclk[k]
		}
		rtcm.Ssr[sat-1].Update = 1
	}
	if sync > 0 {
		return 0
	} else {
		return 10
	}
}

/* decode SSR 3: satellite code biases -------------------------------------------*/
func (rtcm *Rtcm) decode_ssr3(sys, subtype int) int {
	var (
		udint, bias                float64
		cbias                      [MAXCODE]float64
		i, j, k, ctype, mode, sync int
		iod, nsat, prn, sat, nbias int
	)

	ctype = int(GetBitU(rtcm.Buff[:], 24, 12))

	if nsat = rtcm.decode_ssr2_head(sys, subtype, &sync, &iod, &udint, &i); nsat < 0 {
		Trace(2, "rtcm3 %d length error: len=%d\n", ctype, rtcm.MsgLen)
		return -1
	}
	np, _, _, offp, sigs, miss := selectsys(sys)
	if miss {
		if sync > 0 {
			return 0
		} else {
			return 10
		}
	}
	if subtype > 0 { /* IGS SSR */
		np = 6
		switch sys {
		case SYS_CMP:
			offp = 0
		case SYS_SBS:
			offp = 119
		}
	}
	for j = 0; j < nsat && i+5+np <= rtcm.MsgLen*8; j++ {
		prn = int(GetBitU(rtcm.Buff[:], i, np)) + offp
		i += np
		nbias = int(GetBitU(rtcm.Buff[:], i, 5))
		i += 5

		for k = 0; k < int(MAXCODE); k++ {
			cbias[k] = 0.0
		}
		for k = 0; k < nbias && i+19 <= rtcm.MsgLen*8; k++ {
			mode = int(GetBitU(rtcm.Buff[:], i, 5))
			i += 5
			bias = float64(GetBits(rtcm.Buff[:], i, 14)) * 0.01
			i += 14
			if sigs[mode] > 0 {
				cbias[sigs[mode]-1] = float64(bias)
			} else {
				Trace(2, "rtcm3 %d not supported mode: mode=%d\n", ctype, mode)
			}
		}
		if sat = SatNo(sys, prn); sat == 0 {
			Trace(2, "rtcm3 %d satellite number error: prn=%d\n", ctype, prn)
			continue
		}
		rtcm.Ssr[sat-1].T0[4] = rtcm.Time
		rtcm.Ssr[sat-1].Udi[4] = udint
		rtcm.Ssr[sat-1].Iod[4] = iod

		for k = 0; k < int(MAXCODE); k++ {
			rtcm.Ssr[sat-1].Cbias[k] = float32(cbias[k])
		}
		rtcm.Ssr[sat-1].Update = 1
	}
	if sync > 0 {
		return 0
	} else {
		return 10
	}
}

/* decode SSR 4: combined orbit and clock corrections ----------------------------*/
func (rtcm *Rtcm) decode_ssr4(sys, subtype int) int {
	var (
		udint                           float64
		deph, ddeph, dclk               [3]float64
		i, j, k, ctype, nsat, sync, iod int
		prn, sat, iode, iodcrc, refd    int
	)

	ctype = int(GetBitU(rtcm.Buff[:], 24, 12))

	if nsat = rtcm.decode_ssr1_head(sys, subtype, &sync, &iod, &udint, &refd, &i); nsat < 0 {
		Trace(2, "rtcm3 %d length error: len=%d\n", ctype, rtcm.MsgLen)
		return -1
	}
	np, ni, nj, offp, _, miss := selectsys(sys)
	if miss {
		if sync > 0 {
			return 0
		} else {
			return 10
		}
	}
	if subtype > 0 { /* IGS SSR */
		np, ni, nj, offp = 6, 8, 0, 0
		switch sys {
		case SYS_CMP:
			offp = 0
		case SYS_SBS:
			offp = 119
		}
	}
	for j = 0; j < nsat && i+191+np+ni+nj <= rtcm.MsgLen*8; j++ {
		prn = int(GetBitU(rtcm.Buff[:], i, np)) + offp
		i += np
		iode = int(GetBitU(rtcm.Buff[:], i, ni))
		i += ni
		iodcrc = int(GetBitU(rtcm.Buff[:], i, nj))
		i += nj
		deph[0] = float64(GetBits(rtcm.Buff[:], i, 22)) * 1e-4
		i += 22
		deph[1] = float64(GetBits(rtcm.Buff[:], i, 20)) * 4e-4
		i += 20
		deph[2] = float64(GetBits(rtcm.Buff[:], i, 20)) * 4e-4
		i += 20
		ddeph[0] = float64(GetBits(rtcm.Buff[:], i, 21)) * 1e-6
		i += 21
		ddeph[1] = float64(GetBits(rtcm.Buff[:], i, 19)) * 4e-6
		i += 19
		ddeph[2] = float64(GetBits(rtcm.Buff[:], i, 19)) * 4e-6
		i += 19

		dclk[0] = float64(GetBits(rtcm.Buff[:], i, 22)) * 1e-4
		i += 22
		dclk[1] = float64(GetBits(rtcm.Buff[:], i, 21)) * 1e-6
		i += 21
		dclk[2] = float64(GetBits(rtcm.Buff[:], i, 27)) * 2e-8
		i += 27

		if sat = SatNo(sys, prn); sat == 0 {
			Trace(2, "rtcm3 %d satellite number error: prn=%d\n", ctype, prn)
			continue
		}
		rtcm.Ssr[sat-1].T0[0], rtcm.Ssr[sat-1].T0[1] = rtcm.Time, rtcm.Time
		rtcm.Ssr[sat-1].Udi[0], rtcm.Ssr[sat-1].Udi[1] = udint, udint
		rtcm.Ssr[sat-1].Iod[0], rtcm.Ssr[sat-1].Iod[1] = iod, iod
		rtcm.Ssr[sat-1].Iode = iode
		rtcm.Ssr[sat-1].IodCrc = iodcrc
		rtcm.Ssr[sat-1].Refd = refd

		for k = 0; k < 3; k++ {
			rtcm.Ssr[sat-1].Deph[k] = deph[k]
			rtcm.Ssr[sat-1].Ddeph[k] = ddeph[k]
			rtcm.Ssr[sat-1].Dclk[k] = dclk[k]
		}
		rtcm.Ssr[sat-1].Update = 1
	}
	if sync > 0 {
		return 0
	} else {
		return 10
	}
}

/* decode SSR 5: URA ---------------------------------------------------------*/
func (rtcm *Rtcm) decode_ssr5(sys, subtype int) int {
	var (
		udint                   float64
		i, j, ctype, nsat, sync int
		iod, prn, sat, ura      int
	)

	ctype = int(GetBitU(rtcm.Buff[:], 24, 12))

	if nsat = rtcm.decode_ssr2_head(sys, subtype, &sync, &iod, &udint, &i); nsat < 0 {
		Trace(2, "rtcm3 %d length error: len=%d\n", ctype, rtcm.MsgLen)
		return -1
	}
	np, _, _, offp, _, miss := selectsys(sys)
	if miss {
		if sync > 0 {
			return 0
		} else {
			return 10
		}
	}
	if subtype > 0 { /* IGS SSR */
		np = 6
		switch sys {
		case SYS_CMP:
			offp = 0
		case SYS_SBS:
			offp = 119
		}
	}
	for j = 0; j < nsat && i+6+np <= rtcm.MsgLen*8; j++ {
		prn = int(GetBitU(rtcm.Buff[:], i, np)) + offp
		i += np
		ura = int(GetBitU(rtcm.Buff[:], i, 6))
		i += 6

		if sat = SatNo(sys, prn); sat == 0 {
			Trace(2, "rtcm3 %d satellite number error: prn=%d\n", ctype, prn)
			continue
		}
		rtcm.Ssr[sat-1].T0[3] = rtcm.Time
		rtcm.Ssr[sat-1].Udi[3] = udint
		rtcm.Ssr[sat-1].Iod[3] = iod
		rtcm.Ssr[sat-1].Ura = ura
		rtcm.Ssr[sat-1].Update = 1
	}
	if sync > 0 {
		return 0
	} else {
		return 10
	}
}

/* decode SSR 6: high rate clock correction --------------------------------------*/
func (rtcm *Rtcm) decode_ssr6(sys, subtype int) int {
	var (
		udint, hrclk            float64
		i, j, ctype, nsat, sync int
		iod, prn, sat, np, offp int
	)

	ctype = int(GetBitU(rtcm.Buff[:], 24, 12))

	if nsat = rtcm.decode_ssr2_head(sys, subtype, &sync, &iod, &udint, &i); nsat < 0 {
		Trace(2, "rtcm3 %d length error: len=%d\n", ctype, rtcm.MsgLen)
		return -1
	}
	np, _, _, offp, _, miss := selectsys(sys)
	if miss {
		if sync > 0 {
			return 0
		} else {
			return 10
		}
	}
	if subtype > 0 { /* IGS SSR */
		np = 6
		switch sys {
		case SYS_CMP:
			offp = 0
		case SYS_SBS:
			offp = 119
		}
	}
	for j = 0; j < nsat && i+22+np <= rtcm.MsgLen*8; j++ {
		prn = int(GetBitU(rtcm.Buff[:], i, np)) + offp
		i += np
		hrclk = float64(GetBits(rtcm.Buff[:], i, 22)) * 1e-4
		i += 22

		if sat = SatNo(sys, prn); sat == 0 {
			Trace(2, "rtcm3 %d satellite number error: prn=%d\n", ctype, prn)
			continue
		}
		rtcm.Ssr[sat-1].T0[2] = rtcm.Time
		rtcm.Ssr[sat-1].Udi[2] = udint
		rtcm.Ssr[sat-1].Iod[2] = iod
		rtcm.Ssr[sat-1].Brclk = hrclk
		rtcm.Ssr[sat-1].Update = 1
	}
	if sync > 0 {
		return 0
	} else {
		return 10
	}
}

/* decode SSR 7 message header -------------------------------------------------*/
func (rtcm *Rtcm) decode_ssr7_head(sys, subtype int, sync,
	iod *int, udint *float64, dispe, mw, hsize *int) int {
	var (
		tstr                         string
		nsat, udi, provid, solid, ns int
	)
	i := 24 + 12
	if subtype == 0 { /* RTCM SSR */
		ns = 6
		if sys == SYS_QZS {
			ns = 4
		}
		isys := 51
		if sys == SYS_GLO {
			isys = 54
		}
		if (i + isys + ns) > rtcm.MsgLen*8 {
			return -1
		}
	} else { /* IGS SSR */
		ns = 6
		if i+3+8+51+ns > rtcm.MsgLen*8 {
			return -1
		}
	}
	i = rtcm.DecodeSsrEpoch(sys, subtype)
	udi = int(GetBitU(rtcm.Buff[:], i, 4))
	i += 4
	*sync = int(GetBitU(rtcm.Buff[:], i, 1))
	i += 1
	*iod = int(GetBitU(rtcm.Buff[:], i, 4))
	i += 4
	provid = int(GetBitU(rtcm.Buff[:], i, 16))
	i += 16 /* provider ID */
	solid = int(GetBitU(rtcm.Buff[:], i, 4))
	i += 4 /* solution ID */
	*dispe = int(GetBitU(rtcm.Buff[:], i, 1))
	i += 1 /* dispersive bias consistency ind */
	*mw = int(GetBitU(rtcm.Buff[:], i, 1))
	i += 1 /* MW consistency indicator */
	nsat = int(GetBitU(rtcm.Buff[:], i, ns))
	i += ns
	*udint = ssrudint[udi]

	Time2Str(rtcm.Time, &tstr, 2)
	Trace(5, "decode_ssr7_head: time=%s sys=%d subtype=%d nsat=%d sync=%d iod=%d provid=%d solid=%d\n", tstr, sys, subtype, nsat, *sync, *iod, provid, solid)

	if rtcm.OutType > 0 {

		rtcm.MsgType += fmt.Sprintf(" %s nsat=%2d iod=%2d udi=%2d sync=%d", tstr, nsat, *iod, udi,
			*sync)
	}
	*hsize = i
	return nsat
}

/* decode SSR 7: phase bias ------------------------------------------------------*/
func (rtcm *Rtcm) decode_ssr7(sys, subtype int) int {
	var (
		udint, bias, std                           float64
		pbias, stdpb                               [MAXCODE]float64
		i, j, k, ctype, mode, sync, iod, nsat, prn int
		sat, nbias, mw, sii, swl                   int
		dispe, sdc, yaw_ang, yaw_rate              int
	)

	ctype = int(GetBitU(rtcm.Buff[:], 24, 12))

	if nsat = rtcm.decode_ssr7_head(sys, subtype, &sync, &iod, &udint, &dispe, &mw, &i); nsat < 0 {
		Trace(5, "rtcm3 %d length error: len=%d\n", ctype, rtcm.MsgLen)
		return -1
	}
	np, _, _, offp, sigs, miss := selectsys(sys)
	if miss {
		if sync > 0 {
			return 0
		} else {
			return 10
		}
	}
	if subtype > 0 { /* IGS SSR */
		np = 6
		switch sys {
		case SYS_CMP:
			offp = 0
		case SYS_SBS:
			offp = 119
		}
	}
	for j = 0; j < nsat && i+5+17+np <= rtcm.MsgLen*8; j++ {
		prn = int(GetBitU(rtcm.Buff[:], i, np)) + offp
		i += np
		nbias = int(GetBitU(rtcm.Buff[:], i, 5))
		i += 5
		yaw_ang = int(GetBitU(rtcm.Buff[:], i, 9))
		i += 9
		yaw_rate = int(GetBits(rtcm.Buff[:], i, 8))
		i += 8

		for k = 0; k < int(MAXCODE); k++ {
			pbias[k], stdpb[k] = 0.0, 0.0
		}
		isubtype := 32
		if subtype == 0 {
			isubtype = 49
		}
		for k = 0; k < nbias && i+isubtype <= rtcm.MsgLen*8; k++ {
			mode = int(GetBitU(rtcm.Buff[:], i, 5))
			i += 5
			sii = int(GetBitU(rtcm.Buff[:], i, 1))
			i += 1 /* integer-indicator */
			swl = int(GetBitU(rtcm.Buff[:], i, 2))
			i += 2 /* WL integer-indicator */
			sdc = int(GetBitU(rtcm.Buff[:], i, 4))
			i += 4 /* discontinuity counter */
			bias = float64(GetBits(rtcm.Buff[:], i, 20))
			i += 20 /* phase bias (m) */
			if subtype == 0 {
				std = float64(GetBitU(rtcm.Buff[:], i, 17))
				i += 17 /* phase bias std-dev (m) */
			}
			if sigs[mode] > 0 {
				pbias[sigs[mode]-1] = bias * 0.0001 /* (m) */
				stdpb[sigs[mode]-1] = std * 0.0001  /* (m) */
			} else {
				Trace(2, "rtcm3 %d not supported mode: mode=%d\n", ctype, mode)
			}
		}
		if sat = SatNo(sys, prn); sat == 0 {
			Trace(2, "rtcm3 %d satellite number error: prn=%d%d%d%d\n", ctype, prn, sii, swl, sdc)
			continue
		}
		rtcm.Ssr[sat-1].T0[5] = rtcm.Time
		rtcm.Ssr[sat-1].Udi[5] = udint
		rtcm.Ssr[sat-1].Iod[5] = iod
		rtcm.Ssr[sat-1].Yaw_ang = float64(yaw_ang) / 256.0 * 180.0    /* (deg) */
		rtcm.Ssr[sat-1].Yaw_rate = float64(yaw_rate) / 8192.0 * 180.0 /* (deg/s) */

		for k = 0; k < MAXCODE; k++ {
			rtcm.Ssr[sat-1].Pbias[k] = pbias[k]
			rtcm.Ssr[sat-1].Stdpb[k] = float32(stdpb[k])
		}
	}
	if sync > 0 {
		return 0
	} else {
		return 10
	}
}
