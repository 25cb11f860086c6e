package gnssgo

import "fmt"
import "math"

/* multi-signal-message header type --------------------------------------------*/
type Msm_h struct {
	iod        uint8     /* issue of data station */
	time_s     uint8     /* cumulative session transmitting time */
	clk_str    uint8     /* clock steering indicator */
	clk_ext    uint8     /* external clock indicator */
	smooth     uint8     /* divergence free smoothing indicator */
	tint_s     uint8     /* soothing interval */
	nsat, nsig uint8     /* number of satellites/signals */
	sats       [64]uint8 /* satellites */
	sigs       [32]uint8 /* signals */
	cellmask   [64]uint8 /* cell mask */
}

/* MSM signal ID table ----------------------------------------------------------*/
var (
	msm_sig_gps [32]string = [32]string{
		/* GPS: ref [17] table 3.5-91 */
		"", "1C", "1P", "1W", "", "", "", "2C", "2P", "2W", "", "", /*  1-12 */
		"", "", "2S", "2L", "2X", "", "", "", "", "5I", "5Q", "5X", /* 13-24 */
		"", "", "", "", "", "1S", "1L", "1X" /* 25-32 */}
	msm_sig_glo [32]string = [32]string{
		/* GLONASS: ref [17] table 3.5-96 */
		"", "1C", "1P", "", "", "", "", "2C", "2P", "", "", "",
		"", "", "", "", "", "", "", "", "", "", "", "",
		"", "", "", "", "", "", "", ""}
	msm_sig_gal [32]string = [32]string{
		/* Galileo: ref [17] table 3.5-99 */
		"", "1C", "1A", "1B", "1X", "1Z", "", "6C", "6A", "6B", "6X", "6Z",
		"", "7I", "7Q", "7X", "", "8I", "8Q", "8X", "", "5I", "5Q", "5X",
		"", "", "", "", "", "", "", ""}
	msm_sig_qzs [32]string = [32]string{
		/* QZSS: ref [17] table 3.5-105 */
		"", "1C", "", "", "", "", "", "", "6S", "6L", "6X", "",
		"", "", "2S", "2L", "2X", "", "", "", "", "5I", "5Q", "5X",
		"", "", "", "", "", "1S", "1L", "1X"}
	msm_sig_sbs [32]string = [32]string{
		/* SBAS: ref [17] table 3.5-102 */
		"", "1C", "", "", "", "", "", "", "", "", "", "",
		"", "", "", "", "", "", "", "", "", "5I", "5Q", "5X",
		"", "", "", "", "", "", "", ""}
	msm_sig_cmp [32]string = [32]string{
		/* BeiDou: ref [17] table 3.5-108, with B1C/B2a support */
		"", "2I", "2Q", "2X", "", "", "", "6I", "6Q", "6X", "", "",
		"", "7I", "7Q", "7X", "", "", "", "", "", "5D", "5P", "5X",
		"", "", "", "", "", "1D", "1P", "1X"}
)

/* get signal index ------------------------------------------------------------*/
func SigIndex(sys int, code []uint8, n int, opt string, idx []int) {
	var (
		i, nex, pri  int
		pri_h, index [8]int
		ex           [32]int
	)

	/* test code priority */
	for i = 0; i < n; i++ {
		if code[i] == 0 {
			continue
		}

		if idx[i] >= NFREQ { /* save as extended signal if idx >= NFREQ */
			ex[i] = 1
			continue
		}
		/* code priority */
		pri = GetCodePri(sys, code[i], opt)

		/* select highest priority signal */
		if pri > pri_h[idx[i]] {
			if index[idx[i]] > 0 {
				ex[index[idx[i]]-1] = 1
			}
			pri_h[idx[i]] = pri
			index[idx[i]] = i + 1
		} else {
			ex[i] = 1
		}
	}
	/* signal index in obs data */
	for i, nex = 0, 0; i < n; i++ {
		if ex[i] == 0 {
		} else if nex < NEXOBS {
			idx[i] = NFREQ + nex
			nex++
		} else { /* no space in obs data */
			Trace(2, "rtcm msm: no space in obs data sys=%d code=%d\n", sys, code[i])
			idx[i] = -1
		}
	}
}

/* save obs data in MSM message -------------------------------------------------*/
func (rtcm *Rtcm) SaveMsmObs(sys int, h *Msm_h, r, pr, cp, rr, rrf, cnr []float64, lock, ex, half []int) {
	var (
		sig                 [32][]rune
		tt, freq            float64
		code                [32]uint8
		msm_type            []rune = nil
		i, j, k, ctype, prn int
		sat, fcn, index     int
		idx                 [32]int
	)

	ctype = int(GetBitU(rtcm.Buff[:], 24, 12))

	switch sys {
	case SYS_GPS:
		msm_type = []rune(rtcm.MsmType[0])
	case SYS_GLO:
		msm_type = []rune(rtcm.MsmType[1])
	case SYS_GAL:
		msm_type = []rune(rtcm.MsmType[2])
	case SYS_QZS:
		msm_type = []rune(rtcm.MsmType[3])
	case SYS_SBS:
		msm_type = []rune(rtcm.MsmType[4])
	case SYS_CMP:
		msm_type = []rune(rtcm.MsmType[5])
	}
	/* id to signal */
	for i = 0; i < int(h.nsig); i++ {
		switch sys {
		case SYS_GPS:
			sig[i] = []rune(msm_sig_gps[h.sigs[i]-1])
		case SYS_GLO:
			sig[i] = []rune(msm_sig_glo[h.sigs[i]-1])
		case SYS_GAL:
			sig[i] = []rune(msm_sig_gal[h.sigs[i]-1])
		case SYS_QZS:
			sig[i] = []rune(msm_sig_qzs[h.sigs[i]-1])
		case SYS_SBS:
			sig[i] = []rune(msm_sig_sbs[h.sigs[i]-1])
		case SYS_CMP:
			sig[i] = []rune(msm_sig_cmp[h.sigs[i]-1])
		default:
			sig[i] = []rune("")
		}
		/* signal to rinex obs type */
		code[i] = Obs2Code(string(sig[i]))
		idx[i] = Code2Idx(sys, code[i])

		str := ""
		if i < int(h.nsig)-1 {
			str = ","
		}
		if code[i] != CODE_NONE {
			if msm_type != nil {
				switch sys {
				case SYS_GPS:
					rtcm.MsmType[0] += fmt.Sprintf("L%s%s", string(sig[i]), str)
				case SYS_GLO:
					rtcm.MsmType[1] += fmt.Sprintf("L%s%s", string(sig[i]), str)
				case SYS_GAL:
					rtcm.MsmType[2] += fmt.Sprintf("L%s%s", string(sig[i]), str)
				case SYS_QZS:
					rtcm.MsmType[3] += fmt.Sprintf("L%s%s", string(sig[i]), str)
				case SYS_SBS:
					rtcm.MsmType[4] += fmt.Sprintf("L%s%s", string(sig[i]), str)
				case SYS_CMP:
					rtcm.MsmType[5] += fmt.Sprintf("L%s%s", string(sig[i]), str)
				}
			}
		} else {
			if msm_type != nil {
				switch sys {
				case SYS_GPS:
					rtcm.MsmType[0] += fmt.Sprintf("(%d)%s", h.sigs[i], str)
				case SYS_GLO:
					rtcm.MsmType[1] += fmt.Sprintf("(%d)%s", h.sigs[i], str)
				case SYS_GAL:
					rtcm.MsmType[2] += fmt.Sprintf("(%d)%s", h.sigs[i], str)
				case SYS_QZS:
					rtcm.MsmType[3] += fmt.Sprintf("(%d)%s", h.sigs[i], str)
				case SYS_SBS:
					rtcm.MsmType[4] += fmt.Sprintf("(%d)%s", h.sigs[i], str)
				case SYS_CMP:
					rtcm.MsmType[5] += fmt.Sprintf("(%d)%s", h.sigs[i], str)
				}
			}

			Trace(2, "rtcm3 %d: unknown signal id=%2d\n", ctype, h.sigs[i])
		}
	}
	Trace(4, "rtcm3 %d: signals=%s\n", ctype, string(msm_type))

	/* get signal index */
	SigIndex(sys, code[:], int(h.nsig), rtcm.Opt, idx[:])

	for i, j = 0, 0; i < int(h.nsat); i++ {

		prn = int(h.sats[i])
		switch sys {
		case SYS_QZS:
			prn += MINPRNQZS - 1
		case SYS_SBS:
			prn += MINPRNSBS - 1
		}

		if sat = SatNo(sys, prn); sat > 0 {
			if rtcm.ObsFlag > 0 {
				rtcm.ObsData.Data, rtcm.ObsFlag = nil, 0
			} else if len(rtcm.ObsData.Data) > 0 {
				tt = TimeDiff(rtcm.ObsData.Data[0].Time, rtcm.Time)
				if math.Abs(tt) > 1e-9 {
					rtcm.ObsData.Data = nil
				}
			}
			index = rtcm.ObsData.ObsIndex(rtcm.Time, sat)
		} else {
			Trace(2, "rtcm3 %d satellite error: prn=%d\n", ctype, prn)
		}
		fcn = 0
		if sys == SYS_GLO {
			fcn = -8 /* no glonass fcn info */
			switch {
			case ex != nil && ex[i] <= 13:
				fcn = ex[i] - 7
				if rtcm.NavData.Glo_fcn[prn-1] == 0 {
					rtcm.NavData.Glo_fcn[prn-1] = fcn + 8 /* fcn+8 */
				}
			case rtcm.NavData.Geph[prn-1].Sat == sat:
				fcn = rtcm.NavData.Geph[prn-1].Frq
			case rtcm.NavData.Glo_fcn[prn-1] > 0:
				fcn = rtcm.NavData.Glo_fcn[prn-1] - 8
			}
		}
		for k = 0; k < int(h.nsig); k++ {
			if h.cellmask[k+i*int(h.nsig)] == 0 {
				continue
			}

			if sat > 0 && index >= 0 && idx[k] >= 0 {
				freq = Code2Freq(sys, code[k], fcn)
				if fcn < -7 {
					freq = 0.0
				}

				/* pseudorange (m) */
				if r[i] != 0.0 && pr[j] > -1e12 {
					rtcm.ObsData.Data[index].P[idx[k]] = r[i] + pr[j]
				}
				/* carrier-phase (cycle) */
				if r[i] != 0.0 && cp[j] > -1e12 {
					rtcm.ObsData.Data[index].L[idx[k]] = (r[i] + cp[j]) * freq / CLIGHT
				}
				/* doppler (hz) */
				if rr != nil && rrf != nil && rrf[j] > -1e12 {
					rtcm.ObsData.Data[index].D[idx[k]] =
						(-(rr[i] + rrf[j]) * freq / CLIGHT)
				}
				ihalf := 0
				if half[j] > 0 {
					ihalf = 3
				}
				rtcm.ObsData.Data[index].LLI[idx[k]] = uint8(rtcm.LossOfLock(sat, idx[k], lock[j]) + ihalf)
				rtcm.ObsData.Data[index].SNR[idx[k]] = uint16(cnr[j]/float64(SNR_UNIT) + 0.5)
				rtcm.ObsData.Data[index].Code[idx[k]] = code[k]
			}
			j++
		}
	}
}

/* decode MSM message header ----------------------------------------------------*/
func (rtcm *Rtcm) decode_msm_head(sys int, sync, iod *int, h *Msm_h, hsize *int) int {
	var (
		h0                                Msm_h
		tow, tod                          float64
		tstr                              string
		j, dow, mask, staid, ctype, ncell int
	)
	i := 24

	ctype = int(GetBitU(rtcm.Buff[:], i, 12))
	i += 12

	*h = h0
	if i+157 <= rtcm.MsgLen*8 {
		staid = int(GetBitU(rtcm.Buff[:], i, 12))
		i += 12

		switch sys {
		case SYS_GLO:
			dow = int(GetBitU(rtcm.Buff[:], i, 3))
			i += 3
			tod = float64(GetBitU(rtcm.Buff[:], i, 27)) * 0.001
			i += 27
			rtcm.AdjDay_Glot(tod)
		case SYS_CMP:
			tow = float64(GetBitU(rtcm.Buff[:], i, 30)) * 0.001
			i += 30
			tow += 14.0 /* BDT . GPST */
			rtcm.AdjWeek(tow)
		default:
			tow = float64(GetBitU(rtcm.Buff[:], i, 30)) * 0.001
			i += 30
			rtcm.AdjWeek(tow)
		}
		*sync = int(GetBitU(rtcm.Buff[:], i, 1))
		i += 1
		*iod = int(GetBitU(rtcm.Buff[:], i, 3))
		i += 3
		h.time_s = uint8(GetBitU(rtcm.Buff[:], i, 7))
		i += 7
		h.clk_str = uint8(GetBitU(rtcm.Buff[:], i, 2))
		i += 2
		h.clk_ext = uint8(GetBitU(rtcm.Buff[:], i, 2))
		i += 2
		h.smooth = uint8(GetBitU(rtcm.Buff[:], i, 1))
		i += 1
		h.tint_s = uint8(GetBitU(rtcm.Buff[:], i, 3))
		i += 3
		for j = 1; j <= 64; j++ {
			mask = int(GetBitU(rtcm.Buff[:], i, 1))
			i += 1
			if mask > 0 {
				h.sats[h.nsat] = uint8(j)
				h.nsat++
			}
		}
		for j = 1; j <= 32; j++ {
			mask = int(GetBitU(rtcm.Buff[:], i, 1))
			i += 1
			if mask > 0 {
				h.sigs[h.nsig] = uint8(j)
				h.nsig++
			}
		}
	} else {
		Trace(2, "rtcm3 %d length error: len=%d\n", ctype, rtcm.MsgLen)
		return -1
	}
	/* test station id */
	if rtcm.test_staid(staid) == 0 {
		return -1
	}

	if h.nsat*h.nsig > 64 {
		Trace(2, "rtcm3 %d number of sats and sigs error: nsat=%d nsig=%d%d\n",
			ctype, h.nsat, h.nsig, dow)
		return -1
	}
	if i+int(h.nsat*h.nsig) > rtcm.MsgLen*8 {
		Trace(2, "rtcm3 %d length error: len=%d nsat=%d nsig=%d\n", ctype,
			rtcm.MsgLen, h.nsat, h.nsig)
		return -1
	}
	for j = 0; j < int(h.nsat*h.nsig); j++ {
		h.cellmask[j] = uint8(GetBitU(rtcm.Buff[:], i, 1))
		i += 1
		if h.cellmask[j] > 0 {
			ncell++
		}
	}
	*hsize = i

	Time2Str(rtcm.Time, &tstr, 2)
	Trace(4, "decode_head_msm: time=%s sys=%d staid=%d nsat=%d nsig=%d sync=%d iod=%d ncell=%d\n",
		tstr, sys, staid, h.nsat, h.nsig, *sync, *iod, ncell)

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" staid=%4d %s nsat=%2d nsig=%2d iod=%2d ncell=%2d sync=%d",
			staid, tstr, h.nsat, h.nsig, *iod, ncell, *sync)
	}
	return ncell
}

/* decode unsupported MSM message ------------------------------------------------*/
func (rtcm *Rtcm) decode_msm0(sys int) int {
	var (
		h            Msm_h
		i, sync, iod int
	)
	if rtcm.decode_msm_head(sys, &sync, &iod, &h, &i) < 0 {
		return -1
	}
	return retsync(sync, &rtcm.ObsFlag)
}

/* decode MSM 4: full pseudorange and phaserange plus CNR --------------------*/
func (rtcm *Rtcm) decode_msm4(sys int) int {
	var (
		h                                                   Msm_h
		r, pr, cp, cnr                                      [64]float64
		i, j, ctype, sync, iod, ncell, rng, rng_m, prv, cpv int
		lock, half                                          [64]int
	)

	ctype = int(GetBitU(rtcm.Buff[:], 24, 12))

	/* decode msm header */
	if ncell = rtcm.decode_msm_head(sys, &sync, &iod, &h, &i); ncell < 0 {
		return -1
	}

	if i+int(h.nsat)*18+ncell*48 > rtcm.MsgLen*8 {
		Trace(2, "rtcm3 %d length error: nsat=%d ncell=%d len=%d\n", ctype, h.nsat,
			ncell, rtcm.MsgLen)
		return -1
	}
	for j = 0; j < int(h.nsat); j++ {
		r[j] = 0.0
	}
	for j = 0; j < ncell; j++ {
		pr[j], cp[j] = -1e16, -1e16
	}

	/* decode satellite data */
	for j = 0; j < int(h.nsat); j++ { /* range */
		rng = int(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
		if rng != 255 {
			r[j] = float64(rng) * RANGE_MS
		}
	}
	for j = 0; j < int(h.nsat); j++ {
		rng_m = int(GetBitU(rtcm.Buff[:], i, 10))
		i += 10
		if r[j] != 0.0 {
			r[j] += float64(rng_m) * P2_10 * RANGE_MS
		}
	}
	/* decode signal data */
	for j = 0; j < ncell; j++ { /* pseudorange */
		prv = int(GetBits(rtcm.Buff[:], i, 15))
		i += 15
		if prv != -16384 {
			pr[j] = float64(prv) * P2_24 * RANGE_MS
		}
	}
	for j = 0; j < ncell; j++ { /* phaserange */
		cpv = int(GetBits(rtcm.Buff[:], i, 22))
		i += 22
		if cpv != -2097152 {
			cp[j] = float64(cpv) * P2_29 * RANGE_MS
		}
	}
	for j = 0; j < ncell; j++ { /* lock time */
		lock[j] = int(GetBitU(rtcm.Buff[:], i, 4))
		i += 4
	}
	for j = 0; j < ncell; j++ { /* half-cycle ambiguity */
		half[j] = int(GetBitU(rtcm.Buff[:], i, 1))
		i += 1
	}
	for j = 0; j < ncell; j++ { /* cnr */
		cnr[j] = float64(GetBitU(rtcm.Buff[:], i, 6)) * 1.0
		i += 6
	}
	/* save obs data in msm message */
	rtcm.SaveMsmObs(sys, &h, r[:], pr[:], cp[:], nil, nil, cnr[:], lock[:], nil, half[:])

	return retsync(sync, &rtcm.ObsFlag)
}

/* decode MSM 5: full pseudorange, phaserange, phaserangerate and CNR --------*/
func (rtcm *Rtcm) decode_msm5(sys int) int {
	var (
		h                                                              Msm_h
		r, rr, pr, cp, rrf, cnr                                        [64]float64
		i, j, ctype, sync, iod, ncell, rng, rng_m, rate, prv, cpv, rrv int
		lock, ex, half                                                 [64]int
	)

	ctype = int(GetBitU(rtcm.Buff[:], 24, 12))

	/* decode msm header */
	if ncell = rtcm.decode_msm_head(sys, &sync, &iod, &h, &i); ncell < 0 {
		return -1
	}

	if i+int(h.nsat)*36+ncell*63 > rtcm.MsgLen*8 {
		Trace(2, "rtcm3 %d length error: nsat=%d ncell=%d len=%d\n", ctype, h.nsat,
			ncell, rtcm.MsgLen)
		return -1
	}
	for j = 0; j < int(h.nsat); j++ {
		r[j], rr[j] = 0.0, 0.0
		ex[j] = 15
	}
	for j = 0; j < ncell; j++ {
		pr[j], cp[j], rrf[j] = -1e16, -1e16, -1e16
	}

	/* decode satellite data */
	for j = 0; j < int(h.nsat); j++ { /* range */
		rng = int(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
		if rng != 255 {
			r[j] = float64(rng) * RANGE_MS
		}
	}
	for j = 0; j < int(h.nsat); j++ { /* extended info */
		ex[j] = int(GetBitU(rtcm.Buff[:], i, 4))
		i += 4
	}
	for j = 0; j < int(h.nsat); j++ {
		rng_m = int(GetBitU(rtcm.Buff[:], i, 10))
		i += 10
		if r[j] != 0.0 {
			r[j] += float64(rng_m) * P2_10 * RANGE_MS
		}
	}
	for j = 0; j < int(h.nsat); j++ { /* phaserangerate */
		rate = int(GetBits(rtcm.Buff[:], i, 14))
		i += 14
		if rate != -8192 {
			rr[j] = float64(rate) * 1.0
		}
	}
	/* decode signal data */
	for j = 0; j < ncell; j++ { /* pseudorange */
		prv = int(GetBits(rtcm.Buff[:], i, 15))
		i += 15
		if prv != -16384 {
			pr[j] = float64(prv) * P2_24 * RANGE_MS
		}
	}
	for j = 0; j < ncell; j++ { /* phaserange */
		cpv = int(GetBits(rtcm.Buff[:], i, 22))
		i += 22
		if cpv != -2097152 {
			cp[j] = float64(cpv) * P2_29 * RANGE_MS
		}
	}
	for j = 0; j < ncell; j++ { /* lock time */
		lock[j] = int(GetBitU(rtcm.Buff[:], i, 4))
		i += 4
	}
	for j = 0; j < ncell; j++ { /* half-cycle ambiguity */
		half[j] = int(GetBitU(rtcm.Buff[:], i, 1))
		i += 1
	}
	for j = 0; j < ncell; j++ { /* cnr */
		cnr[j] = float64(GetBitU(rtcm.Buff[:], i, 6)) * 1.0
		i += 6
	}
	for j = 0; j < ncell; j++ { /* phaserangerate */
		rrv = int(GetBits(rtcm.Buff[:], i, 15))
		i += 15
		if rrv != -16384 {
			rrf[j] = float64(rrv) * 0.0001
		}
	}
	/* save obs data in msm message */
	rtcm.SaveMsmObs(sys, &h, r[:], pr[:], cp[:], rr[:], rrf[:], cnr[:], lock[:], ex[:], half[:])

	return retsync(sync, &rtcm.ObsFlag)
}

/* decode MSM 6: full pseudorange and phaserange plus CNR (high-res) ---------*/
func (rtcm *Rtcm) decode_msm6(sys int) int {
	var (
		h                                                   Msm_h
		r, pr, cp, cnr                                      [64]float64
		i, j, ctype, sync, iod, ncell, rng, rng_m, prv, cpv int
		lock, half                                          [64]int
	)

	ctype = int(GetBitU(rtcm.Buff[:], 24, 12))

	/* decode msm header */
	if ncell = rtcm.decode_msm_head(sys, &sync, &iod, &h, &i); ncell < 0 {
		return -1
	}

	if i+int(h.nsat)*18+ncell*65 > rtcm.MsgLen*8 {
		Trace(2, "rtcm3 %d length error: nsat=%d ncell=%d len=%d\n", ctype, h.nsat,
			ncell, rtcm.MsgLen)
		return -1
	}
	for j = 0; j < int(h.nsat); j++ {
		r[j] = 0.0
	}
	for j = 0; j < ncell; j++ {
		pr[j], cp[j] = -1e16, -1e16
	}

	/* decode satellite data */
	for j = 0; j < int(h.nsat); j++ { /* range */
		rng = int(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
		if rng != 255 {
			r[j] = float64(rng) * RANGE_MS
		}
	}
	for j = 0; j < int(h.nsat); j++ {
		rng_m = int(GetBitU(rtcm.Buff[:], i, 10))
		i += 10
		if r[j] != 0.0 {
			r[j] += float64(rng_m) * P2_10 * RANGE_MS
		}
	}
	/* decode signal data */
	for j = 0; j < ncell; j++ { /* pseudorange */
		prv = int(GetBits(rtcm.Buff[:], i, 20))
		i += 20
		if prv != -524288 {
			pr[j] = float64(prv) * P2_29 * RANGE_MS
		}
	}
	for j = 0; j < ncell; j++ { /* phaserange */
		cpv = int(GetBits(rtcm.Buff[:], i, 24))
		i += 24
		if cpv != -8388608 {
			cp[j] = float64(cpv) * P2_31 * RANGE_MS
		}
	}
	for j = 0; j < ncell; j++ { /* lock time */
		lock[j] = int(GetBitU(rtcm.Buff[:], i, 10))
		i += 10
	}
	for j = 0; j < ncell; j++ { /* half-cycle ambiguity */
		half[j] = int(GetBitU(rtcm.Buff[:], i, 1))
		i += 1
	}
	for j = 0; j < ncell; j++ { /* cnr */
		cnr[j] = float64(GetBitU(rtcm.Buff[:], i, 10)) * 0.0625
		i += 10
	}
	/* save obs data in msm message */
	rtcm.SaveMsmObs(sys, &h, r[:], pr[:], cp[:], nil, nil, cnr[:], lock[:], nil, half[:])

	return retsync(sync, &rtcm.ObsFlag)
}

/* decode MSM 7: full pseudorange, phaserange, phaserangerate and CNR (h-res) */
func (rtcm *Rtcm) decode_msm7(sys int) int {
	var (
		h                                                              Msm_h
		r, rr, pr, cp, rrf, cnr                                        [64]float64
		i, j, ctype, sync, iod, ncell, rng, rng_m, rate, prv, cpv, rrv int
		lock, ex, half                                                 [64]int
	)

	ctype = int(GetBitU(rtcm.Buff[:], 24, 12))

	/* decode msm header */
	if ncell = rtcm.decode_msm_head(sys, &sync, &iod, &h, &i); ncell < 0 {
		return -1
	}

	if i+int(h.nsat)*36+ncell*80 > rtcm.MsgLen*8 {
		Trace(2, "rtcm3 %d length error: nsat=%d ncell=%d len=%d\n", ctype, h.nsat,
			ncell, rtcm.MsgLen)
		return -1
	}
	for j = 0; j < int(h.nsat); j++ {
		r[j], rr[j] = 0.0, 0.0
		ex[j] = 15
	}
	for j = 0; j < ncell; j++ {
		pr[j], cp[j], rrf[j] = -1e16, -1e16, -1e16
	}

	/* decode satellite data */
	for j = 0; j < int(h.nsat); j++ { /* range */
		rng = int(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
		if rng != 255 {
			r[j] = float64(rng) * RANGE_MS
		}
	}
	for j = 0; j < int(h.nsat); j++ { /* extended info */
		ex[j] = int(GetBitU(rtcm.Buff[:], i, 4))
		i += 4
	}
	for j = 0; j < int(h.nsat); j++ {
		rng_m = int(GetBitU(rtcm.Buff[:], i, 10))
		i += 10
		if r[j] != 0.0 {
			r[j] += float64(rng_m) * P2_10 * RANGE_MS
		}
	}
	for j = 0; j < int(h.nsat); j++ { /* phaserangerate */
		rate = int(GetBits(rtcm.Buff[:], i, 14))
		i += 14
		if rate != -8192 {
			rr[j] = float64(rate) * 1.0
		}
	}
	/* decode signal data */
	for j = 0; j < ncell; j++ { /* pseudorange */
		prv = int(GetBits(rtcm.Buff[:], i, 20))
		i += 20
		if prv != -524288 {
			pr[j] = float64(prv) * P2_29 * RANGE_MS
		}
	}
	for j = 0; j < ncell; j++ { /* phaserange */
		cpv = int(GetBits(rtcm.Buff[:], i, 24))
		i += 24
		if cpv != -8388608 {
			cp[j] = float64(cpv) * P2_31 * RANGE_MS
		}
	}
	for j = 0; j < ncell; j++ { /* lock time */
		lock[j] = int(GetBitU(rtcm.Buff[:], i, 10))
		i += 10
	}
	for j = 0; j < ncell; j++ { /* half-cycle amiguity */
		half[j] = int(GetBitU(rtcm.Buff[:], i, 1))
		i += 1
	}
	for j = 0; j < ncell; j++ { /* cnr */
		cnr[j] = float64(GetBitU(rtcm.Buff[:], i, 10)) * 0.0625
		i += 10
	}
	for j = 0; j < ncell; j++ { /* phaserangerate */
		rrv = int(GetBits(rtcm.Buff[:], i, 15))
		i += 15
		if rrv != -16384 {
			rrf[j] = float64(rrv) * 0.0001
		}
	}
	/* save obs data in msm message */
	rtcm.SaveMsmObs(sys, &h, r[:], pr[:], cp[:], rr[:], rrf[:], cnr[:], lock[:], ex[:], half[:])

	return retsync(sync, &rtcm.ObsFlag)
}
