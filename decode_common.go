package gnssgo

import (
	"fmt"
	"math"
	"strings"
)

/* adjust weekly rollover of GPS time ----------------------------------------*/
func (rtcm *Rtcm) AdjWeek(tow float64) {
	var (
		tow_p float64
		week  int
	)

	/* if no time, get current time from the injected clock */
	if rtcm.Time.Time == 0 {
		rtcm.Time = Utc2GpsT(rtcm.Clk.Now())
	}
	tow_p = Time2GpsT(rtcm.Time, &week)
	if tow < tow_p-302400.0 {
		tow += 604800.0
	} else if tow > tow_p+302400.0 {
		tow -= 604800.0
	}
	rtcm.Time = GpsT2Time(week, tow)
}

/* adjust weekly rollover of BDS time ----------------------------------------*/
func AdjBDTWeek(week int) int {
	var w int
	Time2BDT(GpsT2BDT(Utc2GpsT(SystemClock.Now())), &w)
	if w < 1 {
		w = 1 /* use 2006/1/1 if time is earlier than 2006/1/1 */
	}
	return week + (w-week+512)/1024*1024
}

/* adjust daily rollover of GLONASS time -------------------------------------*/
func (rtcm *Rtcm) AdjDay_Glot(tod float64) {
	var (
		time       Gtime
		tow, tod_p float64
		week       int
	)

	if rtcm.Time.Time == 0 {
		rtcm.Time = Utc2GpsT(rtcm.Clk.Now())
	}
	time = TimeAdd(GpsT2Utc(rtcm.Time), 10800.0) /* glonass time */
	tow = Time2GpsT(time, &week)
	tod_p = math.Mod(tow, 86400.0)
	tow -= tod_p
	if tod < tod_p-43200.0 {
		tod += 86400.0
	} else if tod > tod_p+43200.0 {
		tod -= 86400.0
	}
	time = GpsT2Time(week, tow+tod)
	rtcm.Time = Utc2GpsT(TimeAdd(time, -10800.0))
}

/* adjust carrier-phase rollover ---------------------------------------------*/
func (rtcm *Rtcm) AdjCP(sat, idx int, cp float64) float64 {
	switch {
	case rtcm.Cp[sat-1][idx] == 0.0:
	case cp < rtcm.Cp[sat-1][idx]-750.0:
		cp += 1500.0
	case cp > rtcm.Cp[sat-1][idx]+750.0:
		cp -= 1500.0
	}
	rtcm.Cp[sat-1][idx] = cp
	return cp
}

/* loss-of-lock indicator ----------------------------------------------------*/
func (rtcm *Rtcm) LossOfLock(sat, idx, lock int) int {
	var lli int = 0
	if (lock == 0 && rtcm.Lock[sat-1][idx] == 0) || lock < int(rtcm.Lock[sat-1][idx]) {
		lli = 1
	}
	rtcm.Lock[sat-1][idx] = uint16(lock)
	return lli
}

/* S/N ratio -------------------------------------------------------------------*/
func SnRatio(snr float64) uint16 {
	if snr <= 0.0 || 100.0 <= snr {
		return 0
	}
	return uint16(snr/float64(SNR_UNIT) + 0.5)
}

/* test station ID consistency, resetting on mismatch --------------------------*/
func (rtcm *Rtcm) test_staid(staid int) int {
	var ctype, id int

	/* test station id option */
	if index := strings.Index(rtcm.Opt, "-STA="); index >= 0 {
		n, _ := fmt.Sscanf(rtcm.Opt[index:], "-STA=%d", &id)
		if n == 1 && staid != id {
			return 0
		}
	}

	/* save station id */
	if rtcm.StaId == 0 || rtcm.ObsFlag > 0 {
		rtcm.StaId = staid
	} else if staid != rtcm.StaId {
		ctype = int(GetBitU(rtcm.Buff[:], 24, 12))
		Trace(2, "rtcm3 %d staid invalid id=%d %d\n", ctype, staid, rtcm.StaId)

		/* reset station id if station id error */
		rtcm.StaId = 0
		return 0
	}
	return 1
}
