package gnssgo

import (
	"fmt"
	"math"
)

var (
	gpst0 = [6]float64{1980, 1, 6, 0, 0, 0}  /* gps time reference */
	gst0  = [6]float64{1999, 8, 22, 0, 0, 0} /* galileo system time reference */
	bdt0  = [6]float64{2006, 1, 1, 0, 0, 0}  /* beidou time reference */
)

/* calendar day/time to time ---------------------------------------------------
* args   : []float64 ep       I   day/time {year,month,day,hour,min,sec}
* return : gtime_t struct
* notes  : proper in 1970-2037 or 1970-2099 (64bit time_t)
*-----------------------------------------------------------------------------*/
func Epoch2Time(ep []float64) Gtime {
	doy := []int{1, 32, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335}
	var ret Gtime
	var days, sec int
	year, mon, day := int(ep[0]), int(ep[1]), int(ep[2])

	if year < 1970 || 2099 < year || mon < 1 || 12 < mon {
		return ret
	}

	if year%4 == 0 && mon >= 3 {
		days = (year-1970)*365 + (year-1969)/4 + doy[mon-1] + day - 2 + 1
	} else {
		days = (year-1970)*365 + (year-1969)/4 + doy[mon-1] + day - 2
	}
	sec = int(math.Floor(ep[5]))
	ret.Time = uint64(days*86400 + int(ep[3])*3600 + int(ep[4])*60 + sec)
	ret.Sec = ep[5] - float64(sec)
	return ret
}

/* time to calendar day/time ---------------------------------------------------
* args   : gtime_t t        I   gtime_t struct
*          []float64 ep     O   day/time {year,month,day,hour,min,sec}
*-----------------------------------------------------------------------------*/
func Time2Epoch(t Gtime, ep []float64) {
	mday := []int{
		31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31,
		31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}
	var days, sec, mon, day int

	days = int(t.Time / 86400)
	sec = int(t.Time - uint64(days*86400))
	mon = 0
	for day = days % 1461; mon < 48; mon++ {
		if day >= mday[mon] {
			day -= mday[mon]
		} else {
			break
		}
	}
	ep[0] = float64(1970 + days/1461*4 + mon/12)
	ep[1] = float64(mon%12 + 1)
	ep[2] = float64(day + 1)
	ep[3] = float64(sec / 3600)
	ep[4] = float64(sec % 3600 / 60)
	ep[5] = float64(sec%60) + t.Sec
}

/* gps time to time -------------------------------------------------------------*/
func GpsT2Time(week int, sec float64) Gtime {
	t := Epoch2Time(gpst0[:])
	if sec < (-1e9) || 1e9 < sec {
		sec = 0.0
	}
	t.Time += uint64(86400*7*week) + uint64(sec)
	t.Sec = sec - float64(int(sec))
	return t
}

/* time to gps time --------------------------------------------------------------*/
func Time2GpsT(t Gtime, week *int) float64 {
	t0 := Epoch2Time(gpst0[:])
	sec := t.Time - t0.Time
	w := int(sec / (86400 * 7))
	if week != nil {
		*week = w
	}
	return float64(sec) - float64(w*86400*7) + t.Sec
}

/* galileo system time to time ----------------------------------------------------*/
func GsT2Time(week int, sec float64) Gtime {
	t := Epoch2Time(gst0[:])
	if sec < (-1e9) || 1e9 < sec {
		sec = 0.0
	}
	t.Time += uint64(86400*7*week) + uint64(sec)
	t.Sec = sec - float64(int(sec))
	return t
}

/* time to galileo system time -----------------------------------------------------*/
func Time2GsT(t Gtime, week *int) float64 {
	t0 := Epoch2Time(gst0[:])
	sec := t.Time - t0.Time
	w := int(sec / (86400 * 7))
	if week != nil {
		*week = w
	}
	return float64(sec) - float64(w*86400*7) + t.Sec
}

/* beidou time (bdt) to time --------------------------------------------------------*/
func BDT2Time(week int, sec float64) Gtime {
	t := Epoch2Time(bdt0[:])
	if sec < (-1e9) || 1e9 < sec {
		sec = 0.0
	}
	t.Time += uint64(86400*7*week) + uint64(sec)
	t.Sec = sec - float64(int(sec))
	return t
}

/* time to beidou time (bdt) ---------------------------------------------------------*/
func Time2BDT(t Gtime, week *int) float64 {
	t0 := Epoch2Time(bdt0[:])
	sec := t.Time - t0.Time
	w := int(sec / (86400 * 7))
	if week != nil {
		*week = w
	}
	return float64(sec) - float64(w*86400*7) + t.Sec
}

/* add time ----------------------------------------------------------------------*/
func TimeAdd(t Gtime, sec float64) Gtime {
	t.Sec += sec
	tt := math.Floor(t.Sec)
	t.Time += uint64(tt)
	t.Sec -= tt
	return t
}

/* time difference -----------------------------------------------------------------*/
func TimeDiff(t1 Gtime, t2 Gtime) float64 {
	return float64(t1.Time) - float64(t2.Time) + t1.Sec - t2.Sec
}

/* leap seconds (y,m,d,h,m,s,utc-gpst), most recent first */
var leaps = [19][7]float64{
	{2017, 1, 1, 0, 0, 0, -18},
	{2015, 7, 1, 0, 0, 0, -17},
	{2012, 7, 1, 0, 0, 0, -16},
	{2009, 1, 1, 0, 0, 0, -15},
	{2006, 1, 1, 0, 0, 0, -14},
	{1999, 1, 1, 0, 0, 0, -13},
	{1997, 7, 1, 0, 0, 0, -12},
	{1996, 1, 1, 0, 0, 0, -11},
	{1994, 7, 1, 0, 0, 0, -10},
	{1993, 7, 1, 0, 0, 0, -9},
	{1992, 7, 1, 0, 0, 0, -8},
	{1991, 1, 1, 0, 0, 0, -7},
	{1990, 1, 1, 0, 0, 0, -6},
	{1988, 1, 1, 0, 0, 0, -5},
	{1985, 7, 1, 0, 0, 0, -4},
	{1983, 7, 1, 0, 0, 0, -3},
	{1982, 7, 1, 0, 0, 0, -2},
	{1981, 7, 1, 0, 0, 0, -1},
	{0, 0, 0, 0, 0, 0, 0},
}

/* gpstime to utc --------------------------------------------------------------------*/
func GpsT2Utc(t Gtime) Gtime {
	for i := 0; leaps[i][0] > 0; i++ {
		tu := TimeAdd(t, leaps[i][6])
		if TimeDiff(tu, Epoch2Time(leaps[i][:])) >= 0.0 {
			return tu
		}
	}
	return t
}

/* utc to gpstime ---------------------------------------------------------------------*/
func Utc2GpsT(t Gtime) Gtime {
	for i := 0; leaps[i][0] > 0; i++ {
		if TimeDiff(t, Epoch2Time(leaps[i][:])) >= 0.0 {
			return TimeAdd(t, -leaps[i][6])
		}
	}
	return t
}

/* gpstime to bdt, no leap seconds in bdt -----------------------------------------------*/
func GpsT2BDT(t Gtime) Gtime {
	return TimeAdd(t, -14.0)
}

/* bdt to gpstime -------------------------------------------------------------------------*/
func BDT2GpsT(t Gtime) Gtime {
	return TimeAdd(t, 14.0)
}

/* time to string ("yyyy/mm/dd hh:mm:ss.ssss"), n decimals -----------------------*/
func Time2Str(t Gtime, s *string, n int) {
	var ep [6]float64 = [6]float64{0, 0, 0, 0, 0, 0}

	if n < 0 {
		n = 0
	} else if n > 12 {
		n = 12
	}
	if 1.0-t.Sec < 0.5/math.Pow(10.0, float64(n)) {
		t.Time++
		t.Sec = 0.0
	}
	Time2Epoch(t, ep[:])
	var n1, n2 int
	if n <= 0 {
		n1 = 2
		n2 = 0
	} else {
		n1 = n + 3
		n2 = n
	}

	*s = fmt.Sprintf("%04.0f/%02.0f/%02.0f %02.0f:%02.0f:%0*.*f", ep[0], ep[1], ep[2],
		ep[3], ep[4], n1, n2, ep[5])
}

/* get time string ------------------------------------------------------------------*/
func TimeStr(t Gtime, n int) string {
	var buff string
	Time2Str(t, &buff, n)
	return buff
}
