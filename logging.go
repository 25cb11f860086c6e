package gnssgo

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"
)

/* debug trace functions: fmt-based tracing to a swappable, date-templated
* file, matched to a leveled sink rather than a structured logger. */
var fp_trace *os.File
var file_trace string
var level_trace int
var tick_trace int64
var time_trace Gtime

func traceswap() {
	t := Utc2GpsT(SystemClock.Now())
	var path string

	if int(Time2GpsT(t, nil)/86400.0) == int(Time2GpsT(time_trace, nil)/86400.0) {
		return
	}
	time_trace = t

	if RepPath(file_trace, &path, t, "", "") == 0 {
		return
	}
	if fp_trace != nil {
		fp_trace.Close()
	}
	var err error
	fp_trace, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		fp_trace = os.Stderr
	}
}

func TraceOpen(file string) {
	t := Utc2GpsT(SystemClock.Now())
	var path string

	RepPath(file, &path, t, "", "")
	if len(path) == 0 {
		fp_trace = os.Stdout
	} else {
		var err error
		fp_trace, err = os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return
		}
	}
	tick_trace = TickGet()
	file_trace = file
}

func TraceClose() {
	if fp_trace != nil && fp_trace != os.Stderr {
		fp_trace.Close()
	}
	fp_trace = nil
	file_trace = ""
}

func TraceLevel(level int) {
	level_trace = level
}

func Trace(level int, format string, v ...interface{}) {
	if level <= 1 {
		fmt.Printf(format, v...)
	}
	if fp_trace == nil || level > level_trace {
		return
	}
	traceswap()
	fmt.Fprintf(fp_trace, "%d ", level)
	fmt.Fprintf(fp_trace, format, v...)
}

func Tracet(level int, format string, v ...interface{}) {
	if fp_trace == nil || level > level_trace {
		return
	}
	traceswap()
	fmt.Fprintf(fp_trace, "%d %9.3f: ", level, float64(TickGet()-tick_trace)/1000.0)
	fmt.Fprintf(fp_trace, format, v...)
}

func TickGet() int64 {
	return time.Now().UnixMilli()
}

func Sleepms(ms int) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

/* replace a keyword occurrence in a file path ------------------------------------*/
func RepStr(str *string, pat, rep string) int {
	if !strings.Contains(*str, pat) {
		return 0
	}
	*str = strings.Replace(*str, pat, rep, -1)
	return 1
}

/* replace date/time keywords in a trace/log file path -----------------------------
* %Y/%y/%m/%d/%h/%M/%S/%n/%W/%D/%H/%ha/%hb/%hc/%t/%r/%b, see donor semantics.
*-----------------------------------------------------------------------------*/
func RepPath(path string, rpath *string, t Gtime, rov, base string) int {
	var ep [6]float64
	ep0 := [6]float64{2000, 1, 1, 0, 0, 0}
	var week, dow, doy, stat int
	var rep string
	*rpath = path

	if !strings.Contains(path, "%") {
		return 0
	}
	if len(rov) > 0 {
		stat |= RepStr(rpath, "%r", rov)
	}
	if len(base) > 0 {
		stat |= RepStr(rpath, "%b", base)
	}
	if t.Time != 0 {
		Time2Epoch(t, ep[:])
		ep0[0] = ep[0]
		dow = int(math.Floor(Time2GpsT(t, &week) / 86400.0))
		doy = int(math.Floor(TimeDiff(t, Epoch2Time(ep0[:]))/86400.0)) + 1
		rep = fmt.Sprintf("%02d", int(ep[3]/3)*3)
		stat |= RepStr(rpath, "%ha", rep)
		rep = fmt.Sprintf("%02d", int(ep[3]/6)*6)
		stat |= RepStr(rpath, "%hb", rep)
		rep = fmt.Sprintf("%02d", int(ep[3]/12)*12)
		stat |= RepStr(rpath, "%hc", rep)
		rep = fmt.Sprintf("%04.0f", ep[0])
		stat |= RepStr(rpath, "%Y", rep)
		rep = fmt.Sprintf("%02.0f", math.Mod(ep[0], 100.0))
		stat |= RepStr(rpath, "%y", rep)
		rep = fmt.Sprintf("%02.0f", ep[1])
		stat |= RepStr(rpath, "%m", rep)
		rep = fmt.Sprintf("%02.0f", ep[2])
		stat |= RepStr(rpath, "%d", rep)
		rep = fmt.Sprintf("%02.0f", ep[3])
		stat |= RepStr(rpath, "%h", rep)
		rep = fmt.Sprintf("%02.0f", ep[4])
		stat |= RepStr(rpath, "%M", rep)
		rep = fmt.Sprintf("%02.0f", math.Floor(ep[5]))
		stat |= RepStr(rpath, "%S", rep)
		rep = fmt.Sprintf("%03d", doy)
		stat |= RepStr(rpath, "%n", rep)
		rep = fmt.Sprintf("%04d", week)
		stat |= RepStr(rpath, "%W", rep)
		rep = fmt.Sprintf("%d", dow)
		stat |= RepStr(rpath, "%D", rep)
		rep = fmt.Sprintf("%c", 'a'+int(ep[3]))
		stat |= RepStr(rpath, "%H", rep)
		rep = fmt.Sprintf("%02d", int(ep[4]/15)*15)
		stat |= RepStr(rpath, "%t", rep)
	} else {
		for _, k := range []string{"%ha", "%hb", "%hc", "%Y", "%y", "%m", "%d", "%h", "%M", "%S", "%n", "%W", "%D", "%H", "%t"} {
			if strings.Contains(*rpath, k) {
				return -1
			}
		}
	}
	return stat
}
