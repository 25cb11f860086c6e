/*------------------------------------------------------------------------------
* rtcm3dump.go : dump decoded records from an rtcm version 3 byte stream
*
* Command options are as follows.
*
*  -opt opt          receiver dependent options (passed through to Rtcm.Opt)
*  -c   config.yaml  load input file and options from a YAML config
*  -sta sta          only accept messages with this station id
*  -ephall           input all ephemerides (default: only new)
*  -t   level        trace level [0]
*  -tl  file         trace/log file [no]
*  -h                print help
*-----------------------------------------------------------------------------*/
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"gnssgo"
)

var help []string = []string{
	"",
	" usage: rtcm3dump [-opt \"opts\"] [-c config.yaml] [-sta id] [-ephall] [-t level] [-tl file] file",
	"",
	" Read an rtcm version 3 byte stream from file and print one line per",
	" decoded record: observation epochs, ephemerides, station descriptors",
	" and ssr corrections. Every run is tagged with a session id for log",
	" correlation across concurrent invocations.",
	"",
	" -opt opt          receiver dependent options, space separated",
	" -c   config.yaml  load input file and options from a yaml config file",
	" -sta sta          accept only messages carrying this station id",
	" -ephall           input all ephemerides, not only changed ones",
	" -t   level        trace level [0]",
	" -tl  file         trace/log file [no]",
	" -h                print help",
	""}

func printhelp() {
	for _, v := range help {
		fmt.Fprintf(os.Stderr, "%s\n", v)
	}
	os.Exit(0)
}

func statusName(ret int) string {
	switch ret {
	case -2:
		return "eof"
	case -1:
		return "error"
	case 0:
		return "none"
	case 1:
		return "obs"
	case 2:
		return "ephemeris"
	case 5:
		return "station"
	case 10:
		return "ssr"
	default:
		return "unknown"
	}
}

func run(runID uuid.UUID, file, opt string, staId int, ephAll bool, traceLevel int, traceFile string) error {
	fp, err := os.Open(file)
	if err != nil {
		return errors.Wrapf(err, "open input %s", file)
	}
	defer fp.Close()

	if traceFile != "" {
		gnssgo.TraceOpen(traceFile)
		defer gnssgo.TraceClose()
	}
	gnssgo.TraceLevel(traceLevel)

	rtcm := &gnssgo.Rtcm{}
	rtcm.InitRtcm()
	rtcm.Time = gnssgo.Utc2GpsT(gnssgo.SystemClock.Now())
	if ephAll {
		opt += " -EPHALL"
	}
	if staId > 0 {
		opt += fmt.Sprintf(" -STA=%d", staId)
	}
	rtcm.Opt = opt

	counts := map[int]int{}
	for {
		ret := rtcm.InputRtcm3f(fp)
		if ret == -2 {
			break
		}
		counts[ret]++
		if ret > 0 {
			fmt.Printf("%s %s %s\n", runID, statusName(ret), rtcm.MsgType)
		}
	}

	fmt.Printf("%s done: obs=%d eph=%d station=%d ssr=%d errors=%d\n",
		runID, counts[1], counts[2], counts[5], counts[10], counts[-1])
	return nil
}

func main() {
	var opt, cfgFile string
	var staId, traceLevel int
	var ephAll bool
	var traceFile string

	flag.StringVar(&opt, "opt", "", "")
	flag.StringVar(&cfgFile, "c", "", "")
	flag.IntVar(&staId, "sta", 0, "")
	flag.BoolVar(&ephAll, "ephall", false, "")
	flag.IntVar(&traceLevel, "t", 0, "")
	flag.StringVar(&traceFile, "tl", "", "")
	help_ := flag.Bool("h", false, "")
	flag.Parse()

	if *help_ {
		printhelp()
	}

	var file string
	if cfgFile != "" {
		cfg, err := gnssgo.LoadConfig(cfgFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "rtcm3dump: %+v\n", err)
			os.Exit(1)
		}
		file = cfg.Input
		opt = cfg.OptString() + " " + opt
		if traceFile == "" {
			traceFile = cfg.TraceFile
		}
		if traceLevel == 0 {
			traceLevel = cfg.TraceLvl
		}
		if staId == 0 {
			staId = cfg.StaId
		}
		ephAll = ephAll || cfg.EphAll
	}
	if flag.NArg() > 0 {
		file = flag.Arg(0)
	}
	if file == "" {
		printhelp()
	}

	runID := uuid.New()
	if err := run(runID, file, opt, staId, ephAll, traceLevel, traceFile); err != nil {
		fmt.Fprintf(os.Stderr, "rtcm3dump: %+v\n", err)
		os.Exit(1)
	}
}
