package gnssgo

import (
	"fmt"
	"strings"
)

var navsys = []int{SYS_GPS, SYS_GLO, SYS_GAL, SYS_QZS, SYS_SBS, SYS_CMP, 0}

/* observation code strings, ordered to match the RINEX 3 obs code table */
var obscodes = []string{
	"", "1C", "1P", "1W", "1Y", "1M", "1N", "1S", "1L", "1E", /*  0- 9 */
	"1A", "1B", "1X", "1Z", "2C", "2D", "2S", "2L", "2X", "2P", /* 10-19 */
	"2W", "2Y", "2M", "2N", "5I", "5Q", "5X", "7I", "7Q", "7X", /* 20-29 */
	"6A", "6B", "6C", "6X", "6Z", "6S", "6L", "8L", "8Q", "8X", /* 30-39 */
	"2I", "2Q", "6I", "6Q", "3I", "3Q", "3X", "1I", "1Q", "", /* 40-49 */
	"", "", "", "", "", "", "", "1D", "5D", "5P", "5Z", /* 50-60 */
	"7D", "7P", "7Z", "8D", "8P", "4A", "4B", "4X", "", ""}

/* code priority for each freq-index, per system in the order
* GPS,GLO,GAL,QZS,SBS,CMP */
var codepris = [6][MAXFREQ]string{
	{"CPYWMNSL", "PYWCMNDLSX", "IQX", "", "", "", ""}, /* GPS */
	{"CPABX", "PCABX", "IQX", "", "", "", ""},         /* GLO */
	{"CABXZ", "IQX", "IQX", "ABCXZ", "IQX", "", ""},   /* GAL */
	{"CLSXZ", "LSX", "IQXDPZ", "LSXEZ", "", "", ""},   /* QZS */
	{"C", "IQX", "", "", "", "", ""},                  /* SBS */
	{"IQXDPAN", "IQXDPZ", "DPX", "IQXA", "DPX", "", ""}, /* BDS */
}

/* satellite system+prn/slot number to satellite number -------------------------
* satellite index order: GPS,GLO,GAL,QZS,CMP,LEO,SBS
*-----------------------------------------------------------------------------*/
func SatNo(sys int, prn int) int {
	if prn <= 0 {
		return 0
	}
	switch sys {
	case SYS_GPS:
		if prn < MINPRNGPS || MAXPRNGPS < prn {
			return 0
		}
		return prn - MINPRNGPS + 1
	case SYS_GLO:
		if prn < MINPRNGLO || MAXPRNGLO < prn {
			return 0
		}
		return NSATGPS + prn - MINPRNGLO + 1
	case SYS_GAL:
		if prn < MINPRNGAL || MAXPRNGAL < prn {
			return 0
		}
		return NSATGPS + NSATGLO + prn - MINPRNGAL + 1
	case SYS_QZS:
		if prn < MINPRNQZS || MAXPRNQZS < prn {
			return 0
		}
		return NSATGPS + NSATGLO + NSATGAL + prn - MINPRNQZS + 1
	case SYS_CMP:
		if prn < MINPRNCMP || MAXPRNCMP < prn {
			return 0
		}
		return NSATGPS + NSATGLO + NSATGAL + NSATQZS + prn - MINPRNCMP + 1
	case SYS_LEO:
		if prn < MINPRNLEO || MAXPRNLEO < prn {
			return 0
		}
		return NSATGPS + NSATGLO + NSATGAL + NSATQZS + NSATCMP + prn - MINPRNLEO + 1
	case SYS_SBS:
		if prn < MINPRNSBS || MAXPRNSBS < prn {
			return 0
		}
		return NSATGPS + NSATGLO + NSATGAL + NSATQZS + NSATCMP + NSATLEO + prn - MINPRNSBS + 1
	}
	return 0
}

/* satellite number to satellite system ----------------------------------------*/
func SatSys(sat int, prn *int) int {
	sys := SYS_NONE
	if sat <= 0 || MAXSAT < sat {
		sat = 0
	} else if sat <= NSATGPS {
		sys = SYS_GPS
		sat += MINPRNGPS - 1
	} else if sat -= NSATGPS; sat <= NSATGLO {
		sys = SYS_GLO
		sat += MINPRNGLO - 1
	} else if sat -= NSATGLO; sat <= NSATGAL {
		sys = SYS_GAL
		sat += MINPRNGAL - 1
	} else if sat -= NSATGAL; sat <= NSATQZS {
		sys = SYS_QZS
		sat += MINPRNQZS - 1
	} else if sat -= NSATQZS; sat <= NSATCMP {
		sys = SYS_CMP
		sat += MINPRNCMP - 1
	} else if sat -= NSATCMP; sat <= NSATLEO {
		sys = SYS_LEO
		sat += MINPRNLEO - 1
	} else if sat -= NSATLEO; sat <= NSATSBS {
		sys = SYS_SBS
		sat += MINPRNSBS - 1
	} else {
		sat = 0
	}
	if prn != nil {
		*prn = sat
	}
	return sys
}

/* satellite id to satellite number ----------------------------------------------
* id: nn,Gnn,Rnn,Enn,Jnn,Cnn,Lnn or Snn
*-----------------------------------------------------------------------------*/
func SatId2No(id string) int {
	var sys, prn int
	var code rune

	if ret, _ := fmt.Sscanf(id, "%d", &prn); ret == 1 {
		if MINPRNGPS <= prn && prn <= MAXPRNGPS {
			sys = SYS_GPS
		} else if MINPRNSBS <= prn && prn <= MAXPRNSBS {
			sys = SYS_SBS
		} else if MINPRNQZS <= prn && prn <= MAXPRNQZS {
			sys = SYS_QZS
		} else {
			return 0
		}
		return SatNo(sys, prn)
	}
	if ret, _ := fmt.Sscanf(id, "%c%d", &code, &prn); ret < 2 {
		return 0
	}

	switch code {
	case 'G':
		sys = SYS_GPS
		prn += MINPRNGPS - 1
	case 'R':
		sys = SYS_GLO
		prn += MINPRNGLO - 1
	case 'E':
		sys = SYS_GAL
		prn += MINPRNGAL - 1
	case 'J':
		sys = SYS_QZS
		prn += MINPRNQZS - 1
	case 'C':
		sys = SYS_CMP
		prn += MINPRNCMP - 1
	case 'L':
		sys = SYS_LEO
		prn += MINPRNLEO - 1
	case 'S':
		sys = SYS_SBS
		prn += 100
	default:
		return 0
	}
	return SatNo(sys, prn)
}

/* satellite number to satellite id ----------------------------------------------*/
func SatNo2Id(sat int, id *string) {
	var prn int
	if id == nil {
		return
	}
	switch SatSys(sat, &prn) {
	case SYS_GPS:
		*id = fmt.Sprintf("G%02d", prn-MINPRNGPS+1)
	case SYS_GLO:
		*id = fmt.Sprintf("R%02d", prn-MINPRNGLO+1)
	case SYS_GAL:
		*id = fmt.Sprintf("E%02d", prn-MINPRNGAL+1)
	case SYS_QZS:
		*id = fmt.Sprintf("J%02d", prn-MINPRNQZS+1)
	case SYS_CMP:
		*id = fmt.Sprintf("C%02d", prn-MINPRNCMP+1)
	case SYS_LEO:
		*id = fmt.Sprintf("L%02d", prn-MINPRNLEO+1)
	case SYS_SBS:
		*id = fmt.Sprintf("%03d", prn)
	default:
		*id = ""
	}
}

/* obs type string to obs code, based on RINEX 3.04 -------------------------------*/
func Obs2Code(obs string) uint8 {
	for i := 1; i < len(obscodes); i++ {
		if len(obscodes[i]) == 0 {
			continue
		}
		if obscodes[i] == obs {
			return uint8(i)
		}
	}
	return CODE_NONE
}

func Code2Obs(code uint8) string {
	if code <= CODE_NONE || MAXCODE < code {
		return ""
	}
	return obscodes[code]
}

func Code2Freq_GPS(code uint8, freq *float64) int {
	obs := Code2Obs(code)
	if len(obs) > 0 {
		switch obs[0] {
		case '1':
			*freq = FREQ1
			return 0
		case '2':
			*freq = FREQ2
			return 1
		case '5':
			*freq = FREQ5
			return 2
		}
	}
	return -1
}

func Code2Freq_GLO(code uint8, fcn int, freq *float64) int {
	obs := Code2Obs(code)
	if fcn < (-7) || fcn > 6 {
		return -1
	}
	if len(obs) > 0 {
		switch obs[0] {
		case '1':
			*freq = FREQ1_GLO + DFRQ1_GLO*float64(fcn)
			return 0
		case '2':
			*freq = FREQ2_GLO + DFRQ2_GLO*float64(fcn)
			return 1
		case '3':
			*freq = FREQ3_GLO
			return 2
		case '4':
			*freq = FREQ1a_GLO
			return 0
		case '6':
			*freq = FREQ2a_GLO
			return 1
		}
	}
	return -1
}

func Code2Freq_GAL(code uint8, freq *float64) int {
	obs := Code2Obs(code)
	if len(obs) < 1 {
		return -1
	}
	switch obs[0] {
	case '1':
		*freq = FREQ1
		return 0
	case '7':
		*freq = FREQ7
		return 1
	case '5':
		*freq = FREQ5
		return 2
	case '6':
		*freq = FREQ6
		return 3
	case '8':
		*freq = FREQ8
		return 4
	}
	return -1
}

func Code2Freq_QZS(code uint8, freq *float64) int {
	obs := Code2Obs(code)
	if len(obs) < 1 {
		return -1
	}
	switch obs[0] {
	case '1':
		*freq = FREQ1
		return 0
	case '2':
		*freq = FREQ2
		return 1
	case '5':
		*freq = FREQ5
		return 2
	case '6':
		*freq = FREQ6
		return 3
	}
	return -1
}

func Code2Freq_SBS(code uint8, freq *float64) int {
	obs := Code2Obs(code)
	if len(obs) < 1 {
		return -1
	}
	switch obs[0] {
	case '1':
		*freq = FREQ1
		return 0
	case '5':
		*freq = FREQ5
		return 1
	}
	return -1
}

func Code2Freq_BDS(code uint8, freq *float64) int {
	obs := Code2Obs(code)
	if len(obs) < 1 {
		return -1
	}
	switch obs[0] {
	case '1':
		*freq = FREQ1
		return 0
	case '2':
		*freq = FREQ1_CMP
		return 0
	case '7':
		*freq = FREQ2_CMP
		return 1
	case '5':
		*freq = FREQ5
		return 2
	case '6':
		*freq = FREQ3_CMP
		return 3
	case '8':
		*freq = FREQ8
		return 4
	}
	return -1
}

/* system and obs code to frequency index ----------------------------------------*/
func Code2Idx(sys int, code uint8) int {
	var freq float64
	switch sys {
	case SYS_GPS:
		return Code2Freq_GPS(code, &freq)
	case SYS_GLO:
		return Code2Freq_GLO(code, 0, &freq)
	case SYS_GAL:
		return Code2Freq_GAL(code, &freq)
	case SYS_QZS:
		return Code2Freq_QZS(code, &freq)
	case SYS_SBS:
		return Code2Freq_SBS(code, &freq)
	case SYS_CMP:
		return Code2Freq_BDS(code, &freq)
	}
	return -1
}

/* system and obs code to carrier frequency --------------------------------------*/
func Code2Freq(sys int, code uint8, fcn int) float64 {
	freq := 0.0
	switch sys {
	case SYS_GPS:
		Code2Freq_GPS(code, &freq)
	case SYS_GLO:
		Code2Freq_GLO(code, fcn, &freq)
	case SYS_GAL:
		Code2Freq_GAL(code, &freq)
	case SYS_QZS:
		Code2Freq_QZS(code, &freq)
	case SYS_SBS:
		Code2Freq_SBS(code, &freq)
	case SYS_CMP:
		Code2Freq_BDS(code, &freq)
	}
	return freq
}

/* satellite and obs code to carrier frequency, using GLONASS fcn from nav -------*/
func Sat2Freq(sat int, code uint8, nav *Nav) float64 {
	var i, fcn, sys, prn int
	sys = SatSys(sat, &prn)

	if sys == SYS_GLO {
		if nav == nil {
			return 0.0
		}
		for i = 0; i < nav.Ng(); i++ {
			if nav.Geph[i].Sat == sat {
				break
			}
		}
		if i < nav.Ng() {
			fcn = nav.Geph[i].Frq
		} else if nav.Glo_fcn[prn-1] > 0 {
			fcn = nav.Glo_fcn[prn-1] - 8
		} else {
			return 0.0
		}
	}
	return Code2Freq(sys, code, fcn)
}

/* set code priority for multiple codes in a frequency ---------------------------*/
func SetCodePri(sys, idx int, pri string) {
	Trace(4, "setcodepri:sys=%d idx=%d pri=%s\n", sys, idx, pri)
	if idx < 0 || idx >= MAXFREQ {
		return
	}
	if sys&SYS_GPS != 0 {
		codepris[0][idx] = pri
	}
	if sys&SYS_GLO != 0 {
		codepris[1][idx] = pri
	}
	if sys&SYS_GAL != 0 {
		codepris[2][idx] = pri
	}
	if sys&SYS_QZS != 0 {
		codepris[3][idx] = pri
	}
	if sys&SYS_SBS != 0 {
		codepris[4][idx] = pri
	}
	if sys&SYS_CMP != 0 {
		codepris[5][idx] = pri
	}
}

/* get code priority for multiple codes in a frequency ----------------------------
* return : priority (15:highest-1:lowest,0:error)
*-----------------------------------------------------------------------------*/
func GetCodePri(sys int, code uint8, opt string) int {
	var optstr, obs, str string
	var i, j, n int

	switch sys {
	case SYS_GPS:
		i, optstr = 0, "GL%2s"
	case SYS_GLO:
		i, optstr = 1, "RL%2s"
	case SYS_GAL:
		i, optstr = 2, "EL%2s"
	case SYS_QZS:
		i, optstr = 3, "JL%2s"
	case SYS_SBS:
		i, optstr = 4, "SL%2s"
	case SYS_CMP:
		i, optstr = 5, "CL%2s"
	default:
		return 0
	}
	if j = Code2Idx(sys, code); j < 0 {
		return 0
	}
	obs = Code2Obs(code)

	/* opt is a space/dash separated option string such as "-GL1C -RL1P";
	* splitting on "-" strips the delimiter from every token, so optstr
	* must not expect one back. */
	for _, q := range strings.Split(opt, "-") {
		if n, _ = fmt.Sscanf(q, optstr, &str); n < 1 || len(str) < 2 || str[0] != obs[0] {
			continue
		}
		if str[1] == obs[1] {
			return 15
		}
		return 0
	}
	if n := strings.Index(codepris[i][j], string(obs[1])); n >= 0 {
		return 14 - n
	}
	return 0
}
