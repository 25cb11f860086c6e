package gnssgo

import (
	"fmt"
	"math"
	"strings"
)

/* decode type 4073: proprietary message Mitsubishi Electric -----------------*/
func (rtcm *Rtcm) decode_type4073() int {
	i := 24 + 12
	subtype := int(GetBitU(rtcm.Buff[:], i, 4))
	i += 4

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" subtype=%d", subtype)
	}
	Trace(5, "rtcm3 4073: unsupported message subtype=%d\n", subtype)
	return 0
}

/* decode type 4076: proprietary message IGS ---------------------------------*/
func (rtcm *Rtcm) decode_type4076() int {
	var ver, subtype int
	i := 24 + 12
	if i+3+8 >= rtcm.MsgLen*8 {
		Trace(2, "rtcm3 4076: length error len=%d\n", rtcm.MsgLen)
		return -1
	}
	ver = int(GetBitU(rtcm.Buff[:], i, 3))
	i += 3
	subtype = int(GetBitU(rtcm.Buff[:], i, 8))
	i += 8

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" ver=%d subtype=%3d", ver, subtype)
	}
	switch subtype {
	case 21:
		return rtcm.decode_ssr1(SYS_GPS, subtype)
	case 22:
		return rtcm.decode_ssr2(SYS_GPS, subtype)
	case 23:
		return rtcm.decode_ssr4(SYS_GPS, subtype)
	case 24:
		return rtcm.decode_ssr6(SYS_GPS, subtype)
	case 25:
		return rtcm.decode_ssr3(SYS_GPS, subtype)
	case 26:
		return rtcm.decode_ssr7(SYS_GPS, subtype)
	case 27:
		return rtcm.decode_ssr5(SYS_GPS, subtype)
	case 41:
		return rtcm.decode_ssr1(SYS_GLO, subtype)
	case 42:
		return rtcm.decode_ssr2(SYS_GLO, subtype)
	case 43:
		return rtcm.decode_ssr4(SYS_GLO, subtype)
	case 44:
		return rtcm.decode_ssr6(SYS_GLO, subtype)
	case 45:
		return rtcm.decode_ssr3(SYS_GLO, subtype)
	case 46:
		return rtcm.decode_ssr7(SYS_GLO, subtype)
	case 47:
		return rtcm.decode_ssr5(SYS_GLO, subtype)
	case 61:
		return rtcm.decode_ssr1(SYS_GAL, subtype)
	case 62:
		return rtcm.decode_ssr2(SYS_GAL, subtype)
	case 63:
		return rtcm.decode_ssr4(SYS_GAL, subtype)
	case 64:
		return rtcm.decode_ssr6(SYS_GAL, subtype)
	case 65:
		return rtcm.decode_ssr3(SYS_GAL, subtype)
	case 66:
		return rtcm.decode_ssr7(SYS_GAL, subtype)
	case 67:
		return rtcm.decode_ssr5(SYS_GAL, subtype)
	case 81:
		return rtcm.decode_ssr1(SYS_QZS, subtype)
	case 82:
		return rtcm.decode_ssr2(SYS_QZS, subtype)
	case 83:
		return rtcm.decode_ssr4(SYS_QZS, subtype)
	case 84:
		return rtcm.decode_ssr6(SYS_QZS, subtype)
	case 85:
		return rtcm.decode_ssr3(SYS_QZS, subtype)
	case 86:
		return rtcm.decode_ssr7(SYS_QZS, subtype)
	case 87:
		return rtcm.decode_ssr5(SYS_QZS, subtype)
	case 101:
		return rtcm.decode_ssr1(SYS_CMP, subtype)
	case 102:
		return rtcm.decode_ssr2(SYS_CMP, subtype)
	case 103:
		return rtcm.decode_ssr4(SYS_CMP, subtype)
	case 104:
		return rtcm.decode_ssr6(SYS_CMP, subtype)
	case 105:
		return rtcm.decode_ssr3(SYS_CMP, subtype)
	case 106:
		return rtcm.decode_ssr7(SYS_CMP, subtype)
	case 107:
		return rtcm.decode_ssr5(SYS_CMP, subtype)
	case 121:
		return rtcm.decode_ssr1(SYS_SBS, subtype)
	case 122:
		return rtcm.decode_ssr2(SYS_SBS, subtype)
	case 123:
		return rtcm.decode_ssr4(SYS_SBS, subtype)
	case 124:
		return rtcm.decode_ssr6(SYS_SBS, subtype)
	case 125:
		return rtcm.decode_ssr3(SYS_SBS, subtype)
	case 126:
		return rtcm.decode_ssr7(SYS_SBS, subtype)
	case 127:
		return rtcm.decode_ssr5(SYS_SBS, subtype)
	}
	Trace(3, "rtcm3 4076: unsupported message subtype=%d\n", subtype)
	return 0
}

/* decode RTCM ver.3 message --------------------------------------------------*/
func (rtcm *Rtcm) DecodeRtcm3() int {
	var tow float64
	var ret, ctype, week int
	ctype = int(GetBitU(rtcm.Buff[:], 24, 12))
	Trace(4, "decode_rtcm3: len=%3d type=%d\n", rtcm.MsgLen, ctype)

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf("RTCM %4d (%4d):", ctype, rtcm.MsgLen)
	}
	/* real-time input option */
	if strings.Contains(rtcm.Opt, "-RT_INP") {
		tow = Time2GpsT(Utc2GpsT(rtcm.Clk.Now()), &week)
		rtcm.Time = GpsT2Time(week, math.Floor(tow))
	}
	switch ctype {
	case 1001:
		ret = rtcm.decode_type1001()
	case 1002:
		ret = rtcm.decode_type1002()
	case 1003:
		ret = rtcm.decode_type1003()
	case 1004:
		ret = rtcm.decode_type1004()
	case 1005:
		ret = rtcm.decode_type1005()
	case 1006:
		ret = rtcm.decode_type1006()
	case 1007:
		ret = rtcm.decode_type1007()
	case 1008:
		ret = rtcm.decode_type1008()
	case 1009:
		ret = rtcm.decode_type1009()
	case 1010:
		ret = rtcm.decode_type1010()
	case 1011:
		ret = rtcm.decode_type1011()
	case 1012:
		ret = rtcm.decode_type1012()
	case 1013:
		ret = rtcm.decode_type1013()
	case 1019:
		ret = rtcm.decode_type1019()
	case 1020:
		ret = rtcm.decode_type1020()
	case 1029:
		ret = rtcm.decode_type1029()
	case 1033:
		ret = rtcm.decode_type1033()
	case 1044:
		ret = rtcm.decode_type1044()
	case 1045:
		ret = rtcm.decode_type1045()
	case 1046:
		ret = rtcm.decode_type1046()
	case 63:
		ret = rtcm.decode_type1042()
		/* RTCM draft */
	case 1042:
		ret = rtcm.decode_type1042()
	case 1057:
		ret = rtcm.decode_ssr1(SYS_GPS, 0)
	case 1058:
		ret = rtcm.decode_ssr2(SYS_GPS, 0)
	case 1059:
		ret = rtcm.decode_ssr3(SYS_GPS, 0)
	case 1060:
		ret = rtcm.decode_ssr4(SYS_GPS, 0)
	case 1061:
		ret = rtcm.decode_ssr5(SYS_GPS, 0)
	case 1062:
		ret = rtcm.decode_ssr6(SYS_GPS, 0)
	case 1063:
		ret = rtcm.decode_ssr1(SYS_GLO, 0)
	case 1064:
		ret = rtcm.decode_ssr2(SYS_GLO, 0)
	case 1065:
		ret = rtcm.decode_ssr3(SYS_GLO, 0)
	case 1066:
		ret = rtcm.decode_ssr4(SYS_GLO, 0)
	case 1067:
		ret = rtcm.decode_ssr5(SYS_GLO, 0)
	case 1068:
		ret = rtcm.decode_ssr6(SYS_GLO, 0)
	case 1071, 1072, 1073:
		ret = rtcm.decode_msm0(SYS_GPS)
		/* not supported */
	case 1074:
		ret = rtcm.decode_msm4(SYS_GPS)
	case 1075:
		ret = rtcm.decode_msm5(SYS_GPS)
	case 1076:
		ret = rtcm.decode_msm6(SYS_GPS)
	case 1077:
		ret = rtcm.decode_msm7(SYS_GPS)
	case 1081, 1082, 1083:
		ret = rtcm.decode_msm0(SYS_GLO)
		/* not supported */
	case 1084:
		ret = rtcm.decode_msm4(SYS_GLO)
	case 1085:
		ret = rtcm.decode_msm5(SYS_GLO)
	case 1086:
		ret = rtcm.decode_msm6(SYS_GLO)
	case 1087:
		ret = rtcm.decode_msm7(SYS_GLO)
	case 1091, 1092, 1093:
		ret = rtcm.decode_msm0(SYS_GAL)
		/* not supported */
	case 1094:
		ret = rtcm.decode_msm4(SYS_GAL)
	case 1095:
		ret = rtcm.decode_msm5(SYS_GAL)
	case 1096:
		ret = rtcm.decode_msm6(SYS_GAL)
	case 1097:
		ret = rtcm.decode_msm7(SYS_GAL)
	case 1101, 1102, 1103:
		ret = rtcm.decode_msm0(SYS_SBS)
		/* not supported */
	case 1104:
		ret = rtcm.decode_msm4(SYS_SBS)
	case 1105:
		ret = rtcm.decode_msm5(SYS_SBS)
	case 1106:
		ret = rtcm.decode_msm6(SYS_SBS)
	case 1107:
		ret = rtcm.decode_msm7(SYS_SBS)
	case 1111, 1112, 1113:
		ret = rtcm.decode_msm0(SYS_QZS)
		/* not supported */
	case 1114:
		ret = rtcm.decode_msm4(SYS_QZS)
	case 1115:
		ret = rtcm.decode_msm5(SYS_QZS)
	case 1116:
		ret = rtcm.decode_msm6(SYS_QZS)
	case 1117:
		ret = rtcm.decode_msm7(SYS_QZS)
	case 1121, 1122, 1123:
		ret = rtcm.decode_msm0(SYS_CMP)
		/* not supported */
	case 1124:
		ret = rtcm.decode_msm4(SYS_CMP)
	case 1125:
		ret = rtcm.decode_msm5(SYS_CMP)
	case 1126:
		ret = rtcm.decode_msm6(SYS_CMP)
	case 1127:
		ret = rtcm.decode_msm7(SYS_CMP)
	case 1230:
		ret = rtcm.decode_type1230()
	case 1240:
		ret = rtcm.decode_ssr1(SYS_GAL, 0)
		/* draft */
	case 1241:
		ret = rtcm.decode_ssr2(SYS_GAL, 0)
		/* draft */
	case 1242:
		ret = rtcm.decode_ssr3(SYS_GAL, 0)
		/* draft */
	case 1243:
		ret = rtcm.decode_ssr4(SYS_GAL, 0)
		/* draft */
	case 1244:
		ret = rtcm.decode_ssr5(SYS_GAL, 0)
		/* draft */
	case 1245:
		ret = rtcm.decode_ssr6(SYS_GAL, 0)
		/* draft */
	case 1246:
		ret = rtcm.decode_ssr1(SYS_QZS, 0)
		/* draft */
	case 1247:
		ret = rtcm.decode_ssr2(SYS_QZS, 0)
		/* draft */
	case 1248:
		ret = rtcm.decode_ssr3(SYS_QZS, 0)
		/* draft */
	case 1249:
		ret = rtcm.decode_ssr4(SYS_QZS, 0)
		/* draft */
	case 1250:
		ret = rtcm.decode_ssr5(SYS_QZS, 0)
		/* draft */
	case 1251:
		ret = rtcm.decode_ssr6(SYS_QZS, 0)
		/* draft */
	case 1252:
		ret = rtcm.decode_ssr1(SYS_SBS, 0)
		/* draft */
	case 1253:
		ret = rtcm.decode_ssr2(SYS_SBS, 0)
		/* draft */
	case 1254:
		ret = rtcm.decode_ssr3(SYS_SBS, 0)
		/* draft */
	case 1255:
		ret = rtcm.decode_ssr4(SYS_SBS, 0)
		/* draft */
	case 1256:
		ret = rtcm.decode_ssr5(SYS_SBS, 0)
		/* draft */
	case 1257:
		ret = rtcm.decode_ssr6(SYS_SBS, 0)
		/* draft */
	case 1258:
		ret = rtcm.decode_ssr1(SYS_CMP, 0)
		/* draft */
	case 1259:
		ret = rtcm.decode_ssr2(SYS_CMP, 0)
		/* draft */
	case 1260:
		ret = rtcm.decode_ssr3(SYS_CMP, 0)
		/* draft */
	case 1261:
		ret = rtcm.decode_ssr4(SYS_CMP, 0)
		/* draft */
	case 1262:
		ret = rtcm.decode_ssr5(SYS_CMP, 0)
		/* draft */
	case 1263:
		ret = rtcm.decode_ssr6(SYS_CMP, 0)
		/* draft */
	case 11:
		ret = rtcm.decode_ssr7(SYS_GPS, 0)
		/* tentative */
	case 12:
		ret = rtcm.decode_ssr7(SYS_GAL, 0)
		/* tentative */
	case 13:
		ret = rtcm.decode_ssr7(SYS_QZS, 0)
		/* tentative */
	case 14:
		ret = rtcm.decode_ssr7(SYS_CMP, 0)
		/* tentative */
	case 4073:
		ret = rtcm.decode_type4073()
	case 4076:
		ret = rtcm.decode_type4076()
	}
	if ret >= 0 {
		countDecoded(ctype)
		if 1001 <= ctype && ctype <= 1299 {
			rtcm.Nmsg3[ctype-1000]++ /*   1-299 */
		} else if 4070 <= ctype && ctype <= 4099 {
			rtcm.Nmsg3[ctype-3770]++ /* 300-329 */
		} else {
			rtcm.Nmsg3[0]++ /* other */
		}
	}
	return ret
}
