package gnssgo

import "github.com/goblimey/go-crc24q/crc24q"

/* crc-24q parity for rtcm3 frames, delegated to the go-crc24q package
* rather than a hand-rolled lookup table */
func Rtk_CRC24q(buff []uint8, len int) uint32 {
	return crc24q.Hash(buff[:len])
}
