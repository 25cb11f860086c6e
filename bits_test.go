package gnssgo_test

import (
	"testing"

	"gnssgo"

	"github.com/stretchr/testify/assert"
)

func Test_GetBitU(t *testing.T) {
	assert := assert.New(t)
	buff := []uint8{0xB6, 0x5A} /* 10110110 01011010 */
	assert.Equal(uint32(0xB6), gnssgo.GetBitU(buff, 0, 8))
	assert.Equal(uint32(0x65), gnssgo.GetBitU(buff, 4, 8))
	assert.Equal(uint32(0x05), gnssgo.GetBitU(buff, 8, 4))
}

func Test_GetBits_SignExtends(t *testing.T) {
	assert := assert.New(t)
	pos := []uint8{0x07} /* 0000 0111 */
	assert.Equal(int32(7), gnssgo.GetBits(pos, 0, 8))

	neg := []uint8{0xF0} /* top nibble all ones: -1 as a 4-bit field */
	assert.Equal(int32(-1), gnssgo.GetBits(neg, 0, 4))

	neg2 := []uint8{0xFE} /* 1111 1110, 8-bit field = -2 */
	assert.Equal(int32(-2), gnssgo.GetBits(neg2, 0, 8))
}
