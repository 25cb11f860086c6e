package gnssgo_test

import (
	"testing"

	"gnssgo"

	"github.com/stretchr/testify/assert"
)

func Test_Rtk_CRC24q_DeterministicAndSensitiveToPayload(t *testing.T) {
	assert := assert.New(t)
	a := []byte{0xD3, 0x00, 0x03, 0x01, 0x02, 0x03}
	b := append([]byte{}, a...)
	assert.Equal(gnssgo.Rtk_CRC24q(a, len(a)), gnssgo.Rtk_CRC24q(b, len(b)))

	c := []byte{0xD3, 0x00, 0x03, 0x01, 0x02, 0x04} /* one byte different */
	assert.NotEqual(gnssgo.Rtk_CRC24q(a, len(a)), gnssgo.Rtk_CRC24q(c, len(c)))

	assert.Equal(gnssgo.Rtk_CRC24q(a, 3), gnssgo.Rtk_CRC24q(c, 3)) /* shared prefix */
}
