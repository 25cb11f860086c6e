package gnssgo_test

import (
	"os"
	"path/filepath"
	"testing"

	"gnssgo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_LoadConfig_RoundTrip(t *testing.T) {
	require := require.New(t)
	assert := assert.New(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "rtcm3dump.yaml")
	body := "input: sample.rtcm3\n" +
		"trace_file: dump.trace\n" +
		"trace_level: 2\n" +
		"station_id: 7\n" +
		"ephem_all: true\n" +
		"signals:\n" +
		"  - \"-GL1C\"\n" +
		"  - \"-RL1P\"\n"
	require.NoError(os.WriteFile(path, []byte(body), 0644))

	cfg, err := gnssgo.LoadConfig(path)
	require.NoError(err)
	assert.Equal("sample.rtcm3", cfg.Input)
	assert.Equal("dump.trace", cfg.TraceFile)
	assert.Equal(2, cfg.TraceLvl)
	assert.Equal(7, cfg.StaId)
	assert.True(cfg.EphAll)
	assert.Equal([]string{"-GL1C", "-RL1P"}, cfg.Signals)

	opt := cfg.OptString()
	assert.Contains(opt, "-EPHALL")
	assert.Contains(opt, "-STA=7")
	assert.Contains(opt, "-GL1C")
	assert.Contains(opt, "-RL1P")
}

func Test_LoadConfig_MissingFile(t *testing.T) {
	assert := assert.New(t)
	_, err := gnssgo.LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(err)
}
