package gnssgo

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

/* Config assembles the decoder's input file and options string from a
* YAML file, for use at the CLI boundary only (cmd/rtcm3dump). No
* decoder ever reads a Config directly; OptString turns it into the
* same -FLAG/-FLAG=value options string InputRtcm3 reads from Rtcm.Opt. */
type Config struct {
	Input     string   `yaml:"input"`
	TraceFile string   `yaml:"trace_file"`
	TraceLvl  int      `yaml:"trace_level"`
	StaId     int      `yaml:"station_id"`
	EphAll    bool     `yaml:"ephem_all"`
	Signals   []string `yaml:"signals"` /* e.g. "-GL1C", "-RL1P" */
}

/* LoadConfig reads and parses a YAML config file at path. */
func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	return &cfg, nil
}

/* OptString renders the config as the options string the decoder's
* Rtcm.Opt field expects. */
func (c *Config) OptString() string {
	opt := ""
	if c.EphAll {
		opt += " -EPHALL"
	}
	if c.StaId > 0 {
		opt += fmt.Sprintf(" -STA=%d", c.StaId)
	}
	for _, s := range c.Signals {
		opt += " " + s
	}
	return opt
}
