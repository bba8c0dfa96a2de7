package config

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/womat/debug"
	"gopkg.in/yaml.v2"

	"irdl/pkg/manchester"
)

// Config holds the application configuration.
// It defines the struct of the global config and of the configuration file.
type Config struct {
	Gpio      GpioConfig      `yaml:"gpio"`
	Line      LineConfig      `yaml:"line"`
	Flag      FlagConfig      `yaml:"-"`
	Debug     DebugConfig     `yaml:"debug"`
	Webserver WebserverConfig `yaml:"webserver"`
	MQTT      MQTTConfig      `yaml:"mqtt"`
}

// GpioConfig defines the gpio pins of the infrared receiver and emitter.
type GpioConfig struct {
	In         int    `yaml:"in"`
	Terminator string `yaml:"terminator"`
	Out        int    `yaml:"out"`
}

// LineConfig defines the manchester line parameters.
type LineConfig struct {
	// HalfBitInt is the half bit period in µs (RC5: 889).
	HalfBitInt int           `yaml:"halfbit"`
	HalfBit    time.Duration `yaml:"-"`

	Inactive string `yaml:"inactive"`
	FirstBit int    `yaml:"firstbit"`
	BitOrder string `yaml:"bitorder"`

	// Manchester is the translated codec configuration.
	Manchester manchester.Config `yaml:"-"`
}

// FlagConfig defines the configured command line flags (parameters).
type FlagConfig struct {
	LogLevel   string
	ConfigFile string
}

// WebserverConfig defines the struct of the webserver and webservice
// configuration.
type WebserverConfig struct {
	URL         string          `yaml:"url"`
	Webservices map[string]bool `yaml:"webservices"`
}

// MQTTConfig defines the struct of the mqtt client configuration.
type MQTTConfig struct {
	Connection  string        `yaml:"connection"`
	Topic       string        `yaml:"topic"`
	IntervalInt int           `yaml:"interval"`
	Interval    time.Duration `yaml:"-"`
}

// DebugConfig defines the struct of the debug configuration.
type DebugConfig struct {
	File       io.WriteCloser `yaml:"-"`
	Flag       int            `yaml:"-"`
	FlagString string         `yaml:"flag"`
	FileString string         `yaml:"file"`
}

// NewConfig returns the default configuration: an RC5 infrared receiver
// with a pull-up (line idles high) on gpio 17 and an emitter on gpio 18.
func NewConfig() *Config {
	return &Config{
		Gpio: GpioConfig{
			In:         17,
			Terminator: "pullup",
			Out:        18,
		},
		Line: LineConfig{
			HalfBitInt: 889,
			Inactive:   "high",
			FirstBit:   1,
			BitOrder:   "bigendian",
		},
		Flag: FlagConfig{},
		Debug: DebugConfig{
			FileString: "stderr",
			FlagString: "standard",
		},
		Webserver: WebserverConfig{
			URL: "http://0.0.0.0:4000",
			Webservices: map[string]bool{
				"version": true,
				"health":  true,
				"data":    true,
				"send":    true,
			},
		},
		MQTT: MQTTConfig{
			Connection:  "",
			Topic:       "/irdl/rc5",
			IntervalInt: 60,
		},
	}
}

// LoadConfig reads the configuration file and translates the raw values.
func (c *Config) LoadConfig() error {
	if err := c.readConfigFile(); err != nil {
		return fmt.Errorf("error reading config file %q: %w", c.Flag.ConfigFile, err)
	}

	if c.Flag.LogLevel != "" {
		c.Debug.FlagString = c.Flag.LogLevel
	}
	if err := c.setDebugConfig(); err != nil {
		return fmt.Errorf("unable to open debug file %q: %w", c.Debug.FileString, err)
	}

	if err := c.setLineConfig(); err != nil {
		return err
	}

	c.MQTT.Interval = time.Duration(c.MQTT.IntervalInt) * time.Second

	return nil
}

func (c *Config) readConfigFile() error {
	file, err := os.Open(c.Flag.ConfigFile)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	decoder := yaml.NewDecoder(file)
	return decoder.Decode(c)
}

// setLineConfig translates the line section into a manchester.Config.
func (c *Config) setLineConfig() error {
	c.Line.HalfBit = time.Duration(c.Line.HalfBitInt) * time.Microsecond
	if c.Line.HalfBit <= 0 {
		return fmt.Errorf("invalid half bit period %d", c.Line.HalfBitInt)
	}

	switch c.Line.Inactive {
	case "high":
		c.Line.Manchester.InactiveLevel = true
	case "low":
		c.Line.Manchester.InactiveLevel = false
	default:
		return fmt.Errorf("invalid inactive level %q", c.Line.Inactive)
	}

	switch c.Line.FirstBit {
	case 0:
		c.Line.Manchester.FirstBit = false
	case 1:
		c.Line.Manchester.FirstBit = true
	default:
		return fmt.Errorf("invalid first bit value %d", c.Line.FirstBit)
	}

	switch c.Line.BitOrder {
	case "bigendian":
		c.Line.Manchester.Order = manchester.BigEndian
	case "littleendian":
		c.Line.Manchester.Order = manchester.LittleEndian
	default:
		return fmt.Errorf("invalid bit order %q", c.Line.BitOrder)
	}

	return nil
}

func (c *Config) setDebugConfig() (err error) {
	switch c.Debug.FlagString {
	case "trace", "full":
		c.Debug.Flag = debug.Full
	case "debug":
		c.Debug.Flag = debug.Warning | debug.Info | debug.Error | debug.Fatal | debug.Debug
	case "standard":
		c.Debug.Flag = debug.Standard
	}

	switch c.Debug.FileString {
	case "stderr":
		c.Debug.File = os.Stderr
	case "stdout":
		c.Debug.File = os.Stdout
	default:
		if c.Debug.File, err = os.OpenFile(c.Debug.FileString, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o666); err != nil {
			return
		}
	}

	return
}
