package bridge

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"time"

	"github.com/denisbrodbeck/machineid"
	"github.com/golang/glog"
	"gopkg.in/yaml.v3"

	"github.com/robotalks/serialmp3.go/pkg/mp3"
	"github.com/robotalks/serialmp3.go/pkg/mp3/port"
)

// Config defines the options of the bridge daemon.
type Config struct {
	// Port is a serial device path or a tcp:// or ws:// URL.
	Port string `yaml:"port"`
	Baud int    `yaml:"baud"`

	// MQTTBrokerURL e.g. mqtt://host:port/topic-prefix/
	MQTTBrokerURL string `yaml:"mqtt_url"`
	ID            string `yaml:"id"`

	Interval     time.Duration `yaml:"interval"`
	FrameTimeout time.Duration `yaml:"frame_timeout"`
	MetricsAddr  string        `yaml:"metrics_addr"`
}

var (
	defaultConfig = Config{
		Baud:          port.DefaultBaud,
		MQTTBrokerURL: "mqtt://localhost:1883/mp3/",
		Interval:      50 * time.Millisecond,
		FrameTimeout:  mp3.DefaultTiming.FrameTimeout,
	}

	// baseConfig holds defaults with environment overrides, before flags.
	baseConfig Config
	configFile string
)

func init() {
	if val := os.Getenv("MP3_PORT"); val != "" {
		defaultConfig.Port = val
	}
	if val := os.Getenv("MP3_BAUD"); val != "" {
		if baud, err := strconv.Atoi(val); err == nil {
			defaultConfig.Baud = baud
		} else {
			glog.Warningf("ignore MP3_BAUD %q: %v", val, err)
		}
	}
	if val := os.Getenv("MP3_MQTT_URL"); val != "" {
		defaultConfig.MQTTBrokerURL = val
	}
	defaultConfig.ID = os.Getenv("MP3_ID")
	baseConfig = defaultConfig
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&configFile, "config", configFile, "YAML config file, flags override it")
	flag.StringVar(&defaultConfig.Port, "port", defaultConfig.Port, "Serial device, tcp:// or ws:// URL")
	flag.IntVar(&defaultConfig.Baud, "baud", defaultConfig.Baud, "Serial baud rate")
	flag.StringVar(&defaultConfig.MQTTBrokerURL, "mqtt", defaultConfig.MQTTBrokerURL, "MQTT broker URL")
	flag.StringVar(&defaultConfig.ID, "id", defaultConfig.ID, "Device ID, defaults to machine ID")
	flag.DurationVar(&defaultConfig.Interval, "interval", defaultConfig.Interval, "Response polling interval")
	flag.DurationVar(&defaultConfig.FrameTimeout, "frame-timeout", defaultConfig.FrameTimeout, "Max wait for a frame end marker, 0 waits forever")
	flag.StringVar(&defaultConfig.MetricsAddr, "metrics", defaultConfig.MetricsAddr, "Listen address of /metrics, empty to disable")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a Config. Later sources override earlier ones:
// built-in defaults, MP3_* environment, the -config file, explicit flags.
func NewConfig() (*Config, error) {
	conf := defaultConfig
	if configFile != "" {
		conf = baseConfig
		if err := conf.LoadFile(configFile); err != nil {
			return nil, err
		}
		flag.Visit(func(f *flag.Flag) { conf.setFlag(f.Name) })
	}
	if conf.ID == "" {
		id, err := machineid.ProtectedID("serialmp3")
		if err != nil {
			return nil, fmt.Errorf("device id: %v", err)
		}
		conf.ID = id
	}
	return &conf, nil
}

// LoadFile reads YAML from path into c. Keys absent from the file
// keep their current values.
func (c *Config) LoadFile(path string) error {
	data, err := ioutil.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%s: %v", path, err)
	}
	return nil
}

func (c *Config) setFlag(name string) {
	switch name {
	case "port":
		c.Port = defaultConfig.Port
	case "baud":
		c.Baud = defaultConfig.Baud
	case "mqtt":
		c.MQTTBrokerURL = defaultConfig.MQTTBrokerURL
	case "id":
		c.ID = defaultConfig.ID
	case "interval":
		c.Interval = defaultConfig.Interval
	case "frame-timeout":
		c.FrameTimeout = defaultConfig.FrameTimeout
	case "metrics":
		c.MetricsAddr = defaultConfig.MetricsAddr
	}
}

// Timing returns the Player timing for this config.
func (c *Config) Timing() mp3.Timing {
	t := mp3.DefaultTiming
	t.FrameTimeout = c.FrameTimeout
	return t
}
