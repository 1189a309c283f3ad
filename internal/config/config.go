package config

// Config holds runtime configuration for the server.
type Config struct {
	// Port is the HTTP listen port. Empty means scan for a free one.
	Port     string `env:"PORT"`
	PortScan PortScanConfig
	Storage  StorageConfig
	Log      LogConfig
	Metrics  MetricsConfig
}

// PortScanConfig bounds the free-port search used when Port is empty.
type PortScanConfig struct {
	Start int `env:"PORT_SCAN_START" envDefault:"5000"`
	Limit int `env:"PORT_SCAN_LIMIT" envDefault:"100"`
}

// LogConfig controls the slog handler.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL"  envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"text"`
}

// Load reads configuration from environment variables with sensible defaults.
// A malformed variable yields the full default configuration alongside the error.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Default(), err
	}
	return cfg.normalize(), nil
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		PortScan: PortScanConfig{
			Start: defaultPortScanStart,
			Limit: defaultPortScanLimit,
		},
		Storage: StorageConfig{
			DataDir:         defaultDataDir,
			HeroesFile:      defaultHeroesFile,
			ProgressionFile: defaultProgressionFile,
		},
		Log: LogConfig{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
		Metrics: MetricsConfig{
			Port:         defaultMetricsPort,
			ServiceName:  defaultServiceName,
			OtlpInsecure: true,
		},
	}
}

func (c Config) normalize() Config {
	if c.PortScan.Start <= 0 || c.PortScan.Start > 65535 {
		c.PortScan.Start = defaultPortScanStart
	}
	if c.PortScan.Limit <= 0 {
		c.PortScan.Limit = defaultPortScanLimit
	}
	c.Storage = c.Storage.normalize()
	if c.Metrics.Port == "" {
		c.Metrics.Port = defaultMetricsPort
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = defaultServiceName
	}
	return c
}
