package config

const (
	envPort            = "PORT"
	envPortScanStart   = "PORT_SCAN_START"
	envPortScanLimit   = "PORT_SCAN_LIMIT"
	envDataDir         = "DATA_DIR"
	envHeroesFile      = "HEROES_FILE"
	envProgressionFile = "PROGRESSION_FILE"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	// Ports are tried upward from 5000 when PORT is unset.
	defaultPortScanStart   = 5000
	defaultPortScanLimit   = 100
	defaultDataDir         = "."
	defaultHeroesFile      = "heroes.json"
	defaultProgressionFile = "progression.json"
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
	defaultMetricsPort     = "9090"
	defaultServiceName     = "heroes-service"
)
