package config

const (
	defaultLogDir        = "~/.local/share/pigeonhole/logs"
	defaultTimeAttribute = "creation"
	defaultSmallMaxMB    = 1
	defaultMediumMaxMB   = 10
	defaultWorkers       = 1
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"

	bytesPerMB int64 = 1 << 20
)

// Default returns a Config populated with repository defaults. Paths are
// left in their unexpanded form; normalize resolves them during Load.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Organize: Organize{
			TimeAttribute: defaultTimeAttribute,
			SmallMaxMB:    defaultSmallMaxMB,
			MediumMaxMB:   defaultMediumMaxMB,
			Workers:       defaultWorkers,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
