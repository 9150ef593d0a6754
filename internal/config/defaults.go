package config

const (
	defaultAddr         = "localhost:8080"
	defaultPath         = "/moq"
	defaultLogLevel     = "info"
	defaultLogFormat    = "text"
	defaultConfigPath   = "~/.config/moqdump/config.toml"
	projectConfigFile   = "moqdump.toml"
	defaultSkipUnknown  = false
	defaultAllowUnknown = false
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Server: Server{
			Addr:         defaultAddr,
			WebTransport: false,
			Path:         defaultPath,
		},
		Decoder: Decoder{
			SkipUnknownControlMessages: defaultSkipUnknown,
			AllowUnknownObjectStatus:   defaultAllowUnknown,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}
