package config

const (
	defaultLogDir        = "~/.local/share/tracksmith/logs"
	defaultLogFormat     = "console"
	defaultLogLevel      = "info"
	defaultJellyfinOwner = "jellyfin"
	defaultJellyfinGroup = "jellyfin"
)

// Default returns a Config populated with repository defaults. The music and
// playlist directories are intentionally left empty; they come from the
// config file, flags, or path detection.
func Default() Config {
	return Config{
		Paths: Paths{
			LogDir: defaultLogDir,
		},
		Jellyfin: Jellyfin{
			SetOwnership: true,
			Owner:        defaultJellyfinOwner,
			Group:        defaultJellyfinGroup,
		},
		Matching: Matching{
			Interactive: true,
		},
		Report: Report{
			Enabled: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
