package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizePaths(); err != nil {
		return err
	}
	c.normalizeJellyfin()
	c.normalizeLogging()
	return nil
}

func (c *Config) normalizePaths() error {
	var err error
	if c.Paths.MusicDir != "" {
		if c.Paths.MusicDir, err = expandPath(c.Paths.MusicDir); err != nil {
			return fmt.Errorf("paths.music_dir: %w", err)
		}
	}
	if c.Paths.PlaylistDir != "" {
		if c.Paths.PlaylistDir, err = expandPath(c.Paths.PlaylistDir); err != nil {
			return fmt.Errorf("paths.playlist_dir: %w", err)
		}
	}
	if strings.TrimSpace(c.Paths.LogDir) == "" {
		c.Paths.LogDir = defaultLogDir
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return fmt.Errorf("paths.log_dir: %w", err)
	}
	return nil
}

func (c *Config) normalizeJellyfin() {
	c.Jellyfin.Owner = strings.TrimSpace(c.Jellyfin.Owner)
	c.Jellyfin.Group = strings.TrimSpace(c.Jellyfin.Group)
	if c.Jellyfin.Owner == "" {
		c.Jellyfin.Owner = defaultJellyfinOwner
	}
	if c.Jellyfin.Group == "" {
		c.Jellyfin.Group = defaultJellyfinGroup
	}
}

func (c *Config) normalizeLogging() {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
}
