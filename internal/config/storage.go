package config

import "strings"

// StorageConfig locates the JSON documents on disk.
type StorageConfig struct {
	DataDir         string `env:"DATA_DIR"         envDefault:"."`
	HeroesFile      string `env:"HEROES_FILE"      envDefault:"heroes.json"`
	ProgressionFile string `env:"PROGRESSION_FILE" envDefault:"progression.json"`
}

func (s StorageConfig) normalize() StorageConfig {
	if strings.TrimSpace(s.DataDir) == "" {
		s.DataDir = defaultDataDir
	}
	if strings.TrimSpace(s.HeroesFile) == "" {
		s.HeroesFile = defaultHeroesFile
	}
	if strings.TrimSpace(s.ProgressionFile) == "" {
		s.ProgressionFile = defaultProgressionFile
	}
	return s
}
