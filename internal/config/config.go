package config

import (
	"github.com/spf13/viper"
)

type Config struct {
	Snapshot SnapshotConfig
	House    HouseConfig
	Log      LogConfig
}

type SnapshotConfig struct {
	Path string
}

type HouseConfig struct {
	Name    string
	Address string
	Phone   string
}

type LogConfig struct {
	Level string
}

func Load() (*Config, error) {
	viper.AutomaticEnv()

	viper.SetDefault("SNAPSHOT_PATH", "data/casarural.json")
	viper.SetDefault("HOUSE_NAME", "Casa Rural Los Alamos")
	viper.SetDefault("HOUSE_ADDRESS", "Calle Principal 123, Pueblo Viejo")
	viper.SetDefault("HOUSE_PHONE", "912345678")
	viper.SetDefault("LOG_LEVEL", "info")

	cfg := &Config{
		Snapshot: SnapshotConfig{
			Path: viper.GetString("SNAPSHOT_PATH"),
		},
		House: HouseConfig{
			Name:    viper.GetString("HOUSE_NAME"),
			Address: viper.GetString("HOUSE_ADDRESS"),
			Phone:   viper.GetString("HOUSE_PHONE"),
		},
		Log: LogConfig{
			Level: viper.GetString("LOG_LEVEL"),
		},
	}

	return cfg, nil
}
