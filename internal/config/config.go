package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Log     LogConfig     `mapstructure:"log"`
	UI      UIConfig      `mapstructure:"ui"`
	Profile ProfileConfig `mapstructure:"profile"`
}

// LogConfig holds zap settings. The TUI owns the terminal, so logs go to a file.
type LogConfig struct {
	Level string `mapstructure:"level"`
	Path  string `mapstructure:"path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	StartScreen string `mapstructure:"start_screen"`
	Timezone    string `mapstructure:"timezone"`
	Width       int    `mapstructure:"width"`
}

// ProfileConfig seeds the my-page screen.
type ProfileConfig struct {
	Name          string `mapstructure:"name"`
	Phone         string `mapstructure:"phone"`
	Notifications bool   `mapstructure:"notifications"`
}

func defaultDir(base string) string {
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, base, "rebuildhelper")
	}
	return filepath.Join(os.TempDir(), "rebuildhelper")
}

// Path is the config file location: $REBUILDHELPER_CONFIG or
// ~/.config/rebuildhelper/config.toml.
func Path() string {
	if p := os.Getenv("REBUILDHELPER_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(defaultDir(".config"), "config.toml")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.path", filepath.Join(defaultDir(filepath.Join(".local", "state")), "rebuildhelper.log"))
	v.SetDefault("ui.start_screen", "home")
	v.SetDefault("ui.timezone", "Asia/Seoul")
	v.SetDefault("ui.width", 48)
	v.SetDefault("profile.name", "사용자")
	v.SetDefault("profile.phone", "")
	v.SetDefault("profile.notifications", true)
}

// Load reads configuration from file and env. Env var overrides use prefix REBUILDHELPER_.
// A missing config file is not an error.
func Load() (Config, error) {
	return LoadFile(Path())
}

// LoadFile is Load with an explicit file path.
func LoadFile(path string) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	v.SetConfigFile(path)

	v.SetEnvPrefix("REBUILDHELPER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if c.UI.Width < 32 {
		c.UI.Width = 32
	}
	return c, nil
}

// Default returns the built-in configuration without reading file or env.
func Default() Config {
	v := viper.New()
	setDefaults(v)
	var c Config
	_ = v.Unmarshal(&c)
	return c
}

// Save writes the provided config to path, creating the directory if needed.
func Save(cfg Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("log.level", cfg.Log.Level)
	v.Set("log.path", cfg.Log.Path)
	v.Set("ui.start_screen", cfg.UI.StartScreen)
	v.Set("ui.timezone", cfg.UI.Timezone)
	v.Set("ui.width", cfg.UI.Width)
	v.Set("profile.name", cfg.Profile.Name)
	v.Set("profile.phone", cfg.Profile.Phone)
	v.Set("profile.notifications", cfg.Profile.Notifications)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
