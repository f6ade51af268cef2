package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"swipeshow/internal/cycler"
	"swipeshow/internal/gesture"
)

// EnvPrefix is the prefix of environment overrides (SWIPESHOW_INTERVAL, ...)
const EnvPrefix = "SWIPESHOW"

// Distances are measured in terminal cells, not pixels
const (
	DefaultMinDistance  = 3.0
	DefaultDragDeadZone = 8.0
)

// Config represents the application configuration
type Config struct {
	Interval     time.Duration `mapstructure:"interval"`
	Initial      int           `mapstructure:"initial"`
	Autostart    bool          `mapstructure:"autostart"`
	Speed        time.Duration `mapstructure:"speed"`
	Friction     float64       `mapstructure:"friction"`
	DragDeadZone float64       `mapstructure:"drag_dead_zone"`
	Mouse        bool          `mapstructure:"mouse"`
	Keys         bool          `mapstructure:"keys"`
	PauseOnHover bool          `mapstructure:"pause_on_hover"`
	Watch        bool          `mapstructure:"watch"`
	LogFile      string        `mapstructure:"log"`
	Swipe        SwipeSettings `mapstructure:"swipe"`

	// File is the config file that was read, "" when none was found
	File string `mapstructure:"-"`
}

// SwipeSettings holds the flick thresholds
type SwipeSettings struct {
	MinDistance float64       `mapstructure:"min_distance"`
	MaxDuration time.Duration `mapstructure:"max_duration"`
}

// flag name -> config key for flags that map one to one
var boundFlags = map[string]string{
	"interval": "interval",
	"speed":    "speed",
	"friction": "friction",
	"watch":    "watch",
	"log":      "log",
}

// RegisterFlags adds the configuration flags to fs
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "config file (default "+DefaultPath()+")")
	fs.Duration("interval", cycler.DefaultInterval, "time between slides, 0 disables autoplay")
	fs.Duration("speed", gesture.DefaultSpeed, "slide transition duration")
	fs.Float64("friction", gesture.DefaultFriction, "resistance when dragging past the first or last slide")
	fs.Bool("no-mouse", false, "disable mouse dragging")
	fs.Bool("no-keys", false, "disable keyboard navigation")
	fs.Bool("no-autostart", false, "do not start the slideshow automatically")
	fs.Bool("watch", false, "reload the deck when its file changes")
	fs.String("log", "swipeshow.log", "log file")
}

// DefaultPath returns the default config file location
func DefaultPath() string {
	return filepath.Join(configDir(), "config.toml")
}

func configDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, "swipeshow")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("interval", cycler.DefaultInterval)
	v.SetDefault("initial", 0)
	v.SetDefault("autostart", true)
	v.SetDefault("speed", gesture.DefaultSpeed)
	v.SetDefault("friction", gesture.DefaultFriction)
	v.SetDefault("drag_dead_zone", DefaultDragDeadZone)
	v.SetDefault("mouse", true)
	v.SetDefault("keys", true)
	v.SetDefault("pause_on_hover", true)
	v.SetDefault("watch", false)
	v.SetDefault("log", "swipeshow.log")
	v.SetDefault("swipe.min_distance", DefaultMinDistance)
	v.SetDefault("swipe.max_duration", gesture.DefaultMaxDuration)
}

// Load reads configuration from defaults, the config file, SWIPESHOW_* environment
// variables and flags, in increasing order of precedence. path overrides the
// default file location; a missing default file is not an error. flags may be nil.
func Load(path string, flags *pflag.FlagSet) (Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(configDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range boundFlags {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("failed to bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}
	c.File = v.ConfigFileUsed()

	if flags != nil {
		if off, _ := flags.GetBool("no-mouse"); off {
			c.Mouse = false
		}
		if off, _ := flags.GetBool("no-keys"); off {
			c.Keys = false
		}
		if off, _ := flags.GetBool("no-autostart"); off {
			c.Autostart = false
		}
	}

	return c, nil
}

// Gesture converts the configuration into a carousel configuration. The
// result carries no callbacks or scheduler; the caller wires those.
func Gesture[T any](c Config) gesture.Config[T] {
	g := gesture.DefaultConfig[T]()
	g.Interval = c.Interval
	g.Initial = c.Initial
	autostart := c.Autostart
	g.Autostart = &autostart
	g.Speed = c.Speed
	g.Friction = c.Friction
	g.DragDeadZone = c.DragDeadZone
	g.EnableMouse = c.Mouse
	g.PauseOnHover = c.PauseOnHover
	g.SwipeThreshold = gesture.SwipeThreshold{
		MinDistance: c.Swipe.MinDistance,
		MaxDuration: c.Swipe.MaxDuration,
	}
	return g
}
