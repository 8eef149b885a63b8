package collide

import (
	_ "embed"
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Defaults for new colliders; overwritten by Config.Apply.
var (
	defaultCollisionLayer = Layer(0)
	defaultCollisionMask  = Layer(0)
)

// maxLayer is the highest layer index a BitFlag can hold.
const maxLayer = 31

// Config holds the package-wide tunables.
type Config struct {
	Projection ProjectionConfig `yaml:"projection"`
	Collision  CollisionConfig  `yaml:"collision"`
	Debug      DebugConfig      `yaml:"debug"`
	Log        LogConfig        `yaml:"log"`
}

// ProjectionConfig controls Project.
type ProjectionConfig struct {
	CircleSegments int `yaml:"circle_segments"`
}

// CollisionConfig sets the layer and mask of new colliders.
type CollisionConfig struct {
	DefaultLayer uint   `yaml:"default_layer"`
	DefaultMask  []uint `yaml:"default_mask"`
}

// DebugConfig holds the tree-check thresholds and the debug switch.
type DebugConfig struct {
	Enabled       bool `yaml:"enabled"`
	MaxTreeDepth  int  `yaml:"max_tree_depth"`
	MaxChildCount int  `yaml:"max_child_count"`
}

// LogConfig describes the logger built by NewLogger.
type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// DefaultConfig returns the embedded defaults.
func DefaultConfig() *Config {
	cfg, err := LoadConfig(nil)
	if err != nil {
		panic(fmt.Sprintf("collide: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// LoadConfig parses data over the embedded defaults. Keys absent from data
// keep their default values. A nil or empty data yields the defaults.
func LoadConfig(data []byte) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config: %w", err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadConfigFile reads a YAML file and passes it to LoadConfig. An empty
// path yields the defaults.
func LoadConfigFile(path string) (*Config, error) {
	if path == "" {
		return LoadConfig(nil)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	return LoadConfig(data)
}

// Validate checks value ranges.
func (c *Config) Validate() error {
	if c.Projection.CircleSegments < 3 {
		return fmt.Errorf("projection.circle_segments must be at least 3, got %d", c.Projection.CircleSegments)
	}
	if c.Collision.DefaultLayer > maxLayer {
		return fmt.Errorf("collision.default_layer must be at most %d, got %d", maxLayer, c.Collision.DefaultLayer)
	}
	for _, n := range c.Collision.DefaultMask {
		if n > maxLayer {
			return fmt.Errorf("collision.default_mask entry must be at most %d, got %d", maxLayer, n)
		}
	}
	if c.Debug.MaxTreeDepth <= 0 || c.Debug.MaxChildCount <= 0 {
		return fmt.Errorf("debug thresholds must be positive")
	}
	if _, err := zapcore.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	switch c.Log.Encoding {
	case "console", "json":
	default:
		return fmt.Errorf("log.encoding must be console or json, got %q", c.Log.Encoding)
	}
	return nil
}

// Apply installs the configuration as the package defaults. It does not
// change the logger; use NewLogger with SetLogger for that.
func (c *Config) Apply() {
	DefaultCircleSegments = c.Projection.CircleSegments
	defaultCollisionLayer = Layer(c.Collision.DefaultLayer)
	defaultCollisionMask = c.CollisionMask()
	debugMaxTreeDepth = c.Debug.MaxTreeDepth
	debugMaxChildCount = c.Debug.MaxChildCount
	SetDebugMode(c.Debug.Enabled)
}

// CollisionMask returns the configured default mask.
func (c *Config) CollisionMask() BitFlag {
	var mask BitFlag
	for _, n := range c.Collision.DefaultMask {
		mask = mask.Add(Layer(n))
	}
	return mask
}

// NewLogger builds a stderr zap logger from the Log section.
func (c *Config) NewLogger() (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}
	zc := zap.Config{
		Level:            zap.NewAtomicLevelAt(level),
		Development:      false,
		Encoding:         c.Log.Encoding,
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	logger, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("building logger: %w", err)
	}
	return logger, nil
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
