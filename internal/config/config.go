package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
)

// Parser settings for the links file
const (
	ParserYAML = "yaml"
	ParserRaw  = "raw"
)

// Environment overrides, applied after the settings file
const (
	EnvLinksFile  = "REPOSTATUS_LINKS_FILE"
	EnvDashboard  = "REPOSTATUS_DASHBOARD"
	EnvReposDir   = "REPOSTATUS_REPOS_DIR"
	EnvGitTimeout = "REPOSTATUS_GIT_TIMEOUT"
	EnvNotesMax   = "REPOSTATUS_NOTES_MAX"
	EnvParser     = "REPOSTATUS_PARSER"
)

type Config struct {
	Paths PathsConfig `toml:"paths"`
	Scan  ScanConfig  `toml:"scan"`

	// Parsed from Scan.GitTimeout (not serialized)
	gitTimeout time.Duration
}

type PathsConfig struct {
	LinksFile string `toml:"links_file"`
	Dashboard string `toml:"dashboard"`
	// Empty means the parent of the working directory
	ReposDir string `toml:"repos_dir"`
}

type ScanConfig struct {
	GitTimeout string `toml:"git_timeout"`
	NotesMax   int    `toml:"notes_max"`
	Parser     string `toml:"parser"`
}

func DefaultConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			LinksFile: ".ajdlink.yaml",
			Dashboard: filepath.Join("docs", "status-dashboard.md"),
		},
		Scan: ScanConfig{
			GitTimeout: "30s",
			NotesMax:   50,
			Parser:     ParserYAML,
		},
	}
}

// Path returns the default settings file location
func Path() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "repostatus.toml"), nil
}

// Load reads settings from the default location. Without a user config
// dir only defaults and environment overrides apply.
func Load() (*Config, error) {
	path, err := Path()
	if err != nil {
		return load("")
	}
	return load(path)
}

// LoadFrom reads settings from path. A missing file yields defaults.
// A .env file in the working directory and REPOSTATUS_* variables are
// applied on top.
func LoadFrom(path string) (*Config, error) {
	return load(path)
}

// load layers defaults, the settings file (skipped when path is empty),
// .env and the environment
func load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, err
		}
		if err == nil {
			if err := toml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing %s: %w", path, err)
			}
		}
	}

	// Missing .env is fine
	_ = godotenv.Load()
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLinksFile); v != "" {
		c.Paths.LinksFile = v
	}
	if v := os.Getenv(EnvDashboard); v != "" {
		c.Paths.Dashboard = v
	}
	if v := os.Getenv(EnvReposDir); v != "" {
		c.Paths.ReposDir = v
	}
	if v := os.Getenv(EnvGitTimeout); v != "" {
		c.Scan.GitTimeout = v
	}
	if v := os.Getenv(EnvNotesMax); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvNotesMax, v, err)
		}
		c.Scan.NotesMax = n
	}
	if v := os.Getenv(EnvParser); v != "" {
		c.Scan.Parser = v
	}
	return nil
}

// finish validates settings and fills derived fields
func (c *Config) finish() error {
	c.Scan.Parser = strings.ToLower(strings.TrimSpace(c.Scan.Parser))
	switch c.Scan.Parser {
	case "":
		c.Scan.Parser = ParserYAML
	case ParserYAML, ParserRaw:
	default:
		return fmt.Errorf("invalid scan.parser %q (want %q or %q)", c.Scan.Parser, ParserYAML, ParserRaw)
	}

	if c.Scan.NotesMax <= 0 {
		return fmt.Errorf("invalid scan.notes_max %d: must be positive", c.Scan.NotesMax)
	}

	// Empty timeout = no bound on the git query
	if c.Scan.GitTimeout == "" {
		c.gitTimeout = 0
		return nil
	}
	d, err := time.ParseDuration(c.Scan.GitTimeout)
	if err != nil {
		return fmt.Errorf("invalid scan.git_timeout %q: %w", c.Scan.GitTimeout, err)
	}
	if d < 0 {
		return fmt.Errorf("invalid scan.git_timeout %q: must not be negative", c.Scan.GitTimeout)
	}
	c.gitTimeout = d
	return nil
}

// SetGitTimeout overrides the git query timeout (0 disables it)
func (c *Config) SetGitTimeout(d time.Duration) {
	c.gitTimeout = d
	c.Scan.GitTimeout = d.String()
}

// GitTimeout returns the parsed git query timeout (0 = unbounded)
func (c *Config) GitTimeout() time.Duration {
	return c.gitTimeout
}

// ReposDir returns the absolute directory holding the sibling checkouts
func (c *Config) ReposDir() (string, error) {
	dir := c.Paths.ReposDir
	if dir == "" {
		dir = ".."
	}
	return filepath.Abs(expandTilde(dir))
}

// Save writes the settings to the default location
func (c *Config) Save() error {
	path, err := Path()
	if err != nil {
		return err
	}
	return c.SaveTo(path)
}

func (c *Config) SaveTo(path string) error {
	// Ensure config directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	data, err := c.Marshal()
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Marshal encodes the settings as TOML
func (c *Config) Marshal() ([]byte, error) {
	return toml.Marshal(c)
}

func expandTilde(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}
