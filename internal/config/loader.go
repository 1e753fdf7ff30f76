package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	clog "github.com/charmbracelet/log"
)

// LoadResult contains the loaded config and the files it was merged from.
type LoadResult struct {
	Config      Config
	SourcePaths []string     // files that existed and were decoded, in order applied
	UnknownKeys []UnknownKey // keys present in a file but not in Config
}

// UnknownKey is a config key that no Config field accepts, such as a typo.
type UnknownKey struct {
	Path string
	Key  string // dotted, e.g. "pr.shallow"
}

func (k UnknownKey) String() string {
	return fmt.Sprintf("%s: unknown key %q", k.Path, k.Key)
}

// FileSystem abstracts file lookups so tests can control which files exist.
type FileSystem interface {
	// IsFile reports whether path exists and is a regular file.
	IsFile(path string) bool
}

// OSFileSystem implements FileSystem using the real OS.
type OSFileSystem struct{}

func (OSFileSystem) IsFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Loader merges config files over DefaultConfig.
type Loader struct {
	fs  FileSystem
	log *clog.Logger
}

// NewLoader creates a new Loader with the given FileSystem.
func NewLoader(fs FileSystem) *Loader {
	return &Loader{
		fs:  fs,
		log: clog.Default().WithPrefix("config"),
	}
}

// NewDefaultLoader creates a new Loader that uses the real OS file system.
func NewDefaultLoader() *Loader {
	return NewLoader(OSFileSystem{})
}

// Load overlays each existing file in paths onto DefaultConfig, lowest priority
// first. Missing files are skipped. Unknown keys are collected and logged, not
// fatal. A validation failure names the files that produced the config.
func (l *Loader) Load(paths []string) (LoadResult, error) {
	result := LoadResult{Config: DefaultConfig()}

	for _, path := range paths {
		if !l.fs.IsFile(path) {
			continue
		}
		unknown, err := l.overlay(&result.Config, path)
		if err != nil {
			return LoadResult{}, err
		}
		result.SourcePaths = append(result.SourcePaths, path)
		result.UnknownKeys = append(result.UnknownKeys, unknown...)
	}

	if err := result.Config.Validate(); err != nil {
		if len(result.SourcePaths) == 0 {
			return LoadResult{}, fmt.Errorf("invalid config: %w", err)
		}
		return LoadResult{}, fmt.Errorf("invalid config from %s: %w", strings.Join(result.SourcePaths, ", "), err)
	}
	return result, nil
}

// overlay decodes the TOML file at path over cfg, leaving keys it does not set untouched.
func (l *Loader) overlay(cfg *Config, path string) ([]UnknownKey, error) {
	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	var unknown []UnknownKey
	for _, key := range md.Undecoded() {
		unknown = append(unknown, UnknownKey{Path: path, Key: key.String()})
	}
	if len(unknown) > 0 {
		l.log.Warn("Ignoring unknown config keys", "path", path, "keys", md.Undecoded())
	}
	l.log.Debug("Applied config file", "path", path, "keys", len(md.Keys()))
	return unknown, nil
}

// LoadFor loads the configuration that applies to checking dir.
func (l *Loader) LoadFor(dir string) (LoadResult, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		l.log.Debug("No home directory, skipping home config", "error", err)
		homeDir = ""
	}
	return l.Load(ConfigPaths(dir, homeDir))
}
