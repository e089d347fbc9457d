/*
Package profile loads named reading frame settings from YAML files and
command line settings from the environment.

A profile file maps names to a frame and occurrence range:

	rare-start:
	  description: codons seen at most twice in frame 0
	  frame: 0
	  min: 1
	  max: 2
*/
package profile

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// ErrUnknownProfile is returned when a profile name is not in a file.
var ErrUnknownProfile = errors.New("unknown profile")

// Profile is a saved reading frame and occurrence range.
type Profile struct {
	Description string `yaml:"description"`
	Frame       int    `yaml:"frame"`
	Min         int    `yaml:"min"`
	Max         int    `yaml:"max"`
}

// Profiles maps profile names to profiles.
type Profiles map[string]Profile

// Load reads a YAML profile file. An empty file holds no profiles. Unknown
// keys are an error so typos do not fall back to zero values.
func Load(path string) (Profiles, error) {
	file, err := os.Open(path)
	if err != nil {
		return Profiles{}, err
	}
	defer file.Close()

	var parsed Profiles
	decoder := yaml.NewDecoder(file)
	decoder.KnownFields(true)
	if err := decoder.Decode(&parsed); err != nil && !errors.Is(err, io.EOF) {
		return Profiles{}, fmt.Errorf("decoding profiles from %s: %w", path, err)
	}
	if parsed == nil {
		parsed = Profiles{}
	}
	return parsed, nil
}

// Get returns the named profile.
func (p Profiles) Get(name string) (Profile, error) {
	profile, ok := p[name]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %s", ErrUnknownProfile, name)
	}
	return profile, nil
}

// EnvPrefix is the prefix of every environment variable read by LoadSettings.
const EnvPrefix = "READINGFRAMES"

// Settings holds defaults that apply to every command.
type Settings struct {
	// LogLevel is one of debug, info, warn or error.
	// Env: READINGFRAMES_LOG_LEVEL (default: info)
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`

	// Format is the report format, text, json or yaml.
	// Env: READINGFRAMES_FORMAT (default: text)
	Format string `envconfig:"FORMAT" default:"text"`

	// Strict rejects frames outside 0-2 and invalid occurrence ranges.
	// Env: READINGFRAMES_STRICT (default: true)
	Strict bool `envconfig:"STRICT" default:"true"`

	// Profiles is the default profile file.
	// Env: READINGFRAMES_PROFILES
	Profiles string `envconfig:"PROFILES"`
}

// LoadSettings reads Settings from the environment.
func LoadSettings() (Settings, error) {
	var settings Settings
	if err := envconfig.Process(EnvPrefix, &settings); err != nil {
		return Settings{}, fmt.Errorf("load settings: %w", err)
	}
	return settings, nil
}
