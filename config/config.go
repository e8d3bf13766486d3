package config

import (
	"fmt"
	"os"
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"
	yaml "gopkg.in/yaml.v2"
)

// Framing is the policy applied to messages, whose headers determine neither a fixed
// length nor chunked transfer coding.
type Framing uint8

const (
	// Lenient treats such bodies as empty.
	Lenient Framing = iota + 1
	// Strict fails the decoding with errors.UndeterminedBodyFraming.
	Strict
)

func (f Framing) String() string {
	switch f {
	case Lenient:
		return "lenient"
	case Strict:
		return "strict"
	default:
		return ""
	}
}

func ParseFraming(str string) (Framing, error) {
	switch str {
	case "lenient":
		return Lenient, nil
	case "strict":
		return Strict, nil
	default:
		return 0, fmt.Errorf("unknown body framing policy %q (want lenient or strict)", str)
	}
}

func (f Framing) MarshalYAML() (any, error) {
	return f.String(), nil
}

func (f *Framing) UnmarshalYAML(unmarshal func(any) error) error {
	var str string
	if err := unmarshal(&str); err != nil {
		return err
	}

	framing, err := ParseFraming(str)
	if err != nil {
		return err
	}

	*f = framing
	return nil
}

type (
	HeadersNumber struct {
		// Default is the number of header seats allocated in advance.
		Default int `yaml:"default"`
		// Maximal is the greatest number of headers a single message may carry. 0 means
		// no limit.
		Maximal int `yaml:"maximal"`
	}
)

type (
	Headers struct {
		Number HeadersNumber `yaml:"number"`
	}

	Body struct {
		// MaxSize limits both Content-Length values and the accumulated size of chunked bodies.
		// 0 means no limit.
		MaxSize uint64 `yaml:"max-size"`
		// Framing decides what happens to bodies of undetermined length. Defaults to Lenient.
		Framing Framing `yaml:"framing"`
	}

	Chunked struct {
		// MaxLengthDigits limits the number of hex digits of a single chunk length. 0 means
		// no limit other than the length fitting into uint64.
		MaxLengthDigits int `yaml:"max-length-digits"`
		// HexPrefix enables accepting chunk lengths written as 0x1f. The prefix is never
		// produced by the encoder.
		HexPrefix bool `yaml:"hex-prefix"`
		// ChunksPrealloc is the initial capacity of the decoded chunks slice.
		ChunksPrealloc int `yaml:"chunks-prealloc"`
	}

	Decode struct {
		// ZeroCopy makes decoded strings and bodies reference the input buffer instead of
		// copying out of it. The buffer must not be modified as long as the decoded values
		// are in use.
		ZeroCopy bool `yaml:"zero-copy" test:"nullable"`
	}
)

// Config holds limits and policies of the codec. A limit set to 0 is disabled.
//
// You must ALWAYS modify defaults (returned via Default()) and NEVER try to initialize the
// config manually, as zero values are not meaningful defaults here.
type Config struct {
	Headers Headers `yaml:"headers"`
	Body    Body    `yaml:"body"`
	Chunked Chunked `yaml:"chunked"`
	Decode  Decode  `yaml:"decode"`
}

// Default returns default config.
func Default() *Config {
	return &Config{
		Headers: Headers{
			Number: HeadersNumber{
				Default: 10,
				// captured traffic isn't ours to reject, so be pretty permitting.
				Maximal: 512,
			},
		},
		Body: Body{
			MaxSize: 512 * 1024 * 1024, // 512 megabytes
			Framing: Lenient,
		},
		Chunked: Chunked{
			MaxLengthDigits: 16,
			HexPrefix:       true,
			ChunksPrealloc:  4,
		},
	}
}

// Read returns the defaults overridden by the YAML file at path.
func Read(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	defer file.Close()

	cfg := Default()
	if err = yaml.NewDecoder(file).Decode(cfg); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	if err = cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate rejects negative counts and unknown framing policies.
func (c *Config) Validate() error {
	for _, field := range []struct {
		name  string
		value int
	}{
		{"headers.number.default", c.Headers.Number.Default},
		{"headers.number.maximal", c.Headers.Number.Maximal},
		{"chunked.max-length-digits", c.Chunked.MaxLengthDigits},
		{"chunked.chunks-prealloc", c.Chunked.ChunksPrealloc},
	} {
		if field.value < 0 {
			return fmt.Errorf("%s must not be negative, got %d", field.name, field.value)
		}
	}

	if c.Body.Framing.String() == "" {
		return fmt.Errorf("unknown body framing policy %d", c.Body.Framing)
	}

	return nil
}

// DefaultPath returns $HOME/.txlog/config.yaml.
func DefaultPath() (string, error) {
	home, err := homedir.Dir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".txlog", "config.yaml"), nil
}

// ReadDefault reads the config file at DefaultPath. A missing file isn't an error and
// results in defaults.
func ReadDefault() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}

	cfg, err := Read(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}

	return cfg, err
}

// Write stores the config at path in YAML, creating the parent directory if needed.
func (c *Config) Write(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_TRUNC|os.O_RDWR|os.O_CREATE, 0o644)
	if err != nil {
		return err
	}

	defer file.Close()

	encoder := yaml.NewEncoder(file)
	if err = encoder.Encode(c); err != nil {
		return err
	}

	return encoder.Close()
}
