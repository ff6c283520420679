package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("invalid configuration")

// Default file locations, matching the layout the front-end expects.
const (
	DefaultWorkbook     = "題庫大全.xlsx"
	DefaultRecordsFile  = "questions.json"
	DefaultQuizDataFile = "src/utils/quizData.ts"
	DefaultConfigName   = "quizgen"
	EnvPrefix           = "QUIZGEN"
)

// Config holds pipeline configuration loaded from files and environment variables.
type Config struct {
	Env      string  `mapstructure:"env"`       // local or production, selects the logger flavour
	LogLevel string  `mapstructure:"log_level"` // zap level name
	Extract  Extract `mapstructure:"extract"`   // spreadsheet -> records stage
	Project  Project `mapstructure:"project"`   // records -> questions stage
}

// Extract configures the extractor.
type Extract struct {
	Input  string `mapstructure:"input"`  // workbook path
	Sheet  string `mapstructure:"sheet"`  // sheet name, empty for the first sheet
	Output string `mapstructure:"output"` // intermediate JSON path
}

// Project configures the projector.
type Project struct {
	Input       string   `mapstructure:"input"`        // intermediate JSON path
	MappingFile string   `mapstructure:"mapping_file"` // YAML mapping, empty for the built-in one
	Strict      bool     `mapstructure:"strict"`       // integrity warnings become errors
	TypeName    string   `mapstructure:"type_name"`    // emitted type/interface name
	ConstName   string   `mapstructure:"const_name"`   // emitted constant name
	GoPackage   string   `mapstructure:"go_package"`   // package clause for the go dialect
	Outputs     []Output `mapstructure:"outputs"`      // artifacts to write
}

// Output is one artifact written by the projector.
type Output struct {
	Dialect string `mapstructure:"dialect"` // typescript, json or go
	Path    string `mapstructure:"path"`
}

// Load reads configuration from an optional config file, an optional .env
// file and QUIZGEN_* environment variables. An empty path looks for
// quizgen.yaml in the working directory and tolerates its absence.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(DefaultConfigName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // extract.input -> QUIZGEN_EXTRACT_INPUT
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &fileLookupErr) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}

// Default returns the configuration used when no file or environment
// overrides are present.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(fmt.Sprintf("default config: %v", err))
	}

	return &cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("log_level", "warn")
	v.SetDefault("extract.input", DefaultWorkbook)
	v.SetDefault("extract.sheet", "")
	v.SetDefault("extract.output", DefaultRecordsFile)
	v.SetDefault("project.input", DefaultRecordsFile)
	v.SetDefault("project.mapping_file", "")
	v.SetDefault("project.strict", false)
	v.SetDefault("project.type_name", "Question")
	v.SetDefault("project.const_name", "QUIZ_DATA")
	v.SetDefault("project.go_package", "")
	v.SetDefault("project.outputs", []map[string]any{
		{"dialect": "typescript", "path": DefaultQuizDataFile},
	})
}

// Validate checks the settings of both stages.
func (c *Config) Validate() error {
	return report(append(c.extractProblems(), c.projectProblems()...))
}

// ValidateExtract checks only the settings the extractor reads.
func (c *Config) ValidateExtract() error {
	return report(c.extractProblems())
}

// ValidateProject checks only the settings the projector reads.
func (c *Config) ValidateProject() error {
	return report(c.projectProblems())
}

func (c *Config) extractProblems() []string {
	var problems []string

	if c.Extract.Input == "" {
		problems = append(problems, "extract.input is empty")
	}

	if c.Extract.Output == "" {
		problems = append(problems, "extract.output is empty")
	}

	return problems
}

func (c *Config) projectProblems() []string {
	var problems []string

	if c.Project.Input == "" {
		problems = append(problems, "project.input is empty")
	}

	if c.Project.TypeName == "" {
		problems = append(problems, "project.type_name is empty")
	}

	if c.Project.ConstName == "" {
		problems = append(problems, "project.const_name is empty")
	}

	if len(c.Project.Outputs) == 0 {
		problems = append(problems, "project.outputs is empty")
	}

	for i, o := range c.Project.Outputs {
		if o.Dialect == "" || o.Path == "" {
			problems = append(problems, fmt.Sprintf("project.outputs[%d] needs dialect and path", i))
		}
	}

	return problems
}

func report(problems []string) error {
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, ", "))
	}

	return nil
}
