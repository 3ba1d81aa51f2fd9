package config

import (
	"github.com/templatelab/routeset/internal/home"
)

// Config holds routeset configuration.
// Stored at: ~/.routeset/config.yaml (or ./config.yaml)
type Config struct {
	Datasets DatasetsCfg `mapstructure:"datasets" yaml:"datasets"`
	OpenAI   OpenAICfg   `mapstructure:"openai" yaml:"openai"`
	Log      LogCfg      `mapstructure:"log" yaml:"log"`
}

// DatasetsCfg fixes the pipeline file locations. Each stage reads and writes
// exactly one of these paths per run.
type DatasetsCfg struct {
	Catalog  string `mapstructure:"catalog" yaml:"catalog"`   // canonical template metadata (input)
	Prompts  string `mapstructure:"prompts" yaml:"prompts"`   // prompt dataset (intermediate)
	Finetune string `mapstructure:"finetune" yaml:"finetune"` // fine-tune conversations (output)
}

// OpenAICfg configures fine-tune dataset delivery.
type OpenAICfg struct {
	APIKey         string `mapstructure:"api_key" yaml:"api_key"` // API key (supports ${ENV_VAR} syntax)
	TimeoutSeconds int    `mapstructure:"timeout_seconds" yaml:"timeout_seconds"`
	MaxRetries     int    `mapstructure:"max_retries" yaml:"max_retries"`
}

// LogCfg configures logging.
type LogCfg struct {
	Level string `mapstructure:"level" yaml:"level"` // "debug", "info", "warn", "error"
}

// DefaultConfig returns configuration with sensible defaults.
// Dataset paths default into the home datasets directory, falling back to a
// relative datasets/ directory when the user home cannot be resolved.
func DefaultConfig() *Config {
	datasets := DatasetsCfg{
		Catalog:  "datasets/" + home.CatalogFileName,
		Prompts:  "datasets/" + home.PromptsFileName,
		Finetune: "datasets/" + home.FinetuneFileName,
	}
	if h, err := home.New(""); err == nil {
		datasets = DatasetsCfg{
			Catalog:  h.CatalogPath(),
			Prompts:  h.PromptsPath(),
			Finetune: h.FinetunePath(),
		}
	}

	return &Config{
		Datasets: datasets,
		OpenAI: OpenAICfg{
			APIKey:         "${OPENAI_API_KEY}",
			TimeoutSeconds: 300,
			MaxRetries:     3,
		},
		Log: LogCfg{
			Level: "info",
		},
	}
}

// ResolveAPIKey returns the OpenAI API key with ${ENV_VAR} references expanded.
func (c *Config) ResolveAPIKey() string {
	return ResolveEnvVars(c.OpenAI.APIKey)
}
