package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

type LLMConfig struct {
	Provider string `toml:"provider"`
	Model    string `toml:"model"`
	APIKey   string `toml:"api_key"`
	BaseURL  string `toml:"base_url"`
}

// KnowledgeConfig points at the Memgraph instance backing the optional
// knowledge base. An empty URI disables the knowledge base entirely.
type KnowledgeConfig struct {
	URI      string `toml:"uri"`
	User     string `toml:"user"`
	Password string `toml:"password"`
}

type Prompts struct {
	ChandasSystem string `toml:"chandas_system"`
	Reverify      string `toml:"reverify"`
}

type Config struct {
	LLM       LLMConfig       `toml:"llm"`
	Knowledge KnowledgeConfig `toml:"knowledge"`
	Prompts   Prompts         `toml:"prompts"`
}

// DefaultChandasSystem is the compiled-in system prompt used when the config
// file does not provide one.
const DefaultChandasSystem = `You are an expert in Sanskrit prosody (chandas). Analyze the syllable pattern of the given verse (Laghu = short, Guru = long) and identify its meter. Respond with ONLY a JSON object with these fields: chandas_name (string), syllable_breakdown (array of {syllable, type, position}), laghu_guru_pattern (string of L and G), gana_pattern (string), syllable_count_per_pada (array of integers), confidence (number between 0 and 1), explanation (string).`

// DefaultReverify is the corrective re-prompt template. The two %s verbs take
// the mismatch description and an optional meter hint.
const DefaultReverify = `Your identification is inconsistent: %s. %sRe-analyze the verse and respond again with ONLY the JSON object, corrected.`

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}

	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse TOML: %w", err)
	}
	cfg.ApplyDefaults()

	return &cfg, nil
}

// ApplyDefaults fills in compiled-in prompt fallbacks.
func (c *Config) ApplyDefaults() {
	if c.Prompts.ChandasSystem == "" {
		c.Prompts.ChandasSystem = DefaultChandasSystem
	}
	if c.Prompts.Reverify == "" {
		c.Prompts.Reverify = DefaultReverify
	}
}
