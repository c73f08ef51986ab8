package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileName is the project-level config file, looked up in the working tree.
const FileName = ".reviewgate.yml"

// Config holds every recognized option.
type Config struct {
	GitHubToken     string `yaml:"github_token"`
	OpenRouterKey   string `yaml:"open_router_key"`
	Model           string `yaml:"model_id"`
	CustomPrompt    string `yaml:"custom_prompt"`
	MaxTokens       int    `yaml:"max_tokens"`
	ReviewLabel     string `yaml:"review_label"`
	ExcludeFiles    string `yaml:"exclude_files"`
	ReasoningEffort string `yaml:"reasoning_effort"`
	MinimumScore    int    `yaml:"minimum_score"`
	LogLevel        string `yaml:"log_level"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Model:        "anthropic/claude-2",
		MinimumScore: 75,
		LogLevel:     "info",
	}
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg := Default()

	fileCfg, err := loadFile(FileName)
	if err != nil {
		return Config{}, err
	}
	mergeFile(&cfg, fileCfg)
	mergeEnv(&cfg)
	mergeOverrides(&cfg, overrides)

	return cfg, nil
}

// Validate checks that the required credentials are present.
func (c Config) Validate() error {
	if c.GitHubToken == "" {
		return fmt.Errorf("github_token is required (set GITHUB_TOKEN)")
	}
	if c.OpenRouterKey == "" {
		return fmt.Errorf("open_router_key is required (set OPEN_ROUTER_KEY)")
	}
	return nil
}

// ExcludePatterns returns the parsed exclude_files list.
func (c Config) ExcludePatterns() []string {
	if strings.TrimSpace(c.ExcludeFiles) == "" {
		return nil
	}
	var patterns []string
	for _, p := range strings.Split(c.ExcludeFiles, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			patterns = append(patterns, p)
		}
	}
	return patterns
}

// loadFile reads the yaml config file. A missing file is not an error.
func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}
		return Config{}, fmt.Errorf("reading config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}
	return cfg, nil
}

func mergeFile(dst *Config, src Config) {
	if src.GitHubToken != "" {
		dst.GitHubToken = src.GitHubToken
	}
	if src.OpenRouterKey != "" {
		dst.OpenRouterKey = src.OpenRouterKey
	}
	if src.Model != "" {
		dst.Model = src.Model
	}
	if src.CustomPrompt != "" {
		dst.CustomPrompt = src.CustomPrompt
	}
	if src.MaxTokens > 0 {
		dst.MaxTokens = src.MaxTokens
	}
	if src.ReviewLabel != "" {
		dst.ReviewLabel = src.ReviewLabel
	}
	if src.ExcludeFiles != "" {
		dst.ExcludeFiles = src.ExcludeFiles
	}
	if src.ReasoningEffort != "" {
		dst.ReasoningEffort = src.ReasoningEffort
	}
	if src.MinimumScore > 0 {
		dst.MinimumScore = src.MinimumScore
	}
	if src.LogLevel != "" {
		dst.LogLevel = src.LogLevel
	}
}

// envLookup reads the plain name first, then the GitHub Actions INPUT_ form,
// then the REVIEWGATE_ prefixed form.
func envLookup(name string) string {
	for _, key := range []string{name, "INPUT_" + name, "REVIEWGATE_" + name} {
		if v := os.Getenv(key); v != "" {
			return v
		}
	}
	return ""
}

func mergeEnv(cfg *Config) {
	if v := envLookup("GITHUB_TOKEN"); v != "" {
		cfg.GitHubToken = v
	}
	if v := envLookup("OPEN_ROUTER_KEY"); v != "" {
		cfg.OpenRouterKey = v
	}
	if v := envLookup("MODEL_ID"); v != "" {
		cfg.Model = v
	}
	if v := envLookup("CUSTOM_PROMPT"); v != "" {
		cfg.CustomPrompt = v
	}
	if v := envLookup("MAX_TOKENS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxTokens = n
		}
	}
	if v := envLookup("REVIEW_LABEL"); v != "" {
		cfg.ReviewLabel = v
	}
	if v := envLookup("EXCLUDE_FILES"); v != "" {
		cfg.ExcludeFiles = v
	}
	if v := envLookup("REASONING_EFFORT"); v != "" {
		cfg.ReasoningEffort = v
	}
	if v := envLookup("MINIMUM_SCORE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MinimumScore = n
		}
	}
	if v := envLookup("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
}

func mergeOverrides(cfg *Config, overrides map[string]string) {
	if overrides == nil {
		return
	}
	if v, ok := overrides["model"]; ok && v != "" {
		cfg.Model = v
	}
	if v, ok := overrides["customPrompt"]; ok && v != "" {
		cfg.CustomPrompt = v
	}
	if v, ok := overrides["maxTokens"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxTokens = n
		}
	}
	if v, ok := overrides["reviewLabel"]; ok && v != "" {
		cfg.ReviewLabel = v
	}
	if v, ok := overrides["excludeFiles"]; ok && v != "" {
		cfg.ExcludeFiles = v
	}
	if v, ok := overrides["reasoningEffort"]; ok && v != "" {
		cfg.ReasoningEffort = v
	}
	if v, ok := overrides["minimumScore"]; ok && v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MinimumScore = n
		}
	}
	if v, ok := overrides["logLevel"]; ok && v != "" {
		cfg.LogLevel = v
	}
}
