package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Data struct {
		Dir       string `yaml:"dir"`
		Questions string `yaml:"questions"`
		Users     string `yaml:"users"`
		Answers   string `yaml:"answers"`
		Labels    string `yaml:"labels"`
	} `yaml:"data"`
	Log struct {
		Debug bool `yaml:"debug"`
	} `yaml:"log"`
}

// Default returns the configuration used when no config file is given. File
// names match the original data layout so existing data dirs keep working.
func Default() Config {
	cfg := Config{}
	cfg.Data.Dir = "data"
	cfg.Data.Questions = "questions_clean.jsonl"
	cfg.Data.Users = "users.csv"
	cfg.Data.Answers = "answers.csv"
	cfg.Data.Labels = "question_labels.csv"
	if dir := os.Getenv("DATA_DIR"); dir != "" {
		cfg.Data.Dir = dir
	}
	return cfg
}

// Load reads YAML config from path, filling unset fields with defaults.
// An empty path yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	defaults := Default()
	if cfg.Data.Dir == "" {
		cfg.Data.Dir = defaults.Data.Dir
	}
	if cfg.Data.Questions == "" {
		cfg.Data.Questions = defaults.Data.Questions
	}
	if cfg.Data.Users == "" {
		cfg.Data.Users = defaults.Data.Users
	}
	if cfg.Data.Answers == "" {
		cfg.Data.Answers = defaults.Data.Answers
	}
	if cfg.Data.Labels == "" {
		cfg.Data.Labels = defaults.Data.Labels
	}
	return cfg, nil
}

func (c Config) QuestionsPath() string { return filepath.Join(c.Data.Dir, c.Data.Questions) }
func (c Config) UsersPath() string     { return filepath.Join(c.Data.Dir, c.Data.Users) }
func (c Config) AnswersPath() string   { return filepath.Join(c.Data.Dir, c.Data.Answers) }
func (c Config) LabelsPath() string    { return filepath.Join(c.Data.Dir, c.Data.Labels) }
