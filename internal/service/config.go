package service

import (
	"fmt"
	"os"
	"sync"

	"github.com/rlr-github/rory-themes/internal/config"
)

// ConfigService provides operations for managing the selector configuration.
// It is safe for concurrent use.
type ConfigService struct {
	configPath string

	mu     sync.Mutex
	config config.Config
}

// NewConfigService creates a new ConfigService
func NewConfigService(configPath string, cfg config.Config) *ConfigService {
	return &ConfigService{
		configPath: configPath,
		config:     cfg,
	}
}

// Get returns the current configuration
func (s *ConfigService) Get() config.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.config
}

// GetPath returns the path to the config file
func (s *ConfigService) GetPath() string {
	return s.configPath
}

// Exists checks if the config file exists
func (s *ConfigService) Exists() bool {
	_, err := os.Stat(s.configPath)
	return err == nil
}

// Update validates cfg, writes it and makes it the in-memory configuration
func (s *ConfigService) Update(cfg config.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(cfg)
}

// Modify applies fn to a copy of the current configuration and saves the
// result. The read and the write happen under one lock, so concurrent
// calls never lose each other's changes.
func (s *ConfigService) Modify(fn func(cfg *config.Config)) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cfg := s.config
	fn(&cfg)
	return s.save(cfg)
}

func (s *ConfigService) save(cfg config.Config) error {
	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if err := config.Save(s.configPath, cfg); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	s.config = cfg
	return nil
}

// Init creates a sample config file
func (s *ConfigService) Init() error {
	if s.Exists() {
		return fmt.Errorf("config file already exists at %s", s.configPath)
	}

	sample := config.GenerateSampleConfig()
	if err := os.WriteFile(s.configPath, []byte(sample), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Reload reloads the configuration from disk
func (s *ConfigService) Reload() error {
	cfg, err := config.LoadOrDefault(s.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
	return nil
}
