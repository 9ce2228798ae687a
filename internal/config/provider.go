package config

import (
	"fmt"

	"github.com/wangjing53406/navi/internal/domain"
)

// Provider wraps configuration operations and implements domain.ConfigProvider.
type Provider struct{}

// NewProvider creates a new configuration provider.
func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) Get(key string) (string, bool) {
	return Get(key)
}

func (p *Provider) GetAll() (map[string]string, error) {
	return GetAll()
}

// Set validates key and persists it under the config lock.
func (p *Provider) Set(key, value string) error {
	if !domain.IsValidConfigKey(key) {
		return fmt.Errorf("unknown config key %q", key)
	}
	return WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return err
		}
		lines, _ = Set(lines, key, value)
		return WriteLines(lines)
	})
}

// Unset removes a configuration value, restoring its default.
func (p *Provider) Unset(key string) error {
	return WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return err
		}
		lines, _ = Unset(lines, key)
		return WriteLines(lines)
	})
}

var _ domain.ConfigProvider = (*Provider)(nil)
