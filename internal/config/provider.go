package config

import (
	"github.com/fsbteam/chat/internal/domain"
)

// Provider is the file-backed domain.ConfigProvider.
type Provider struct{}

func NewProvider() *Provider {
	return &Provider{}
}

func (*Provider) Get(key string) (string, bool) { return Get(key) }

func (*Provider) GetAll() (map[string]string, error) { return GetAll() }

func (*Provider) Set(key, value string) error {
	return Edit(func(lines []string) ([]string, error) {
		updated, _ := Set(lines, key, value)
		return updated, nil
	})
}

// Unset leaves the file alone when key is not set.
func (*Provider) Unset(key string) error {
	return Edit(func(lines []string) ([]string, error) {
		updated, removed := Unset(lines, key)
		if !removed {
			return nil, nil
		}
		return updated, nil
	})
}

var _ domain.ConfigProvider = (*Provider)(nil)
