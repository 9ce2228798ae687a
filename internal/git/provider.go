package git

import "github.com/wangjing53406/navi/internal/domain"

// Provider implements domain.GitProvider with the package functions.
type Provider struct{}

func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) IsAvailable() bool {
	return IsAvailable()
}

func (p *Provider) Clone(uri, dest string) error {
	return Clone(uri, dest)
}

var _ domain.GitProvider = (*Provider)(nil)
