package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenConfigValidate(t *testing.T) {
	require.NoError(t, validTokenConfig().Validate())
}

func TestTokenConfigValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*TokenConfig)
	}{
		{"empty name", func(c *TokenConfig) { c.Name = "" }},
		{"symbol too long", func(c *TokenConfig) { c.Symbol = "PARAGONPOOL" }},
		{"uri not a url", func(c *TokenConfig) { c.URI = "arweave but no scheme" }},
		{"uri wrong scheme", func(c *TokenConfig) { c.URI = "ftp://arweave.net/abc" }},
		{"website not a url", func(c *TokenConfig) { c.Website = "paragoncrypto.biz" }},
		{"control character in description", func(c *TokenConfig) { c.Description = "line one\nline two" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := validTokenConfig()
			tt.mutate(&config)
			assert.Error(t, config.Validate())
		})
	}
}

func TestTokenConfigMetadata(t *testing.T) {
	meta := validTokenConfig().Metadata()

	assert.Equal(t, "Paragon Pool", meta.Name)
	assert.Equal(t, "PRPL", meta.Symbol)
	require.Len(t, meta.Additional, 2)
	assert.Equal(t, "description", meta.Additional[0][0])
	assert.Equal(t, "website", meta.Additional[1][0])
}
