package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNetworkAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    NetworkAddress
		wantErr bool
	}{
		{name: "Valid address", value: "localhost:8080", want: NetworkAddress{Host: "localhost", Port: 8080}},
		{name: "Empty host", value: ":9090", want: NetworkAddress{Host: "", Port: 9090}},
		{name: "Missing port", value: "localhost", wantErr: true},
		{name: "Non-numeric port", value: "localhost:abc", wantErr: true},
		{name: "Port out of range", value: "localhost:70000", wantErr: true},
		{name: "Zero port", value: "localhost:0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetworkAddress
			err := addr.Set(tt.value)

			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
			assert.Equal(t, tt.value, addr.String())
		})
	}
}

func TestURLPrefix_Set(t *testing.T) {
	t.Run("Keeps trailing query marker", func(t *testing.T) {
		var prefix URLPrefix

		require.NoError(t, prefix.Set("https://terabis.blogspot.com/?url="))
		assert.Equal(t, "https://terabis.blogspot.com/?url=", prefix.String())
	})

	t.Run("Rejects non-http value", func(t *testing.T) {
		var prefix URLPrefix

		require.Error(t, prefix.Set("ftp://example.com"))
	})
}

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, "https://bisgram.com/api", cfg.ShortenerEndpoint)
	assert.Equal(t, URLPrefix("https://terabis.blogspot.com/?url="), cfg.RedirectBase)
	assert.Equal(t, "https://example.com", cfg.ValidationURL)
	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.PollTimeout)
	assert.Equal(t, 8, cfg.MaxConcurrency)
}
