package httpx

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeout(t *testing.T) {
	defaultVal := 60 * time.Second

	tests := []struct {
		name             string
		providerOverride string
		globalTimeout    string
		want             time.Duration
	}{
		{"provider override wins", "30s", "90s", 30 * time.Second},
		{"global when no override", "", "90s", 90 * time.Second},
		{"default when nothing set", "", "", defaultVal},
		{"invalid override falls through to global", "not-a-duration", "45s", 45 * time.Second},
		{"invalid global falls through to default", "", "bogus", defaultVal},
		{"negative override rejected", "-5s", "", defaultVal},
		{"zero is valid (no timeout)", "0s", "90s", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseTimeout(tt.providerOverride, tt.globalTimeout, defaultVal))
		})
	}
}

func TestParseTimeout_NegativeDefault(t *testing.T) {
	assert.Equal(t, 60*time.Second, ParseTimeout("", "", -1*time.Second))
}
