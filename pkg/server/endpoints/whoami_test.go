package endpoints

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/JurmiThinley/jobtrackr/pkg/config"
)

func TestClientIP(t *testing.T) {
	cfgWithProxy := &config.Config{TrustedProxies: []string{"10.0.0.0/8"}}
	cfgWithoutProxy := &config.Config{}

	t.Run("direct connection", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.RemoteAddr = "203.0.113.9:51234"

		assert.Equal(t, "203.0.113.9", clientIP(req, cfgWithoutProxy))
	})

	t.Run("forwarded header from untrusted peer is ignored", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.RemoteAddr = "203.0.113.9:51234"
		req.Header.Set("X-Forwarded-For", "198.51.100.77")

		assert.Equal(t, "203.0.113.9", clientIP(req, cfgWithProxy))
	})

	t.Run("forwarded header from trusted proxy wins", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.RemoteAddr = "10.1.2.3:51234"
		req.Header.Set("X-Forwarded-For", "198.51.100.77")

		assert.Equal(t, "198.51.100.77", clientIP(req, cfgWithProxy))
	})

	t.Run("leftmost forwarded entry is the client", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.RemoteAddr = "10.1.2.3:51234"
		req.Header.Set("X-Forwarded-For", "198.51.100.77, 10.0.0.5")

		assert.Equal(t, "198.51.100.77", clientIP(req, cfgWithProxy))
	})

	t.Run("trusted proxy without forwarded header", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/whoami", nil)
		req.RemoteAddr = "10.1.2.3:51234"

		assert.Equal(t, "10.1.2.3", clientIP(req, cfgWithProxy))
	})
}
