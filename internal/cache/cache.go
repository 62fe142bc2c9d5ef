package cache

import (
	"crypto/tls"
	"deskstore/internal/config"
	"deskstore/internal/util/logger"
	"sync"

	"github.com/valkey-io/valkey-go"
)

var (
	once         sync.Once
	valkeyClient valkey.Client
)

// GetCache returns the shared Valkey client, or nil when no cache is
// configured. Callers must treat a nil client as "cache disabled".
func GetCache() valkey.Client {
	once.Do(func() {
		env := config.GetEnv()
		if env.ValkeyHost == "" {
			return
		}

		options := valkey.ClientOption{
			InitAddress: []string{env.ValkeyHost + ":" + env.ValkeyPort},
			Password:    env.ValkeyPassword,
			Username:    env.ValkeyUsername,
		}

		if env.ValkeyIsSsl {
			options.TLSConfig = &tls.Config{
				ServerName: env.ValkeyHost,
			}
		}

		client, err := valkey.NewClient(options)
		if err != nil {
			logger.GetLogger().Error("Failed to connect to Valkey, cache disabled", "error", err)
			return
		}

		valkeyClient = client
	})

	return valkeyClient
}
