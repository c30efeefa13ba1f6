package instance

import (
	"os"

	"github.com/vroommkart/storefront/pkg/env"
)

// GetID returns the process instance identifier used to tell replicas apart in logs.
func GetID() string {
	if id := env.First("", "VROOMMKART_INSTANCE_ID", "DYNO", "HOSTNAME"); id != "" {
		return id
	}
	if host, err := os.Hostname(); err == nil && host != "" {
		return host
	}
	return "local"
}
