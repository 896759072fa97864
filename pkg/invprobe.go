package invprobe

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/app-sre/invprobe/pkg/audit"
	"github.com/app-sre/invprobe/pkg/inventory"
	"github.com/app-sre/invprobe/pkg/models"
)

const defaultRequestTimeout = 30 * time.Second

// Config carries the dependencies of the fixture server handlers.
type Config struct {
	Credentials inventory.Credentials
	Catalog     *models.Catalog
	LoggerAudit audit.Audit
	Logger      *zap.SugaredLogger
}

func Production() bool {
	return os.Getenv("ENVIRONMENT") == "production"
}

// RequestTimeout bounds outgoing client requests and fixture request
// handling. A bare number is taken as seconds. Invalid or zero values fall
// back to the default.
func RequestTimeout() time.Duration {
	if s := os.Getenv("REQUEST_TIMEOUT"); s != "" {
		if d, err := parseDuration(s); err == nil && d > 0 {
			return d
		}
	}
	return defaultRequestTimeout
}

func parseDuration(s string) (time.Duration, error) {
	if _, err := strconv.Atoi(s); err == nil {
		s += "s"
	}

	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, fmt.Errorf("unable to parse duration: %w", err)
	}
	if d < 0 {
		d = -d
	}

	return d, nil
}
