package env

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"contrast-audit/internal/application/port/output"

	"github.com/joho/godotenv"
)

var _ output.ConfigPort = (*EnvService)(nil)

const (
	KeyContrastLevel    = "CONTRAST_LEVEL"
	KeyBrowserHeadless  = "BROWSER_HEADLESS"
	KeyBrowserTimeout   = "BROWSER_TIMEOUT"
	KeyBrowserNoSandbox = "BROWSER_NO_SANDBOX"
	KeyReportFormat     = "REPORT_FORMAT"
	KeyReportPath       = "REPORT_PATH"
	KeyLogLevel         = "LOG_LEVEL"
	KeyLogFile          = "LOG_FILE"
)

type EnvService struct {
	loaded []string
}

// NewEnvService loads .env and then .env.$APP_ENV (APP_ENV defaults to dev) into the process
// environment. Missing files are skipped; values from the second file win.
func NewEnvService() (*EnvService, error) {
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "" {
		appEnv = "dev"
	}
	return Load(".env", fmt.Sprintf(".env.%s", appEnv))
}

// Load applies the given dotenv files in order. The first file never overrides variables
// already set in the environment, later files do.
func Load(files ...string) (*EnvService, error) {
	svc := &EnvService{}

	for i, file := range files {
		var err error
		if i == 0 {
			err = godotenv.Load(file)
		} else {
			err = godotenv.Overload(file)
		}

		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("load %s: %w", file, err)
		}
		svc.loaded = append(svc.loaded, file)
	}

	return svc, nil
}

// Loaded lists the dotenv files that were applied.
func (e *EnvService) Loaded() []string {
	return e.loaded
}

func (e *EnvService) Get(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}

func (e *EnvService) MustGet(key string) (string, error) {
	val := e.Get(key)
	if val == "" {
		return "", fmt.Errorf("ENV %s is missing", key)
	}
	return val, nil
}

func (e *EnvService) GetWithDefault(key string, defaultValue string) string {
	val := e.Get(key)
	if val == "" {
		return defaultValue
	}
	return val
}

func (e *EnvService) GetBool(key string, defaultValue bool) bool {
	val := e.Get(key)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}

func (e *EnvService) GetInt(key string, defaultValue int) int {
	val := e.Get(key)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return defaultValue
	}
	return parsed
}

// GetDuration accepts Go duration strings ("15s") or a bare number of seconds.
func (e *EnvService) GetDuration(key string, defaultValue time.Duration) time.Duration {
	val := e.Get(key)
	if val == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(val); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
