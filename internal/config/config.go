package config

import (
	"flag"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var once sync.Once
var logger *zap.SugaredLogger
var loggerOnce sync.Once

// isTestRun returns true if the current process is a Go test binary.
func isTestRun() bool {
	return flag.Lookup("test.v") != nil || filepath.Ext(os.Args[0]) == ".test"
}

func initConfig() {
	once.Do(func() {
		root, err := getProjectRoot()
		if err != nil {
			GetLogger().Errorw("Error finding project root", "error", err)
		}
		viper.SetConfigType("yaml")

		viper.SetConfigName("config")
		viper.AddConfigPath(root)
		if err = viper.ReadInConfig(); err != nil {
			GetLogger().Errorw("Error reading config file", "error", err)
		}

		if isTestRun() {
			viper.SetConfigName("config_test")
			viper.AddConfigPath(root)
		}

		err = viper.MergeInConfig()
		if err != nil {
			GetLogger().Errorw("Error reading config file", "error", err)
		}
	})
}

func getProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", os.ErrNotExist
}

// GetAPIRoot returns the base URL of the PWS API.
func GetAPIRoot() string {
	initConfig()
	root := viper.GetString("pws.api_root")
	if root == "" {
		root = "https://api.weather.com/v2"
	}
	return root
}

// GetDefaultUnits returns the units code sent when the caller does not pick one.
func GetDefaultUnits() string {
	initConfig()
	units := viper.GetString("pws.units")
	if units == "" {
		units = "e"
	}
	return units
}

// GetAPIKey resolves the TWC API key from the WX_API_KEY environment variable.
func GetAPIKey() string {
	_ = godotenv.Load()
	return os.Getenv("WX_API_KEY")
}

// GetStation resolves the default station ID from the WX_STATION environment variable.
func GetStation() string {
	_ = godotenv.Load()
	return os.Getenv("WX_STATION")
}

// GetHTTPTimeout returns the HTTP client timeout as a time.Duration.
// Defaults to 10s if not set or invalid.
func GetHTTPTimeout() time.Duration {
	initConfig()
	durStr := viper.GetString("http.timeout")
	if durStr == "" {
		durStr = "10s"
	}
	dur, err := time.ParseDuration(durStr)
	if err != nil {
		return 10 * time.Second
	}
	return dur
}

// ReloadConfigForTest resets the config singleton and reloads Viper config. Use only in tests.
func ReloadConfigForTest() {
	once = sync.Once{}
	initConfig()
}

func GetLogger() *zap.SugaredLogger {
	loggerOnce.Do(func() {
		l, err := zap.NewDevelopment()
		if err != nil {
			panic(err)
		}
		logger = l.Sugar()
	})
	return logger
}
