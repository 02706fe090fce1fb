package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/todo/internal/paths"
	"github.com/mesh-intelligence/todo/internal/sqlite"
	"github.com/mesh-intelligence/todo/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"
	configFileExt  = "config.yaml"

	envPrefix = "TODO"

	// Config keys.
	cfgKeyDBPath   = "db_path"
	cfgKeyLogLevel = "log_level"
	cfgKeyPlain    = "plain"

	defaultLogLevel = "warn"
)

// configFile holds the structure written to config.yaml by init.
type configFile struct {
	DBPath   string `yaml:"db_path,omitempty"`
	LogLevel string `yaml:"log_level"`
	Plain    bool   `yaml:"plain"`
}

// loadConfig reads config.yaml from configDir using Viper. A missing file or
// directory is not an error; defaults apply. log_level and plain can also be
// set through TODO_LOG_LEVEL and TODO_PLAIN.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyLogLevel, defaultLogLevel)
	v.SetDefault(cfgKeyPlain, false)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	v.SetEnvPrefix(envPrefix)
	for _, key := range []string{cfgKeyLogLevel, cfgKeyPlain} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", key, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// setup is the root PersistentPreRunE. It loads .env and config.yaml,
// configures logging, resolves the database path, and opens the store once
// for the invocation.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	if cmd.Annotations[annotationNoStore] == "true" {
		return nil
	}

	// .env is optional.
	_ = godotenv.Load()

	configDir, err := paths.ResolveConfigDir(a.flags.configDir)
	if err != nil {
		return fmt.Errorf("resolve config dir: %w", err)
	}
	cfg, err := loadConfig(configDir)
	if err != nil {
		return err
	}
	a.configDir = configDir

	logger, err := newLogger(a.stderr, cfg.GetString(cfgKeyLogLevel), a.flags.debug)
	if err != nil {
		return err
	}
	a.log = logger
	a.plain = a.flags.plain || cfg.GetBool(cfgKeyPlain)

	dbPath, err := paths.ResolveDBPath(a.flags.dbPath, cfg.GetString(cfgKeyDBPath))
	if err != nil {
		return fmt.Errorf("resolve database path: %w", err)
	}

	store, err := sqlite.Open(types.Config{DBPath: dbPath})
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	a.store = store
	a.dbPath = dbPath
	a.log.WithFields(log.Fields{"db": dbPath, "command": cmd.Name()}).Debug("store opened")
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil (idempotent).
// It reports whether a file was written.
func writeConfigIfMissing(configDir string) (bool, error) {
	path := filepath.Join(configDir, configFileExt)
	if _, err := os.Stat(path); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return false, fmt.Errorf("create config directory: %w", err)
	}

	data, err := yaml.Marshal(&configFile{LogLevel: defaultLogLevel})
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, fmt.Errorf("write config: %w", err)
	}
	return true, nil
}
