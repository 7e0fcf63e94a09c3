package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/alejandrodnm/cyhole/birdeye"
	"github.com/alejandrodnm/cyhole/core"
	"github.com/alejandrodnm/cyhole/jupiter"
	"github.com/alejandrodnm/cyhole/solanafm"
	solscanv1 "github.com/alejandrodnm/cyhole/solscan/v1"
	solscanv2 "github.com/alejandrodnm/cyhole/solscan/v2"
)

// Config es la configuración completa del CLI y del tracker.
type Config struct {
	Providers ProvidersConfig `yaml:"providers"`
	Birdeye   BirdeyeConfig   `yaml:"birdeye"`
	Mock      MockConfig      `yaml:"mock"`
	Storage   StorageConfig   `yaml:"storage"`
	Log       LogConfig       `yaml:"log"`
	Tracker   TrackerConfig   `yaml:"tracker"`
}

// ProvidersConfig agrupa la conexión de cada API.
type ProvidersConfig struct {
	Birdeye   ProviderConfig `yaml:"birdeye"`
	Jupiter   ProviderConfig `yaml:"jupiter"`
	SolanaFM  ProviderConfig `yaml:"solana_fm"`
	SolscanV1 ProviderConfig `yaml:"solscan_v1"`
	SolscanV2 ProviderConfig `yaml:"solscan_v2"`
}

// ProviderConfig es la conexión a un proveedor. Los campos vacíos usan los
// defaults del cliente.
type ProviderConfig struct {
	APIKey         string `yaml:"api_key"`
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

type BirdeyeConfig struct {
	Chain string `yaml:"chain"` // solana | ethereum | ...
}

// MockConfig sirve las respuestas desde fixtures en disco.
type MockConfig struct {
	Enabled bool   `yaml:"enabled"`
	Dir     string `yaml:"dir"`
}

// StorageConfig controla dónde se persisten los snapshots.
type StorageConfig struct {
	DSN string `yaml:"dsn"` // ruta al archivo SQLite, o ":memory:"
}

// LogConfig controla el formato y nivel de logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug | info | warn | error
	Format string `yaml:"format"` // text | json
}

// TrackerConfig controla la consulta concurrente de precios.
type TrackerConfig struct {
	Concurrency int     `yaml:"concurrency"`
	RatePerSec  float64 `yaml:"rate_per_sec"`
	VsToken     string  `yaml:"vs_token"`
}

// Load carga la configuración desde el archivo YAML y el archivo .env si existe.
// Con path vacío solo se aplican el entorno y los defaults.
func Load(path string) (*Config, error) {
	// Cargar .env si existe (silencia error si no hay archivo)
	_ = godotenv.Load()

	var cfg Config
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
		}
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	return &cfg, nil
}

// applyEnvOverrides sobreescribe valores con variables de entorno si están presentes.
func applyEnvOverrides(cfg *Config) {
	keys := map[string]*string{
		birdeye.KeyEnv:   &cfg.Providers.Birdeye.APIKey,
		jupiter.KeyEnv:   &cfg.Providers.Jupiter.APIKey,
		solanafm.KeyEnv:  &cfg.Providers.SolanaFM.APIKey,
		solscanv1.KeyEnv: &cfg.Providers.SolscanV1.APIKey,
		solscanv2.KeyEnv: &cfg.Providers.SolscanV2.APIKey,
	}
	for env, dst := range keys {
		if v := os.Getenv(env); v != "" {
			*dst = v
		}
	}
	if v := os.Getenv("CYHOLE_MOCK"); v != "" {
		if on, err := strconv.ParseBool(v); err == nil {
			cfg.Mock.Enabled = on
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
}

// setDefaults asegura que los valores requeridos tengan valores sensatos.
func setDefaults(cfg *Config) {
	if cfg.Birdeye.Chain == "" {
		cfg.Birdeye.Chain = string(birdeye.ChainSolana)
	}
	if cfg.Mock.Dir == "" {
		cfg.Mock.Dir = "testdata/fixtures"
	}
	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = "cyhole.db"
	}
	if cfg.Log.Level == "" {
		cfg.Log.Level = "info"
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = "text"
	}
	if cfg.Tracker.Concurrency <= 0 {
		cfg.Tracker.Concurrency = 4
	}
	if cfg.Tracker.RatePerSec <= 0 {
		cfg.Tracker.RatePerSec = 5
	}
}

// Provider devuelve la conexión configurada de un proveedor por nombre.
func (c *Config) Provider(name string) (ProviderConfig, error) {
	switch name {
	case birdeye.Name:
		return c.Providers.Birdeye, nil
	case jupiter.Name:
		return c.Providers.Jupiter, nil
	case solanafm.Name:
		return c.Providers.SolanaFM, nil
	case solscanv1.Name:
		return c.Providers.SolscanV1, nil
	case solscanv2.Name:
		return c.Providers.SolscanV2, nil
	}
	return ProviderConfig{}, fmt.Errorf("config: unknown provider %q", name)
}

// ProviderOptions construye las core.Options de un proveedor. Con mock
// activo las peticiones se sirven desde Mock.Dir.
func (c *Config) ProviderOptions(name string) (core.Options, error) {
	p, err := c.Provider(name)
	if err != nil {
		return core.Options{}, err
	}
	opts := core.Options{
		APIKey:  p.APIKey,
		BaseURL: p.BaseURL,
		Timeout: time.Duration(p.TimeoutSeconds) * time.Second,
	}
	if c.Mock.Enabled {
		opts.MockDir = c.Mock.Dir
		if opts.APIKey == "" {
			opts.APIKey = "mock"
		}
	}
	return opts, nil
}
