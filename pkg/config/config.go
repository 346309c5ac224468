package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración del cliente (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App   AppConfig
	API   APIConfig
	Creds CredsConfig
	JWT   JWTConfig
	Stub  StubConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// APIConfig ubicación y comportamiento del API remoto de la plataforma.
type APIConfig struct {
	BaseURL        string // ej. http://localhost:8081
	TimeoutSeconds int    // 0 = sin timeout; una petición colgada deja al caller esperando
}

// CredsConfig dónde persiste el cliente la credencial y el snapshot de identidad.
type CredsConfig struct {
	File string // ruta al archivo de sesión
}

// JWTConfig configuración de JWT. Solo la usa el stub del API; el cliente trata el token como opaco.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// StubConfig configuración del servidor stub local.
type StubConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha del stub (host:port).
func (c StubConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, API_BASE_URL, CREDENTIALS_FILE, etc.
func Load() (*Config, error) {
	v := viper.New()

	// Opcional: archivo de configuración (.env o config.env)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	// También intenta config.env
	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:  getString(v, "APP_ENV", "development"),
			Name: getString(v, "APP_NAME", "tienda-client"),
		},
		API: APIConfig{
			BaseURL:        getString(v, "API_BASE_URL", "http://localhost:8081"),
			TimeoutSeconds: getInt(v, "HTTP_TIMEOUT_SECONDS", 0),
		},
		Creds: CredsConfig{
			File: getString(v, "CREDENTIALS_FILE", defaultCredsFile()),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", "dev-secret-change-me"),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 1440),
			Issuer:     getString(v, "JWT_ISSUER", "tienda-stub"),
		},
		Stub: StubConfig{
			Host: getString(v, "STUB_HOST", "0.0.0.0"),
			Port: getInt(v, "STUB_PORT", 8081),
		},
	}

	return cfg, nil
}

// defaultCredsFile devuelve ~/.tienda/session.json, o un archivo relativo si no hay HOME.
func defaultCredsFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".tienda-session.json"
	}
	return filepath.Join(home, ".tienda", "session.json")
}

func getString(v *viper.Viper, key, def string) string {
	if v.IsSet(key) {
		return v.GetString(key)
	}
	return def
}

func getInt(v *viper.Viper, key string, def int) int {
	if v.IsSet(key) {
		switch v.Get(key).(type) {
		case int:
			return v.GetInt(key)
		case string:
			n, _ := strconv.Atoi(v.GetString(key))
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}
