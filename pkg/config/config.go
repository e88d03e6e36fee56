package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	DB      DBConfig
	Session SessionConfig
	HTTP    HTTPConfig
	Upload  UploadConfig
	CNPJ    CNPJConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env         string // development, staging, production
	Name        string
	Timezone    string // zona horaria del negocio; define "hoy" para cobranzas vencidas
	LogLevel    string
	SeedOnStart bool
}

// IsDevelopment informa si la app corre en modo desarrollo.
func (c AppConfig) IsDevelopment() bool {
	return c.Env == "development"
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío, se usa como connection string completo (ej. DATABASE_URL de Railway).
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
	AutoMigrate bool
	MaxConns    int
	MinConns    int
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido, si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN devuelve el connection string para PostgreSQL con URL encoding para caracteres especiales.
func (c DBConfig) DSN() string {
	u := &url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.User, c.Password),
		Host:     fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:     "/" + c.DBName,
		RawQuery: fmt.Sprintf("sslmode=%s", c.SSLMode),
	}
	return u.String()
}

// SessionConfig configuración del token de sesión (JWT firmado en cookie HttpOnly).
type SessionConfig struct {
	Secret       string
	Expiration   int // minutos
	Issuer       string
	CookieName   string
	SecureCookie bool
}

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host           string
	Port           int
	AllowedOrigins string // lista separada por comas para CORS
	BodyLimitMB    int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// UploadConfig almacenamiento local de boletos, notas fiscales y contratos.
type UploadConfig struct {
	Dir        string
	PublicPath string // prefijo de URL con el que se sirven los archivos
	MaxSizeMB  int
}

// MaxBytes tamaño máximo por archivo en bytes.
func (c UploadConfig) MaxBytes() int64 {
	return int64(c.MaxSizeMB) * 1024 * 1024
}

// CNPJConfig cliente de consulta de CNPJ (BrasilAPI).
type CNPJConfig struct {
	BaseURL        string
	TimeoutSeconds int
}

const devSessionSecret = "dev-only-session-secret-change-me"

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, DATABASE_URL, SESSION_SECRET, etc.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // ignoramos error si no existe

	v.SetConfigName("config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	_ = v.ReadInConfig()

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	cfg := &Config{
		App: AppConfig{
			Env:         getString(v, "APP_ENV", "development"),
			Name:        getString(v, "APP_NAME", "billing-portal"),
			Timezone:    getString(v, "APP_TIMEZONE", "America/Sao_Paulo"),
			LogLevel:    getString(v, "LOG_LEVEL", "info"),
			SeedOnStart: getBool(v, "SEED_ON_START", false),
		},
		DB: DBConfig{
			// Railway expone la URL externa con otro nombre; tiene prioridad si existe.
			DatabaseURL: getString(v, "DATABASE_URL_EXTERNAL_RAILWAY", getString(v, "DATABASE_URL", "")),
			Host:        getString(v, "DB_HOST", "localhost"),
			Port:        getInt(v, "DB_PORT", 5432),
			User:        getString(v, "DB_USER", "postgres"),
			Password:    getString(v, "DB_PASSWORD", ""),
			DBName:      getString(v, "DB_NAME", "billing_portal"),
			SSLMode:     getString(v, "DB_SSLMODE", "disable"),
			AutoMigrate: getBool(v, "DB_AUTO_MIGRATE", true),
		},
		Session: SessionConfig{
			Secret:       getString(v, "SESSION_SECRET", ""),
			Expiration:   getInt(v, "SESSION_EXPIRATION_MINUTES", 60*12),
			Issuer:       getString(v, "SESSION_ISSUER", "billing-portal"),
			CookieName:   getString(v, "SESSION_COOKIE_NAME", "session"),
			SecureCookie: getBool(v, "SESSION_SECURE_COOKIE", false),
		},
		HTTP: HTTPConfig{
			Host:           getString(v, "HTTP_HOST", "0.0.0.0"),
			Port:           getInt(v, "HTTP_PORT", 5000),
			AllowedOrigins: getString(v, "HTTP_ALLOWED_ORIGINS", "http://localhost:5173"),
			BodyLimitMB:    getInt(v, "HTTP_BODY_LIMIT_MB", 20),
		},
		Upload: UploadConfig{
			Dir:        getString(v, "UPLOAD_DIR", "./uploads"),
			PublicPath: getString(v, "UPLOAD_PUBLIC_PATH", "/uploads"),
			MaxSizeMB:  getInt(v, "UPLOAD_MAX_SIZE_MB", 10),
		},
		CNPJ: CNPJConfig{
			BaseURL:        getString(v, "CNPJ_API_BASE_URL", "https://brasilapi.com.br/api/cnpj/v1"),
			TimeoutSeconds: getInt(v, "CNPJ_API_TIMEOUT_SECONDS", 10),
		},
	}

	if cfg.Session.Secret == "" {
		if !cfg.App.IsDevelopment() {
			return nil, fmt.Errorf("config: SESSION_SECRET es obligatorio fuera de development")
		}
		cfg.Session.Secret = devSessionSecret
	}
	return cfg, nil
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
			n, err := strconv.Atoi(v.GetString(key))
			if err != nil {
				return def
			}
			return n
		default:
			return v.GetInt(key)
		}
	}
	return def
}

func getBool(v *viper.Viper, key string, def bool) bool {
	if !v.IsSet(key) {
		return def
	}
	b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
	if err != nil {
		return def
	}
	return b
}
