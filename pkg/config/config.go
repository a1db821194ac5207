package config

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/viper"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde
// variables de entorno y opcionalmente un archivo .env).
type Config struct {
	App      AppConfig
	DB       DBConfig
	HTTP     HTTPConfig
	JWT      JWTConfig
	Transfer TransferConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env  string // development, staging, production
	Name string
}

// DBConfig configuración de PostgreSQL.
// Si DatabaseURL no está vacío se usa como connection string completo.
type DBConfig struct {
	DatabaseURL string
	Host        string
	Port        int
	User        string
	Password    string
	DBName      string
	SSLMode     string
}

// ConnectionString devuelve el DSN a usar: DATABASE_URL si está definido,
// si no el construido con DSN().
func (c DBConfig) ConnectionString() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return c.DSN()
}

// DSN construye el connection string con URL encoding para la contraseña.
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

// HTTPConfig configuración del servidor HTTP.
type HTTPConfig struct {
	Host string
	Port int
}

// Addr devuelve la dirección de escucha (host:port).
func (c HTTPConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// JWTConfig validación de tokens emitidos por el servicio de identidad.
type JWTConfig struct {
	Secret string
	Issuer string
}

// TransferConfig parámetros económicos del motor de transferencias (COP).
// Los valores por defecto son los costos logísticos vigentes de la operación.
type TransferConfig struct {
	BaseCost               int64 // costo fijo por despacho
	PerKmCost              int64 // costo por kilómetro
	PerUnitCost            int64 // costo por unidad movida
	CapacityThreshold      int   // unidades/destino antes de alertar capacidad
	CriticalCountThreshold int   // recomendaciones críticas antes de alertar tiempo
	ExpiryHorizonDays      int   // qué tan adelante se mira el vencimiento
}

// Load lee la configuración desde variables de entorno (y opcionalmente .env).
// Las env vars tienen prioridad sobre el archivo.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // el archivo es opcional

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	cfg := &Config{
		App: AppConfig{
			Env:  v.GetString("APP_ENV"),
			Name: v.GetString("APP_NAME"),
		},
		DB: DBConfig{
			DatabaseURL: v.GetString("DATABASE_URL"),
			Host:        v.GetString("DB_HOST"),
			Port:        v.GetInt("DB_PORT"),
			User:        v.GetString("DB_USER"),
			Password:    v.GetString("DB_PASSWORD"),
			DBName:      v.GetString("DB_NAME"),
			SSLMode:     v.GetString("DB_SSLMODE"),
		},
		HTTP: HTTPConfig{
			Host: v.GetString("HTTP_HOST"),
			Port: v.GetInt("HTTP_PORT"),
		},
		JWT: JWTConfig{
			Secret: v.GetString("JWT_SECRET"),
			Issuer: v.GetString("JWT_ISSUER"),
		},
		Transfer: TransferConfig{
			BaseCost:               v.GetInt64("TRANSFER_BASE_COST"),
			PerKmCost:              v.GetInt64("TRANSFER_PER_KM_COST"),
			PerUnitCost:            v.GetInt64("TRANSFER_PER_UNIT_COST"),
			CapacityThreshold:      v.GetInt("TRANSFER_CAPACITY_THRESHOLD"),
			CriticalCountThreshold: v.GetInt("TRANSFER_CRITICAL_COUNT_THRESHOLD"),
			ExpiryHorizonDays:      v.GetInt("TRANSFER_EXPIRY_HORIZON_DAYS"),
		},
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("APP_NAME", "retail-pro")

	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", 5432)
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "")
	v.SetDefault("DB_NAME", "retail_pro")
	v.SetDefault("DB_SSLMODE", "disable")

	v.SetDefault("HTTP_HOST", "0.0.0.0")
	v.SetDefault("HTTP_PORT", 8080)

	v.SetDefault("JWT_ISSUER", "retail-pro")

	v.SetDefault("TRANSFER_BASE_COST", 50000)
	v.SetDefault("TRANSFER_PER_KM_COST", 2000)
	v.SetDefault("TRANSFER_PER_UNIT_COST", 1000)
	v.SetDefault("TRANSFER_CAPACITY_THRESHOLD", 100)
	v.SetDefault("TRANSFER_CRITICAL_COUNT_THRESHOLD", 5)
	v.SetDefault("TRANSFER_EXPIRY_HORIZON_DAYS", 30)
}
