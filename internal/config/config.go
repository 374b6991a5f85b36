package config

import (
	"time"
)

// Config é a configuração da API, lida do ambiente (.env em dev).
type Config struct {
	Server       ServerConfig
	Database     DatabaseConfig
	Auth         AuthConfig
	RateLimit    RateLimitConfig
	Redis        RedisConfig
	RabbitMQ     RabbitMQConfig
	Notification NotificationConfig
	Mail         MailConfig
	Telegram     TelegramConfig
	Kommo        KommoConfig
	CORS         CORSConfig
	Log          LogConfig
	School       SchoolConfig
}

type ServerConfig struct {
	Port            int           `env:"PORT"                    env-default:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
	Version         string        `env:"APP_VERSION"             env-default:"dev"`
}

type DatabaseConfig struct {
	URL             string        `env:"DATABASE_URL"               env-required:"true"`
	MaxOpenConns    int           `env:"DATABASE_MAX_OPEN_CONNS"    env-default:"10"`
	MaxIdleConns    int           `env:"DATABASE_MAX_IDLE_CONNS"    env-default:"5"`
	ConnMaxLifetime time.Duration `env:"DATABASE_CONN_MAX_LIFETIME" env-default:"5m"`
	// AutoMigrate roda as migrations embutidas no startup.
	AutoMigrate bool `env:"DATABASE_AUTO_MIGRATE" env-default:"true"`
}

type AuthConfig struct {
	JWTSecret  string        `env:"JWT_SECRET"  env-required:"true"`
	JWTIssuer  string        `env:"JWT_ISSUER"  env-default:"aliar-cursos"`
	SessionTTL time.Duration `env:"SESSION_TTL" env-default:"8760h"`
	CookieName string        `env:"COOKIE_NAME" env-default:"app_session_id"`
	// SecureCookie desligado só em dev (http://localhost).
	SecureCookie bool   `env:"COOKIE_SECURE" env-default:"true"`
	OwnerID      string `env:"OWNER_OPEN_ID"`
	// InternalKey protege POST /api/internal/sessions (ponte com o provedor de login).
	InternalKey string `env:"INTERNAL_API_KEY"`
}

type RateLimitConfig struct {
	Limit  int           `env:"RATE_LIMIT_REQUESTS" env-default:"10"`
	Window time.Duration `env:"RATE_LIMIT_WINDOW"   env-default:"1m"`

	// TrustedProxies lista IPs/CIDRs cujo X-Forwarded-For é aceito. Vazio: só o peer do socket conta.
	TrustedProxies []string `env:"TRUSTED_PROXIES" env-separator:","`
}

type RedisConfig struct {
	URL string `env:"REDIS_URL"`
}

type RabbitMQConfig struct {
	URL      string `env:"AMQP_URL"`
	Prefetch int    `env:"AMQP_PREFETCH" env-default:"5"`
}

type NotificationConfig struct {
	Endpoint string        `env:"NOTIFICATION_ENDPOINT"`
	APIKey   string        `env:"NOTIFICATION_API_KEY"`
	Timeout  time.Duration `env:"NOTIFICATION_TIMEOUT" env-default:"10s"`
}

type MailConfig struct {
	Host     string `env:"MAIL_HOST"`
	Port     int    `env:"MAIL_PORT" env-default:"587"`
	User     string `env:"MAIL_USER"`
	Password string `env:"MAIL_PASS"`
	From     string `env:"MAIL_FROM" env-default:"nao-responda@aliarcursos.com.br"`
	// StaffTo recebe o resumo de cada lead novo.
	StaffTo      string `env:"MAIL_STAFF_TO"`
	DashboardURL string `env:"DASHBOARD_URL" env-default:"https://aliarcursos.com.br/admin"`
}

type TelegramConfig struct {
	Token  string `env:"TELEGRAM_BOT_TOKEN"`
	ChatID int64  `env:"TELEGRAM_CHAT_ID"`
}

// KommoConfig liga o envio dos leads para o CRM comercial.
type KommoConfig struct {
	BaseURL  string        `env:"KOMMO_BASE_URL"`
	Token    string        `env:"KOMMO_API_TOKEN"`
	StatusID int           `env:"KOMMO_STATUS_ID"`
	Timeout  time.Duration `env:"KOMMO_TIMEOUT" env-default:"10s"`
}

type CORSConfig struct {
	AllowedOrigins   []string `env:"CORS_ALLOWED_ORIGINS"   env-default:"http://localhost:5173" env-separator:","`
	AllowCredentials bool     `env:"CORS_ALLOW_CREDENTIALS" env-default:"true"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL"  env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"json"`
}

type SchoolConfig struct {
	Timezone string `env:"SCHOOL_TIMEZONE" env-default:"America/Fortaleza"`
}

func (c MailConfig) Enabled() bool {
	return c.Host != "" && c.StaffTo != ""
}

func (c TelegramConfig) Enabled() bool {
	return c.Token != "" && c.ChatID != 0
}

func (c KommoConfig) Enabled() bool {
	return c.BaseURL != "" && c.Token != ""
}

func (c NotificationConfig) Enabled() bool {
	return c.Endpoint != ""
}
