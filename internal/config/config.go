package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/octavioverge/DSP-MDS-new-sub000/internal/secrets"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Config holds all application configuration
type Config struct {
	App           AppConfig
	Database      DatabaseConfig
	Auth          AuthConfig
	Storage       StorageConfig
	Secrets       SecretsConfig
	Logging       LoggingConfig
	Server        ServerConfig
	CORS          CORSConfig
	Security      SecurityConfig
	RateLimit     RateLimitConfig
	Qualification QualificationConfig
	Quote         QuoteConfig
	Email         EmailConfig
	Telegram      TelegramConfig
	MercadoPago   MercadoPagoConfig
	Jobs          JobsConfig
}

type AppConfig struct {
	Name        string
	Environment string
	Port        int
	// PublicURL is used to build links to locally stored files
	PublicURL string
	// TimeZone is the IANA zone used for calendar days and monthly reports
	TimeZone string
}

type DatabaseConfig struct {
	Host            string
	Port            int
	Name            string
	User            string
	Password        string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime int
}

// AuthConfig holds the shared admin credential and session policy
type AuthConfig struct {
	// AdminPasswordHash is a bcrypt hash of the shared admin password
	AdminPasswordHash string
	// AdminPassword is hashed at startup when no hash is configured
	AdminPassword string
	JWTSecret     string
	// SessionTTL is the admin session lifetime in minutes
	SessionTTL int
	Issuer     string
}

type StorageConfig struct {
	Mode                  string
	LocalBasePath         string
	CloudConnectionString string
	CloudContainer        string
	// PublicBaseURL overrides the URL prefix returned for stored objects
	PublicBaseURL   string
	MaxUploadSizeMB int64
	MaxFilesPerForm int
}

type SecretsConfig struct {
	// Source determines where secrets are loaded from: "environment", "vault", or "auto"
	// "auto" uses environment in development, vault in staging/production
	Source       string
	KeyVaultName string
	CacheEnabled bool
	CacheTTL     int // seconds
}

type LoggingConfig struct {
	Level  string
	Format string
}

type ServerConfig struct {
	ReadTimeout    int
	WriteTimeout   int
	RequestTimeout int
	EnableSwagger  bool
}

// CORSConfig holds CORS configuration
type CORSConfig struct {
	// AllowedOrigins is a list of allowed origins for CORS requests
	AllowedOrigins   []string
	AllowedMethods   []string
	AllowedHeaders   []string
	ExposedHeaders   []string
	AllowCredentials bool
	// MaxAge is the max age (in seconds) for preflight cache
	MaxAge int
}

// SecurityConfig holds security header configuration
type SecurityConfig struct {
	EnableHSTS            bool
	HSTSMaxAge            int
	HSTSIncludeSubdomains bool
	HSTSPreload           bool
	ContentSecurityPolicy string
	FrameOptions          string
	ContentTypeNosniff    bool
	XSSProtection         string
	ReferrerPolicy        string
	PermissionsPolicy     string
}

// RateLimitConfig holds rate limiting configuration
type RateLimitConfig struct {
	Enabled bool
	// RequestsPerMinute is the default rate limit for unauthenticated requests (per IP)
	RequestsPerMinute int
	// RequestsPerMinuteAuth is the rate limit for admin requests (per session)
	RequestsPerMinuteAuth int
	// IntakePerHour caps public form submissions per IP
	IntakePerHour int
	// LoginPerMinute caps password attempts per IP
	LoginPerMinute int
	WhitelistIPs   []string
	WhitelistPaths []string
}

// QualificationConfig holds the coverage plan thresholds
type QualificationConfig struct {
	MinVehicleYear         int
	MinFranchise           int64
	ExcludedDamageCategory string
}

// QuoteConfig holds the issuer identity printed on quotes
type QuoteConfig struct {
	IssuerName    string
	IssuerTagline string
	IssuerPhone   string
	IssuerEmail   string
	IssuerAddress string
	IssuerWebsite string
	// ValidityDays is used when a quote request does not set one
	ValidityDays int
	// LogoPath and WatermarkPath override the embedded images when set
	LogoPath      string
	WatermarkPath string
}

// EmailConfig configures the transactional email API
type EmailConfig struct {
	Enabled bool
	APIURL  string
	APIKey  string
	From    string
	// OperatorAddress receives every notification regardless of the requested recipient
	OperatorAddress string
	TimeoutSeconds  int
}

type TelegramConfig struct {
	Enabled bool
	Token   string
	ChatID  int64
}

type MercadoPagoConfig struct {
	Enabled     bool
	AccessToken string
	// Mock returns fake checkout links without calling the API
	Mock       bool
	CurrencyID string
	SuccessURL string
	FailureURL string
	PendingURL string
}

// JobsConfig controls the background scheduler
type JobsConfig struct {
	Enabled bool
	// DigestCron is a six-field cron expression (seconds first)
	DigestCron string
	// CoverageCron runs the coverage renewal check
	CoverageCron  string
	DigestTimeout int
}

// ConnectionString builds PostgreSQL connection string
func (d *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		d.Host, d.Port, d.User, d.Password, d.Name, d.SSLMode,
	)
}

// ReadTimeoutDuration returns read timeout as duration
func (s *ServerConfig) ReadTimeoutDuration() time.Duration {
	return time.Duration(s.ReadTimeout) * time.Second
}

// WriteTimeoutDuration returns write timeout as duration
func (s *ServerConfig) WriteTimeoutDuration() time.Duration {
	return time.Duration(s.WriteTimeout) * time.Second
}

// RequestTimeoutDuration returns request timeout as duration
func (s *ServerConfig) RequestTimeoutDuration() time.Duration {
	return time.Duration(s.RequestTimeout) * time.Second
}

// ConnMaxLifetimeDuration returns connection max lifetime as duration
func (d *DatabaseConfig) ConnMaxLifetimeDuration() time.Duration {
	return time.Duration(d.ConnMaxLifetime) * time.Second
}

// SessionTTLDuration returns the admin session lifetime
func (a *AuthConfig) SessionTTLDuration() time.Duration {
	return time.Duration(a.SessionTTL) * time.Minute
}

// TimeoutDuration returns the email API timeout
func (e *EmailConfig) TimeoutDuration() time.Duration {
	return time.Duration(e.TimeoutSeconds) * time.Second
}

// DigestTimeoutDuration returns the digest job timeout
func (j *JobsConfig) DigestTimeoutDuration() time.Duration {
	return time.Duration(j.DigestTimeout) * time.Second
}

// MaxUploadBytes returns the per-file upload limit in bytes
func (s *StorageConfig) MaxUploadBytes() int64 {
	return s.MaxUploadSizeMB << 20
}

// Location resolves the configured time zone, falling back to UTC
func (a *AppConfig) Location() *time.Location {
	if a.TimeZone == "" {
		return time.UTC
	}
	loc, err := time.LoadLocation(a.TimeZone)
	if err != nil {
		return time.UTC
	}
	return loc
}

// Load loads configuration from file and environment variables
// This is a basic load that doesn't fetch secrets from vault
// Use LoadWithSecrets for full secret resolution
func Load() (*Config, error) {
	// Load .env file if it exists (ignore error if not found)
	_ = godotenv.Load()

	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Environment variables override config file
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Short names used by the deployment scripts
	if cfg.Auth.AdminPassword == "" {
		cfg.Auth.AdminPassword = v.GetString("ADMIN_PASSWORD")
	}
	if cfg.Auth.JWTSecret == "" {
		cfg.Auth.JWTSecret = v.GetString("JWT_SECRET")
	}
	if cfg.Email.APIKey == "" {
		cfg.Email.APIKey = v.GetString("EMAIL_API_KEY")
	}
	if cfg.Telegram.Token == "" {
		cfg.Telegram.Token = v.GetString("TELEGRAM_BOT_TOKEN")
	}
	if cfg.MercadoPago.AccessToken == "" {
		cfg.MercadoPago.AccessToken = v.GetString("MERCADOPAGO_ACCESS_TOKEN")
	}
	if cfg.Secrets.KeyVaultName == "" {
		cfg.Secrets.KeyVaultName = v.GetString("AZURE_KEY_VAULT_NAME")
	}

	return &cfg, nil
}

// LoadWithSecrets loads configuration and resolves secrets from the configured source
// In development (or when secrets.source = "environment"), secrets come from env vars
// In staging/production with USE_AZURE_KEY_VAULT=true, secrets come from Azure Key Vault
func LoadWithSecrets(ctx context.Context, logger *zap.Logger) (*Config, error) {
	cfg, err := Load()
	if err != nil {
		return nil, err
	}

	useKeyVault := strings.ToLower(os.Getenv("USE_AZURE_KEY_VAULT")) == "true"
	isValidEnv := cfg.App.Environment == "staging" || cfg.App.Environment == "production"

	if !useKeyVault {
		logger.Info("USE_AZURE_KEY_VAULT not enabled, using environment variables for secrets",
			zap.String("environment", cfg.App.Environment),
		)
		return cfg, nil
	}

	if !isValidEnv {
		logger.Warn("USE_AZURE_KEY_VAULT is enabled but environment is not staging or production, using environment variables for secrets",
			zap.String("environment", cfg.App.Environment),
		)
		return cfg, nil
	}

	if cfg.Secrets.KeyVaultName == "" {
		return nil, fmt.Errorf("AZURE_KEY_VAULT_NAME is required when USE_AZURE_KEY_VAULT=true")
	}

	logger.Info("Azure Key Vault enabled for secrets",
		zap.String("environment", cfg.App.Environment),
		zap.String("key_vault_name", cfg.Secrets.KeyVaultName),
	)

	provider, err := secrets.NewProvider(&secrets.ProviderConfig{
		Source:       secrets.SourceVault,
		VaultName:    cfg.Secrets.KeyVaultName,
		Environment:  cfg.App.Environment,
		CacheEnabled: cfg.Secrets.CacheEnabled,
		CacheTTL:     time.Duration(cfg.Secrets.CacheTTL) * time.Second,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize secrets provider (USE_AZURE_KEY_VAULT=true requires valid vault): %w", err)
	}

	if !provider.IsVaultEnabled() {
		return nil, fmt.Errorf("vault provider not enabled despite USE_AZURE_KEY_VAULT=true")
	}

	applySecrets(ctx, cfg, provider)

	logger.Info("Secrets loaded from vault successfully")
	return cfg, nil
}

// secretSource is the part of secrets.Provider used to fill the config
type secretSource interface {
	GetSecretOrEnv(ctx context.Context, secretName, envName string) (string, error)
}

func applySecrets(ctx context.Context, cfg *Config, provider secretSource) {
	set := func(target *string, secretName, envName string) {
		if value, err := provider.GetSecretOrEnv(ctx, secretName, envName); err == nil && value != "" {
			*target = value
		}
	}

	set(&cfg.Database.Host, "POSTGRES-MAIN-HOST", "DATABASE_HOST")
	set(&cfg.Database.User, "POSTGRES-MAIN-USER", "DATABASE_USER")
	set(&cfg.Database.Password, "POSTGRES-MAIN-PASSWORD", "DATABASE_PASSWORD")
	if sslMode := os.Getenv("DATABASE_SSLMODE"); sslMode != "" {
		cfg.Database.SSLMode = sslMode
	}

	set(&cfg.Auth.AdminPasswordHash, "admin-password-hash", "AUTH_ADMINPASSWORDHASH")
	set(&cfg.Auth.JWTSecret, "jwt-secret", "JWT_SECRET")
	set(&cfg.Storage.CloudConnectionString, "storage-connection-string", "STORAGE_CLOUDCONNECTIONSTRING")
	set(&cfg.Email.APIKey, "email-api-key", "EMAIL_API_KEY")
	set(&cfg.Telegram.Token, "telegram-bot-token", "TELEGRAM_BOT_TOKEN")
	set(&cfg.MercadoPago.AccessToken, "mercadopago-access-token", "MERCADOPAGO_ACCESS_TOKEN")
}

func setDefaults(v *viper.Viper) {
	// App defaults
	v.SetDefault("app.name", "DSP Backoffice API")
	v.SetDefault("app.environment", "development")
	v.SetDefault("app.port", 8080)
	v.SetDefault("app.publicURL", "http://localhost:8080")
	v.SetDefault("app.timeZone", "America/Argentina/Buenos_Aires")

	// Database defaults
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.name", "dsp")
	v.SetDefault("database.user", "dsp_user")
	v.SetDefault("database.password", "dsp_password")
	v.SetDefault("database.sslMode", "disable")
	v.SetDefault("database.maxOpenConns", 25)
	v.SetDefault("database.maxIdleConns", 5)
	v.SetDefault("database.connMaxLifetime", 300)

	// Auth defaults
	v.SetDefault("auth.sessionTTL", 480) // 8 hours
	v.SetDefault("auth.issuer", "dsp-backoffice")

	// Secrets defaults
	v.SetDefault("secrets.source", "auto")
	v.SetDefault("secrets.cacheEnabled", true)
	v.SetDefault("secrets.cacheTTL", 300)

	// Storage defaults
	v.SetDefault("storage.mode", "local")
	v.SetDefault("storage.localBasePath", "./storage")
	v.SetDefault("storage.cloudContainer", "presupuestos")
	v.SetDefault("storage.maxUploadSizeMB", 15)
	v.SetDefault("storage.maxFilesPerForm", 10)

	// Logging defaults
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "console")

	// Server defaults
	v.SetDefault("server.readTimeout", 60)
	v.SetDefault("server.writeTimeout", 60)
	v.SetDefault("server.requestTimeout", 90)
	v.SetDefault("server.enableSwagger", true)

	// CORS defaults - restrictive by default
	v.SetDefault("cors.allowedOrigins", []string{})
	v.SetDefault("cors.allowedMethods", []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"})
	v.SetDefault("cors.allowedHeaders", []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"})
	v.SetDefault("cors.exposedHeaders", []string{"Location", "X-Request-ID", "X-Quote-Url", "X-Quote-Upload-Error", "Content-Disposition"})
	v.SetDefault("cors.allowCredentials", true)
	v.SetDefault("cors.maxAge", 300)

	// Security header defaults
	v.SetDefault("security.enableHSTS", false)
	v.SetDefault("security.hstsMaxAge", 31536000)
	v.SetDefault("security.hstsIncludeSubdomains", true)
	v.SetDefault("security.hstsPreload", false)
	v.SetDefault("security.contentSecurityPolicy", "default-src 'self'")
	v.SetDefault("security.frameOptions", "DENY")
	v.SetDefault("security.contentTypeNosniff", true)
	v.SetDefault("security.xssProtection", "1; mode=block")
	v.SetDefault("security.referrerPolicy", "strict-origin-when-cross-origin")
	v.SetDefault("security.permissionsPolicy", "geolocation=(), microphone=(), camera=()")

	// Rate limiting defaults
	v.SetDefault("rateLimit.enabled", true)
	v.SetDefault("rateLimit.requestsPerMinute", 60)
	v.SetDefault("rateLimit.requestsPerMinuteAuth", 240)
	v.SetDefault("rateLimit.intakePerHour", 20)
	v.SetDefault("rateLimit.loginPerMinute", 5)
	v.SetDefault("rateLimit.whitelistIPs", []string{"127.0.0.1", "::1"})
	v.SetDefault("rateLimit.whitelistPaths", []string{"/health", "/health/db", "/health/ready"})

	// Coverage pre-qualification thresholds
	v.SetDefault("qualification.minVehicleYear", 2010)
	v.SetDefault("qualification.minFranchise", 300000)
	v.SetDefault("qualification.excludedDamageCategory", "Large impact")

	// Quote defaults
	v.SetDefault("quote.issuerName", "DSP Desabollado Sin Pintura")
	v.SetDefault("quote.issuerTagline", "Reparación de abolladuras sin pintura")
	v.SetDefault("quote.validityDays", 15)

	// Email defaults
	v.SetDefault("email.enabled", false)
	v.SetDefault("email.apiURL", "https://api.resend.com/emails")
	v.SetDefault("email.from", "DSP <notificaciones@dsp.local>")
	v.SetDefault("email.timeoutSeconds", 15)

	// Telegram, Mercado Pago and jobs are opt-in
	v.SetDefault("telegram.enabled", false)
	v.SetDefault("mercadoPago.enabled", false)
	v.SetDefault("mercadoPago.mock", false)
	v.SetDefault("mercadoPago.currencyID", "ARS")
	v.SetDefault("jobs.enabled", false)
	v.SetDefault("jobs.digestCron", "0 0 8 * * *")
	v.SetDefault("jobs.coverageCron", "0 30 8 * * MON")
	v.SetDefault("jobs.digestTimeout", 60)
}
