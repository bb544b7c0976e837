package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/jhoicas/review-insights-api/internal/domain"
)

// Proveedores de LLM soportados.
const (
	ProviderOpenAI    = "openai"
	ProviderGemini    = "gemini"
	ProviderAnthropic = "anthropic"
)

// Config agrupa la configuración de la aplicación (lectura vía Viper desde env y opcionalmente archivo).
type Config struct {
	App     AppConfig
	HTTP    HTTPConfig
	AI      AIConfig
	Scoring ScoringConfig
	JWT     JWTConfig
}

// AppConfig configuración general de la aplicación.
type AppConfig struct {
	Env      string // development, staging, production
	Name     string
	LogLevel string
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

// AIConfig proveedor de completado de texto y sus credenciales.
// Solo la API key del proveedor elegido es obligatoria.
type AIConfig struct {
	Provider        string
	OpenAIAPIKey    string
	OpenAIModel     string
	OpenAIBaseURL   string // vacío = API pública
	GeminiAPIKey    string
	GeminiModel     string
	AnthropicAPIKey string
	AnthropicModel  string
	Timeout         time.Duration
}

// APIKey credencial del proveedor seleccionado.
func (c AIConfig) APIKey() string {
	switch c.Provider {
	case ProviderGemini:
		return c.GeminiAPIKey
	case ProviderAnthropic:
		return c.AnthropicAPIKey
	default:
		return c.OpenAIAPIKey
	}
}

// ScoringConfig modo de puntaje de cajas y verificación cruzada de sentimiento.
type ScoringConfig struct {
	Mode           domain.ScoringMode
	LexiconEnabled bool
}

// JWTConfig autenticación opcional: con Secret vacío las rutas son públicas.
type JWTConfig struct {
	Secret     string
	Expiration int // minutos
	Issuer     string
}

// Enabled indica si se exige Bearer token.
func (c JWTConfig) Enabled() bool {
	return c.Secret != ""
}

// Load lee la configuración desde variables de entorno (y opcionalmente desde archivo).
// Las env vars tienen prioridad. Nombres esperados: APP_ENV, LLM_PROVIDER, OPENAI_API_KEY, SCORING_MODE, etc.
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

	mode, err := domain.ParseScoringMode(getString(v, "SCORING_MODE", string(domain.ScoringModeInteger)))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		App: AppConfig{
			Env:      getString(v, "APP_ENV", "development"),
			Name:     getString(v, "APP_NAME", "review-insights-api"),
			LogLevel: getString(v, "LOG_LEVEL", "info"),
		},
		HTTP: HTTPConfig{
			Host: getString(v, "HTTP_HOST", "0.0.0.0"),
			// PORT lo inyectan las plataformas de despliegue; HTTP_PORT tiene prioridad.
			Port: getInt(v, "HTTP_PORT", getInt(v, "PORT", 5000)),
		},
		AI: AIConfig{
			Provider:        strings.ToLower(getString(v, "LLM_PROVIDER", ProviderOpenAI)),
			OpenAIAPIKey:    getString(v, "OPENAI_API_KEY", ""),
			OpenAIModel:     getString(v, "OPENAI_MODEL", "gpt-4"),
			OpenAIBaseURL:   getString(v, "OPENAI_BASE_URL", ""),
			GeminiAPIKey:    getString(v, "GEMINI_API_KEY", ""),
			GeminiModel:     getString(v, "GEMINI_MODEL", "gemini-1.5-flash"),
			AnthropicAPIKey: getString(v, "ANTHROPIC_API_KEY", ""),
			AnthropicModel:  getString(v, "ANTHROPIC_MODEL", "claude-3-5-haiku-20241022"),
			Timeout:         time.Duration(getInt(v, "LLM_TIMEOUT_SECONDS", 60)) * time.Second,
		},
		Scoring: ScoringConfig{
			Mode:           mode,
			LexiconEnabled: getBool(v, "LEXICON_CROSSCHECK", true),
		},
		JWT: JWTConfig{
			Secret:     getString(v, "JWT_SECRET", ""),
			Expiration: getInt(v, "JWT_EXPIRATION_MINUTES", 60),
			Issuer:     getString(v, "JWT_ISSUER", "review-insights-api"),
		},
	}

	return cfg, nil
}

// Validate condiciones fatales de arranque: proveedor desconocido o credencial ausente.
func (c *Config) Validate() error {
	var errs []error
	switch c.AI.Provider {
	case ProviderOpenAI, ProviderGemini, ProviderAnthropic:
		if c.AI.APIKey() == "" {
			errs = append(errs, fmt.Errorf("%s_API_KEY environment variable is not set", strings.ToUpper(c.AI.Provider)))
		}
	default:
		errs = append(errs, fmt.Errorf("LLM_PROVIDER desconocido %q (openai|gemini|anthropic)", c.AI.Provider))
	}
	if c.AI.Timeout <= 0 {
		errs = append(errs, errors.New("LLM_TIMEOUT_SECONDS debe ser positivo"))
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		errs = append(errs, fmt.Errorf("puerto HTTP inválido: %d", c.HTTP.Port))
	}
	return errors.Join(errs...)
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
			n, err := strconv.Atoi(strings.TrimSpace(v.GetString(key)))
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
	if v.IsSet(key) {
		b, err := strconv.ParseBool(strings.TrimSpace(v.GetString(key)))
		if err != nil {
			return def
		}
		return b
	}
	return def
}
