package config

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	env_utils "safetybot-backend/internal/util/env"
	"safetybot-backend/internal/util/logger"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var log = logger.GetLogger()

type EnvVariables struct {
	IsTesting   bool
	DatabaseDsn string            `env:"DATABASE_DSN" env-required:"true"`
	EnvMode     env_utils.EnvMode `env:"ENV_MODE"     env-required:"true"`

	HTTPPort string `env:"HTTP_PORT" env-default:"4010"`

	// external collaborators
	TranslateAPIKey     string `env:"GOOGLE_TRANSLATE_API_KEY"`
	TranslateAPIURL     string `env:"GOOGLE_TRANSLATE_API_URL" env-default:"https://translation.googleapis.com/language/translate/v2"`
	ReportgenChatbotURL string `env:"REPORTGEN_CHATBOT_URL"`
	QuestionBankURL     string `env:"QUESTION_BANK_URL"`
	PersonaServiceURL   string `env:"PERSONA_SERVICE_URL"`

	// hosted generative-AI live API
	GeminiAPIKey  string `env:"GEMINI_API_KEY"`
	GeminiLiveURL string `env:"GEMINI_LIVE_URL"   env-default:"wss://generativelanguage.googleapis.com/ws/google.ai.generativelanguage.v1beta.GenerativeService.BidiGenerateContent"`
	GeminiModel   string `env:"GEMINI_LIVE_MODEL" env-default:"models/gemini-2.5-flash-preview-native-audio-dialog"`

	// object storage for uploads
	MinioEndpoint  string `env:"MINIO_ENDPOINT"`
	MinioAccessKey string `env:"MINIO_ACCESS_KEY"`
	MinioSecretKey string `env:"MINIO_SECRET_KEY"`
	MinioBucket    string `env:"MINIO_BUCKET"  env-default:"safetybot-uploads"`
	MinioUseSSL    bool   `env:"MINIO_USE_SSL" env-default:"false"`

	SecretKeyPath string
}

var (
	env  EnvVariables
	once sync.Once
)

func GetEnv() EnvVariables {
	once.Do(loadEnvVariables)
	return env
}

func loadEnvVariables() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Warn("could not get current working directory", "error", err)
		cwd = "."
	}

	// walk up to the module root so tests in nested packages find .env
	backendRoot := cwd
	for {
		if _, err := os.Stat(filepath.Join(backendRoot, "go.mod")); err == nil {
			break
		}

		parent := filepath.Dir(backendRoot)
		if parent == backendRoot {
			break
		}

		backendRoot = parent
	}

	envPaths := []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(backendRoot, ".env"),
	}

	for _, path := range envPaths {
		if err := godotenv.Load(path); err == nil {
			log.Info("Loaded .env", "path", path)
			break
		}
	}

	if err := cleanenv.ReadEnv(&env); err != nil {
		log.Error("Configuration could not be loaded", "error", err)
		os.Exit(1)
	}

	for _, arg := range os.Args {
		if strings.Contains(arg, "test") {
			env.IsTesting = true
			break
		}
	}

	if env.DatabaseDsn == "" {
		log.Error("DATABASE_DSN is empty")
		os.Exit(1)
	}

	if env.EnvMode != env_utils.EnvModeDevelopment && env.EnvMode != env_utils.EnvModeProduction {
		log.Error("ENV_MODE is invalid", "mode", env.EnvMode)
		os.Exit(1)
	}

	env.SecretKeyPath = filepath.Join(filepath.Dir(backendRoot), "safetybot-data", "secret.key")

	log.Info("Environment variables loaded successfully!")
}
