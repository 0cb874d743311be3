package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	GitHub        GitHubConfig
	LLM           LLMConfig
	TrustedOrigin string
}

type ServerConfig struct {
	Port         string
	Mode         string
	ReadTimeout  int
	WriteTimeout int
}

type DatabaseConfig struct {
	Path string
}

type GitHubConfig struct {
	Tokens         []string
	APIBaseURL     string
	GraphQLURL     string
	ProfileBaseURL string
	StarRepoOwner  string
	StarRepoName   string
}

type LLMConfig struct {
	Keys    []string
	BaseURL string
	Model   string
}

var AppConfig *Config

// Load loads configuration from .env file and environment variables
func Load() error {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	AppConfig = &Config{
		Server: ServerConfig{
			Port:         getEnv("PORT", "8080"),
			Mode:         getEnv("GIN_MODE", "release"),
			ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 60),
		},
		Database: DatabaseConfig{
			Path: getEnv("DB_PATH", "./analyzer.db"),
		},
		GitHub: GitHubConfig{
			Tokens:         getEnvAsList("GITHUB_TOKENS"),
			APIBaseURL:     getEnv("GITHUB_API_URL", ""),
			GraphQLURL:     getEnv("GITHUB_GRAPHQL_URL", "https://api.github.com/graphql"),
			ProfileBaseURL: getEnv("GITHUB_PROFILE_URL", "https://github.com"),
			StarRepoOwner:  getEnv("STAR_REPO_OWNER", "0xarchit"),
			StarRepoName:   getEnv("STAR_REPO_NAME", "github-profile-analyzer"),
		},
		LLM: LLMConfig{
			Keys:    getEnvAsList("LLM_API_KEYS"),
			BaseURL: getEnv("LLM_BASE_URL", "https://api.cerebras.ai/v1"),
			Model:   getEnv("LLM_MODEL", "gpt-oss-120b"),
		},
		TrustedOrigin: getEnv("FRONTEND_ORIGIN", ""),
	}

	return nil
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

// getEnvAsList gets a comma-separated environment variable as a string slice
func getEnvAsList(key string) []string {
	value := os.Getenv(key)
	if value == "" {
		return nil
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}
	return items
}
