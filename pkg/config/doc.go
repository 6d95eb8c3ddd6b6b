// Package config loads typed configuration from environment variables.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - LoadEnv reads one or more .env files into the process environment; the
//     default .env is picked up automatically on the first Load.
//   - Load parses the environment into a tagged struct and caches the result
//     per type, so each configuration is parsed once per process.
//   - Types implementing Validator are checked right after parsing; failures
//     are returned joined with ErrInvalidConfig and are not cached.
//   - LoadNoCache and ResetCache exist for tests.
//
// # Usage
//
//	type AppConfig struct {
//		Env string `env:"APP_ENV" envDefault:"development"`
//		Key string `env:"APP_KEY,required"`
//	}
//
//	var app AppConfig
//	if err := config.Load(&app); err != nil {
//		log.Fatalf("config: %v", err)
//	}
//
// # Error Handling
//
//   - ErrParsingConfig: env vars could not be parsed into the struct.
//   - ErrInvalidConfig: the struct's Validate method failed.
//   - ErrLoadingEnvFile: a .env file could not be read.
//   - ErrNilPointer: nil pointer passed to Load.
package config
