package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"solaire/internal/core/service"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var (
	ErrNoTransport  = errors.New("no transport enabled")
	ErrMissingToken = errors.New("missing token")
)

const envPrefix = "SOLAIRE"

// Load reads an optional .env file and config.toml from dir into the global viper instance.
// Environment variables such as SOLAIRE_BOT_PRELUDE override file values.
func Load(dir string) error {
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil {
		log.Debug().Msg("no .env file found, using environment only")
	}

	setDefaults()

	viper.AddConfigPath(dir)
	viper.SetConfigName("config")
	viper.SetConfigType("toml")
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	log.Info().Msg("reading config file...")
	err := viper.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("could not read config file: %w", err)
		}

		log.Warn().Msg("no config file found, using defaults and environment")
	}

	return nil
}

func setDefaults() {
	viper.SetDefault("bot.log_level", "info")
	viper.SetDefault("bot.prelude", "")
	viper.SetDefault("bot.cooldown", "0s")
	viper.SetDefault("bot.strict_cooldown", false)
	viper.SetDefault("bot.strict_dates", false)
	viper.SetDefault("bot.reply_on_arg_error", true)
	viper.SetDefault("handler.timeout", "30s")
	viper.SetDefault("discord.enabled", true)
	viper.SetDefault("telegram.enabled", false)
	viper.SetDefault("sender.replies_per_second", 0)
	viper.SetDefault("openrouter.model", "openai/gpt-4.1-mini")
}

// Validate checks that at least one transport is enabled and has a token.
func Validate() error {
	discord := viper.GetBool("discord.enabled")
	telegram := viper.GetBool("telegram.enabled")

	if !discord && !telegram {
		return ErrNoTransport
	}

	if discord && viper.GetString("discord.token") == "" {
		return fmt.Errorf("%w: discord.token", ErrMissingToken)
	}

	if telegram && viper.GetString("telegram.bot_token") == "" {
		return fmt.Errorf("%w: telegram.bot_token", ErrMissingToken)
	}

	return nil
}

func LogLevel() zerolog.Level {
	switch viper.GetString("bot.log_level") {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func DispatcherOptions() service.Options {
	return service.Options{
		Prelude:         viper.GetString("bot.prelude"),
		Cooldown:        viper.GetDuration("bot.cooldown"),
		StrictCooldown:  viper.GetBool("bot.strict_cooldown"),
		ReplyOnArgError: viper.GetBool("bot.reply_on_arg_error"),
	}
}

func HandlerTimeout() time.Duration {
	return viper.GetDuration("handler.timeout")
}
