package main

import (
	"context"
	"os"
	"os/signal"
	"solaire/internal/adapters/directory"
	"solaire/internal/adapters/generator"
	"solaire/internal/adapters/handler"
	"solaire/internal/adapters/sender"
	"solaire/internal/config"
	"solaire/internal/core/domain/command"
	"solaire/internal/core/domain/commands"
	"solaire/internal/core/service"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

func main() {
	log.Info().Msg("starting solaire...")

	err := config.Load(".")
	if err != nil {
		log.Fatal().Err(err).Msg("could not load config")
	}

	zerolog.SetGlobalLevel(config.LogLevel())

	err = config.Validate()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	options := config.DispatcherOptions()
	repliesPerSecond := viper.GetFloat64("sender.replies_per_second")
	timeout := config.HandlerTimeout()

	types := command.NewTypeTable(viper.GetBool("bot.strict_dates"))

	var session *discordgo.Session
	if viper.GetBool("discord.enabled") {
		session, err = discordgo.New("Bot " + viper.GetString("discord.token"))
		if err != nil {
			log.Fatal().Err(err).Msg("failed initializing discord session")
		}

		session.Identify.Intents = discordgo.IntentsGuilds |
			discordgo.IntentsGuildMessages |
			discordgo.IntentsDirectMessages |
			discordgo.IntentsMessageContent

		types.RegisterMember(directory.NewDiscord(session))
	} else {
		types.RegisterMember(directory.NewDiscord(nil))
	}

	authorizer, err := service.NewAuthorizer()
	if err != nil {
		log.Fatal().Err(err).Msg("failed initializing authorizer")
	}

	orGenerator := generator.NewOpenRouterGenerator(
		viper.GetString("openrouter.api_key"),
		viper.GetString("openrouter.model"),
		viper.GetString("chat.system_prompt"))

	farmHandler := commands.NewFarmHandler(commands.NewFarm())
	askHandler := commands.NewAskHandler(orGenerator)
	helpHandler := commands.NewHelpHandler(options.Prelude)

	definitions := farmHandler.Definitions(authorizer.Guard)
	definitions = append(definitions, askHandler.Definition(), helpHandler.Definition())

	registry, err := command.NewRegistry(definitions...)
	if err != nil {
		log.Fatal().Err(err).Msg("failed building command registry")
	}

	helpHandler.Bind(registry)

	dispatcher, err := service.NewDispatcher(registry, types, options)
	if err != nil {
		log.Fatal().Err(err).Msg("failed initializing dispatcher")
	}

	dispatcher.OnCommandFinished(service.LogResult)

	if session != nil {
		discordHandler := handler.NewDiscord(dispatcher, sender.NewDiscord(session, repliesPerSecond), timeout)
		session.AddHandler(discordHandler.Handle)

		err = session.Open()
		if err != nil {
			log.Fatal().Err(err).Msg("failed opening discord session")
		}
		defer session.Close()

		log.Info().Msg("discord session open")
	}

	if viper.GetBool("telegram.enabled") {
		b, err := bot.New(viper.GetString("telegram.bot_token"), bot.WithDefaultHandler(noOpHandler))
		if err != nil {
			log.Fatal().Err(err).Msg("failed initializing telegram bot")
		}

		telegramHandler := handler.NewTelegram(dispatcher, sender.NewTelegram(b, repliesPerSecond), timeout)
		b.RegisterHandler(bot.HandlerTypeMessageText, options.Prelude, bot.MatchTypePrefix, telegramHandler.Handle)
		b.RegisterHandler(bot.HandlerTypePhotoCaption, options.Prelude, bot.MatchTypePrefix, telegramHandler.Handle)

		go b.Start(ctx)

		log.Info().Msg("telegram bot polling")
	}

	log.Info().Str("prelude", options.Prelude).Int("commands", len(registry.Commands())).Msg("bot listening")
	<-ctx.Done()

	log.Info().Msg("shutting down")
}

func noOpHandler(_ context.Context, _ *bot.Bot, _ *models.Update) {}
