package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/ciiready/checkout-backend/api"
	"github.com/ciiready/checkout-backend/notifications"
	"github.com/ciiready/checkout-backend/notifications/sendgrid"
	smtpmail "github.com/ciiready/checkout-backend/notifications/smtp"
	"github.com/ciiready/checkout-backend/payments"
	"github.com/ciiready/checkout-backend/store"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func main() {
	// define flags
	flag.StringP("host", "h", "0.0.0.0", "listen address")
	flag.IntP("port", "p", 8080, "listen port")
	flag.String("log-level", "debug", "log level (debug, info, warn, error)")
	flag.String("stripe-secret-key", "", "Stripe secret key")
	flag.String("currency", api.DefaultCurrency, "ISO currency code for all charges")
	flag.String("sendgrid-api-key", "", "SendGrid API key")
	flag.String("smtp-server", "", "SMTP server, used instead of SendGrid when set")
	flag.Int("smtp-port", 587, "SMTP port")
	flag.String("smtp-username", "", "SMTP username")
	flag.String("smtp-password", "", "SMTP password")
	flag.String("store-url", "", "purchases store REST endpoint (optional)")
	flag.String("store-key", "", "purchases store service key (optional)")
	flag.String("app-base-url", "https://app.ciiready.com", "public application base URL for access links")
	flag.String("email-from-name", "CIIReady", "sender display name for outbound email")
	flag.String("email-from-address", "access@ciiready.com", "sender address for outbound email")
	// parse flags
	flag.Parse()
	// initialize Viper
	viper.SetEnvPrefix("CIIREADY")
	if err := viper.BindPFlags(flag.CommandLine); err != nil {
		panic(err)
	}
	viper.AutomaticEnv()

	level, err := zerolog.ParseLevel(viper.GetString("log-level"))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid log level")
	}
	zerolog.SetGlobalLevel(level)

	// payment processor client
	paymentsConfig, err := payments.NewConfig(viper.GetString("stripe-secret-key"), viper.GetString("currency"))
	if err != nil {
		log.Fatal().Err(err).Msg("invalid payments configuration")
	}
	paymentsClient := payments.NewClient(paymentsConfig)

	// purchases store client, optional: without endpoint and key the
	// purchase records are simply not persisted
	var storeClient *store.Client
	storeURL := viper.GetString("store-url")
	storeKey := viper.GetString("store-key")
	if storeURL != "" && storeKey != "" {
		storeClient = store.New(storeURL, storeKey)
	} else {
		log.Warn().Msg("store endpoint or key not configured, purchase persistence disabled")
	}

	// email service: SendGrid by default, SMTP when a server is configured
	var mailService notifications.NotificationService
	if smtpServer := viper.GetString("smtp-server"); smtpServer != "" {
		mailService = new(smtpmail.Email)
		err = mailService.Init(&smtpmail.Config{
			FromName:     viper.GetString("email-from-name"),
			FromAddress:  viper.GetString("email-from-address"),
			SMTPServer:   smtpServer,
			SMTPPort:     viper.GetInt("smtp-port"),
			SMTPUsername: viper.GetString("smtp-username"),
			SMTPPassword: viper.GetString("smtp-password"),
		})
	} else {
		mailService = new(sendgrid.Email)
		err = mailService.Init(&sendgrid.Config{
			FromName:    viper.GetString("email-from-name"),
			FromAddress: viper.GetString("email-from-address"),
			APIKey:      viper.GetString("sendgrid-api-key"),
		})
	}
	if err != nil {
		log.Fatal().Err(err).Msg("could not initialize the email service")
	}

	host := viper.GetString("host")
	port := viper.GetInt("port")
	api.New(&api.Config{
		Host:        host,
		Port:        port,
		Payments:    paymentsClient,
		Store:       storeClient,
		MailService: mailService,
		AppBaseURL:  viper.GetString("app-base-url"),
	}).Start()

	// wait forever, as the server is running in a goroutine
	log.Info().Str("host", host).Int("port", port).Msg("server started")
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c
}
