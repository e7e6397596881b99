package mail_fx

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"

	"wellness/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.MailServiceInterface {
	port := 587
	if raw := os.Getenv("SMTP_PORT"); raw != "" {
		p, err := strconv.Atoi(raw)
		if err != nil {
			log.Printf("Invalid SMTP_PORT %q, using 587", raw)
		} else {
			port = p
		}
	}

	cfg := services.SMTPConfig{
		Host:       os.Getenv("SMTP_HOST"),
		Port:       port,
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"),
		From:       os.Getenv("SMTP_FROM"),
		FromName:   "Wellness",
		AppName:    "Wellness",
		AppBaseURL: os.Getenv("APP_BASE_URL"),
	}

	if cfg.Host == "" {
		log.Println("SMTP_HOST not set, password reset mails will be skipped")
	}

	return services.NewSMTPMailService(cfg)
}
