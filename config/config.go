package config

import (
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Airtable AirtableConfig
	Booking  BookingConfig
	Redis    RedisConfig
	Draft    DraftConfig
}

type AppConfig struct {
	Port string
	Env  string
}

// AirtableConfig holds the three deployment values the submission proxy
// requires. BaseURL is overridable so tests can point at a local server.
type AirtableConfig struct {
	APIKey    string
	BaseID    string
	TableName string
	BaseURL   string
}

// IsComplete reports whether all three required deployment values are set.
func (c AirtableConfig) IsComplete() bool {
	return c.APIKey != "" && c.BaseID != "" && c.TableName != ""
}

// BookingConfig carries the business-policy choices that varied across the
// historical form variants: confirmation close delay, consultation length,
// fallback phone and the discriminator tag stamped on each submission.
type BookingConfig struct {
	CloseDelay          time.Duration
	ConsultationMinutes int
	ContactPhone        string
	FormType            string
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

type DraftConfig struct {
	SettleWindow time.Duration
	TTL          time.Duration
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, err
	}

	closeDelay, err := time.ParseDuration(viper.GetString("BOOKING_CLOSE_DELAY"))
	if err != nil {
		closeDelay = 3 * time.Second
	}

	settleWindow, err := time.ParseDuration(viper.GetString("DRAFT_SETTLE_WINDOW"))
	if err != nil {
		settleWindow = 500 * time.Millisecond
	}

	draftTTL, err := time.ParseDuration(viper.GetString("DRAFT_TTL"))
	if err != nil {
		draftTTL = 7 * 24 * time.Hour
	}

	consultationMinutes := viper.GetInt("BOOKING_CONSULTATION_MINUTES")
	if consultationMinutes == 0 {
		consultationMinutes = 15
	}

	baseURL := viper.GetString("AIRTABLE_BASE_URL")
	if baseURL == "" {
		baseURL = "https://api.airtable.com/v0"
	}

	formType := viper.GetString("BOOKING_FORM_TYPE")
	if formType == "" {
		formType = "Free Consultation"
	}

	config := &Config{
		App: AppConfig{
			Port: viper.GetString("APP_PORT"),
			Env:  viper.GetString("APP_ENV"),
		},
		Airtable: AirtableConfig{
			APIKey:    viper.GetString("AIRTABLE_API_KEY"),
			BaseID:    viper.GetString("THERAPY_BASE"),
			TableName: viper.GetString("AIRTABLE_TABLE_NAME"),
			BaseURL:   baseURL,
		},
		Booking: BookingConfig{
			CloseDelay:          closeDelay,
			ConsultationMinutes: consultationMinutes,
			ContactPhone:        viper.GetString("BOOKING_CONTACT_PHONE"),
			FormType:            formType,
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		Draft: DraftConfig{
			SettleWindow: settleWindow,
			TTL:          draftTTL,
		},
	}

	return config, nil
}
