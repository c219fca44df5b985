package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	App       AppConfig
	CORS      CORSConfig
	RateLimit RateLimitConfig
	Invoice   InvoiceConfig
}

type AppConfig struct {
	Name  string
	Env   string
	Port  string
	Debug bool
}

type CORSConfig struct {
	AllowedOrigins []string
	AllowedMethods []string
	AllowedHeaders []string
}

type RateLimitConfig struct {
	Requests int
	Duration int
}

// CompanyConfig is one issuing-company header block; which block renders is
// selected by the invoice's project code.
type CompanyConfig struct {
	Name         string
	AddressLines []string
	Phone        string
	Email        string
	LogoFile     string
}

// InvoiceConfig carries the branding and terms rendered on every document.
type InvoiceConfig struct {
	AssetDir   string
	Companies  map[string]CompanyConfig
	TermsIntro string
	TermsLines []string
}

func Load() *Config {
	viper.SetConfigFile(".env")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables: %v", err)
	}

	// Set defaults
	viper.SetDefault("APP_NAME", "ld-invgen")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_DEBUG", true)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	viper.SetDefault("CORS_ALLOWED_HEADERS", []string{})
	viper.SetDefault("RATE_LIMIT_REQUESTS", 100)
	viper.SetDefault("RATE_LIMIT_DURATION", 60)
	viper.SetDefault("ASSET_DIR", "./assets")
	viper.SetDefault("COMPANY_LD_NAME", "Leads Digital")
	viper.SetDefault("COMPANY_LD_ADDRESS", []string{"S.M. Sarani, Kolkata", "PIN-700127"})
	viper.SetDefault("COMPANY_LD_PHONE", "8296343757 / 8240245144")
	viper.SetDefault("COMPANY_LD_EMAIL", "support@leadstocompany.com")
	viper.SetDefault("COMPANY_LD_LOGO", "ld-logo.png")
	viper.SetDefault("COMPANY_LTC_NAME", "Leads To Company")
	viper.SetDefault("COMPANY_LTC_ADDRESS", []string{"S.M. Sarani, Kolkata", "PIN-700127"})
	viper.SetDefault("COMPANY_LTC_PHONE", "8296343757 / 8240245144")
	viper.SetDefault("COMPANY_LTC_EMAIL", "support@leadstocompany.com")
	viper.SetDefault("COMPANY_LTC_LOGO", "ltc-logo.png")
	viper.SetDefault("TERMS_INTRO", "Payments will be made to the following account through NEFT:")
	viper.SetDefault("TERMS_LINES", []string{
		"MANAS DATTA",
		"176010100013621",
		"Union Bank Of India",
		"IFSC Code : UBIN0911488",
		"OR",
		"UPI: mansumseo-2@oksbi",
	})

	return &Config{
		App: AppConfig{
			Name:  viper.GetString("APP_NAME"),
			Env:   viper.GetString("APP_ENV"),
			Port:  viper.GetString("APP_PORT"),
			Debug: viper.GetBool("APP_DEBUG"),
		},
		CORS: CORSConfig{
			AllowedOrigins: viper.GetStringSlice("CORS_ALLOWED_ORIGINS"),
			AllowedMethods: viper.GetStringSlice("CORS_ALLOWED_METHODS"),
			AllowedHeaders: viper.GetStringSlice("CORS_ALLOWED_HEADERS"),
		},
		RateLimit: RateLimitConfig{
			Requests: viper.GetInt("RATE_LIMIT_REQUESTS"),
			Duration: viper.GetInt("RATE_LIMIT_DURATION"),
		},
		Invoice: InvoiceConfig{
			AssetDir: viper.GetString("ASSET_DIR"),
			Companies: map[string]CompanyConfig{
				"LD": {
					Name:         viper.GetString("COMPANY_LD_NAME"),
					AddressLines: viper.GetStringSlice("COMPANY_LD_ADDRESS"),
					Phone:        viper.GetString("COMPANY_LD_PHONE"),
					Email:        viper.GetString("COMPANY_LD_EMAIL"),
					LogoFile:     viper.GetString("COMPANY_LD_LOGO"),
				},
				"LTC": {
					Name:         viper.GetString("COMPANY_LTC_NAME"),
					AddressLines: viper.GetStringSlice("COMPANY_LTC_ADDRESS"),
					Phone:        viper.GetString("COMPANY_LTC_PHONE"),
					Email:        viper.GetString("COMPANY_LTC_EMAIL"),
					LogoFile:     viper.GetString("COMPANY_LTC_LOGO"),
				},
			},
			TermsIntro: viper.GetString("TERMS_INTRO"),
			TermsLines: viper.GetStringSlice("TERMS_LINES"),
		},
	}
}

// CompanyFor returns the header block for a project code, falling back to
// the LD block for codes without a configured company.
func (c *InvoiceConfig) CompanyFor(code string) CompanyConfig {
	if company, ok := c.Companies[code]; ok {
		return company
	}
	return c.Companies["LD"]
}
