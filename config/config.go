package config

import (
	"errors"
	"os"
	"strconv"
	"time"

	"fluentedge/internal/models"
	"fluentedge/internal/payment/razorpay"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

const (
	defaultConfigFile  = "config.yaml"
	defaultServicePort = "8787"
	defaultDevPort     = "5173"
	defaultStaticDir   = "dist"
)

type Config struct {
	ServicePort    string
	MetricsPort    string
	DevPort        string
	StaticDir      string
	LogLevel       string
	RazorpayConfig RazorpayConfig
	TracingConfig  TracingConfig
	Checkout       models.CheckoutSettings
}

type RazorpayConfig struct {
	KeyID     string
	KeySecret string
	// SecretID names an AWS Secrets Manager secret holding both keys.
	SecretID string
	APIBase  string
	Timeout  time.Duration
}

type TracingConfig struct {
	CollectorHost string
}

// fileConfig is the YAML settings file. Secrets are never read from it.
type fileConfig struct {
	ServicePort string `yaml:"service_port"`
	MetricsPort string `yaml:"metrics_port"`
	DevPort     string `yaml:"dev_port"`
	StaticDir   string `yaml:"static_dir"`
	LogLevel    string `yaml:"log_level"`
	Razorpay    struct {
		SecretID string `yaml:"secret_id"`
		APIBase  string `yaml:"api_base"`
		Timeout  string `yaml:"timeout"`
	} `yaml:"razorpay"`
	Tracing struct {
		CollectorHost string `yaml:"collector_host"`
	} `yaml:"tracing"`
	Checkout models.CheckoutSettings `yaml:"checkout"`
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	return Load(os.Getenv)
}

// CreateDevConfig reads the .env file at path without exporting it into
// the process environment, so the file stays the only source for the keys
// it defines. Process env still wins for every other setting.
func CreateDevConfig(path string) *Config {
	return Load(withDotenv(path, os.Getenv))
}

func withDotenv(path string, getenv func(string) string) func(string) string {
	values, err := godotenv.Read(path)
	if err != nil {
		values = map[string]string{}
	}
	return func(key string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return values[key]
	}
}

// Load builds the config from defaults, then the YAML file, then getenv.
// Later sources win.
func Load(getenv func(string) string) *Config {
	conf := Config{
		ServicePort: defaultServicePort,
		DevPort:     defaultDevPort,
		StaticDir:   defaultStaticDir,
		LogLevel:    "info",
		Checkout:    models.DefaultCheckoutSettings(),
	}

	path, explicit := getenv("CONFIG_FILE"), true
	if path == "" {
		path, explicit = defaultConfigFile, false
	}
	file, err := readFile(path)
	switch {
	case err == nil:
		conf.applyFile(file)
	case errors.Is(err, os.ErrNotExist) && !explicit:
	default:
		log.Warn().Err(err).Str("path", path).Msg("ignoring config file")
	}

	conf.applyEnv(getenv)

	return &conf
}

func (c *Config) Credentials() razorpay.Credentials {
	return razorpay.Credentials{
		KeyID:     c.RazorpayConfig.KeyID,
		KeySecret: c.RazorpayConfig.KeySecret,
	}
}

func readFile(path string) (fileConfig, error) {
	var file fileConfig
	raw, err := os.ReadFile(path)
	if err != nil {
		return file, err
	}
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return file, err
	}
	return file, nil
}

func (c *Config) applyFile(f fileConfig) {
	setString(&c.ServicePort, f.ServicePort)
	setString(&c.MetricsPort, f.MetricsPort)
	setString(&c.DevPort, f.DevPort)
	setString(&c.StaticDir, f.StaticDir)
	setString(&c.LogLevel, f.LogLevel)
	setString(&c.RazorpayConfig.SecretID, f.Razorpay.SecretID)
	setString(&c.RazorpayConfig.APIBase, f.Razorpay.APIBase)
	setDuration(&c.RazorpayConfig.Timeout, "razorpay.timeout", f.Razorpay.Timeout)
	setString(&c.TracingConfig.CollectorHost, f.Tracing.CollectorHost)

	if f.Checkout.Amount != 0 {
		c.Checkout.Amount = f.Checkout.Amount
	}
	setString(&c.Checkout.Currency, f.Checkout.Currency)
	setString(&c.Checkout.DisplayPrice, f.Checkout.DisplayPrice)
	setString(&c.Checkout.Name, f.Checkout.Name)
	setString(&c.Checkout.Description, f.Checkout.Description)
	setString(&c.Checkout.BookingLink, f.Checkout.BookingLink)
	setString(&c.Checkout.ThemeColor, f.Checkout.ThemeColor)
}

func (c *Config) applyEnv(getenv func(string) string) {
	setString(&c.ServicePort, getenv("SERVICE_PORT"))
	setString(&c.MetricsPort, getenv("METRICS_PORT"))
	setString(&c.DevPort, getenv("DEV_PORT"))
	setString(&c.StaticDir, getenv("STATIC_DIR"))
	setString(&c.LogLevel, getenv("LOG_LEVEL"))

	c.RazorpayConfig.KeyID = getenv("RAZORPAY_KEY_ID")
	c.RazorpayConfig.KeySecret = getenv("RAZORPAY_KEY_SECRET")
	setString(&c.RazorpayConfig.SecretID, getenv("RAZORPAY_SECRET_ID"))
	setString(&c.RazorpayConfig.APIBase, getenv("RAZORPAY_API_BASE"))
	setDuration(&c.RazorpayConfig.Timeout, "RAZORPAY_TIMEOUT", getenv("RAZORPAY_TIMEOUT"))

	setString(&c.TracingConfig.CollectorHost, getenv("COLLECTOR_HOST"))

	if v := getenv("DEMO_PRICE_INR"); v != "" {
		amount, err := strconv.ParseInt(v, 10, 64)
		if err != nil || amount <= 0 {
			log.Warn().Str("DEMO_PRICE_INR", v).Msg("ignoring invalid demo price")
		} else {
			c.Checkout.Amount = amount
		}
	}
	setString(&c.Checkout.Currency, getenv("DEMO_CURRENCY"))
	setString(&c.Checkout.DisplayPrice, getenv("DEMO_PRICE_DISPLAY"))
	setString(&c.Checkout.Name, getenv("BUSINESS_NAME"))
	setString(&c.Checkout.Description, getenv("DEMO_DESCRIPTION"))
	setString(&c.Checkout.BookingLink, getenv("CAL_BOOKING_LINK"))
	setString(&c.Checkout.ThemeColor, getenv("THEME_COLOR"))
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, key string, v string) {
	if v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil || d < 0 {
		log.Warn().Str(key, v).Msg("ignoring invalid duration")
		return
	}
	*dst = d
}
