package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/ian-kent/gofigure"
	"gopkg.in/yaml.v2"
)

// Config is the parcel delivery api config
type Config struct {
	gofigure                interface{} `order:"env,flag"`
	BindAddr                string      `env:"BIND_ADDR"                      flag:"bind-addr"                      flagDesc:"Address the HTTP server listens on"`
	Port                    string      `env:"PORT"                           flag:"port"                           flagDesc:"Port the HTTP server listens on, overrides the port of bind-addr"`
	MongoDBURL              string      `env:"MONGODB_URL"                    flag:"mongodb-url"                    flagDesc:"MongoDB server URL"`
	MongoDBUser             string      `env:"DB_USER"                        flag:"db-user"                        flagDesc:"MongoDB user, used when mongodb-url is empty"`
	MongoDBPassword         string      `env:"DB_PASS"                        flag:"db-pass"                        flagDesc:"MongoDB password, used when mongodb-url is empty"`
	MongoDBHost             string      `env:"MONGODB_HOST"                   flag:"mongodb-host"                   flagDesc:"MongoDB Atlas host, used when mongodb-url is empty"`
	Database                string      `env:"MONGODB_DATABASE"               flag:"mongodb-database"               flagDesc:"MongoDB database for data"`
	ParcelsCollection       string      `env:"MONGODB_PARCELS_COLLECTION"     flag:"mongodb-parcels-collection"     flagDesc:"MongoDB collection for parcels"`
	PaymentsCollection      string      `env:"MONGODB_PAYMENTS_COLLECTION"    flag:"mongodb-payments-collection"    flagDesc:"MongoDB collection for payments"`
	RidersCollection        string      `env:"MONGODB_RIDERS_COLLECTION"      flag:"mongodb-riders-collection"      flagDesc:"MongoDB collection for rider applications"`
	UsersCollection         string      `env:"MONGODB_USERS_COLLECTION"       flag:"mongodb-users-collection"       flagDesc:"MongoDB collection for users"`
	TransactionsEnabled     bool        `env:"MONGODB_TRANSACTIONS_ENABLED"   flag:"mongodb-transactions-enabled"   flagDesc:"Wrap reconciliation writes in a multi-document transaction (requires a replica set)"`
	StripeSecret            string      `env:"STRIPE_SECRET"                  flag:"stripe-secret"                  flagDesc:"Stripe secret API key"`
	SiteURL                 string      `env:"SITE_URL"                       flag:"site-url"                       flagDesc:"Public base URL of the web client, used for checkout redirects"`
	FirebaseCredentialsFile string      `env:"FIREBASE_CREDENTIALS_FILE"      flag:"firebase-credentials-file"      flagDesc:"Path to the Firebase service account json"`
	GatewayTimeoutSeconds   int         `env:"GATEWAY_TIMEOUT_SECONDS"        flag:"gateway-timeout-seconds"        flagDesc:"Timeout for payment gateway calls"`
	IdentityTimeoutSeconds  int         `env:"IDENTITY_TIMEOUT_SECONDS"       flag:"identity-timeout-seconds"       flagDesc:"Timeout for identity verification calls"`
	StoreTimeoutSeconds     int         `env:"STORE_TIMEOUT_SECONDS"          flag:"store-timeout-seconds"          flagDesc:"Timeout for a request's document store work"`
	CORSAllowedOrigins      []string    `env:"CORS_ALLOWED_ORIGINS"           flag:"cors-allowed-origins"           flagDesc:"Origins allowed to call the api"`
	BrokerAddr              []string    `env:"KAFKA_BROKER_ADDR"              flag:"broker-addr"                    flagDesc:"Kafka broker cluster address, parcel-paid events are disabled when empty"`
	ParcelPaidTopic         string      `env:"PARCEL_PAID_TOPIC"              flag:"parcel-paid-topic"              flagDesc:"Topic parcel-paid events are published to"`
	SchemaRegistryURL       string      `env:"SCHEMA_REGISTRY_URL"            flag:"schema-registry-url"            flagDesc:"Schema registry url"`
	ShutdownTimeoutSeconds  int         `env:"SHUTDOWN_TIMEOUT_SECONDS"       flag:"shutdown-timeout-seconds"       flagDesc:"Grace period for in-flight requests on shutdown"`
	CheckoutSettingsFile    string      `env:"CHECKOUT_SETTINGS_FILE"         flag:"checkout-settings-file"         flagDesc:"Path to the checkout settings yaml"`
}

// CheckoutSettings describes how hosted checkout sessions are presented
type CheckoutSettings struct {
	Currency    string `yaml:"currency"`
	Quantity    int64  `yaml:"quantity"`
	SuccessPath string `yaml:"success_path"`
	CancelPath  string `yaml:"cancel_path"`
}

// Namespace returns the application namespace used for logging
func (c *Config) Namespace() string {
	return "parcel-delivery-api"
}

// Addr returns the address the HTTP server should listen on
func (c *Config) Addr() string {
	if c.Port != "" {
		return ":" + c.Port
	}
	return c.BindAddr
}

// MongoURL returns the configured MongoDB url, composing an Atlas SRV url from
// the user, password and host when no url was given
func (c *Config) MongoURL() string {
	if c.MongoDBURL != "" || c.MongoDBHost == "" {
		return c.MongoDBURL
	}
	u := url.URL{
		Scheme:   "mongodb+srv",
		User:     url.UserPassword(c.MongoDBUser, c.MongoDBPassword),
		Host:     c.MongoDBHost,
		Path:     "/",
		RawQuery: "retryWrites=true&w=majority",
	}
	return u.String()
}

// GatewayTimeout bounds a single payment gateway call
func (c *Config) GatewayTimeout() time.Duration {
	return time.Duration(c.GatewayTimeoutSeconds) * time.Second
}

// IdentityTimeout bounds a single identity verification call
func (c *Config) IdentityTimeout() time.Duration {
	return time.Duration(c.IdentityTimeoutSeconds) * time.Second
}

// StoreTimeout bounds the document store work of a single request
func (c *Config) StoreTimeout() time.Duration {
	return time.Duration(c.StoreTimeoutSeconds) * time.Second
}

// ShutdownTimeout is the grace period given to in-flight requests
func (c *Config) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutSeconds) * time.Second
}

// GetCheckoutSettings loads the checkout settings from the given yaml file
func GetCheckoutSettings(path string) (*CheckoutSettings, error) {

	filename, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	yamlFile, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}

	settings := &CheckoutSettings{}
	if err = yaml.Unmarshal(yamlFile, settings); err != nil {
		return nil, err
	}

	if settings.Currency == "" {
		return nil, fmt.Errorf("checkout settings %s: currency is required", path)
	}
	if settings.Quantity <= 0 {
		settings.Quantity = 1
	}

	return settings, nil
}

var cfg *Config

// Get configures the application and returns the configuration
func Get() (*Config, error) {

	if cfg != nil {
		return cfg, nil
	}

	cfg = &Config{
		BindAddr:               ":3000",
		Database:               "zap-shift",
		ParcelsCollection:      "parcels",
		PaymentsCollection:     "payments",
		RidersCollection:       "riders",
		UsersCollection:        "users",
		TransactionsEnabled:    true,
		GatewayTimeoutSeconds:  10,
		IdentityTimeoutSeconds: 5,
		StoreTimeoutSeconds:    10,
		ShutdownTimeoutSeconds: 30,
		CORSAllowedOrigins:     []string{"*"},
		ParcelPaidTopic:        "parcel-paid",
		CheckoutSettingsFile:   "assets/checkout.yml",
	}

	err := gofigure.Gofigure(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
