// config/config.go
package config

import (
	"fmt"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// Configuration stores all the configurations
type Configuration struct {
	Server         ServerConfiguration
	PlanningCenter PlanningCenterConfiguration `mapstructure:"pco" validate:"required"`
	CORS           CORSConfiguration           `mapstructure:"cors"`
	Elasticsearch  ElasticsearchConfiguration
	Log            LogConfiguration
}

// ServerConfiguration stores the port and other web server settings
type ServerConfiguration struct {
	Port string
}

// PlanningCenterConfiguration stores the upstream endpoint and credentials
type PlanningCenterConfiguration struct {
	BaseURL       string `mapstructure:"base_url" validate:"required,url"`
	AppID         string `mapstructure:"app_id" validate:"required"`
	Secret        string `mapstructure:"secret" validate:"required"`
	EventsPerPage int    `mapstructure:"events_per_page"`
}

// CORSConfiguration stores the allowed browser origins
type CORSConfiguration struct {
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// ElasticsearchConfiguration stores data for the optional audit sink
type ElasticsearchConfiguration struct {
	URL string
}

// LogConfiguration stores log output settings
type LogConfiguration struct {
	Dir string
}

var config *Configuration

func InitConfig() error {
	viper.AddConfigPath("config") // path to look for the config file in
	viper.SetConfigName("config") // name of the config file (without extension)
	viper.SetConfigType("yaml")   // REQUIRED if the config file does not have the extension in the name

	viper.AutomaticEnv() // read in environment variables that match

	// Credentials are normally supplied through the environment
	_ = viper.BindEnv("pco.app_id", "PLANNING_CENTER_APP_ID")
	_ = viper.BindEnv("pco.secret", "PLANNING_CENTER_SECRET")
	_ = viper.BindEnv("pco.events_per_page", "PLANNING_CENTER_EVENTS_PER_PAGE")
	_ = viper.BindEnv("server.port", "PORT")

	// Set default configurations
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("pco.base_url", "https://api.planningcenteronline.com")
	viper.SetDefault("pco.events_per_page", 3)
	viper.SetDefault("cors.allowed_origins", []string{"https://www.poa.church"})
	viper.SetDefault("log.dir", "logging")

	// Attempt to read the config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("No config file found. Using default settings and environment variables.")
		} else {
			return err
		}
	}

	// Unmarshal the configuration into the Configuration struct
	if err := viper.Unmarshal(&config); err != nil {
		return err
	}

	if config.PlanningCenter.EventsPerPage <= 0 {
		config.PlanningCenter.EventsPerPage = 3
	}

	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	return nil
}

// GetConfig returns the loaded configuration
func GetConfig() *Configuration {
	return config
}

// GetString retrieves a string value from the configuration
func GetString(key string) string {
	return viper.GetString(key)
}

// GetInt retrieves an integer value from the configuration
func GetInt(key string) int {
	return viper.GetInt(key)
}

// GetBool retrieves a boolean value from the configuration
func GetBool(key string) bool {
	return viper.GetBool(key)
}

// GetStringSlice retrieves a string slice value from the configuration
func GetStringSlice(key string) []string {
	return viper.GetStringSlice(key)
}
