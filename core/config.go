package core

import (
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config carries application-wide settings. All values have sane defaults and
// can be overridden via environment variables prefixed with the current ENV
// (eg. DEV_DATADIR) or a config/.env.<env> file.
type Config struct {
	Debug    bool
	TestMode bool
	AppName  string
	Env      string // DEV (default), TEST, QA, PROD

	// DataDir/DataFile locate the persisted document.
	DataDir  string
	DataFile string

	RollbarToken string
}

// DataPath returns the full path of the persisted document file.
func (c *Config) DataPath() string {
	return filepath.Join(c.DataDir, c.DataFile)
}

func NewConfig() *Config {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Scolarium")
	v.SetDefault("dataDir", "data")
	v.SetDefault("dataFile", "rgsc-data-v1.json")
	v.SetDefault("rollbarToken", "")

	conf := &Config{}

	env := os.Getenv("ENV") // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
	case strings.ToUpper("TEST"):
		conf.TestMode = true
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			log.Fatalf("config.godotenv(%s): %v", dotEnvPath, err)
		}
	} else if !os.IsNotExist(err) {
		log.Fatalf("config.os.Stat(%s): %v", dotEnvPath, err)
	}
	v.AutomaticEnv()

	conf.Debug = v.GetBool("debug")
	conf.AppName = v.GetString("appName")
	conf.Env = env
	conf.DataDir = v.GetString("dataDir")
	conf.DataFile = v.GetString("dataFile")
	conf.RollbarToken = v.GetString("rollbarToken")
	return conf
}
