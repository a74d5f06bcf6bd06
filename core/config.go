package core

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

type (
	Config struct {
		Env          string
		Debug        bool
		TestMode     bool
		AppName      string
		Build        string
		RollbarToken string
		Killed       bool // pauses the assistant for the whole process lifetime

		Server struct {
			Host            string
			Address         string
			DebugHost       string
			ShutdownTimeout time.Duration
			AllowedOrigins  []string
			DisableReqLogs  bool
		}

		Data struct {
			DocsPath  string
			DatesPath string
		}
	}
)

// NewConfig reads the configuration from the environment, optionally
// preloaded from config/.env.<env>. It panics on an unreadable .env file.
func NewConfig() *Config {
	conf, err := LoadConfig(".")
	if err != nil {
		panic(err)
	}
	return conf
}

// LoadConfig is NewConfig rooted at dir.
func LoadConfig(dir string) (*Config, error) {
	v := viper.New()

	// defaults
	v.SetTypeByDefaultValue(true)
	v.SetDefault("debug", false)
	v.SetDefault("testMode", false)
	v.SetDefault("appName", "assistant-backend")
	v.SetDefault("build", "0.1.0")
	v.SetDefault("rollbarToken", "")
	v.SetDefault("serverHost", "localhost")
	v.SetDefault("serverAddress", ":8000")
	v.SetDefault("serverDebugHost", "localhost:4000")
	v.SetDefault("serverShutdownTimeout", 5*time.Second)
	v.SetDefault("serverAllowedOrigins", []string{"https://eringobraugh.github.io"})
	v.SetDefault("serverDisableReqLogs", false)
	v.SetDefault("dataDocsPath", filepath.Join("data", "seed_docs.json"))
	v.SetDefault("dataDatesPath", filepath.Join("data", "mock_dates.json"))

	env := strings.ToUpper(os.Getenv("ENV")) // DEV (local; default), TEST, QA, PROD
	switch env {
	case "":
		env = "DEV"
		v.SetDefault("debug", true)
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join(dir, "config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "loading %s", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "checking %s", dotEnvPath)
	}
	v.AutomaticEnv()

	// the kill switch is shared by every environment
	_ = v.BindEnv("killed", "ASSISTANT_KILLED")
	v.SetDefault("killed", "false")

	conf := &Config{
		Env:          env,
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		AppName:      v.GetString("appName"),
		Build:        v.GetString("build"),
		RollbarToken: v.GetString("rollbarToken"),
		Killed:       ParseKillSwitch(v.GetString("killed")),
	}
	conf.Server.Host = v.GetString("serverHost")
	conf.Server.Address = v.GetString("serverAddress")
	conf.Server.DebugHost = v.GetString("serverDebugHost")
	conf.Server.ShutdownTimeout = v.GetDuration("serverShutdownTimeout")
	conf.Server.AllowedOrigins = splitList(v.GetStringSlice("serverAllowedOrigins"))
	conf.Server.DisableReqLogs = v.GetBool("serverDisableReqLogs")
	conf.Data.DocsPath = v.GetString("dataDocsPath")
	conf.Data.DatesPath = v.GetString("dataDatesPath")
	return conf, nil
}

// ParseKillSwitch only accepts "true", in any case and without surrounding spaces.
// "1", "yes", " true" etc. leave the assistant running.
func ParseKillSwitch(val string) bool {
	return strings.ToLower(val) == "true"
}

// env values come in as a single comma separated string
func splitList(vals []string) []string {
	out := make([]string, 0, len(vals))
	for _, val := range vals {
		for _, s := range strings.Split(val, ",") {
			if s = CleanString(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}
