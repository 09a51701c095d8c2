package configs

import (
	"os"
	"path"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultTimeout = 30 * time.Second
	envPrefix      = "TEAMGEN"
)

type Config struct {
	viper      *viper.Viper
	configPath string
}

type Configs struct {
	answerConfigs *Config
	env           *viper.Viper
}

func (c *Configs) CreatePathIfNotExist(path string) error {
	dir := filepath.Dir(path)

	if _, err := os.Stat(dir); os.IsNotExist(err) {
		err = os.MkdirAll(dir, 0o700)
		if err != nil {
			return err
		}
	}

	return nil
}

func (c *Configs) unmarshalConfig(config *Config, data interface{}) error {
	err := config.viper.ReadInConfig()
	if err != nil {
		return err
	}
	return config.viper.Unmarshal(data)
}

// marshalConfig writes every field of cfg that has a mapstructure name.
// Fields tagged "-" are skipped.
func (c *Configs) marshalConfig(config *Config, cfg interface{}) error {
	reflectCfg := reflect.ValueOf(cfg)
	for i := 0; i < reflectCfg.NumField(); i++ {
		k := strings.Split(reflectCfg.Type().Field(i).Tag.Get("mapstructure"), ",")[0]
		if k == "" || k == "-" {
			continue
		}
		config.viper.Set(k, reflectCfg.Field(i).Interface())
	}

	err := c.CreatePathIfNotExist(config.configPath)
	if err != nil {
		return err
	}

	return config.viper.WriteConfig()
}

// Home is the directory holding the answers file, $TEAMGEN_HOME or ~/.teamgen.
func Home() string {
	if home := os.Getenv(envPrefix + "_HOME"); home != "" {
		return home
	}
	dir, err := os.UserHomeDir()
	if err != nil {
		dir = os.Getenv("HOME")
	}
	return path.Join(dir, ".teamgen")
}

func New() *Configs {
	return NewWithPath(path.Join(Home(), "config.json"))
}

// NewWithPath keeps stored answers in the json file at answersPath.
func NewWithPath(answersPath string) *Configs {
	answersViper := viper.New()
	answersViper.SetConfigFile(answersPath)
	answersViper.SetConfigType("json")

	env := viper.New()
	env.SetEnvPrefix(envPrefix)
	env.AutomaticEnv()
	env.SetDefault("timeout", DefaultTimeout)

	return &Configs{
		answerConfigs: &Config{
			viper:      answersViper,
			configPath: answersPath,
		},
		env: env,
	}
}

func (c *Configs) AnswersPath() string {
	return c.answerConfigs.configPath
}

// PAT is the personal access token from $TEAMGEN_PAT, empty when unset.
func (c *Configs) PAT() string {
	return c.env.GetString("pat")
}

// Timeout is the per request timeout from $TEAMGEN_TIMEOUT, 30s by default.
func (c *Configs) Timeout() time.Duration {
	timeout := c.env.GetDuration("timeout")
	if timeout <= 0 {
		return DefaultTimeout
	}
	return timeout
}
