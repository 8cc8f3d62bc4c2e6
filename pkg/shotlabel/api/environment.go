package api

import (
	"github.com/ilyakaznacheev/cleanenv"

	"kgeyst.com/shotlabel/pkg/common"
	"kgeyst.com/shotlabel/pkg/shotlabel/domain"
)

type environment struct {
	OllamaHost   string `env:"OLLAMA_HOST"`
	OllamaAPIKey string `env:"OLLAMA_API_KEY"`
	VisionModel  string `env:"SHOTLABEL_MODEL"`
}

// ApplyEnvironment overrides config values with the environment variables which are set. Command line flags should be
// applied afterwards, so that they take precedence.
func ApplyEnvironment(config *common.Config) error {
	var env environment
	err := cleanenv.ReadEnv(&env)
	if err != nil {
		return err
	}
	setIfNotEmpty(config, domain.ConfigKeyOllamaHost, env.OllamaHost)
	setIfNotEmpty(config, domain.ConfigKeyOllamaAPIKey, env.OllamaAPIKey)
	setIfNotEmpty(config, domain.ConfigKeyVisionModel, env.VisionModel)
	return nil
}

func setIfNotEmpty(config *common.Config, key, value string) {
	if value != "" {
		config.Set(key, value)
	}
}
