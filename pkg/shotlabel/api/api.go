package api

import (
	"os"

	"kgeyst.com/shotlabel/pkg/common"
	"kgeyst.com/shotlabel/pkg/shotlabel/domain"
	"kgeyst.com/shotlabel/pkg/shotlabel/infrastructure/filesystem"
	"kgeyst.com/shotlabel/pkg/shotlabel/infrastructure/logging"
	"kgeyst.com/shotlabel/pkg/shotlabel/infrastructure/ollama"
)

type api struct {
	pipeline *domain.Pipeline
	host     string
	model    string
}

// See domain/config.go
const (
	ConfigKeyOllamaHost  = domain.ConfigKeyOllamaHost
	ConfigKeyVisionModel = domain.ConfigKeyVisionModel
	ConfigKeyLogPath     = domain.ConfigKeyLogPath
)

// API is the entrypoint to shotlabel. It shouldn't contain any logic of its own; it glues all the components together
// and provides a public interface for domain.Pipeline.
type API interface {
	// Run captions or renames (depending on `mode`) every screenshot in `dir`. Fails only if `dir` can't be processed
	// at all (see domain.ErrDirectoryNotFound); failures of single images end up in the summary and in the directory's
	// error log.
	Run(dir string, mode domain.ProcessingMode) (*domain.RunSummary, error)
}

// NewAPI builds the pipeline from `config`. A nil `failureHandler` skips every image which failed all its attempts.
func NewAPI(config *common.Config, failureHandler domain.FailureHandler) API {
	logger := newLogger(config)
	visionModel := logging.NewVisionModelDecorator(ollama.NewVisionModel(config), logger)
	pipeline := domain.NewPipeline(
		filesystem.NewDiscoverer(config),
		visionModel,
		filesystem.NewCaptionWriter(),
		filesystem.NewRenamer(),
		filesystem.NewErrorLog,
		failureHandler,
		domain.NewRetrier(config, logger),
		config,
		logger,
	)
	return &api{
		pipeline: pipeline,
		host:     config.GetStringOrDefault(ConfigKeyOllamaHost, domain.DefaultOllamaHost),
		model:    config.GetStringOrDefault(ConfigKeyVisionModel, domain.DefaultVisionModel),
	}
}

func (a *api) Run(dir string, mode domain.ProcessingMode) (*domain.RunSummary, error) {
	return a.pipeline.Run(domain.RunOptions{
		Dir:   dir,
		Mode:  mode,
		Host:  a.host,
		Model: a.model,
	})
}

func newLogger(config *common.Config) common.Logger {
	consoleLogger := common.NewConsoleLogger(os.Stdout)
	logPath := config.GetString(ConfigKeyLogPath)
	if logPath == "" {
		return consoleLogger
	}
	return common.NewMultiLogger(consoleLogger, common.NewFileLogger(logPath))
}
