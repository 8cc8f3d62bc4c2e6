package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"kgeyst.com/shotlabel/pkg/common"
	"kgeyst.com/shotlabel/pkg/shotlabel/api"
	"kgeyst.com/shotlabel/pkg/shotlabel/domain"
	"kgeyst.com/shotlabel/pkg/shotlabel/infrastructure/console"
)

const defaultImagesDir = "images"

var errStopped = errors.New("processing stopped by the user")

type cliOptions struct {
	dir         string
	mode        domain.ProcessingMode
	host        string
	model       string
	configPath  string
	interactive bool
}

func main() {
	err := mainImpl(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func mainImpl(args []string) error {
	options, err := parseFlags(args, os.Stderr)
	if err != nil {
		return err
	}
	config, err := common.LoadConfigIfExists(options.configPath)
	if err != nil {
		return fmt.Errorf("load %s: %w", options.configPath, err)
	}
	err = api.ApplyEnvironment(config)
	if err != nil {
		return err
	}
	applyFlags(config, options)
	var failureHandler domain.FailureHandler
	if options.interactive {
		prompt, closePrompt, err := console.NewReadlineFailurePrompt()
		if err != nil {
			return err
		}
		defer func() {
			_ = closePrompt()
		}()
		failureHandler = prompt
	}
	summary, err := api.NewAPI(config, failureHandler).Run(options.dir, options.mode)
	if err != nil {
		return err
	}
	if summary.Stopped {
		return errStopped
	}
	return nil
}

// parseFlags accepts flags both before and after the directory, e.g. "shotlabel images -mode name".
func parseFlags(args []string, output io.Writer) (cliOptions, error) {
	options := cliOptions{}
	flags := flag.NewFlagSet("shotlabel", flag.ContinueOnError)
	flags.SetOutput(output)
	flags.Usage = func() {
		fmt.Fprintf(output, "Usage: shotlabel [flags] [dir]\n\n")
		fmt.Fprintf(output, "Captions or renames screenshots in dir (default %q) with an Ollama vision model.\n\n", defaultImagesDir)
		flags.PrintDefaults()
	}
	modeName := flags.String("mode", "caption", "processing mode: 'caption' writes .txt caption files, 'name' renames images with descriptive filenames")
	flags.StringVar(&options.host, "host", "", "Ollama server URL, e.g. http://192.168.1.100:11434 (default "+domain.DefaultOllamaHost+")")
	flags.StringVar(&options.host, "ollama-host", "", "same as -host")
	flags.StringVar(&options.model, "model", "", "vision model to use (default "+domain.DefaultVisionModel+")")
	flags.StringVar(&options.configPath, "config", "config.yaml", "optional YAML config file")
	flags.BoolVar(&options.interactive, "interactive", false, "ask what to do when an image fails all its attempts")
	var positional []string
	for {
		err := flags.Parse(args)
		if err != nil {
			return cliOptions{}, err
		}
		args = flags.Args()
		if len(args) == 0 {
			break
		}
		positional = append(positional, args[0])
		args = args[1:]
	}
	if len(positional) > 1 {
		return cliOptions{}, fmt.Errorf("expected at most one directory, got %d", len(positional))
	}
	options.dir = defaultImagesDir
	if len(positional) == 1 {
		options.dir = positional[0]
	}
	mode, err := domain.ParseProcessingMode(*modeName)
	if err != nil {
		return cliOptions{}, err
	}
	options.mode = mode
	return options, nil
}

func applyFlags(config *common.Config, options cliOptions) {
	if options.host != "" {
		config.Set(api.ConfigKeyOllamaHost, options.host)
	}
	if options.model != "" {
		config.Set(api.ConfigKeyVisionModel, options.model)
	}
}
