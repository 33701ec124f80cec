package main

import (
	"sort"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/cockroachdb/errors"
	"github.com/iotaledger/hive.go/lo"
	flag "github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// CfgReplayContainer contains the name of the container the scripts are replayed against.
	CfgReplayContainer = "replay.container"
	// CfgReplayWorkers contains the number of scripts that are replayed concurrently.
	CfgReplayWorkers = "replay.workers"
	// CfgReplayInteractive defines whether the container is picked with an interactive prompt.
	CfgReplayInteractive = "replay.interactive"
	// CfgLoggerLevel contains the minimum level of log messages.
	CfgLoggerLevel = "logger.level"
	// CfgLoggerEncoding contains the encoding of log messages (console or json).
	CfgLoggerEncoding = "logger.encoding"
	// CfgMetricsPrint defines whether the operation counters are printed after the replay.
	CfgMetricsPrint = "metrics.print"

	envPrefix = "chainreplay"
)

// Settings contains the configuration of a replay.
type Settings struct {
	Container      string
	Workers        int
	Interactive    bool
	LoggerLevel    string
	LoggerEncoding string
	PrintMetrics   bool
}

// containerNames returns the names of all containers that scripts can be replayed against.
func containerNames() []string {
	names := lo.Keys(replayerFactories)
	sort.Strings(names)

	return names
}

func newFlagSet() *flag.FlagSet {
	flags := flag.NewFlagSet("chainreplay", flag.ContinueOnError)

	flags.StringP("config", "c", "config", "Filename of the config file without the file extension")
	flags.StringP("config-dir", "d", ".", "Path to the directory containing the config file")

	flags.String(CfgReplayContainer, "doubly", "the container to replay the scripts against ("+strings.Join(containerNames(), ", ")+")")
	flags.Int(CfgReplayWorkers, 4, "the number of scripts that are replayed concurrently")
	flags.Bool(CfgReplayInteractive, false, "pick the container with an interactive prompt")
	flags.String(CfgLoggerLevel, "info", "the minimum level of log messages")
	flags.String(CfgLoggerEncoding, "console", "the encoding of log messages (console or json)")
	flags.Bool(CfgMetricsPrint, true, "print the operation counters after the replay")

	return flags
}

// loadSettings parses the command line and merges it with the environment and an optional config file. It returns the
// Settings and the remaining positional arguments (the scripts).
func loadSettings(args []string) (settings *Settings, scripts []string, err error) {
	flags := newFlagSet()
	if err = flags.Parse(args); err != nil {
		return nil, nil, errors.Wrap(err, "failed to parse command line")
	}

	config := viper.New()
	// replace dots with underscores in env
	config.SetEnvPrefix(envPrefix)
	config.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	config.AutomaticEnv()

	if err = config.BindPFlags(flags); err != nil {
		return nil, nil, errors.Wrap(err, "failed to bind flags")
	}

	if err = readConfigFile(config, flags); err != nil {
		return nil, nil, err
	}

	settings = &Settings{
		Container:      config.GetString(CfgReplayContainer),
		Workers:        config.GetInt(CfgReplayWorkers),
		Interactive:    config.GetBool(CfgReplayInteractive),
		LoggerLevel:    config.GetString(CfgLoggerLevel),
		LoggerEncoding: config.GetString(CfgLoggerEncoding),
		PrintMetrics:   config.GetBool(CfgMetricsPrint),
	}

	if err = settings.validate(); err != nil {
		return nil, nil, err
	}

	scripts = flags.Args()
	if stdinCount := len(lo.Filter(scripts, func(script string) bool { return script == stdinScript })); stdinCount > 1 {
		return nil, nil, errors.Wrapf(ErrRepeatedStdin, "%q is given %d times", stdinScript, stdinCount)
	}

	return settings, scripts, nil
}

// readConfigFile reads a config file starting with the configured name from the configured dir. A missing file is not
// an error.
func readConfigFile(config *viper.Viper, flags *flag.FlagSet) error {
	configName, err := flags.GetString("config")
	if err != nil {
		return errors.Wrap(err, "failed to read config name")
	}
	configDir, err := flags.GetString("config-dir")
	if err != nil {
		return errors.Wrap(err, "failed to read config dir")
	}

	config.SetConfigName(configName)
	config.AddConfigPath(configDir)

	if err = config.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}

		return errors.Wrapf(err, "failed to read config file %s in %s", configName, configDir)
	}

	return nil
}

func (s *Settings) validate() error {
	if _, exists := replayerFactories[s.Container]; !exists {
		return errors.Wrapf(ErrUnknownContainer, "%q (expected one of %s)", s.Container, strings.Join(containerNames(), ", "))
	}

	if s.Workers < 1 {
		return errors.Errorf("%s must be at least 1 (got %d)", CfgReplayWorkers, s.Workers)
	}

	return nil
}

// selectContainer asks the user which container the scripts shall be replayed against.
func selectContainer(settings *Settings) error {
	prompt := &survey.Select{
		Message: "Container to replay the scripts against:",
		Options: containerNames(),
		Default: settings.Container,
	}

	if err := survey.AskOne(prompt, &settings.Container); err != nil {
		return errors.Wrap(err, "failed to select container")
	}

	return nil
}
