package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexflint/go-arg"
	"github.com/jmagar/jupiter-dl/internal/model"
)

// ProgramName is shown in usage and help output.
const ProgramName = "jupiter-dl"

// LoadedConfigPath tracks which config file was loaded, empty when none was found.
var LoadedConfigPath string

// NewParser builds the go-arg parser for args.
func NewParser(args *model.Args) (*arg.Parser, error) {
	return arg.NewParser(arg.Config{Program: ProgramName}, args)
}

// ParseArgs parses argv (without the program name) into Args.
// arg.ErrHelp and arg.ErrVersion are returned unchanged so the caller can
// print help or the version.
func ParseArgs(argv []string) (*model.Args, *arg.Parser, error) {
	var args model.Args
	p, err := NewParser(&args)
	if err != nil {
		return nil, nil, err
	}
	if err := p.Parse(argv); err != nil {
		return &args, p, err
	}
	return &args, p, nil
}

// ConfigPaths lists the locations searched for a config file, in order.
// The home-based locations are skipped when no home directory is known.
func ConfigPaths() []string {
	paths := []string{"jupiter-dl.json"}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return paths
	}
	return append(paths,
		filepath.Join(homeDir, ".jupiter-dl", "config.json"),
		filepath.Join(homeDir, ".config", "jupiter-dl", "config.json"),
	)
}

// ReadConfig reads the first config file found in ConfigPaths. A missing file
// yields an empty config; an unreadable or malformed one is an error.
func ReadConfig() (*model.Config, error) {
	LoadedConfigPath = ""
	for _, path := range ConfigPaths() {
		data, err := os.ReadFile(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read config at %s: %w", path, err)
		}

		var obj model.Config
		if err := json.Unmarshal(data, &obj); err != nil {
			return nil, fmt.Errorf("failed to parse config at %s: %w", path, err)
		}
		LoadedConfigPath = path
		return &obj, nil
	}
	return &model.Config{}, nil
}

// ParseCfg merges CLI args over the config file and returns the resolved Config.
func ParseCfg(args *model.Args) (*model.Config, error) {
	if args.Verbose && args.Quiet {
		return nil, fmt.Errorf("%w: --verbose and --quiet are mutually exclusive", model.ErrUsage)
	}

	cfg, err := ReadConfig()
	if err != nil {
		return nil, err
	}

	level, ok := model.ParseLogLevel(string(cfg.LogLevel))
	if !ok {
		return nil, fmt.Errorf("invalid logLevel %q in %s (must be debug, info or warn)", cfg.LogLevel, LoadedConfigPath)
	}
	switch {
	case args.Verbose:
		level = model.LogLevelDebug
	case args.Quiet:
		level = model.LogLevelWarn
	}
	cfg.LogLevel = level

	cfg.URL = strings.TrimSpace(args.URL)
	cfg.DownloadSubs = cfg.DownloadSubs || args.DlSubs
	cfg.HLSInfo = cfg.HLSInfo || args.HLSInfo
	cfg.DryRun = args.DryRun
	if args.APILog != "" {
		cfg.APILogPath = args.APILog
	}
	cfg.APILogPath = strings.TrimSpace(cfg.APILogPath)
	return cfg, nil
}
