// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2024 The celld developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cellchain/celld/chaincfg"
	"github.com/cellchain/celld/rpc/jsonrpc/types"
	"github.com/decred/dcrd/dcrjson/v4"
	"github.com/decred/slog"
	flags "github.com/jessevdk/go-flags"
)

const (
	defaultConfigFilename = "cellctl.conf"
	defaultHashFunc       = "blake256"
	defaultNet            = "mainnet"
	defaultDebugLevel     = "info"
)

var (
	defaultHomeDir    = appDataDir("cellctl")
	defaultConfigFile = filepath.Join(defaultHomeDir, defaultConfigFilename)
)

// config defines the configuration options for cellctl.
//
// See loadConfig for details on the configuration load process.
type config struct {
	ShowVersion  bool   `short:"V" long:"version" description:"Display version information and exit"`
	ListCommands bool   `short:"l" long:"listcommands" description:"List all of the supported commands and exit"`
	ConfigFile   string `short:"C" long:"configfile" description:"Path to configuration file"`
	HashFunc     string `long:"hashfunc" description:"Hash function used to merge merkle tree nodes {blake256, blake3}"`
	Net          string `long:"net" description:"Network whose proof of work limit is checked against {mainnet, testnet3, simnet, regnet}"`
	RPCResponse  bool   `long:"rpcresponse" description:"Print the full JSON-RPC response instead of only the result"`
	DebugLevel   string `short:"d" long:"debuglevel" description:"Logging level {trace, debug, info, warn, error, critical, off}"`
	LogFile      string `long:"logfile" description:"Also write log output to this file"`
}

// appDataDir returns the per-user directory cellctl keeps its configuration
// in, falling back to the working directory when it can't be determined.
func appDataDir(appName string) string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(dir, appName)
}

// cleanAndExpandPath expands environment variables and a leading ~ in the
// passed path, cleans the result, and returns it.
func cleanAndExpandPath(path string) string {
	if path == "" {
		return path
	}
	if strings.HasPrefix(path, "~") {
		if homeDir, err := os.UserHomeDir(); err == nil {
			path = strings.Replace(path, "~", homeDir, 1)
		}
	}
	return filepath.Clean(os.ExpandEnv(path))
}

// fileExists reports whether the named file or directory exists.
func fileExists(name string) bool {
	if _, err := os.Stat(name); err != nil {
		if os.IsNotExist(err) {
			return false
		}
	}
	return true
}

// createDefaultConfigFile creates the default configuration file from the
// sample configuration when it does not exist yet.
func createDefaultConfigFile(destPath string) error {
	if err := os.MkdirAll(filepath.Dir(destPath), 0700); err != nil {
		return err
	}
	return os.WriteFile(destPath, []byte(sampleConfigFileContents), 0600)
}

// listCommands writes a usage line for every supported command.
func listCommands(w io.Writer) {
	for _, method := range dcrjson.RegisteredMethods(types.Method("")) {
		usage, err := dcrjson.MethodUsageText(types.Method(method))
		if err != nil {
			// This should never happen since the method was just returned
			// from the package, but be safe.
			fmt.Fprintln(os.Stderr, "Failed to obtain command usage:", err)
			continue
		}
		fmt.Fprintln(w, usage)
	}
}

// loadConfig initializes and parses the config using a config file and command
// line options.
//
// The configuration proceeds as follows:
//  1. Start with a default config with sane settings
//  2. Pre-parse the command line to check for an alternative config file
//  3. Load configuration file overwriting defaults with any specified options
//  4. Parse CLI options and overwrite/add any specified options
//
// The above results in functioning properly without any config settings while
// still allowing the user to override settings with config files and command
// line options.  Command line options always take precedence.  The remaining
// positional arguments are returned.
func loadConfig(args []string) (*config, []string, error) {
	cfg := config{
		ConfigFile: defaultConfigFile,
		HashFunc:   defaultHashFunc,
		Net:        defaultNet,
		DebugLevel: defaultDebugLevel,
	}

	// Pre-parse the command line options to see if an alternative config file
	// was specified.  Any errors aside from the help message error can be
	// ignored here since they will be caught by the final parse below.
	preCfg := cfg
	preParser := flags.NewParser(&preCfg, flags.HelpFlag)
	_, err := preParser.ParseArgs(args)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) && e.Type == flags.ErrHelp {
			fmt.Fprintln(os.Stdout, err)
			return nil, nil, err
		}
	}

	// Show the version and exit if the version flag was specified.
	if preCfg.ShowVersion {
		return &preCfg, nil, nil
	}

	// Create the default config file from the sample when it is missing.
	configFile := cleanAndExpandPath(preCfg.ConfigFile)
	if preCfg.ConfigFile == defaultConfigFile && !fileExists(configFile) {
		if err := createDefaultConfigFile(configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Unable to create default config "+
				"file: %v\n", err)
		}
	}

	// Load additional config from file.
	parser := flags.NewParser(&cfg, flags.Default)
	err = flags.NewIniParser(parser).ParseFile(configFile)
	if err != nil {
		var pErr *os.PathError
		if !errors.As(err, &pErr) {
			return nil, nil, fmt.Errorf("error parsing config file %s: %w",
				configFile, err)
		}
	}

	// Parse command line options again to ensure they take precedence.
	remainingArgs, err := parser.ParseArgs(args)
	if err != nil {
		return nil, nil, err
	}

	switch cfg.HashFunc {
	case "blake256", "blake3":
	default:
		return nil, nil, fmt.Errorf("unsupported hash function %q: must be "+
			"one of blake256 or blake3", cfg.HashFunc)
	}

	if _, err := chaincfg.ParamsForName(cfg.Net); err != nil {
		return nil, nil, fmt.Errorf("invalid network: %w (valid networks: "+
			"%s)", err, strings.Join(chaincfg.NetNames(), ", "))
	}

	if _, ok := slog.LevelFromString(cfg.DebugLevel); !ok {
		return nil, nil, fmt.Errorf("the specified debug level %q is invalid",
			cfg.DebugLevel)
	}

	cfg.LogFile = cleanAndExpandPath(cfg.LogFile)
	return &cfg, remainingArgs, nil
}
