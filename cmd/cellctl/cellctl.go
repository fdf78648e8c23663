// Copyright (c) 2013-2015 The btcsuite developers
// Copyright (c) 2015-2022 The Decred developers
// Copyright (c) 2024 The celld developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/cellchain/celld/internal/version"
	"github.com/cellchain/celld/rpc/jsonrpc/types"
	"github.com/decred/dcrd/dcrjson/v4"
	flags "github.com/jessevdk/go-flags"
)

const (
	appName         = "cellctl"
	showHelpMessage = "Specify -h to show available options"
	listCmdMessage  = "Specify -l to list available commands"
)

// commandUsage displays the usage for a specific command.
func commandUsage(w io.Writer, method types.Method) {
	usage, err := dcrjson.MethodUsageText(method)
	if err != nil {
		// This should never happen since the method was already checked
		// before calling this function, but be safe.
		fmt.Fprintln(w, "Failed to obtain command usage:", err)
		return
	}

	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s\n", usage)
}

// usage displays the general usage when the help flag is not displayed and
// an invalid command was specified.  The commandUsage function is used
// instead when a valid command was specified.
func usage(w io.Writer, errorMessage string) {
	fmt.Fprintln(w, errorMessage)
	fmt.Fprintln(w, "Usage:")
	fmt.Fprintf(w, "  %s [OPTIONS] <command> <args...>\n\n", appName)
	fmt.Fprintln(w, showHelpMessage)
	fmt.Fprintln(w, listCmdMessage)
}

// printResult writes the result of a command in a human readable form.
func printResult(w io.Writer, result json.RawMessage) error {
	// Choose how to display the result based on its type.
	strResult := string(result)
	switch {
	case strings.HasPrefix(strResult, "{") || strings.HasPrefix(strResult, "["):
		var dst bytes.Buffer
		if err := json.Indent(&dst, result, "", "  "); err != nil {
			return fmt.Errorf("failed to format result: %w", err)
		}
		fmt.Fprintln(w, dst.String())

	case strings.HasPrefix(strResult, `"`):
		var str string
		if err := json.Unmarshal(result, &str); err != nil {
			return fmt.Errorf("failed to unmarshal result: %w", err)
		}
		fmt.Fprintln(w, str)

	case strResult != "null":
		fmt.Fprintln(w, strResult)
	}
	return nil
}

// run executes cellctl with the provided arguments and returns the process
// exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	cfg, args, err := loadConfig(args)
	if err != nil {
		var e *flags.Error
		if errors.As(err, &e) {
			if e.Type == flags.ErrHelp {
				return 0
			}
			return 1
		}
		fmt.Fprintln(stderr, err)
		return 1
	}
	if cfg.ShowVersion {
		fmt.Fprintf(stdout, "%s version %s (Go version %s %s/%s)\n", appName,
			version.String(), runtime.Version(), runtime.GOOS, runtime.GOARCH)
		return 0
	}
	if cfg.ListCommands {
		listCommands(stdout)
		return 0
	}
	if len(args) < 1 {
		usage(stderr, "No command specified")
		return 1
	}

	if cfg.LogFile != "" {
		if err := initLogRotator(cfg.LogFile); err != nil {
			fmt.Fprintln(stderr, err)
			return 1
		}
		defer closeLogRotator()
	}
	setLogLevels(cfg.DebugLevel)

	s, err := newServer(cfg.HashFunc, cfg.Net)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	// Ensure the specified method identifies a valid registered command.
	method := types.Method(args[0])
	if _, err := dcrjson.MethodUsageFlags(method); err != nil {
		fmt.Fprintf(stderr, "Unrecognized command %q\n", method)
		fmt.Fprintln(stderr, listCmdMessage)
		return 1
	}

	// Convert remaining command line args to a slice of interface values to
	// be passed along as parameters to new command creation function.
	//
	// Since some commands, such as buildmerkleproof, take a large number of
	// hashes, support using '-' as an argument so the final argument can be
	// read from a stdin pipe.
	bio := bufio.NewReader(stdin)
	params := make([]interface{}, 0, len(args[1:]))
	for _, arg := range args[1:] {
		if arg == "-" {
			param, err := bio.ReadString('\n')
			if err != nil && !errors.Is(err, io.EOF) {
				fmt.Fprintf(stderr, "Failed to read data from stdin: %v\n",
					err)
				return 1
			}
			if errors.Is(err, io.EOF) && len(param) == 0 {
				fmt.Fprintln(stderr, "Not enough lines provided on stdin")
				return 1
			}
			param = strings.TrimRight(param, "\r\n")
			params = append(params, param)
			continue
		}

		params = append(params, arg)
	}

	// Attempt to create the appropriate command using the arguments provided
	// by the user.
	cmd, err := dcrjson.NewCmd(method, params...)
	if err != nil {
		fmt.Fprintf(stderr, "%s command: %v\n", method, err)
		commandUsage(stderr, method)
		return 1
	}

	// Marshal the command into a JSON-RPC byte slice in preparation for
	// handing it to the local server.
	marshalledJSON, err := dcrjson.MarshalCmd("1.0", 1, cmd)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	log.Debugf("Request: %s", marshalledJSON)

	reply := s.handleRequest(marshalledJSON)
	if reply == nil {
		fmt.Fprintln(stderr, "No reply for the request")
		return 1
	}
	log.Tracef("Reply: %s", reply)
	if cfg.RPCResponse {
		fmt.Fprintln(stdout, string(reply))
		return 0
	}

	var resp dcrjson.Response
	if err := json.Unmarshal(reply, &resp); err != nil {
		fmt.Fprintf(stderr, "Failed to unmarshal reply: %v\n", err)
		return 1
	}
	if resp.Error != nil {
		fmt.Fprintln(stderr, resp.Error)
		return 1
	}
	if err := printResult(stdout, resp.Result); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
