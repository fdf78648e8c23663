// Copyright (c) 2024 The celld developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cellchain/celld/blockchain/standalone"
)

// TestRun ensures commands given on the command line are executed and their
// results are written in the expected format.
func TestRun(t *testing.T) {
	configFile := filepath.Join(t.TempDir(), "missing.conf")
	leaves, leafStrs := testLeaves("alpha", "beta", "gamma")
	leavesJSON := `["` + strings.Join(leafStrs, `","`) + `"]`
	root := standalone.CalcMerkleRoot(leaves)

	tests := []struct {
		name     string   // test description
		args     []string // command line arguments
		stdin    string   // data available on stdin
		exitCode int      // expected exit code
		stdout   string   // expected output, when not empty
		contains string   // expected output substring, when not empty
	}{{
		name:     "compacttotarget",
		args:     []string{"compacttotarget", "1d00ffff"},
		exitCode: 0,
		stdout: "{\n" +
			`  "compact": "0x1d00ffff",` + "\n" +
			`  "target": "0xffff0000000000000000000000000000000000000000000000000000",` + "\n" +
			`  "overflow": false` + "\n" +
			"}\n",
	}, {
		name:     "difficultytocompact",
		args:     []string{"difficultytocompact", "256"},
		exitCode: 0,
		stdout:   "0x2000ffff\n",
	}, {
		name:     "calcmerkleroot",
		args:     []string{"calcmerkleroot", leavesJSON},
		exitCode: 0,
		stdout:   root.String() + "\n",
	}, {
		name:     "calcmerkleroot from stdin",
		args:     []string{"calcmerkleroot", "-"},
		stdin:    leavesJSON + "\n",
		exitCode: 0,
		stdout:   root.String() + "\n",
	}, {
		name:     "verifymerkleproof",
		args:     []string{"verifymerkleproof", root.String(), "3", "[0,1,2]", "[]", leavesJSON},
		exitCode: 0,
		stdout:   "true\n",
	}, {
		name:     "checkproofofwork on simnet",
		args:     []string{"--net=simnet", "checkproofofwork", strings.Repeat("00", 32), "207fffff"},
		exitCode: 0,
		contains: `"valid": true`,
	}, {
		name:     "invalid network",
		args:     []string{"--net=bogus", "compacttotarget", "1d00ffff"},
		exitCode: 1,
	}, {
		name:     "full response",
		args:     []string{"--rpcresponse", "difficultytocompact", "256"},
		exitCode: 0,
		contains: `"result":"0x2000ffff"`,
	}, {
		name:     "version",
		args:     []string{"-V"},
		exitCode: 0,
		contains: "cellctl version ",
	}, {
		name:     "list commands",
		args:     []string{"-l"},
		exitCode: 0,
		contains: "verifymerkleproof",
	}, {
		name:     "no command",
		args:     nil,
		exitCode: 1,
	}, {
		name:     "unknown command",
		args:     []string{"getblock"},
		exitCode: 1,
	}, {
		name:     "missing parameter",
		args:     []string{"compacttotarget"},
		exitCode: 1,
	}, {
		name:     "empty stdin",
		args:     []string{"calcmerkleroot", "-"},
		exitCode: 1,
	}, {
		name:     "rpc error",
		args:     []string{"difficultytocompact", "0"},
		exitCode: 1,
	}}

	for _, test := range tests {
		args := append([]string{"-C", configFile}, test.args...)
		var stdout, stderr bytes.Buffer
		exitCode := run(args, strings.NewReader(test.stdin), &stdout, &stderr)
		if exitCode != test.exitCode {
			t.Errorf("%q: mismatched exit code -- got %d, want %d (stderr: %s)",
				test.name, exitCode, test.exitCode, stderr.String())
			continue
		}
		if test.stdout != "" && stdout.String() != test.stdout {
			t.Errorf("%q: mismatched output -- got %q, want %q", test.name,
				stdout.String(), test.stdout)
		}
		if test.contains != "" && !strings.Contains(stdout.String(), test.contains) {
			t.Errorf("%q: output %q does not contain %q", test.name,
				stdout.String(), test.contains)
		}
	}
}

// TestRunLogFile ensures the log file is created when requested.
func TestRunLogFile(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "logs", "cellctl.log")
	args := []string{"-C", filepath.Join(dir, "missing.conf"), "--logfile",
		logFile, "--debuglevel=debug", "compacttodifficulty", "207fffff"}

	var stdout, stderr bytes.Buffer
	if exitCode := run(args, strings.NewReader(""), &stdout, &stderr); exitCode != 0 {
		t.Fatalf("unexpected exit code %d (stderr: %s)", exitCode,
			stderr.String())
	}
	if logRotator != nil {
		t.Fatal("log rotator not closed")
	}
	if _, err := os.Stat(filepath.Dir(logFile)); err != nil {
		t.Fatalf("log directory not created: %v", err)
	}
	if !strings.Contains(stdout.String(), `"difficulty": "0x2"`) {
		t.Fatalf("unexpected output %q", stdout.String())
	}
}
