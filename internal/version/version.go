// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2024 The celld developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version provides a single location to house the version information
// for cellctl and the other utilities provided in the same repository.
package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// semanticAlphabet defines the allowed characters for the pre-release and
// build metadata portions of a semantic version string.
const semanticAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-."

// semverRE is a regular expression used to parse a semantic version string into
// its constituent parts.
var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
	`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*` +
	`[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

// Version is the application version per the semantic versioning 2.0.0
// (https://semver.org/).
//
// It is defined as a variable so it can be overridden during the build process
// with:
// '-ldflags "-X github.com/cellchain/celld/internal/version.Version=fullsemver"'
// if needed.
//
// It MUST be a full semantic version or the package will panic at runtime.
var Version = "0.1.0-pre"

// SemVer houses the individual components of a semantic version.
type SemVer struct {
	Major         uint
	Minor         uint
	Patch         uint
	PreRelease    string
	BuildMetadata string
}

// String returns the version as a properly formed semantic version string.
func (v SemVer) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.PreRelease != "" {
		sb.WriteByte('-')
		sb.WriteString(v.PreRelease)
	}
	if v.BuildMetadata != "" {
		sb.WriteByte('+')
		sb.WriteString(v.BuildMetadata)
	}
	return sb.String()
}

// parsed houses the components of Version and is set via init.
var parsed SemVer

// parseUint converts the passed string to an unsigned integer or returns an
// error if it is invalid.
func parseUint(s string, fieldName string) (uint, error) {
	val, err := strconv.ParseUint(s, 10, 0)
	if err != nil {
		return 0, fmt.Errorf("malformed semver %s: %w", fieldName, err)
	}
	return uint(val), nil
}

// Parse parses the provided semantic version string into its components.
func Parse(s string) (SemVer, error) {
	m := semverRE.FindStringSubmatch(s)
	if m == nil {
		return SemVer{}, fmt.Errorf("malformed version string %q: does not "+
			"conform to semver specification", s)
	}

	var v SemVer
	var err error
	fields := []struct {
		dst  *uint
		str  string
		name string
	}{
		{&v.Major, m[1], "major"},
		{&v.Minor, m[2], "minor"},
		{&v.Patch, m[3], "patch"},
	}
	for _, f := range fields {
		if *f.dst, err = parseUint(f.str, f.name); err != nil {
			return SemVer{}, err
		}
	}
	v.PreRelease, v.BuildMetadata = m[4], m[5]
	return v, nil
}

func init() {
	var err error
	parsed, err = Parse(Version)
	if err != nil {
		panic(err)
	}
	if parsed.BuildMetadata == "" {
		parsed.BuildMetadata = NormalizeString(vcsCommitID())
	}
}

// Components returns the individual semantic version components of the
// application version.
func Components() SemVer {
	return parsed
}

// String returns the application version as a properly formed string per the
// semantic versioning 2.0.0 (https://semver.org/).  The build metadata
// defaults to the VCS commit the binary was built from when available.
func String() string {
	return parsed.String()
}

// NormalizeString returns the passed string stripped of all characters which
// are not valid according to the semantic versioning guidelines for pre-release
// and build metadata strings.
func NormalizeString(str string) string {
	return strings.Map(func(r rune) rune {
		if strings.ContainsRune(semanticAlphabet, r) {
			return r
		}
		return -1
	}, str)
}
