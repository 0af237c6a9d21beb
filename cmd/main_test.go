// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"pii-recognition/internal/detector"
	"pii-recognition/internal/version"
)

// run executes the root command in an isolated working directory so no
// config file on the machine is picked up.
func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	chdir(t, t.TempDir())

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetArgs(args)
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestInputValidation(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no input", []string{}, "input: no input given"},
		{"both inputs", []string{"--file", "a.txt", "--text", "x"}, "input: --file and --text cannot be used together"},
		{"empty text", []string{"--text", ""}, "input: input is empty"},
		{"missing file", []string{"--file", "/nonexistent/in.txt"}, "input: cannot read input file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, tt.args...)
			require.Error(t, err)
			assert.True(t, detector.IsInputError(err))
			assert.True(t, strings.HasPrefix(err.Error(), tt.want), err.Error())
		})
	}
}

func TestOutputMustBeJSON(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "findings.txt")

	_, _, err := run(t, "--text", "SSN 123-45-6789", "--output", out)
	require.Error(t, err)
	assert.True(t, detector.IsOutputError(err))
	assert.Contains(t, err.Error(), "output file must end in .json")
	assert.NoFileExists(t, out)
}

func TestOutputValidatedBeforeInputIsRead(t *testing.T) {
	_, _, err := run(t, "--file", "/nonexistent/in.txt", "--output", "out.csv")
	require.Error(t, err)
	assert.True(t, detector.IsOutputError(err))
}

func TestScanToJSONFile(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "findings.json")

	stdout, _, err := run(t, "--text", "SSN 123-45-6789\nnothing\nmail bob@example.org", "--output", out, "--workers", "2")
	require.NoError(t, err)
	assert.Equal(t, "2 finding(s) in 2 row(s) written to "+out+"\n", stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	doc := string(data)
	assert.Equal(t,
		`[{"0":{"ssn": [["ssn", "123-45-6789", "4 - 15", "SSN 123-45-6789"]]},`+"\n"+
			`"2":{"email": [["email", "bob@example.org", "5 - 20", "mail bob@example.org"]]}}]`+"\n",
		doc)
	assert.Equal(t, "bob@example.org", gjson.Get(doc, "0.2.email.0.1").String())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestScanFileToStdout(t *testing.T) {
	in := filepath.Join(t.TempDir(), "in.txt")
	require.NoError(t, os.WriteFile(in, []byte("card 4111-1111-1111-1111\n"), 0o600))

	stdout, _, err := run(t, "--file", in, "--checks", "credit_card")
	require.NoError(t, err)
	assert.Contains(t, stdout, "credit_card")
	assert.Contains(t, stdout, "4111111111111111")
	assert.Contains(t, stdout, "1 finding(s) in 1 row(s)")
	assert.NotContains(t, stdout, "\x1b[")
}

func TestScanFormats(t *testing.T) {
	stdout, _, err := run(t, "--text", "SSN 123-45-6789", "--checks", "ssn", "--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, "Row,Category,Value,Start,End,Context\n0,ssn,123-45-6789,4,15,SSN 123-45-6789\n", stdout)

	_, _, err = run(t, "--text", "x", "--format", "xml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported format 'xml'")
}

func TestUnknownChecks(t *testing.T) {
	_, _, err := run(t, "--text", "x", "--checks", "ssn,bogus")
	require.Error(t, err)
	typ, ok := detector.ErrorTypeOf(err)
	require.True(t, ok)
	assert.Equal(t, detector.ErrorConfig, typ)
	assert.Contains(t, err.Error(), "bogus")
}

func TestAreaCodesFlag(t *testing.T) {
	codes := filepath.Join(t.TempDir(), "codes.txt")
	require.NoError(t, os.WriteFile(codes, []byte("212\n"), 0o600))

	stdout, _, err := run(t, "--text", "call 212-456-7890 or 415-456-7890", "--checks", "us_number", "--area-codes", codes, "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, stdout, "212-456-7890")
	assert.NotContains(t, stdout, "415-456-7890")
}

func TestConfigFile(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("defaults:\n  checks: email\n"), 0o600))

	stdout, _, err := run(t, "--config", cfgPath, "--text", "SSN 123-45-6789 ab@example.com", "--format", "csv")
	require.NoError(t, err)
	assert.Contains(t, stdout, "ab@example.com")
	assert.NotContains(t, stdout, "123-45-6789,")

	_, _, err = run(t, "--config", filepath.Join(t.TempDir(), "missing.yaml"), "--text", "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: cannot load configuration")

	garbage := filepath.Join(t.TempDir(), "garbage.yaml")
	require.NoError(t, os.WriteFile(garbage, []byte(":::invalid yaml:::"), 0o600))
	_, _, err = run(t, "--config", garbage, "--text", "x")
	require.Error(t, err)
	typ, ok := detector.ErrorTypeOf(err)
	require.True(t, ok)
	assert.Equal(t, detector.ErrorConfig, typ)
	assert.Contains(t, err.Error(), "top level must be a mapping")
}

func TestChecksCommand(t *testing.T) {
	stdout, _, err := run(t, "checks", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Available checks (30)")
	assert.Contains(t, stdout, "person_name")

	stdout, _, err = run(t, "checks", "vin")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "vin\n"))
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := run(t, "version")
	require.NoError(t, err)
	assert.Equal(t, version.Info()+"\n", stdout)
}

// chdir changes the working directory for the duration of the test,
// mirroring testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { require.NoError(t, os.Chdir(old)) })
}
