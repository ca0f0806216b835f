package app

import (
	"bytes"
	"encoding/json"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	buildOnce sync.Once
	testRoot  *cobra.Command
)

// executeCommand runs the root command with the given args, resetting flag
// state between invocations since cobra commands are package singletons.
func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	buildOnce.Do(func() {
		testRoot = NewRootCmd()
	})

	resetFlags(testRoot)

	var stdout, stderr bytes.Buffer
	testRoot.SetOut(&stdout)
	testRoot.SetErr(&stderr)
	testRoot.SetArgs(args)

	err := testRoot.Execute()
	return stdout.String(), stderr.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().Visit(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

func TestRootCmd_ListProviders(t *testing.T) {
	stdout, _, err := executeCommand(t, "--list-providers")
	require.NoError(t, err)
	assert.Contains(t, stdout, "openai")
	assert.Contains(t, stdout, "google")
}

func TestRootCmd_ListBots(t *testing.T) {
	stdout, _, err := executeCommand(t, "--list-bots")
	require.NoError(t, err)
	assert.Contains(t, stdout, "openai:gptbot")
	assert.Contains(t, stdout, "google:googlebot")
	assert.Contains(t, stdout, "https://openai.com/gptbot.json")
}

func TestRootCmd_InvalidFormat(t *testing.T) {
	_, _, err := executeCommand(t, "--format", "csv", "--list-providers=false")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestRootCmd_UnknownProvider(t *testing.T) {
	_, _, err := executeCommand(t, "--providers", "yandex")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown provider")
}

func TestRootCmd_MutuallyExclusiveIPFlags(t *testing.T) {
	_, _, err := executeCommand(t, "-4", "-6")
	assert.Error(t, err)
}

func TestRootCmd_UnknownFlag(t *testing.T) {
	_, _, err := executeCommand(t, "--no-such-flag")
	assert.Error(t, err)
}

func TestVersionCmd_JSON(t *testing.T) {
	stdout, _, err := executeCommand(t, "version", "--format", "json")
	require.NoError(t, err)

	var info map[string]string
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.Contains(t, info, "version")
	assert.Contains(t, info, "go_version")
}

func TestVersionCmd_Text(t *testing.T) {
	stdout, _, err := executeCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "botranges")
}
