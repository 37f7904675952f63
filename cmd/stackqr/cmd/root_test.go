package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommand(t *testing.T) {
	assert.NotNil(t, rootCmd)
	assert.Equal(t, "stackqr", rootCmd.Use)
	assert.NotEmpty(t, rootCmd.Short)
	assert.NotEmpty(t, rootCmd.Long)
}

func TestRootCommandHelp(t *testing.T) {
	cmd := rootCmd

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	cmd.SetArgs([]string{"--help"})
	err := cmd.Execute()
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "stackable")
	assert.Contains(t, output, "Available Commands:")
	assert.Contains(t, output, "generate")
	assert.Contains(t, output, "stack")
	assert.Contains(t, output, "serve")

	// Cobra leaves the auto-registered help flag set; clear it so later
	// executions of the shared root command run their own branches.
	require.NoError(t, cmd.Flags().Set("help", "false"))
}

func TestRootCommandVersionAfterHelp(t *testing.T) {
	cmd := rootCmd

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	cmd.SetArgs([]string{"--help"})
	require.NoError(t, cmd.Execute())
	require.NoError(t, cmd.Flags().Set("help", "false"))

	buf.Reset()
	cmd.SetArgs([]string{"--version"})
	require.NoError(t, cmd.Execute())

	assert.Contains(t, buf.String(), "stackqr version")
	assert.NotContains(t, buf.String(), "Available Commands:")

	require.NoError(t, cmd.PersistentFlags().Set("version", "false"))
}

func TestRootCommandVersion(t *testing.T) {
	cmd := rootCmd

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)

	cmd.SetArgs([]string{"--version"})
	err := cmd.Execute()
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "stackqr version")

	// Reset for other tests sharing the root command.
	require.NoError(t, cmd.PersistentFlags().Set("version", "false"))
}

func TestSubcommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	assert.True(t, names["generate"])
	assert.True(t, names["stack"])
	assert.True(t, names["serve"])
}
