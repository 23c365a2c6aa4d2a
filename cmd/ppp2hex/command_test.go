package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mitchellh/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommand_implements(t *testing.T) {
	var _ cli.Command = &command{}
}

func testCommand(t *testing.T, capture []byte) (*command, *cli.MockUi) {
	dir := t.TempDir()
	if capture != nil {
		require.NoError(t, os.WriteFile(filepath.Join(dir, inputFile), capture, 0o644))
	}
	ui := cli.NewMockUi()
	c := newCommand(ui)
	c.inputPath = filepath.Join(dir, inputFile)
	c.outputPath = filepath.Join(dir, outputFile)
	return c, ui
}

func TestCommandRun(t *testing.T) {
	capture := []byte("hello\nCONNECT 9600\n\x7e\x01\x02\x7e\x7e\x03\x7e")
	c, ui := testCommand(t, capture)

	code := c.Run(nil)
	require.Equal(t, 0, code, ui.ErrorWriter.String())

	dump, err := os.ReadFile(c.outputPath)
	require.NoError(t, err)
	assert.Equal(t, "\n000000 7e 01 02 7e\n000000 7e 03 7e", string(dump))

	out := ui.OutputWriter.String()
	assert.Contains(t, out, "PPP data starts at byte offset: 19")
	assert.Contains(t, out, "ppp: begin new packet (#1)")
	assert.Contains(t, out, "ppp: begin new packet (#2)")
	assert.Equal(t, 2, strings.Count(out, "ppp: end 7e flag detected"))
	assert.Empty(t, ui.ErrorWriter.String())
}

func TestCommandRunMissingInput(t *testing.T) {
	c, ui := testCommand(t, nil)

	code := c.Run(nil)
	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "opening input")
	assert.NoFileExists(t, c.outputPath)
}

func TestCommandRunNoMarker(t *testing.T) {
	c, ui := testCommand(t, []byte("ATZ\nOK\nNO CARRIER\n"))

	code := c.Run(nil)
	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "marker not found")
}

func TestCommandRunRejectsArgs(t *testing.T) {
	c, ui := testCommand(t, []byte("CONNECT\n"))

	code := c.Run([]string{"other.log"})
	assert.Equal(t, 1, code)
	assert.Contains(t, ui.ErrorWriter.String(), "unexpected args")
	assert.Contains(t, ui.OutputWriter.String(), "Usage: ppp2hex")
}
