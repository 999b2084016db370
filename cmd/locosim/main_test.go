package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/milk9111/scrollin/scenario"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestRunText(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	var out bytes.Buffer
	require.NoError(t, run(&out, "walk_and_jump", "player.yaml", "text", log))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(t, lines, 180)
	assert.Contains(t, lines[0], "grounded=true")
}

func TestRunYAML(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	var out bytes.Buffer
	require.NoError(t, run(&out, "double_jump", "player.yaml", "yaml", log))

	var frames []scenario.Frame
	require.NoError(t, yaml.Unmarshal(out.Bytes(), &frames))
	assert.Len(t, frames, 150)
}

func TestRunErrors(t *testing.T) {
	log, _ := logtest.NewNullLogger()
	var out bytes.Buffer
	assert.Error(t, run(&out, "no_such_script", "player.yaml", "text", log))
	assert.Error(t, run(&out, "walk_and_jump", "player.yaml", "csv", log))
}
