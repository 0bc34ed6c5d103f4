package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"spine-flexion-renderer/internal/spine"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := rootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "inspect version "+Version+"\n", out)
}

func TestStateTable(t *testing.T) {
	out, err := execute(t, "state", "--flexion", "1")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2+len(spine.HeroLabels))
	assert.Equal(t, "scene hero  flexion 1.000", lines[0])
	assert.Contains(t, lines[2], "C1")
	assert.True(t, strings.HasSuffix(lines[2], "*"))
	assert.False(t, strings.HasSuffix(lines[len(lines)-1], "*"))
}

func TestStateJSONMatchesAssembler(t *testing.T) {
	out, err := execute(t, "state", "--scene", "hero", "--elapsed", "0", "--format", "json")
	require.NoError(t, err)

	var got struct {
		Scene string           `json:"scene"`
		State spine.SpineState `json:"state"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "hero", got.Scene)
	assert.Equal(t, spine.Assemble(spine.HeroConfig(), 0.5), got.State)
}

func TestStateAnatomyIgnoresElapsed(t *testing.T) {
	a, err := execute(t, "state", "-s", "anatomy", "-t", "0", "-f", "json")
	require.NoError(t, err)
	b, err := execute(t, "state", "-s", "anatomy", "-t", "3.7", "-f", "json")
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestStateUnknownScene(t *testing.T) {
	_, err := execute(t, "state", "--scene", "lumbar")
	assert.Error(t, err)
}

func TestDatasetYAML(t *testing.T) {
	out, err := execute(t, "dataset", "--posture", "sitting", "--format", "yaml")
	require.NoError(t, err)

	var got map[string][]map[string]any
	require.NoError(t, yaml.Unmarshal([]byte(out), &got))
	require.Len(t, got["sitting"], 4)
	assert.Equal(t, "FM-C2", got["sitting"][0]["segment"])
}

func TestDatasetTable(t *testing.T) {
	out, err := execute(t, "dataset")
	require.NoError(t, err)
	assert.Contains(t, out, "Atlanto-Axial (Rotation Unit)")
	assert.Contains(t, out, "-10.28")
	assert.Equal(t, 1+8, strings.Count(strings.TrimSpace(out), "\n")+1)
}

func TestDatasetBadInput(t *testing.T) {
	_, err := execute(t, "dataset", "--posture", "lying")
	assert.Error(t, err)

	_, err = execute(t, "dataset", "--format", "xml")
	assert.Error(t, err)
}

func TestMethods(t *testing.T) {
	out, err := execute(t, "methods", "-f", "json")
	require.NoError(t, err)

	var facts []map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &facts))
	require.Len(t, facts, 4)
	assert.Equal(t, "Sample Size", facts[0]["label"])
}
