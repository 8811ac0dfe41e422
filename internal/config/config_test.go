package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_MissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	assert.Nil(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_OverlaysOntoDefaults(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".parlc.yaml"), []byte("colour: false\n"), 0o644)
	assert.Nil(t, err)

	cfg, err := Load(dir)
	assert.Nil(t, err)
	assert.False(t, cfg.Colour)
	assert.Equal(t, Default().Prompt, cfg.Prompt)
}

func TestLoad_MalformedFileErrors(t *testing.T) {
	dir := t.TempDir()
	err := os.WriteFile(filepath.Join(dir, ".parlc.yaml"), []byte("colour: [not a bool\n"), 0o644)
	assert.Nil(t, err)

	_, err = Load(dir)
	assert.NotNil(t, err)
}
