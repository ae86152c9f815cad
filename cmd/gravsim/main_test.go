package main

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/lixenwraith/gravsim/config"
)

func TestRootCmdRejectsInvalidConfig(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--gravity", "0"})
	err := cmd.Execute()
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Errorf("err = %v, want ErrInvalidConfig", err)
	}
}

func TestRootCmdMissingScene(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "absent.toml")})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for missing scene file")
	}
}

func TestRootCmdTooManyArgs(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"a.toml", "b.toml"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for two scene arguments")
	}
}
