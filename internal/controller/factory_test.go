package controller

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
)

func TestNewUI_TTYMode(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	ui := NewUI(cmd, true)

	if _, ok := ui.(*TUI); !ok {
		t.Errorf("NewUI(true) returned %T, want *TUI", ui)
	}
}

func TestNewUI_NonTTYMode(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	ui := NewUI(cmd, false)

	if _, ok := ui.(*SimpleUI); !ok {
		t.Errorf("NewUI(false) returned %T, want *SimpleUI", ui)
	}
}

func TestIsTTY_NonFileWriter(t *testing.T) {
	if IsTTY(&bytes.Buffer{}) {
		t.Error("IsTTY(bytes.Buffer) = true, want false")
	}
}

func TestIsTTY_RegularFile(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatalf("CreateTemp: %v", err)
	}
	defer f.Close()

	if IsTTY(f) {
		t.Error("IsTTY(regular file) = true, want false")
	}
}

func TestStartOptions(t *testing.T) {
	if cfg := newStartConfig(); cfg.mode != ModeEstimate {
		t.Errorf("default mode = %v, want ModeEstimate", cfg.mode)
	}

	if cfg := newStartConfig(WithTestMode()); cfg.mode != ModeTest {
		t.Errorf("WithTestMode mode = %v, want ModeTest", cfg.mode)
	}

	if cfg := newStartConfig(WithTestMode(), WithEstimateMode()); cfg.mode != ModeEstimate {
		t.Errorf("last option should win, got %v", cfg.mode)
	}
}
