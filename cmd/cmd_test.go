package cmd

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("FORTUNE_LOG_LEVEL", "error")

	var out bytes.Buffer
	RootCmd.SetIn(strings.NewReader(input))
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	RootCmd.SetArgs(args)

	err := RootCmd.Execute()
	return out.String(), err
}

func TestPlay_QuitImmediately(t *testing.T) {
	out, err := run(t, "q\n", "play", "--seed", "3")
	if err != nil {
		t.Fatalf("play failed: %v", err)
	}
	if !strings.Contains(out, "Type ? for help.") || !strings.Contains(out, "(0/22)") {
		t.Errorf("expected a board, got:\n%s", out)
	}
}

func TestPlay_BadInput(t *testing.T) {
	out, err := run(t, "1 2 3\nzz\nu\n", "play", "--seed", "3")
	if err != nil {
		t.Fatalf("play failed: %v", err)
	}
	for _, want := range []string{"expected one or two locations", "invalid location", "Nothing to undo."} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
}

func TestDeal(t *testing.T) {
	first, err := run(t, "", "deal", "--seed", "9")
	if err != nil {
		t.Fatalf("deal failed: %v", err)
	}
	second, err := run(t, "", "deal", "--seed", "9")
	if err != nil {
		t.Fatalf("deal failed: %v", err)
	}
	if first != second {
		t.Errorf("same seed dealt different games")
	}
}

func TestShow(t *testing.T) {
	out, err := run(t, "", "show", "minor_arcana.pentacles.king")
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	if !strings.Contains(out, "King of Coins") {
		t.Errorf("unexpected output:\n%s", out)
	}

	if _, err := run(t, "", "show", "minor_arcana.cups.1"); err == nil {
		t.Errorf("expected error for unknown card")
	}
}

func TestValidate(t *testing.T) {
	out, err := run(t, "", "validate", "--games", "3", "--moves", "100")
	if err != nil {
		t.Fatalf("validate failed: %v\n%s", err, out)
	}
	if !strings.Contains(out, "✅") {
		t.Errorf("unexpected output:\n%s", out)
	}
}

func TestConfigSetAndShow(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))

	var out bytes.Buffer
	RootCmd.SetOut(&out)
	RootCmd.SetErr(&out)
	t.Setenv("FORTUNE_LOG_LEVEL", "")

	RootCmd.SetArgs([]string{"config", "set", "symbols", "ascii"})
	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("config set failed: %v", err)
	}

	out.Reset()
	RootCmd.SetArgs([]string{"config", "show"})
	if err := RootCmd.Execute(); err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(out.String(), `symbols = "ascii"`) {
		t.Errorf("unexpected config:\n%s", out.String())
	}
}

func TestDeckList_NoLibrary(t *testing.T) {
	out, err := run(t, "", "deck", "ls")
	if err != nil {
		t.Fatalf("deck ls failed: %v", err)
	}
	if !strings.Contains(out, "does not exist") {
		t.Errorf("unexpected output:\n%s", out)
	}
}
