package cli

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/novanotes/nova/internal/config"
	"github.com/novanotes/nova/internal/notes"
)

var testNow = time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

// testEnv points the CLI at a temporary home and restores globals on cleanup.
type testEnv struct {
	t      *testing.T
	home   string
	stderr bytes.Buffer
	edited []string
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{t: t, home: t.TempDir()}

	prevLookup := lookupEnv
	prevClock := clock
	prevEditor := newEditor
	prevDisplay := newDisplay
	prevConfigPath := configPath
	prevVerbose := verbose
	prevPrint := printToday
	prevCfg := cfg
	prevConfigFile := resolvedConfigPath
	prevLogger := logger
	prevRoot := resolvedRoot
	prevDefault := slog.Default()
	t.Cleanup(func() {
		lookupEnv = prevLookup
		clock = prevClock
		newEditor = prevEditor
		newDisplay = prevDisplay
		configPath = prevConfigPath
		verbose = prevVerbose
		printToday = prevPrint
		cfg = prevCfg
		resolvedConfigPath = prevConfigFile
		logger = prevLogger
		resolvedRoot = prevRoot
		slog.SetDefault(prevDefault)
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	configFile := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(configFile, []byte("editor = \"fake\"\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	lookupEnv = func(key string) (string, bool) {
		if key == config.HomeEnvVar {
			return env.home, true
		}
		return "", false
	}
	clock = notes.FixedClock(testNow)
	newEditor = func(*config.Config, *slog.Logger) notes.Editor {
		return notes.EditorFunc(func(path string) error {
			env.edited = append(env.edited, path)
			return nil
		})
	}
	configPath = configFile
	verbose = false
	printToday = false

	return env
}

// execute runs the root command with args and returns stdout.
func (e *testEnv) execute(args ...string) (string, error) {
	e.t.Helper()

	// Flag values persist on the package-level command between runs.
	printToday = false
	verbose = false

	var stdout bytes.Buffer
	e.stderr.Reset()
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&e.stderr)
	rootCmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := rootCmd.Execute()
	return stdout.String(), err
}

func (e *testEnv) root() string {
	return filepath.Join(e.home, ".nova")
}

func (e *testEnv) writeNote(relPath, content string) {
	e.t.Helper()
	full := filepath.Join(e.root(), filepath.FromSlash(relPath))
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		e.t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(full, []byte(content), 0o644); err != nil {
		e.t.Fatalf("write note: %v", err)
	}
}

func (e *testEnv) assertRootNotCreated() {
	e.t.Helper()
	if _, err := os.Stat(e.root()); err == nil {
		e.t.Fatalf("notes root %s was created unexpectedly", e.root())
	}
}
