package integration_test

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestMain(t *testing.T) {
	tempDir := getTempDir(t)
	defer os.RemoveAll(tempDir)

	keyshellPath := goBuild(t, tempDir)
	env := []string{
		"HOME=" + tempDir,
		"XDG_CONFIG_HOME=" + filepath.Join(tempDir, "config"),
	}

	t.Run("version", func(t *testing.T) {
		res := runKeyshell(t, keyshellPath, env, "--version")
		assertExitCode(t, 0, res.state)
		assertBufEmpty(t, res.stderr)
		if !strings.HasPrefix(res.stdout.String(), "keyshell ") {
			t.Fatalf("unexpected version output: %s", res.stdout.String())
		}
	})

	t.Run("help", func(t *testing.T) {
		res := runKeyshell(t, keyshellPath, env, "--help")
		assertExitCode(t, 0, res.state)
		assertBufEmpty(t, res.stderr)
		assertBufContains(t, res.stdout, "Usage: keyshell [OPTIONS] [COMMAND]...")
	})

	t.Run("invalid flag", func(t *testing.T) {
		res := runKeyshell(t, keyshellPath, env, "--invalid")
		assertExitCode(t, 1, res.state)
		assertBufEmpty(t, res.stdout)
		assertBufContains(t, res.stderr, "unknown flag")
		assertBufContains(t, res.stderr, "For more information, try '--help'.")
	})

	t.Run("conflicting flags", func(t *testing.T) {
		res := runKeyshell(t, keyshellPath, env, "--help", "--version")
		assertExitCode(t, 1, res.state)
		assertBufEmpty(t, res.stdout)
		assertBufContains(t, res.stderr, "cannot be used together")
	})

	t.Run("not a terminal", func(t *testing.T) {
		res := runKeyshell(t, keyshellPath, env)
		assertExitCode(t, 1, res.state)
		assertBufEmpty(t, res.stdout)
		assertBufContains(t, res.stderr, "stdin is not a terminal")
	})

	t.Run("single command", func(t *testing.T) {
		res := runKeyshell(t, keyshellPath, env, "--color=off", "help", "edit-account")
		assertExitCode(t, 0, res.state)
		assertBufEmpty(t, res.stderr)
		assertBufContains(t, res.stdout, "Usage: edit-account <account> [field]")
	})

	t.Run("single command errors", func(t *testing.T) {
		res := runKeyshell(t, keyshellPath, env, "--color=off", "frobnicate")
		assertExitCode(t, 1, res.state)
		assertBufEquals(t, res.stderr, "error: unknown command 'frobnicate'; try 'help'\n")

		res = runKeyshell(t, keyshellPath, env, "--color=off", "--", "open-repository", "my vault.db")
		assertExitCode(t, 1, res.state)
		assertBufEquals(t, res.stderr, "error: command 'open-repository' is not available\n")

		res = runKeyshell(t, keyshellPath, env, "--color=off", "exit")
		assertExitCode(t, 0, res.state)
		assertBufEmpty(t, res.stderr)
	})

	t.Run("config file", func(t *testing.T) {
		dir := filepath.Join(tempDir, "config", "keyshell")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			t.Fatalf("unable to create config dir: %s", err.Error())
		}
		path := filepath.Join(dir, "config.toml")
		if err := os.WriteFile(path, []byte("color = \"off\"\nmask = \"ab\"\n"), 0o600); err != nil {
			t.Fatalf("unable to write config: %s", err.Error())
		}
		defer os.Remove(path)

		res := runKeyshell(t, keyshellPath, env, "help")
		assertExitCode(t, 1, res.state)
		assertBufContains(t, res.stderr, "invalid value 'ab' for option 'mask'")

		res = runKeyshell(t, keyshellPath, env, "--config", filepath.Join(tempDir, "missing.toml"), "help")
		assertExitCode(t, 1, res.state)
		assertBufContains(t, res.stderr, "does not exist")
	})

	t.Run("log file", func(t *testing.T) {
		logPath := filepath.Join(tempDir, "logs", "keyshell.log")
		res := runKeyshell(t, keyshellPath, env, "--log-level", "debug", "--log-file", logPath, "history")
		assertExitCode(t, 0, res.state)
		assertBufEmpty(t, res.stderr)

		data, err := os.ReadFile(logPath)
		if err != nil {
			t.Fatalf("unable to read log file: %s", err.Error())
		}
		if !strings.Contains(string(data), "command=history") {
			t.Fatalf("unexpected log file: %s", data)
		}
	})
}

type runResult struct {
	state  *os.ProcessState
	stderr *bytes.Buffer
	stdout *bytes.Buffer
}

func runKeyshell(t *testing.T, path string, env []string, args ...string) runResult {
	t.Helper()

	var stderr, stdout = new(bytes.Buffer), new(bytes.Buffer)
	cmd := exec.Command(path, args...)
	cmd.Env = append(os.Environ(), env...)
	cmd.Stderr = stderr
	cmd.Stdout = stdout
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("unexpected error running the keyshell command: %s", err.Error())
		}
	}
	return runResult{
		state:  cmd.ProcessState,
		stderr: stderr,
		stdout: stdout,
	}
}

func getTempDir(t *testing.T) string {
	t.Helper()

	dir, err := os.MkdirTemp("", "")
	if err != nil {
		t.Fatalf("unable to make temp dir: %s", err.Error())
	}

	return dir
}

func goBuild(t *testing.T, dir string) string {
	t.Helper()

	name := "keyshell"
	if runtime.GOOS == "windows" {
		name += ".exe"
	}
	path := filepath.Join(dir, name)
	workingDir, err := os.Getwd()
	if err != nil {
		t.Fatalf("unable to get current working directory: %s", err.Error())
	}
	mainPath := filepath.Dir(workingDir)

	cmd := exec.Command("go",
		"build",
		"-o", path,
		"-trimpath",
		mainPath,
	)
	stderr := new(bytes.Buffer)
	cmd.Stderr = stderr
	if err = cmd.Run(); err != nil {
		t.Fatalf("unable to build keyshell binary: %s: %s", err.Error(), stderr.String())
	}

	return path
}

func assertExitCode(t *testing.T, exp int, state *os.ProcessState) {
	t.Helper()

	exitCode := state.ExitCode()
	if exp != exitCode {
		t.Fatalf("unexpected exit code: %d", exitCode)
	}
}

func assertBufEmpty(t *testing.T, buf *bytes.Buffer) {
	t.Helper()

	if buf.Len() != 0 {
		t.Fatalf("unexpected data in buffer: %s", buf.String())
	}
}

func assertBufContains(t *testing.T, buf *bytes.Buffer, s string) {
	t.Helper()

	if !strings.Contains(buf.String(), s) {
		t.Fatalf("unexpected buffer: %s", buf.String())
	}
}

func assertBufEquals(t *testing.T, buf *bytes.Buffer, s string) {
	t.Helper()

	if buf.String() != s {
		t.Fatalf("unexpected buffer: %s", buf.String())
	}
}
