package test_test

import (
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
)

// buildCLI builds the receptbok CLI binary for testing
func buildCLI(t *testing.T) string {
	t.Helper()

	buildDir := filepath.Join("..", "test-dist", "cli-bin")
	if err := os.MkdirAll(buildDir, 0750); err != nil {
		t.Fatalf("Failed to create build dir: %v", err)
	}

	cliPath, err := filepath.Abs(filepath.Join(buildDir, "receptbok"))
	if err != nil {
		t.Fatalf("Failed to resolve CLI path: %v", err)
	}

	if _, err := os.Stat(cliPath); err == nil {
		return cliPath
	}

	t.Log("Building receptbok CLI...")
	cmd := exec.Command("go", "build", "-o", cliPath, "../cmd/receptbok") // #nosec G204 -- test code with controlled input
	cmd.Dir = filepath.Join("..", "test")

	if output, err := cmd.CombinedOutput(); err != nil {
		t.Fatalf("Failed to build CLI: %v\nOutput: %s", err, output)
	}

	t.Log("CLI built successfully")
	return cliPath
}

// runCLI runs the binary against an isolated config and data file
func runCLI(t *testing.T, cliPath, dataFile string, args ...string) (string, error) {
	t.Helper()

	base := []string{"--config", filepath.Join(t.TempDir(), "config.yml"), "--file", dataFile}
	cmd := exec.Command(cliPath, append(base, args...)...) // #nosec G204 -- test code with controlled input
	cmd.Env = append(os.Environ(), "RECEPTBOK_DATA_FILE=")
	output, err := cmd.CombinedOutput()
	return string(output), err
}

func copyFixture(t *testing.T) string {
	t.Helper()

	data, err := os.ReadFile(filepath.Join("testdata", "recept.txt"))
	if err != nil {
		t.Fatalf("Failed to read fixture: %v", err)
	}
	path := filepath.Join(t.TempDir(), "recept.txt")
	if err := os.WriteFile(path, data, 0600); err != nil {
		t.Fatalf("Failed to write fixture: %v", err)
	}
	return path
}

// TestCLI_Help tests help output for all commands
func TestCLI_Help(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping CLI integration test in short mode")
	}

	cliPath := buildCLI(t)

	for _, cmd := range []string{"", "list", "show", "add", "check", "verify", "version"} {
		t.Run("help_"+cmd, func(t *testing.T) {
			args := []string{"--help"}
			if cmd != "" {
				args = []string{cmd, "--help"}
			}

			output, err := exec.Command(cliPath, args...).CombinedOutput() // #nosec G204 -- test code with controlled input
			if err != nil {
				t.Fatalf("help exited with error: %v", err)
			}
			if !strings.Contains(string(output), "Usage") {
				t.Errorf("Expected usage information in help output, got:\n%s", output)
			}
		})
	}
}

// TestCLI_ListFixture lists the bundled fixture in sorted order
func TestCLI_ListFixture(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping CLI integration test in short mode")
	}

	cliPath := buildCLI(t)
	dataFile := copyFixture(t)

	output, err := runCLI(t, cliPath, dataFile, "list")
	if err != nil {
		t.Fatalf("list failed: %v\n%s", err, output)
	}

	k := strings.Index(output, "Köttbullar")
	p := strings.Index(output, "Pannkakor")
	a := strings.Index(output, "Ärtsoppa")
	if k < 0 || p < 0 || a < 0 {
		t.Fatalf("missing recipes in output:\n%s", output)
	}
	if k >= p || p >= a {
		t.Errorf("recipes not sorted by name:\n%s", output)
	}
}

// TestCLI_AddThenCheck appends a recipe and re-parses the file
func TestCLI_AddThenCheck(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping CLI integration test in short mode")
	}

	cliPath := buildCLI(t)
	dataFile := copyFixture(t)

	before, err := os.ReadFile(dataFile) // #nosec G304 -- test temp file
	if err != nil {
		t.Fatal(err)
	}

	output, err := runCLI(t, cliPath, dataFile, "add",
		"--name", "Kladdkaka",
		"--ingredient", "100;g;smör",
		"--ingredient", "2;st;ägg",
		"--step", "Grädda i 175 grader i 15 minuter.")
	if err != nil {
		t.Fatalf("add failed: %v\n%s", err, output)
	}

	after, err := os.ReadFile(dataFile) // #nosec G304 -- test temp file
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(after), string(before)) {
		t.Error("add must only append to the recipe file")
	}

	output, err = runCLI(t, cliPath, dataFile, "check")
	if err != nil {
		t.Fatalf("check failed: %v\n%s", err, output)
	}
	if !strings.Contains(output, "OK, 4 recipes") {
		t.Errorf("unexpected check output:\n%s", output)
	}
}

// TestCLI_CheckMalformed expects a non-zero exit and the failing line
func TestCLI_CheckMalformed(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping CLI integration test in short mode")
	}

	cliPath := buildCLI(t)
	dataFile := filepath.Join(t.TempDir(), "recept.txt")
	if err := os.WriteFile(dataFile, []byte("[Recept]\nPannkakor\n[Ingredienser]\n2;dl\n"), 0600); err != nil {
		t.Fatal(err)
	}

	output, err := runCLI(t, cliPath, dataFile, "check")
	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) || exitErr.ExitCode() != 1 {
		t.Fatalf("expected exit code 1, got %v\n%s", err, output)
	}
	if !strings.Contains(output, "line 4: malformed ingredient line") {
		t.Errorf("expected line number in output, got:\n%s", output)
	}
}
