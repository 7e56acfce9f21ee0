package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/cobra"
)

func TestSetVersion(t *testing.T) {
	testVersion := "1.2.3-test"
	SetVersion(testVersion)

	if rootCmd.Version != testVersion {
		t.Errorf("Expected version to be %s, got %s", testVersion, rootCmd.Version)
	}
}

func TestRootCommand(t *testing.T) {
	if rootCmd.Use != "ssoctl" {
		t.Errorf("Expected Use to be 'ssoctl', got %s", rootCmd.Use)
	}

	if rootCmd.Short == "" {
		t.Error("Expected Short description to be set")
	}

	if rootCmd.Long == "" {
		t.Error("Expected Long description to be set")
	}

	if !rootCmd.SilenceUsage {
		t.Error("Expected SilenceUsage to be true")
	}
}

func TestVersionTemplate(t *testing.T) {
	testCmd := &cobra.Command{
		Use:     "test",
		Version: "1.0.0",
	}

	// Same version template as in Execute()
	testCmd.SetVersionTemplate(`{{printf "ssoctl version %s\n" .Version}}`)

	var buf bytes.Buffer
	testCmd.SetOut(&buf)

	testCmd.SetArgs([]string{"--version"})
	err := testCmd.Execute()
	if err != nil {
		t.Fatalf("Error executing version command: %v", err)
	}

	output := buf.String()
	expected := "ssoctl version 1.0.0\n"
	if output != expected {
		t.Errorf("Expected version output %q, got %q", expected, output)
	}
}

func TestSubcommands(t *testing.T) {
	commands := rootCmd.Commands()

	expectedCommands := []string{"login", "profiles", "version", "self-update"}
	foundCommands := make(map[string]bool)

	for _, cmd := range commands {
		foundCommands[cmd.Name()] = true
	}

	for _, expected := range expectedCommands {
		if !foundCommands[expected] {
			t.Errorf("Expected subcommand %s to be registered", expected)
		}
	}
}

func TestLoginCommandArgs(t *testing.T) {
	loginCmd := newLoginCmd()

	if err := loginCmd.Args(loginCmd, []string{}); err == nil {
		t.Error("Expected error for zero arguments")
	}
	if err := loginCmd.Args(loginCmd, []string{"alias"}); err != nil {
		t.Errorf("One argument should be accepted: %v", err)
	}
	if err := loginCmd.Args(loginCmd, []string{"alias", "profile"}); err != nil {
		t.Errorf("Two arguments should be accepted: %v", err)
	}
	if err := loginCmd.Args(loginCmd, []string{"alias", "profile", "extra"}); err == nil {
		t.Error("Expected error for three arguments")
	}
}

func TestLoginArgumentErrorIsPrinted(t *testing.T) {
	loginCmd := newLoginCmd()
	if loginCmd.SilenceErrors {
		t.Error("login must not pre-silence errors; validation failures would exit without output")
	}

	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs([]string{"login"})
	defer rootCmd.SetArgs(nil)

	if err := rootCmd.Execute(); err == nil {
		t.Fatal("Expected an argument validation error for zero arguments")
	}

	if !strings.Contains(errOut.String(), "accepts between 1 and 2 arg(s)") {
		t.Errorf("Argument error should be printed to stderr. Got stdout: %q stderr: %q",
			out.String(), errOut.String())
	}
}

func TestRootCommandHelp(t *testing.T) {
	var buf bytes.Buffer

	rootCmd.SetOut(&buf)
	rootCmd.SetArgs([]string{"--help"})
	defer rootCmd.SetArgs(nil)

	err := rootCmd.Execute()
	if err != nil {
		t.Fatalf("Error executing help command: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "ssoctl") {
		t.Errorf("Help output should contain 'ssoctl'. Got: %q", output)
	}

	if !strings.Contains(output, "login") {
		t.Errorf("Help output should list the login command. Got: %q", output)
	}
}
