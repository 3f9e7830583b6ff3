package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func testConfig(t *testing.T) (dir, path string) {
	t.Helper()
	dir = t.TempDir()
	path = filepath.Join(dir, "config.yaml")
	content := "year: 2026\noutput:\n  dir: " + dir + "\nlog:\n  level: error\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return dir, path
}

func TestGenerate(t *testing.T) {
	dir, path := testConfig(t)

	out, err := execute(t, "-c", path, "generate")
	if err != nil {
		t.Fatalf("generate error = %v\n%s", err, out)
	}

	file := filepath.Join(dir, "Kalender_2026.xlsx")
	if _, err := os.Stat(file); err != nil {
		t.Fatalf("workbook not written: %v", err)
	}
	if !strings.Contains(out, "Die Excel-Datei '"+file+"' wurde erfolgreich erstellt.") {
		t.Errorf("unexpected output: %q", out)
	}
}

func TestGenerateOverrides(t *testing.T) {
	_, path := testConfig(t)
	file := filepath.Join(t.TempDir(), "custom.xlsx")

	out, err := execute(t, "-c", path, "generate", "--year", "2027", "--output", file)
	if err != nil {
		t.Fatalf("generate error = %v\n%s", err, out)
	}
	if _, err := os.Stat(file); err != nil {
		t.Fatalf("workbook not written: %v", err)
	}
}

func TestGenerateDryRun(t *testing.T) {
	dir, path := testConfig(t)

	out, err := execute(t, "-c", path, "generate", "--dry-run")
	if err != nil {
		t.Fatalf("generate --dry-run error = %v", err)
	}

	for _, want := range []string{"April (Apr-26)", "* 6 Mo [15] Ostrn", "  7 Di", "Dezember (Dez-26)"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, "Kalender_2026.xlsx")); !os.IsNotExist(err) {
		t.Errorf("dry run wrote a workbook (stat err = %v)", err)
	}
}

func TestGenerateInvalidYear(t *testing.T) {
	_, path := testConfig(t)

	if _, err := execute(t, "-c", path, "generate", "--year", "1400"); err == nil {
		t.Error("generate --year 1400 succeeded")
	}
}

func TestHolidays(t *testing.T) {
	_, path := testConfig(t)

	out, err := execute(t, "-c", path, "holidays")
	if err != nil {
		t.Fatalf("holidays error = %v", err)
	}

	for _, want := range []string{"Ostersonntag 2026: 05.04.2026", "Ostrn   06.04.2026 Mon", "Fron    04.06.2026 Thu"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestCheck(t *testing.T) {
	_, path := testConfig(t)

	out, err := execute(t, "-c", path, "check", "--from", "2020", "--to", "2030")
	if err != nil {
		t.Fatalf("check error = %v\n%s", err, out)
	}
	if !strings.Contains(out, "OK: 2020..2030 match") {
		t.Errorf("unexpected output: %q", out)
	}

	if _, err := execute(t, "-c", path, "check", "--from", "2030", "--to", "2020"); err == nil {
		t.Error("check with reversed range succeeded")
	}
}
