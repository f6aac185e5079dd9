package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"pigeonhole/internal/report"
	"pigeonhole/internal/testsupport"
)

func TestOrganizeMovesFilesIntoBuckets(t *testing.T) {
	configPath := writeTestConfig(t)
	source := t.TempDir()
	file := filepath.Join(source, "notes.txt")
	testsupport.WriteFile(t, file, "hello")
	testsupport.Chtimes(t, file, fixedTime)

	out, err := runCLI(t, "-c", configPath, "organize", "--time", "modification", source)
	if err != nil {
		t.Fatalf("organize: %v\n%s", err, out)
	}

	moved := filepath.Join(source, "txt",
		fixedTime.Format("2006"), fixedTime.Format("01"), fixedTime.Format("02"),
		"small", "notes.txt")
	if _, err := os.Stat(moved); err != nil {
		t.Fatalf("expected file at %s: %v\noutput:\n%s", moved, err, out)
	}
	requireContains(t, out, "Moved")
}

func TestOrganizeDryRunEmitsJSONWithoutMutation(t *testing.T) {
	configPath := writeTestConfig(t)
	source := t.TempDir()
	file := filepath.Join(source, "photo.jpg")
	testsupport.WriteFile(t, file, "image bytes")
	testsupport.Chtimes(t, file, fixedTime)
	before := testsupport.ListTree(t, source)

	out, err := runCLI(t, "-c", configPath, "organize", "--time", "modification", "--dry-run", "--json", source)
	if err != nil {
		t.Fatalf("organize --dry-run --json: %v\n%s", err, out)
	}

	after := testsupport.ListTree(t, source)
	if !reflect.DeepEqual(before, after) {
		t.Fatalf("dry-run mutated the tree:\nbefore: %v\nafter:  %v", before, after)
	}

	var rep report.Report
	if err := json.Unmarshal([]byte(out), &rep); err != nil {
		t.Fatalf("report is not valid JSON: %v\n%s", err, out)
	}
	if !rep.DryRun {
		t.Fatal("report does not carry the dry-run flag")
	}
	if len(rep.Outcomes) != 1 || rep.Outcomes[0].Status != "moved" {
		t.Fatalf("outcomes = %+v, want one planned move", rep.Outcomes)
	}
}

func TestOrganizeRejectsMissingSource(t *testing.T) {
	configPath := writeTestConfig(t)
	missing := filepath.Join(t.TempDir(), "nope")

	if _, err := runCLI(t, "-c", configPath, "organize", missing); err == nil {
		t.Fatal("expected an error for a missing source directory")
	}
}

func TestOrganizeRejectsSourceFile(t *testing.T) {
	configPath := writeTestConfig(t)
	file := filepath.Join(t.TempDir(), "plain.txt")
	testsupport.WriteFile(t, file, "not a directory")

	if _, err := runCLI(t, "-c", configPath, "organize", file); err == nil {
		t.Fatal("expected an error for a non-directory source")
	}
}

func TestOrganizeRejectsIllOrderedThresholdFlags(t *testing.T) {
	configPath := writeTestConfig(t)
	source := t.TempDir()

	_, err := runCLI(t, "-c", configPath, "organize", "--small", "10", "--medium", "5", source)
	if err == nil {
		t.Fatal("expected an error for small >= medium")
	}
}

func TestOrganizeRejectsUnknownTimeAttribute(t *testing.T) {
	configPath := writeTestConfig(t)
	source := t.TempDir()

	if _, err := runCLI(t, "-c", configPath, "organize", "--time", "birthday", source); err == nil {
		t.Fatal("expected an error for an unknown time attribute")
	}
}
