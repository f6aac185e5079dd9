package collision_test

import (
	"os"
	"path/filepath"
	"testing"

	"pigeonhole/internal/collision"
)

func TestResolveFreeTarget(t *testing.T) {
	dir := t.TempDir()
	source := writeFile(t, dir, "src", "notes.txt", "payload")
	candidate := filepath.Join(dir, "dst", "notes.txt")

	res, err := collision.Resolve(source, candidate)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Decision != collision.TargetFree {
		t.Fatalf("decision = %q, want %q", res.Decision, collision.TargetFree)
	}
	if res.FinalTarget != candidate {
		t.Fatalf("final target = %q, want %q", res.FinalTarget, candidate)
	}
}

func TestResolveAlreadyInPlace(t *testing.T) {
	dir := t.TempDir()
	source := writeFile(t, dir, "bucket", "notes.txt", "payload")

	res, err := collision.Resolve(source, source)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Decision != collision.AlreadyInPlace {
		t.Fatalf("decision = %q, want %q", res.Decision, collision.AlreadyInPlace)
	}
}

func TestResolveIdenticalContent(t *testing.T) {
	dir := t.TempDir()
	source := writeFile(t, dir, "src", "notes.txt", "same bytes")
	candidate := writeFile(t, dir, "dst", "notes.txt", "same bytes")

	res, err := collision.Resolve(source, candidate)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Decision != collision.IdenticalContent {
		t.Fatalf("decision = %q, want %q", res.Decision, collision.IdenticalContent)
	}
}

func TestResolveDisambiguates(t *testing.T) {
	dir := t.TempDir()
	source := writeFile(t, dir, "src", "notes.txt", "new content")
	candidate := writeFile(t, dir, "dst", "notes.txt", "old content")

	res, err := collision.Resolve(source, candidate)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Decision != collision.RenamedTarget {
		t.Fatalf("decision = %q, want %q", res.Decision, collision.RenamedTarget)
	}
	want := filepath.Join(dir, "dst", "notes_1.txt")
	if res.FinalTarget != want {
		t.Fatalf("final target = %q, want %q", res.FinalTarget, want)
	}
}

func TestResolveIncrementsSuffix(t *testing.T) {
	dir := t.TempDir()
	source := writeFile(t, dir, "src", "notes.txt", "third variant")
	writeFile(t, dir, "dst", "notes.txt", "first variant")
	writeFile(t, dir, "dst", "notes_1.txt", "second variant")

	res, err := collision.Resolve(source, filepath.Join(dir, "dst", "notes.txt"))
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	want := filepath.Join(dir, "dst", "notes_2.txt")
	if res.FinalTarget != want {
		t.Fatalf("final target = %q, want %q", res.FinalTarget, want)
	}
}

func TestResolveSuffixPlacement(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"archive.tar.gz", "archive.tar_1.gz"},
		{"README", "README_1"},
		{".bashrc", ".bashrc_1"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			source := writeFile(t, dir, "src", tc.name, "new content")
			candidate := writeFile(t, dir, "dst", tc.name, "old content")

			res, err := collision.Resolve(source, candidate)
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			want := filepath.Join(dir, "dst", tc.want)
			if res.FinalTarget != want {
				t.Fatalf("final target = %q, want %q", res.FinalTarget, want)
			}
		})
	}
}

func writeFile(t *testing.T, root, sub, name, content string) string {
	t.Helper()
	dir := filepath.Join(root, sub)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}
