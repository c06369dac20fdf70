package config

import (
	"archive/zip"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"
)

func readArchive(t *testing.T, name string) map[string]string {
	t.Helper()
	zr, err := zip.OpenReader(name)
	if err != nil {
		t.Fatalf("unable to open report: %v", err)
	}
	defer zr.Close()

	out := make(map[string]string)
	for _, f := range zr.File {
		rc, err := f.Open()
		if err != nil {
			t.Fatalf("unable to open %s: %v", f.Name, err)
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatalf("unable to read %s: %v", f.Name, err)
		}
		out[f.Name] = string(data)
	}
	return out
}

func TestReport_Archive(t *testing.T) {
	dir := t.TempDir()
	conf := ReporterConfig{Destination: filepath.Join(dir, "report.zip")}
	r, err := conf.Prepare()
	if err != nil {
		t.Fatalf("Prepare() error = %v", err)
	}

	themes := filepath.Join(dir, "themes")
	if err := os.MkdirAll(themes, 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(themes, "dark.json"), []byte(`{"inherits":"light"}`), 0644); err != nil {
		t.Fatal(err)
	}
	logFile := filepath.Join(dir, "final.log")
	if err := os.WriteFile(logFile, []byte("log line\n"), 0644); err != nil {
		t.Fatal(err)
	}

	r.StoreData("output/styles.css", []byte("h1{color:red;}\n"))
	r.Store("final.log", logFile)
	if err := r.StoreCopy("themes", themes); err != nil {
		t.Fatalf("StoreCopy() error = %v", err)
	}
	if err := r.StoreCopy("themes", themes); err != nil {
		t.Fatalf("StoreCopy() repeated error = %v", err)
	}

	var scratch []string
	for _, e := range r.entries {
		if e.scratch {
			scratch = append(scratch, e.actual)
		}
	}
	if len(scratch) != 2 {
		t.Fatalf("snapshots = %v, want 2", scratch)
	}

	if err := r.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	files := readArchive(t, r.Name())
	if files["output/styles.css"] != "h1{color:red;}\n" {
		t.Errorf("styles = %q", files["output/styles.css"])
	}
	if files["final.log"] != "log line\n" {
		t.Errorf("log = %q", files["final.log"])
	}
	if files["themes/dark.json"] != `{"inherits":"light"}` {
		t.Errorf("themes = %q", files["themes/dark.json"])
	}
	manifest := strings.Split(strings.TrimSpace(files["MANIFEST"]), "\n")
	if len(manifest) != 4 {
		t.Errorf("manifest = %q", files["MANIFEST"])
	}

	for _, s := range scratch {
		if _, err := os.Stat(s); !os.IsNotExist(err) {
			os.RemoveAll(s)
			t.Errorf("snapshot %s was not removed", s)
		}
	}
	if _, err := os.Stat(logFile); err != nil {
		t.Errorf("stored file should be kept: %v", err)
	}
}

func TestReport_ManifestOrder(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	for _, n := range []string{"theme-10", "theme-2", "config", "theme-1"} {
		r.StoreData(n, []byte(n))
	}
	names, _ := r.manifest()
	if want := []string{"config", "theme-1", "theme-2", "theme-10"}; !slices.Equal(names, want) {
		t.Errorf("manifest order = %v, want %v", names, want)
	}
}

func TestReport_Overwrite(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	r.Store("a", "/x")
	r.Store("a", "/x")

	defer func() {
		if recover() == nil {
			t.Error("expected panic on conflicting entry")
		}
	}()
	r.Store("a", "/y")
}

func TestReport_Nil(t *testing.T) {
	var r *Report
	r.Store("a", "b")
	r.StoreData("a", nil)
	if err := r.StoreCopy("a", "/nonexistent"); err != nil {
		t.Errorf("StoreCopy on nil report error = %v", err)
	}
	if r.Name() != "" {
		t.Errorf("Name() = %q", r.Name())
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close on nil report should not error, got: %v", err)
	}
}

func TestReport_NilFile(t *testing.T) {
	r := &Report{entries: make(map[string]entry)}
	if err := r.Close(); err != nil {
		t.Errorf("Close with nil file should not error, got: %v", err)
	}
}
