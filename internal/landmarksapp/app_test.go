package landmarksapp

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const yamlDoc = `
- coordinates: HIV1-B-FR-K03455-seed
  landmarks:
    - {name: "5' LTR", start: 1, end: 634, colour: lightgrey}
    - {name: gag, start: 790, colour: green, frame: 1}
    - {name: pol, start: 2085, end: 5096, colour: orange, frame: 3}
- coordinates: other
  landmarks:
    - {name: x, start: 5, end: 9, colour: red}
`

func writeYAML(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "landmarks.yaml")
	if err := os.WriteFile(path, []byte(yamlDoc), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestRunText(t *testing.T) {
	var out, errB bytes.Buffer
	code := Run([]string{writeYAML(t)}, &out, &errB)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errB.String())
	}
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	if len(lines) != 4 {
		t.Fatalf("want header + 3 rows, got %q", out.String())
	}
	if lines[2] != "2\t1\tgag\t790\t2084\tgreen" {
		t.Fatalf("gag row = %q", lines[2])
	}
}

func TestRunJSONOtherReference(t *testing.T) {
	var out, errB bytes.Buffer
	code := Run([]string{"--landmarks", writeYAML(t), "--reference", "other", "-o", "json"}, &out, &errB)
	if code != 0 {
		t.Fatalf("exit %d, err=%s", code, errB.String())
	}
	if !strings.Contains(out.String(), `"reference": "other"`) {
		t.Fatalf("unexpected json: %s", out.String())
	}
}

func TestRunUnknownReference(t *testing.T) {
	var out, errB bytes.Buffer
	code := Run([]string{writeYAML(t), "--reference", "missing"}, &out, &errB)
	if code != 2 || !strings.Contains(errB.String(), "missing") {
		t.Fatalf("exit %d, err=%s", code, errB.String())
	}
}

func TestRunNoInput(t *testing.T) {
	var out, errB bytes.Buffer
	if code := Run([]string{"-q"}, &out, &errB); code != 2 {
		t.Fatalf("want exit 2, got %d", code)
	}
}

func TestRunHelp(t *testing.T) {
	var out, errB bytes.Buffer
	if code := Run([]string{"-h"}, &out, &errB); code != 0 {
		t.Fatalf("want exit 0, got %d", code)
	}
	if !strings.Contains(out.String(), "contigmap-landmarks") {
		t.Fatalf("usage missing tool name: %q", out.String())
	}
}
