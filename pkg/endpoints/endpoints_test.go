package endpoints

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(file, []byte(content), 0o644); err != nil {
		t.Fatalf("write endpoints file: %v", err)
	}
	return file
}

func TestDefaultRegistry(t *testing.T) {
	reg := Default()
	if got := reg.GetMe(); got != "auth/me" {
		t.Fatalf("unexpected default get_me path: %s", got)
	}
	if names := reg.Names(); len(names) != 1 || names[0] != NameGetMe {
		t.Fatalf("unexpected names: %v", names)
	}
}

func TestLoadRegistryEmptyPath(t *testing.T) {
	reg, err := LoadRegistry("  ")
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if reg.GetMe() != GetMe {
		t.Fatalf("expected default get_me, got %s", reg.GetMe())
	}
}

func TestLoadRegistryYAML(t *testing.T) {
	file := writeFile(t, "endpoints.yaml", `
endpoints:
  GET_ME: users/me
  list_orgs: orgs
`)

	reg, err := LoadRegistry(file)
	if err != nil {
		t.Fatalf("LoadRegistry returned error: %v", err)
	}
	if reg.GetMe() != "users/me" {
		t.Fatalf("expected override users/me, got %s", reg.GetMe())
	}
	if p, ok := reg.Path("list_orgs"); !ok || p != "orgs" {
		t.Fatalf("expected list_orgs=orgs, got %q ok=%v", p, ok)
	}
}

func TestLoadRegistryJSON(t *testing.T) {
	file := writeFile(t, "endpoints.json", `{"endpoints":{"get_me":"v2/me"}}`)

	reg, err := LoadRegistry(file)
	if err != nil {
		t.Fatalf("LoadRegistry returned error: %v", err)
	}
	if reg.GetMe() != "v2/me" {
		t.Fatalf("expected v2/me, got %s", reg.GetMe())
	}
}

func TestLoadRegistryRejectsAbsolutePath(t *testing.T) {
	file := writeFile(t, "endpoints.yaml", `
endpoints:
  get_me: https://evil.example/me
`)

	if _, err := LoadRegistry(file); err == nil {
		t.Fatalf("expected error for absolute endpoint url")
	}
}

func TestLoadRegistryRejectsEmptyFile(t *testing.T) {
	file := writeFile(t, "endpoints.yaml", "endpoints: {}\n")

	if _, err := LoadRegistry(file); err == nil {
		t.Fatalf("expected error for empty endpoints")
	}
}
