package groupfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spance/ffdh"
)

const testINI = `
[oakley2-like]
P = FFFFFFFFFFFFFFFFC90FDAA22168C234C4C6628B80DC1CD129024E0
	88A67CC74020BBEA63B139B22514A08798E3404DDEF9519B3CD3A43
	1B302B0A6DF25F14374FE1356D6D51C245E485B576625E7EC6F44C4
	2E9A637ED6B0BFF5CB6F406B7EDEE386BFB5A899FA5AE9F24117C4B
	1FE649286651ECE65381FFFFFFFFFFFFFFFF
G = 02

[toy]
P = 17
G = 3
`

func writeTestINI(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "groups.ini")
	if err := os.WriteFile(path, []byte(testINI), 0o600); err != nil {
		t.Fatalf("write ini: %v", err)
	}
	return path
}

func TestLoadParsesEverySectionAsAGroup(t *testing.T) {
	path := writeTestINI(t)
	groups, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
	toy, ok := groups["toy"]
	if !ok {
		t.Fatal("missing [toy] section")
	}
	want, err := ffdh.NewGroup("17", "3", "")
	if err != nil {
		t.Fatalf("NewGroup: %v", err)
	}
	if toy.ModulusSize() != want.ModulusSize() {
		t.Fatalf("toy group modulus size mismatch: got %d want %d", toy.ModulusSize(), want.ModulusSize())
	}
}

func TestLoadRoundTripsAgainstDirectConstruction(t *testing.T) {
	path := writeTestINI(t)
	groups, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got := groups["oakley2-like"]
	want := ffdh.Oakley2()
	if got.ModulusSize() != want.ModulusSize() {
		t.Fatalf("modulus size mismatch: got %d want %d", got.ModulusSize(), want.ModulusSize())
	}
}

func TestLoadRejectsMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.ini")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadRejectsSectionMissingP(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.ini")
	if err := os.WriteFile(path, []byte("[incomplete]\nG = 2\n"), 0o600); err != nil {
		t.Fatalf("write ini: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected error for section missing P")
	}
}

func TestLoadDefaultHonorsEnvOverride(t *testing.T) {
	path := writeTestINI(t)
	t.Setenv(EnvOverride, path)
	groups, err := LoadDefault()
	if err != nil {
		t.Fatalf("LoadDefault: %v", err)
	}
	if len(groups) != 2 {
		t.Fatalf("got %d groups, want 2", len(groups))
	}
}

func TestLoadDefaultReportsErrNoGroupFile(t *testing.T) {
	t.Setenv(EnvOverride, "")
	dir := t.TempDir()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	defer os.Chdir(wd)
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	if _, err := LoadDefault(); err != ErrNoGroupFile {
		t.Fatalf("got err=%v, want ErrNoGroupFile", err)
	}
}
