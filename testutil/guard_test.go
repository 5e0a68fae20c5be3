package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

func TestInternalImportForbiddenPredicate(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"memberdir/internal/core", true},
		{"example.com/mod/internal/x", true},
		{"memberdir/pkg/directory", false},
		{"strings", false},
	}
	for _, c := range cases {
		if got := InternalImportForbidden(c.in); got != c.want {
			t.Fatalf("InternalImportForbidden(%q)=%v want %v", c.in, got, c.want)
		}
	}
}

func TestThirdPartyImportForbiddenPredicate(t *testing.T) {
	cases := []struct {
		in   string
		want bool
	}{
		{"github.com/xuri/excelize/v2", true},
		{"golang.org/x/tools/go/packages", true},
		{"memberdir/pkg/directory", false},
		{"encoding/csv", false},
		{"strings", false},
	}
	for _, c := range cases {
		if got := ThirdPartyImportForbidden(c.in); got != c.want {
			t.Fatalf("ThirdPartyImportForbidden(%q)=%v want %v", c.in, got, c.want)
		}
	}
}

// TestAssertNoDirectImports exercises the success path by creating a tiny temp package with safe imports.
func TestAssertNoDirectImports(t *testing.T) {
	dir := t.TempDir()
	src := []byte("package tmp\nimport \"fmt\"\nfunc X(){fmt.Println(1)}")
	if err := os.WriteFile(filepath.Join(dir, "x.go"), src, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	AssertNoDirectImports(t, dir, func(string) bool { return false }, "none")
}

func TestAssertNoDirectImportsDetectsViolation(t *testing.T) {
	dir := t.TempDir()
	src := []byte("package tmp\nimport \"github.com/example/dep\"\nvar _ = dep.X")
	if err := os.WriteFile(filepath.Join(dir, "x.go"), src, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	viols, err := directImportViolations(dir, ThirdPartyImportForbidden)
	if err != nil {
		t.Fatalf("scan: %v", err)
	}
	if len(viols) != 1 {
		t.Fatalf("violations: %v", viols)
	}
}

// TestAssertNoTransitiveDependency runs against the current package with a predicate that always returns false to exercise the path.
func TestAssertNoTransitiveDependency(t *testing.T) {
	AssertNoTransitiveDependency(t, ".", func(string) bool { return false }, "none")
}

func TestTransitiveViolationsReported(t *testing.T) {
	orig := goListDeps
	defer func() { goListDeps = orig }()
	goListDeps = func(string) ([]byte, error) {
		return []byte("strings\ngithub.com/example/dep\n"), nil
	}
	viols, _, err := transitiveDependencyViolations(".", ThirdPartyImportForbidden)
	if err != nil {
		t.Fatalf("violations: %v", err)
	}
	if len(viols) != 1 || viols[0] != "github.com/example/dep" {
		t.Fatalf("violations: %v", viols)
	}
}
