package internalcheck

import (
	"strings"
	"testing"

	"golang.org/x/tools/go/packages"
)

const modulePath = "github.com/coinbase/basicsig-go"

// isCore reports whether path is a package that handles key material. The
// logging package and the test helpers are excluded from the logging check
// but not from the formatting and comparison checks.
func isCore(path string) bool {
	switch strings.TrimPrefix(path, modulePath) {
	case "/pkg/basicsig", "/pkg/basicsig/ecdsasecp256k1", "/pkg/basicsig/internal/curve", "/pkg/basicsig/internal/der":
		return true
	}
	return false
}

func loadPackages(t *testing.T) []*packages.Package {
	t.Helper()
	cfg := &packages.Config{
		Mode: packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo | packages.NeedFiles | packages.NeedName,
	}

	pkgs, err := packages.Load(cfg, modulePath+"/pkg/basicsig/...")
	if err != nil {
		t.Fatalf("load packages: %v", err)
	}

	var loaded []*packages.Package
	for _, pkg := range pkgs {
		if strings.HasSuffix(pkg.PkgPath, "/internalcheck") {
			continue
		}
		if len(pkg.Errors) > 0 {
			t.Fatalf("load %s: %v", pkg.PkgPath, pkg.Errors[0])
		}
		loaded = append(loaded, pkg)
	}
	if len(loaded) == 0 {
		t.Fatal("no packages loaded")
	}
	return loaded
}

func report(t *testing.T, policy string, findings []string) {
	t.Helper()
	if len(findings) > 0 {
		t.Fatalf("%s policy violation:\n%s", policy, strings.Join(findings, "\n"))
	}
}
