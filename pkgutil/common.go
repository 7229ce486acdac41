package pkgutil

import (
	"go/types"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/cs-au-dk/irange/analysis/irange/ssagraph"

	"golang.org/x/exp/slices"
	"golang.org/x/tools/go/ssa"
)

// CheckPkgInGoroot checks whether a package is declared in GOROOT.
func CheckPkgInGoroot(pkg *types.Package) bool {
	path := filepath.Join(runtime.GOROOT(), "src", pkg.Path())
	if fi, err := os.Stat(path); err == nil && fi.IsDir() {
		return true
	}
	return false
}

// CheckInGoroot is true iff. the function is in a package declared in GOROOT.
func CheckInGoroot(fun *ssa.Function) bool {
	return fun != nil && fun.Pkg != nil &&
		CheckPkgInGoroot(fun.Pkg.Pkg)
}

// AllPackages deduplicates the given packages by import path, preferring
// the variant with the most members, e.g. the one compiled with its tests.
// Synthetic test main packages are skipped. The result is ordered by import path.
func AllPackages(pkgs []*ssa.Package) []*ssa.Package {
	mp := make(map[string]*ssa.Package)

	for _, pkg := range pkgs {
		path := pkg.Pkg.Path()
		if strings.HasSuffix(path, ".test") {
			continue
		}

		opkg, ok := mp[path]
		if !ok || len(pkg.Members) > len(opkg.Members) {
			mp[path] = pkg
		}
	}

	res := make([]*ssa.Package, 0, len(mp))
	for _, pkg := range mp {
		res = append(res, pkg)
	}
	slices.SortFunc(res, func(a, b *ssa.Package) bool {
		return a.Pkg.Path() < b.Pkg.Path()
	})

	return res
}

// SelectFunctions gathers the functions declared in the given packages
// whose fully qualified name satisfies match. Functions in GOROOT are
// never selected.
func SelectFunctions(pkgs []*ssa.Package, match func(string) bool) (funs []*ssa.Function) {
	for _, pkg := range AllPackages(pkgs) {
		for _, fun := range ssagraph.Functions(pkg) {
			if CheckInGoroot(fun) || !match(fun.String()) {
				continue
			}
			funs = append(funs, fun)
		}
	}
	return
}
