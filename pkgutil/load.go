package pkgutil

import (
	"errors"
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"regexp"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/ssa"
	"golang.org/x/tools/go/ssa/ssautil"
)

// LoadConfig locates the packages to analyze. With a ModulePath, packages
// are resolved in module mode relative to that directory, otherwise in
// GOPATH mode under GoPath. IncludeTests adds the test variants of packages.
type LoadConfig struct {
	GoPath, ModulePath string
	IncludeTests       bool
}

const loadMode = packages.NeedName | packages.NeedFiles | packages.NeedCompiledGoFiles |
	packages.NeedImports | packages.NeedTypes | packages.NeedTypesSizes | packages.NeedSyntax |
	packages.NeedTypesInfo | packages.NeedDeps

var (
	moduleRegex = regexp.MustCompile(`(?m)^module\s+(\S+)`)

	cwd = func() string {
		dir, err := os.Getwd()
		if err != nil {
			panic(err)
		}
		return dir
	}()
)

// parseRelative parses files with positions relative to the working directory.
func parseRelative(fset *token.FileSet, filename string, src []byte) (*ast.File, error) {
	if rel, err := filepath.Rel(cwd, filename); err == nil {
		filename = rel
	}
	return parser.ParseFile(fset, filename, src, parser.AllErrors|parser.ParseComments)
}

// ModuleName reads the module path declared by the go.mod file in dir.
func ModuleName(dir string) (string, error) {
	contents, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("no go.mod in %s: %w", dir, err)
	}
	m := moduleRegex.FindSubmatch(contents)
	if m == nil {
		return "", fmt.Errorf("no module directive in %s", filepath.Join(dir, "go.mod"))
	}
	return string(m[1]), nil
}

// packagesConfig translates cfg to a configuration for packages.Load.
func (cfg LoadConfig) packagesConfig() (*packages.Config, error) {
	gopath, err := filepath.Abs(cfg.GoPath)
	if err != nil {
		return nil, err
	}

	config := &packages.Config{
		Mode:      loadMode,
		Tests:     cfg.IncludeTests,
		ParseFile: parseRelative,
		Env:       append(os.Environ(), "GOPATH="+gopath, "GO111MODULE=off"),
	}
	if cfg.ModulePath == "" {
		return config, nil
	}

	dir, err := filepath.Abs(cfg.ModulePath)
	if err != nil {
		return nil, err
	}
	if _, err := ModuleName(dir); err != nil {
		return nil, err
	}
	config.Dir = dir
	config.Env[len(config.Env)-1] = "GO111MODULE=on"
	return config, nil
}

// LoadPackages loads the packages matching query.
func LoadPackages(cfg LoadConfig, query string) ([]*packages.Package, error) {
	config, err := cfg.packagesConfig()
	if err != nil {
		return nil, err
	}
	return load(config, query)
}

// LoadPackagesFromSource loads a single main package from source, through
// an overlay in a fake GOPATH.
func LoadPackagesFromSource(source string) ([]*packages.Package, error) {
	const file = "/fake/testpackage/main.go"
	return load(&packages.Config{
		Mode:    loadMode,
		Env:     append(os.Environ(), "GO111MODULE=off", "GOPATH=/fake"),
		Overlay: map[string][]byte{file: []byte(source)},
	}, file)
}

func load(config *packages.Config, query string) ([]*packages.Package, error) {
	pkgs, err := packages.Load(config, query)
	switch {
	case err != nil:
		return nil, err
	case packages.PrintErrors(pkgs) > 0:
		return nil, errors.New("errors encountered while loading packages")
	case config.Tests:
		return withoutUntested(pkgs), nil
	}
	return pkgs, nil
}

// withoutUntested drops packages whose test variant was also loaded, such
// that every function is analyzed once.
func withoutUntested(pkgs []*packages.Package) []*packages.Package {
	ids := make(map[string]bool, len(pkgs))
	for _, pkg := range pkgs {
		ids[pkg.ID] = true
	}

	res := make([]*packages.Package, 0, len(pkgs))
	for _, pkg := range pkgs {
		if !ids[fmt.Sprintf("%s [%s.test]", pkg.ID, pkg.ID)] {
			res = append(res, pkg)
		}
	}
	return res
}

// BuildSSA constructs the SSA program of the loaded packages. Only the
// packages that were loaded directly are returned.
func BuildSSA(pkgs []*packages.Package) (*ssa.Program, []*ssa.Package) {
	prog, spkgs := ssautil.Packages(pkgs, 0)
	prog.Build()

	res := make([]*ssa.Package, 0, len(spkgs))
	for _, pkg := range spkgs {
		if pkg != nil {
			res = append(res, pkg)
		}
	}
	return prog, res
}
