package ssagraph

import (
	"fmt"
	"go/ast"
	"go/importer"
	"go/parser"
	"go/token"
	"go/types"

	"golang.org/x/exp/slices"
	"golang.org/x/tools/go/ssa"
	"golang.org/x/tools/go/ssa/ssautil"
)

// Build constructs the SSA package of a single Go source file.
// The import path of the package is its name.
func Build(src string) (*ssa.Package, error) {
	return BuildFile("main.go", src)
}

// BuildFile is like Build, but attributes the source to the given file name.
func BuildFile(filename, src string) (*ssa.Package, error) {
	fset := token.NewFileSet()
	f, err := parser.ParseFile(fset, filename, src, parser.ParseComments)
	if err != nil {
		return nil, fmt.Errorf("could not parse %s: %w", filename, err)
	}

	name := f.Name.Name
	pkg, _, err := ssautil.BuildPackage(
		&types.Config{Importer: importer.Default()},
		fset,
		types.NewPackage(name, name),
		[]*ast.File{f},
		ssa.SanityCheckFunctions,
	)
	if err != nil {
		return nil, fmt.Errorf("could not build SSA for %s: %w", filename, err)
	}
	return pkg, nil
}

// Functions collects the functions and methods declared in pkg, including
// anonymous functions, ordered by source position. Synthetic functions,
// e.g. the package initializer, are omitted.
func Functions(pkg *ssa.Package) []*ssa.Function {
	var funs []*ssa.Function
	var add func(fn *ssa.Function)
	add = func(fn *ssa.Function) {
		if len(fn.Blocks) == 0 || fn.Synthetic != "" {
			return
		}
		funs = append(funs, fn)
		for _, anon := range fn.AnonFuncs {
			add(anon)
		}
	}

	for _, mem := range pkg.Members {
		switch mem := mem.(type) {
		case *ssa.Function:
			add(mem)
		case *ssa.Type:
			for _, T := range []types.Type{mem.Type(), types.NewPointer(mem.Type())} {
				mset := pkg.Prog.MethodSets.MethodSet(T)
				for i := 0; i < mset.Len(); i++ {
					if fn := pkg.Prog.MethodValue(mset.At(i)); fn != nil && fn.Pkg == pkg {
						add(fn)
					}
				}
			}
		}
	}

	slices.SortFunc(funs, func(a, b *ssa.Function) bool {
		if a.Pos() != b.Pos() {
			return a.Pos() < b.Pos()
		}
		return a.String() < b.String()
	})
	return slices.CompactFunc(funs, func(a, b *ssa.Function) bool { return a == b })
}
