// Command knuckleballfn statically lists every package-level function
// in the knuckleball package that looks like a per-kind constructor, by
// its (T, error) result shape. Methods, Receive included, are not in
// package scope and are not listed.
package main

import (
	"flag"
	"fmt"
	"go/token"
	"go/types"
	"os"
	"regexp"
	"sort"

	"golang.org/x/tools/go/packages"
)

func main() {
	var match, ignore, pkgPath string
	flag.StringVar(&match, "match", ".", "include only functions matching this regular expression")
	flag.StringVar(&ignore, "ignore", "$^", "exclude functions matching this regular expression")
	flag.StringVar(&pkgPath, "package", "github.com/knuckleball-lang/knuckleball", "import path to inspect")
	flag.Parse()

	mre, err := regexp.Compile(match)
	if err != nil {
		fail("error compiling match:", err)
	}
	ire, err := regexp.Compile(ignore)
	if err != nil {
		fail("error compiling ignore:", err)
	}

	fset := token.NewFileSet()
	cfg := packages.Config{Mode: packages.NeedTypes | packages.NeedSyntax | packages.NeedImports, Fset: fset}
	pkgs, err := packages.Load(&cfg, append([]string{pkgPath}, flag.Args()...)...)
	if err != nil {
		fail("error loading packages:", err)
	}

	var results []string
	for _, pkg := range pkgs {
		for name := range find(pkg.Types.Scope(), mre, ire) {
			results = append(results, name)
		}
	}
	sort.Strings(results)
	for _, name := range results {
		fmt.Println(name)
	}
}

func fail(args ...interface{}) {
	fmt.Fprintln(os.Stderr, args...)
	os.Exit(1)
}

// find yields the names of every function in scope whose signature
// matches a per-kind Receive/constructor shape and passes the
// match/ignore filters.
func find(scope *types.Scope, mre, ire *regexp.Regexp) chan string {
	ch := make(chan string, 8)
	go func() {
		defer close(ch)
		for _, name := range scope.Names() {
			if !mre.MatchString(name) || ire.MatchString(name) {
				continue
			}
			obj := scope.Lookup(name)
			sig, ok := obj.Type().(*types.Signature)
			if !ok {
				continue
			}
			if isOperationSignature(sig) {
				ch <- name
			}
		}
	}()
	return ch
}

// isOperationSignature reports whether sig has the (T, error) result
// shape: exactly two results, the second of type error. The type of
// the first result is not checked.
func isOperationSignature(sig *types.Signature) bool {
	res := sig.Results()
	if res.Len() != 2 {
		return false
	}
	last := res.At(1).Type()
	named, ok := last.(*types.Named)
	if !ok || named.Obj().Name() != "error" {
		return false
	}
	return true
}
