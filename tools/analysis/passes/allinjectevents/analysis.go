// Copyright (c) 2026 Uber Technologies, Inc.
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package allinjectevents implements a Go analysis pass that reports
// injectevent.Logger implementations that do not handle every event type
// of the injectevent package.
//
// A LogEvent method that handles none of the events is taken to be a no-op
// or fake logger and is not reported. Test files are not checked.
package allinjectevents

import (
	"fmt"
	"go/ast"
	"go/types"
	"sort"
	"strings"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
	"golang.org/x/tools/go/types/typeutil"
)

const _injecteventPath = "go.uber.org/inject/injectevent"

// Analyzer reports event loggers missing event types.
var Analyzer = &analysis.Analyzer{
	Name:     "allinjectevents",
	Doc:      "check that injectevent.Loggers handle every injectevent.Event",
	Run:      run,
	Requires: []*analysis.Analyzer{inspect.Analyzer},
}

func run(pass *analysis.Pass) (interface{}, error) {
	pkg, ok := importedPackage(pass.Pkg, _injecteventPath)
	if !ok {
		return nil, nil
	}
	events := loadEvents(pkg)

	ins := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	ins.Preorder([]ast.Node{(*ast.FuncDecl)(nil)}, func(n ast.Node) {
		decl := n.(*ast.FuncDecl)
		if strings.HasSuffix(pass.Fset.File(decl.Pos()).Name(), "_test.go") {
			return
		}

		recv, ok := events.logEventReceiver(pass.TypesInfo, decl)
		if !ok || decl.Body == nil {
			return
		}

		missing := events.all.clone()
		ast.Inspect(decl.Body, func(n ast.Node) bool {
			switch n := n.(type) {
			case *ast.CaseClause:
				for _, expr := range n.List {
					missing.remove(pass.TypesInfo.TypeOf(expr))
				}
			case *ast.TypeAssertExpr:
				missing.remove(pass.TypesInfo.TypeOf(n.Type))
			}
			return true
		})

		// Loggers handling nothing are no-ops or fakes.
		if missing.len() == 0 || missing.len() == events.all.len() {
			return
		}

		pass.Report(analysis.Diagnostic{
			Pos: decl.Pos(),
			Message: fmt.Sprintf("%v doesn't handle %v",
				types.TypeString(recv, unqualified), missing.names()),
		})
	})
	return nil, nil
}

// importedPackage returns pkg itself or the package it imports under path.
func importedPackage(pkg *types.Package, path string) (*types.Package, bool) {
	if pkg.Path() == path {
		return pkg, true
	}
	for _, imp := range pkg.Imports() {
		if imp.Path() == path {
			return imp, true
		}
	}
	return nil, false
}

// eventTypes holds the type information of the injectevent package.
type eventTypes struct {
	logger *types.Interface
	all    typeSet
}

func loadEvents(pkg *types.Package) eventTypes {
	scope := pkg.Scope()
	event := scope.Lookup("Event").Type()

	var out eventTypes
	for _, name := range scope.Names() {
		obj := scope.Lookup(name)
		if name == "Event" || !obj.Exported() {
			continue
		}
		if _, ok := obj.(*types.TypeName); !ok {
			continue
		}

		// Events are implemented on pointer receivers.
		typ := obj.Type()
		if !types.ConvertibleTo(typ, event) {
			typ = types.NewPointer(typ)
			if !types.ConvertibleTo(typ, event) {
				continue
			}
		}
		out.all.put(typ)
	}

	out.logger = scope.Lookup("Logger").Type().Underlying().(*types.Interface)
	return out
}

// logEventReceiver returns the receiver type of decl if decl is the
// LogEvent method of an injectevent.Logger.
func (e eventTypes) logEventReceiver(info *types.Info, decl *ast.FuncDecl) (types.Type, bool) {
	if decl.Recv == nil || decl.Name.Name != "LogEvent" {
		return nil, false
	}

	recv := info.TypeOf(decl.Recv.List[0].Type)
	if recv == nil || !types.Implements(recv, e.logger) {
		return nil, false
	}
	return recv, true
}

// typeSet is a set of types. The zero value is empty.
type typeSet struct{ m typeutil.Map }

func (s *typeSet) len() int { return s.m.Len() }

func (s *typeSet) put(t types.Type) { s.m.Set(t, struct{}{}) }

func (s *typeSet) remove(t types.Type) {
	if t != nil {
		s.m.Delete(t)
	}
}

func (s *typeSet) clone() *typeSet {
	var out typeSet
	s.m.Iterate(func(t types.Type, _ interface{}) { out.put(t) })
	return &out
}

// names returns the sorted unqualified names of the types.
func (s *typeSet) names() []string {
	names := make([]string, 0, s.len())
	s.m.Iterate(func(t types.Type, _ interface{}) {
		names = append(names, types.TypeString(t, unqualified))
	})
	sort.Strings(names)
	return names
}

func unqualified(*types.Package) string { return "" }
