// Package scopecheck provides a go/analysis based analyzer enforcing the
// scoped-activation contract: every call to xgxdiag.Activate must keep its
// activator and finish it somewhere in the same function, or the listening
// frame leaks its slots into every caller that follows.
package scopecheck

import (
	"errors"
	"go/ast"
	"go/types"

	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/analysis/passes/inspect"
	"golang.org/x/tools/go/ast/inspector"
)

const diagPkgPath = "github.com/xgx-io/xgx-diag"

// Analyzer is the main analyzer for scopecheck.
var Analyzer = &analysis.Analyzer{
	Name:     "scopecheck",
	Doc:      "checks that every diagnostic-context activation is paired with a Finish",
	Requires: []*analysis.Analyzer{inspect.Analyzer},
	Run:      run,
}

var ErrNoInspector = errors.New("inspector analyzer result not found")

func run(pass *analysis.Pass) (any, error) {
	insp, ok := pass.ResultOf[inspect.Analyzer].(*inspector.Inspector)
	if !ok {
		return nil, ErrNoInspector
	}

	nodeFilter := []ast.Node{
		(*ast.FuncDecl)(nil),
		(*ast.FuncLit)(nil),
	}
	insp.Preorder(nodeFilter, func(n ast.Node) {
		var body *ast.BlockStmt
		switch fn := n.(type) {
		case *ast.FuncDecl:
			body = fn.Body
		case *ast.FuncLit:
			body = fn.Body
		}
		if body != nil {
			checkBody(pass, body)
		}
	})

	return nil, nil
}

// checkBody inspects one function body. Nested function literals are skipped
// when collecting activations (the inspector visits each literal on its own)
// but included when collecting Finish calls, so the canonical deferred-
// closure finish pattern is recognized.
func checkBody(pass *analysis.Pass, body *ast.BlockStmt) {
	type activation struct {
		pos  ast.Node
		name string
	}
	var pending []activation

	ast.Inspect(body, func(n ast.Node) bool {
		switch stmt := n.(type) {
		case *ast.FuncLit:
			// visited on its own by the inspector
			return false
		case *ast.ExprStmt:
			if call, ok := stmt.X.(*ast.CallExpr); ok && isActivateCall(pass, call) {
				pass.Reportf(call.Pos(), "result of Activate is discarded; the activation can never be finished")
			}
		case *ast.AssignStmt:
			for i, rhs := range stmt.Rhs {
				call, ok := rhs.(*ast.CallExpr)
				if !ok || !isActivateCall(pass, call) {
					continue
				}
				if i >= len(stmt.Lhs) {
					continue
				}
				id, ok := stmt.Lhs[i].(*ast.Ident)
				if !ok || id.Name == "_" {
					pass.Reportf(call.Pos(), "result of Activate is discarded; the activation can never be finished")
					continue
				}
				pending = append(pending, activation{pos: call, name: id.Name})
			}
		}
		return true
	})

	if len(pending) == 0 {
		return
	}

	finished := make(map[string]bool)
	ast.Inspect(body, func(n ast.Node) bool {
		call, ok := n.(*ast.CallExpr)
		if !ok {
			return true
		}
		sel, ok := call.Fun.(*ast.SelectorExpr)
		if !ok || sel.Sel.Name != "Finish" {
			return true
		}
		if recv, ok := sel.X.(*ast.Ident); ok {
			finished[recv.Name] = true
		}
		return true
	})

	for _, act := range pending {
		if !finished[act.name] {
			pass.Reportf(act.pos.Pos(), "activator %q is never finished; pair every Activate with a Finish on all exit paths", act.name)
		}
	}
}

// isActivateCall reports whether call invokes the package-level Activate
// function of the diagnostics package. The Activate method on Context has a
// receiver and is not matched; re-entrancy is its caller's concern.
func isActivateCall(pass *analysis.Pass, call *ast.CallExpr) bool {
	var id *ast.Ident
	switch fun := call.Fun.(type) {
	case *ast.SelectorExpr:
		id = fun.Sel
	case *ast.Ident:
		id = fun
	default:
		return false
	}
	fn, ok := pass.TypesInfo.ObjectOf(id).(*types.Func)
	if !ok || fn.Name() != "Activate" {
		return false
	}
	if fn.Pkg() == nil || fn.Pkg().Path() != diagPkgPath {
		return false
	}
	sig, ok := fn.Type().(*types.Signature)
	return ok && sig.Recv() == nil
}
