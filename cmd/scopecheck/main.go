// Command scopecheck is a linter that checks diagnostic-context activations
// are paired with a Finish.
package main

import (
	"golang.org/x/tools/go/analysis/singlechecker"

	"github.com/xgx-io/xgx-diag/scopecheck"
)

func main() {
	singlechecker.Main(scopecheck.Analyzer)
}
