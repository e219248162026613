package scopecheck_test

import (
	"testing"

	"golang.org/x/tools/go/analysis/analysistest"

	"github.com/xgx-io/xgx-diag/scopecheck"
)

func TestActivationPairing(t *testing.T) {
	testdata := analysistest.TestData()
	analysistest.Run(t, testdata, scopecheck.Analyzer, "a")
}
