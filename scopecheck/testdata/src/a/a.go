package a

import xgxdiag "github.com/xgx-io/xgx-diag"

func discarded(ctx *xgxdiag.Context, s *xgxdiag.Scope) {
	xgxdiag.Activate(ctx, s) // want `result of Activate is discarded; the activation can never be finished`
}

func blankAssigned(ctx *xgxdiag.Context, s *xgxdiag.Scope) {
	_ = xgxdiag.Activate(ctx, s) // want `result of Activate is discarded; the activation can never be finished`
}

func neverFinished(ctx *xgxdiag.Context, s *xgxdiag.Scope) {
	act := xgxdiag.Activate(ctx, s) // want `activator "act" is never finished; pair every Activate with a Finish on all exit paths`
	_ = act
}

func directFinish(ctx *xgxdiag.Context, s *xgxdiag.Scope) {
	act := xgxdiag.Activate(ctx, s)
	act.Finish(xgxdiag.ExitNormal)
}

func deferredFinish(ctx *xgxdiag.Context, s *xgxdiag.Scope) {
	act := xgxdiag.Activate(ctx, s)
	exit := xgxdiag.ExitNormal
	defer func() { act.Finish(exit) }()
}

func methodActivationNotFlagged(ctx *xgxdiag.Context, s *xgxdiag.Scope) {
	ctx.Activate(s)
	ctx.Deactivate(xgxdiag.ExitNormal)
}

func insideClosure(ctx *xgxdiag.Context, s *xgxdiag.Scope) {
	run := func() {
		xgxdiag.Activate(ctx, s) // want `result of Activate is discarded; the activation can never be finished`
	}
	run()
}

func closureFinishesOwnActivation(ctx *xgxdiag.Context, s *xgxdiag.Scope) {
	run := func() {
		act := xgxdiag.Activate(ctx, s)
		act.Finish(xgxdiag.ExitFailure)
	}
	run()
}

func twoActivations(a, b *xgxdiag.Context, s *xgxdiag.Scope) {
	first := xgxdiag.Activate(a, s)
	second := xgxdiag.Activate(b, s) // want `activator "second" is never finished; pair every Activate with a Finish on all exit paths`
	_ = second
	first.Finish(xgxdiag.ExitNormal)
}
