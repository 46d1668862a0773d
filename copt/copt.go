// Package copt provides Go bindings for the COPT (Cardinal Optimizer) solver.
//
// COPT solves linear (LP), mixed-integer (MIP) and conic problems. This package
// owns the native resources (environments and problems), marshals the fixed
// set of solver parameters and attributes, bridges Go closures to the native
// log and callback hooks, and offers a small linear expression algebra to
// build constraints and objectives.
//
// The native library is linked only when building with cgo and the copt build
// tag:
//
//	CGO_CFLAGS="-I$COPT_HOME/include" CGO_LDFLAGS="-L$COPT_HOME/lib" go build -tags copt
//
// Without it, NewEnv returns ErrNotBuilt.
//
// # Example
//
//	env, err := copt.NewEnv()
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer env.Close()
//
//	model, err := copt.NewModel(env)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer model.Close()
//
//	x, _ := model.AddVar("x", copt.Continuous, 0, 0, 10, nil, nil)
//	y, _ := model.AddVar("y", copt.Integer, 0, 0, 10, nil, nil)
//	model.AddConstr("c0", copt.Sum(copt.Term(x, 1), copt.Term(y, 2)), copt.Less, 14)
//	model.SetObjective(copt.Sum(copt.Term(x, 3), copt.Term(y, 2)), copt.Maximize)
//
//	solution, err := model.Solve(context.Background(), copt.WithTimeLimit(10))
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(solution.Status, solution.Objective, solution.Values)
//
// A Model is not safe for concurrent use, except for Terminate which may be
// called from any goroutine while a solve is running.
package copt

import "github.com/bartolsthoorn/gocopt/internal/native"

// Infinity is the bound value the solver treats as unbounded.
const Infinity = native.Infinity

// Banner returns the banner of the linked solver library.
func Banner() (string, error) {
	api, err := defaultAPI()
	if err != nil {
		return "", err
	}
	return banner(api)
}

// RetcodeMessage describes a native return code, as found in Error.Code.
func RetcodeMessage(code int) (string, error) {
	api, err := defaultAPI()
	if err != nil {
		return "", err
	}
	return retcodeMessage(api, code)
}
