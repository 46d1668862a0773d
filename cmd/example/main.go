package main

import (
	"context"
	"fmt"
	"log"

	"github.com/bartolsthoorn/gocopt/copt"
)

func main() {
	env, err := copt.NewEnv()
	if err != nil {
		log.Fatal(err)
	}
	defer env.Close()

	// Minimize: x + y
	// Subject to: x + y >= 1, 0 <= x,y <= 10
	problem := copt.Problem{
		ColCosts: []float64{1.0, 1.0},
		ColLower: []float64{0.0, 0.0},
		ColUpper: []float64{10.0, 10.0},
	}
	problem.AddDenseRow(1.0, []float64{1.0, 1.0}, copt.Inf()) // x + y >= 1

	solution, err := problem.Solve(context.Background(), env, copt.WithLogging(false))
	if err != nil {
		log.Fatal(err)
	}
	if solution.IsOptimal() {
		fmt.Printf("x = %.2f, y = %.2f\n", solution.Values[0], solution.Values[1])
		fmt.Printf("Objective = %.2f\n", solution.Objective)
	}

	// The same problem built with expressions.
	m, err := copt.NewModel(env)
	if err != nil {
		log.Fatal(err)
	}
	defer m.Close()

	x, err := m.AddVar("x", copt.Continuous, 0, 0, 10, nil, nil)
	if err != nil {
		log.Fatal(err)
	}
	y, err := m.AddVar("y", copt.Continuous, 0, 0, 10, nil, nil)
	if err != nil {
		log.Fatal(err)
	}
	sum := copt.Sum(copt.Term(x, 1), copt.Term(y, 1))
	if _, err := m.AddConstr("cover", sum, copt.Greater, 1); err != nil {
		log.Fatal(err)
	}
	if err := m.SetObjective(sum, copt.Minimize); err != nil {
		log.Fatal(err)
	}

	solution, err = m.Solve(context.Background(), copt.WithLogging(false))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%s: %s = %.2f\n", solution.Status, sum, solution.Eval(sum))
}
