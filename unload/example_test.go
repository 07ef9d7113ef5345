// File: unload/example_test.go
package unload_test

import (
	"fmt"

	"github.com/katalvlaran/cranes/grid"
	"github.com/katalvlaran/cranes/unload"
)

////////////////////////////////////////////////////////////////////////////////
// Example: DynProg
////////////////////////////////////////////////////////////////////////////////

// ExampleDynProg finds the best route on a 4×5 yard.
// Scenario:
//
//   - '.' empty, 'X' building, 'C' crane
//   - moves: South or East only
//
// Complexity: O(rows·columns) slots.
func ExampleDynProg() {
	g := grid.MustParse(`
..X..
C.XC.
.C..C
X.CXC
`)
	p, err := unload.DynProg(g)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("cranes:", p.TotalCranes())
	fmt.Println("steps:", p)
	fmt.Print(p.Render())
	// Output:
	// cranes: 4
	// steps: S S E E E E S
	// *.X..
	// *.XC.
	// *****
	// X.CX*
}

////////////////////////////////////////////////////////////////////////////////
// Example: Solve
////////////////////////////////////////////////////////////////////////////////

// ExampleSolve runs both algorithms through the dispatcher and compares
// their scores.
func ExampleSolve() {
	g := grid.MustParse(`
.C.
C.C
.CX
`)
	for _, algo := range []unload.Algorithm{unload.AlgoExhaustive, unload.AlgoDynProg} {
		res, err := unload.Solve(g, unload.Options{Algo: algo})
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%-10s cranes=%d steps=%s\n", res.Algo, res.Cranes, res.Path)
	}
	// Output:
	// exhaustive cranes=2 steps=E S S
	// dynprog    cranes=2 steps=S E E
}
