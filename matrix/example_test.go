// SPDX-License-Identifier: MIT

package matrix_test

import (
	"fmt"

	"github.com/Cimergence/chemometrics-notebook/matrix"
)

// ExampleCenterColumns removes the column means of a small data matrix.
func ExampleCenterColumns() {
	X, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {2, 4}, {3, 6}})

	centered, means, err := matrix.CenterColumns(X)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("means:", means)
	fmt.Print(centered)
	// Output:
	// means: [2 4]
	// [-1, -2]
	// [0, 0]
	// [1, 2]
}

// ExampleMul multiplies a score column by a transposed loading row.
func ExampleMul() {
	t, _ := matrix.NewDenseFrom([][]float64{{-1}, {0}, {1}})
	pT, _ := matrix.NewDenseFrom([][]float64{{3, 4}})

	outer, err := matrix.Mul(t, pT)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	norm, _ := matrix.FrobeniusNorm(outer)
	fmt.Print(outer)
	fmt.Printf("‖·‖F = %.6f\n", norm)
	// Output:
	// [-3, -4]
	// [0, 0]
	// [3, 4]
	// ‖·‖F = 7.071068
}
