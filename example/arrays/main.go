// Package main demonstrates the array printing helpers.
package main

import (
	"fmt"

	"github.com/nao1215/paroot"
)

func main() {
	n := paroot.GetInt("How many numbers? ")
	for n < 0 {
		fmt.Println("Please enter a count of zero or more.")
		n = paroot.GetInt("How many numbers? ")
	}

	values := make([]float64, 0, n)
	for i := range n {
		values = append(values, paroot.GetDouble(fmt.Sprintf("Number %d: ", i+1)))
	}

	squares := make([]int32, 0, n)
	for i := range n {
		squares = append(squares, (i+1)*(i+1))
	}

	fmt.Print("You entered: ")
	paroot.PrintArrayDouble(values)
	fmt.Print("Squares:     ")
	paroot.PrintArrayInt(squares)
}
