// Package main demonstrates basic usage of the paroot prompts.
package main

import (
	"fmt"
	"log"

	"github.com/nao1215/paroot"
)

func main() {
	fmt.Println("Basic Prompt Example")
	fmt.Println("Invalid input is asked for again until it is valid")
	fmt.Println()

	name, err := paroot.GetString("What is your name? ")
	if err != nil {
		log.Fatal(err)
	}
	name = paroot.TrimString(name)
	if name == "" {
		name = "stranger"
	}

	age := paroot.GetInt("How old are you? ")
	height := paroot.GetDouble("How tall are you in meters? ")
	initial := paroot.GetChar("Favorite letter? ")

	fmt.Printf("Hello, %s!\n", name)
	fmt.Printf("In ten years you will be %d.\n", age+10)
	fmt.Printf("You are %.2f m tall and like the letter %c.\n", height, initial)
}
