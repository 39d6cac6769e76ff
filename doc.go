/*
Package dial simulates a circular, numbered dial driven by rotation commands.

A dial has positions 0..perimeter-1. Each command ("L68", "R48") turns the
pointer backward or forward by a number of steps, possibly more than a full
lap. After every command the engine reports where the pointer stopped and how
many times it visited zero on the way, counting the final position.

# Concept

The arithmetic lives in package domain and is pure. This package wires it to a
runner (reading one token per line), logging and lifecycle hooks, so the same
simulation can be embedded in a CLI, an HTTP server or an MCP tool.

# Usage

	package main

	import (
		"context"
		"fmt"
		"log"
		"os"

		"github.com/aretw0/dial"
	)

	func main() {
		eng, err := dial.New(dial.WithPerimeter(100), dial.WithStart(50))
		if err != nil {
			log.Fatal(err)
		}

		f, err := os.Open("input.txt")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()

		report, err := eng.Simulate(context.Background(), f)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println("landed on zero:", report.ZeroLandings)
		fmt.Println("zero crossings:", report.Crossings)
	}
*/
package dial
