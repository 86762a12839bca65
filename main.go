// Package main is the entry point for the piecewise CLI.
package main

import "github.com/mouse-blink/piecewise/cmd"

func main() {
	cmd.Execute()
}
