package main

import "github.com/assetsym/assetsym/cmd"

// main is the entry point of the assetsym CLI application.
func main() {
	cmd.Execute()
}
