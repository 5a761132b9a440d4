package main

import "github.com/wordforge/puzzlegen/cmd"

func main() {
	cmd.Execute()
}
