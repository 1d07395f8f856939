package main

import "bcalc/cmd"

func main() {
	cmd.Execute()
}
