package main

import "github.com/stackqr/stackqr/cmd/stackqr/cmd"

func main() {
	cmd.Execute()
}
