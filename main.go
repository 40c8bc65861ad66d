package main

import "github.com/code-surya/nomad/cmd"

func main() {
	cmd.Execute()
}
