package main

import "github.com/optkit/optkit/cli"

func main() {
	cli.Execute()
}
