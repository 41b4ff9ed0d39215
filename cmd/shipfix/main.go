package main

import "github.com/andrescamacho/shipfix-go/internal/adapters/cli"

func main() {
	cli.Execute()
}
