package main

import (
	"github.com/celldiff/celldiff/internal/cli"
)

func main() {
	cli.Execute()
}
