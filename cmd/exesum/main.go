package main

import (
	"github.com/NVIDIA/exesum/pkg/cli"
)

func main() {
	cli.Execute()
}
