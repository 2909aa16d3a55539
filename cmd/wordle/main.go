package main

import (
	"github.com/yurkki/wordle/internal/cli"
)

func main() {
	cli.Execute()
}
