package main

import (
	"github.com/ashpursglove/traycalc/cmd"
)

func main() {
	cmd.Execute()
}
