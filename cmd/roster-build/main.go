package main

import "github.com/qrqcrew/roster-builder/internal/cli"

func main() {
	cli.Execute()
}
