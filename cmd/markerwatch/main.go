package main

import (
	"biomarker-insights/internal/cli"
)

func main() {
	cli.Execute()
}
