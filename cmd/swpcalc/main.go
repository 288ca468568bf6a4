package main

import "github.com/rpgo/swp-calculator/internal/cli"

func main() {
	cli.Execute()
}
