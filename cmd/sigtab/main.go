package main

import "github.com/charliek/sigtab/internal/cli"

func main() {
	cli.Execute()
}
