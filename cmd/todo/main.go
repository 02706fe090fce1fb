// Package main provides the todo CLI entry point.
package main

import "github.com/mesh-intelligence/todo/internal/cli"

func main() {
	cli.Execute()
}
