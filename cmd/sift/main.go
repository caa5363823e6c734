// Command sift is the CLI entry point: one-shot search, an interactive
// shell, and an HTTP server, all built on the same sift.SearchEngine.
package main

import "github.com/siftsearch/sift/cmd/sift/cli"

func main() {
	cli.Execute()
}
