/*
Command bplusdemo is an interactive shell around a B+ tree.

How to use it:

	$ go run ./cmd/bplusdemo
	> SET alpha 1
	> SHOW

Type HELP at the prompt for the full command list.

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/npillmayer/bplus"
)

func main() {
	tree, err := bplus.New[string, string](bplus.Config{})
	if err != nil {
		fmt.Fprintf(os.Stderr, "cannot create tree: %v\n", err)
		os.Exit(1)
	}
	scanner := bufio.NewScanner(os.Stdin)
	demo := newCli(scanner, tree)
	demo.start()
}
