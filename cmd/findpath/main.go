// Command findpath loads a YAML graph description, optionally prints the
// graph, and answers fewest-hop path queries under a weight bound.
//
//	findpath -f graph.yaml -show
//	findpath -f graph.yaml -from Sydney -to Perth -max 3000
//
// Without -from/-to the queries listed in the file are run.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "findpath:", err)
		os.Exit(1)
	}
}
