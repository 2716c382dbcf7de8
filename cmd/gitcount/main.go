// Command gitcount reports commits, repository size and churn over time.
package main

import (
	"fmt"
	"os"

	"github.com/huangsam/gitcount/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "❌ %v\n", err)
		os.Exit(1)
	}
}
