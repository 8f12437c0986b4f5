package main

import (
	"fmt"
	"os"

	"github.com/roster-framework/rosty/cmd/root"
)

func main() {
	if err := root.NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "rosty: %v\n", err)
		os.Exit(1)
	}
}
