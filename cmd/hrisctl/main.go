// Command hrisctl runs the HR admin record views offline over JSON exports
// and carries a few operator chores (schema migration, password hashing).
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
