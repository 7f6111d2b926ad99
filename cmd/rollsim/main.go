// Command rollsim runs rolling-sphere arenas headlessly and manages saved
// tuning profiles.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
