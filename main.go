package main

import (
	"fmt"
	"os"
)

// Version is overridden at release time via -ldflags "-X main.Version=vX.Y.Z".
var Version = "dev"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "doccov:", err)
		os.Exit(1)
	}
}
