package main

import (
	"fmt"
	"os"
)

// Version will be set at build time via -ldflags
var Version = "v0.1.0"

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version":
			fmt.Printf("drivermatch %s\n", Version)
			return
		case "ensure":
			if err := runEnsure(os.Args[2:]); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			return
		case "help", "-h", "--help":
			printUsage()
			return
		default:
			fmt.Fprintf(os.Stderr, "Error: unknown command: %s\n\n", os.Args[1])
			printUsage()
			os.Exit(1)
		}
	}

	// Default invocation: ensure the driver is present.
	if err := runEnsure(nil); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("drivermatch - keep chromedriver in sync with the installed browser")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  drivermatch              Ensure a matching chromedriver is present")
	fmt.Println("  drivermatch ensure       Same as the default invocation")
	fmt.Println("  drivermatch --version    Show version information")
	fmt.Println()
	fmt.Println("Configuration is read from drivermatch.lua in the working")
	fmt.Println("directory when present.")
}
