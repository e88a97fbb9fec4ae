// Command gridlayout measures a grid headlessly and prints the layout it
// would draw, in character cells.
package main

import (
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
