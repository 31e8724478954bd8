// Command welltris plays the falling-block game in a window or a terminal,
// and can stress the engine headlessly.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
