// Command folinfer reads a batch of first-order Horn sentences and queries
// from a text file, proves each query by resolution refutation, and writes
// one TRUE/FALSE verdict per query.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
