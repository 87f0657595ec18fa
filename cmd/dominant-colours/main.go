// Dominant-colours extracts the dominant colours of an image using
// k-means clustering and reports them ranked by prevalence.
package main

import (
	"github.com/llaisdy/dominant-colours/internal/cli"
)

func main() {
	cli.Execute()
}
