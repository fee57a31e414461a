// Chromat - a small interactive colour palette generator
//
// Chromat generates sets of colours, lets you inspect and rename them, and
// exports the result as JSON.
package main

import (
	"github.com/kmarchant/chromat/internal/cli"
)

func main() {
	cli.Execute()
}
