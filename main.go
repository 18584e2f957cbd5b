// QueenSweep enumerates every way a queen can clear a board of pawns.
package main

import (
	"os"

	"github.com/hailam/queensweep/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
