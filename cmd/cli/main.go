// chatlens - Chat Transcript Analyzer
//
// chatlens parses exported chat transcripts and computes descriptive
// analytics over them: volume, timing, lexical, sentiment and emoji stats.
package main

import (
	"os"

	"github.com/chatlens/chatlens/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
