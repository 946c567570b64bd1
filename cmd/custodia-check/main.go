// custodia-check is an offline diagnosis tool for custody journals.
// It opens a persisted journal directly, without a running custody
// instance, and verifies that the recorded history is intact and that
// replaying it yields a consistent set of balances.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:      "custodia-check",
		Usage:     "diagnosis tool for persisted custody journals",
		Copyright: "(c) 2026 custodia project",
		Commands: []*cli.Command{
			&Check,
			&Dump,
		},
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
