// Command repohome discovers a project's candidate URLs (homepage,
// repository, issue tracker, GitHub Pages) from its package.json and git
// remote, lets the user pick one, and opens it in the browser.
package main

import (
	"os"

	"github.com/custodia-labs/repohome-cli/internal/adapters/driving/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
