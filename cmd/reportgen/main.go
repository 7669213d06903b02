// Command reportgen builds category-filtered report tables from YAML report
// definitions.
//
//	reportgen build -d report.yaml [-f table|yaml|json] [--leaves-only] [--from sat.pwr] [--metrics]
//	reportgen validate -d report.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
