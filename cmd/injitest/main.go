// Command injitest runs page-object UI scenarios against the Inji wallet app.
package main

import "github.com/mosip/injitest/pkg/cli"

func main() {
	cli.Execute()
}
