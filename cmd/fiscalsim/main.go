package main

import "FiscalSim/cmd/fiscalsim/cmd"

func main() {
	cmd.Execute()
}
