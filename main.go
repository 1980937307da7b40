package main

import "github.com/copgauge/copgauge/cmd"

func main() {
	cmd.Execute()
}
