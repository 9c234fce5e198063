package main

import "csv-differ/cmd"

func main() {
	cmd.Execute()
}
