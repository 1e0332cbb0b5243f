package main

import "github.com/benjaminwangfan/reading-path-builer/cmd"

func main() {
	cmd.Execute()
}
