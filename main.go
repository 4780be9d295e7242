package main

import "ouisync/cmd"

func main() {
	cmd.Execute()
}
