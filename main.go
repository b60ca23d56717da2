package main

import "gcpkit/cmd"

func main() {
	cmd.Execute()
}
