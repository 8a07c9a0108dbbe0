package main

import "ledit/cmd/ledit/cmd"

func main() {
	cmd.Execute()
}
