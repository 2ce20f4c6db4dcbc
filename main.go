package main

import "codebird/cmd"

func main() {
	cmd.Execute()
}
