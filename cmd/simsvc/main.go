package main

import "herobattle/cmd/simsvc/cmd"

func main() {
	cmd.Execute()
}
