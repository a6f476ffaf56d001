package main

import "stayscape/cmd/stayctl/commands"

func main() {
	commands.Execute()
}
