package main

import "notedeck/cmd"

func main() {
	cmd.Execute()
}
