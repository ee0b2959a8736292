package main

import "gotracs/cmd"

func main() {
	cmd.Execute()
}
