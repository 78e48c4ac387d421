package main

import "github.com/Rorical/storenamer/cmd"

func main() {
	cmd.Execute()
}
