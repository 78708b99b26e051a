package main

import "github.com/taskdeck/taskdeck_backend/cmd"

func main() {
	cmd.Execute()
}
