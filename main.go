package main

import "taskforge.com/taskforge/cmd"

func main() {
	cmd.Execute()
}
