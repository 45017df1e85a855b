package main

import "github.com/jstoolsmith/jscomp/cmd"

func main() {
	cmd.Execute()
}
