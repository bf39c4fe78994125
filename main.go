package main

import "github.com/srinathln7/merkle-tree/cmd"

func main() {
	cmd.Execute()
}
