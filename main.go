package main

import "github.com/nkapur/csvdash/cmd"

func main() {
	cmd.Execute()
}
