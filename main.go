package main

import "github.com/sarchlab/lifeline/cmd"

func main() {
	cmd.Execute()
}
