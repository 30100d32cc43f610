package main

import "github.com/foundationlab/gofla/cmd"

func main() {
	cmd.Execute()
}
