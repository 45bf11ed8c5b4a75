package main

import "github.com/minta-io/minta/cmd"

func main() {
	cmd.Execute()
}
