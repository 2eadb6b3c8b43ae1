package main

import "github.com/arturoeanton/go-soup/cmd/soup/cmd"

func main() {
	cmd.Execute()
}
