package main

import "github.com/nmarks413/class-deps/cmd"

func main() {
	cmd.Execute()
}
