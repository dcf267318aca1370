package main

import "github.com/quickwritereader/filovec/cmd/datainfo/cmd"

func main() {
	cmd.Execute()
}
