package main

import (
	cmd "github.com/mbellini/forkful/cmd/forkful"
)

func main() {
	cmd.Execute()
}
