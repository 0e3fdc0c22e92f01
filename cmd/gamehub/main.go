package main

import "github.com/Picorims/game-hub/internal/cli"

func main() {
	cli.Execute()
}
