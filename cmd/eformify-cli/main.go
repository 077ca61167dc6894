package main

import (
	"eformify-backend/cmd/eformify-cli/cmd"
)

func main() {
	cmd.Execute()
}
