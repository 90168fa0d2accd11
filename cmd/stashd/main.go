package main

import (
	"github.com/stashd-io/stashd/internal/adapters/driving/cli"
)

func main() {
	cli.Execute()
}
