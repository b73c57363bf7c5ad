package main

import (
	"efiextract/cli"
)

func main() {
	cli.Start()
}
