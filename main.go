package main

import "github.com/wx-tools/pws-client/internal/cli"

func main() {
	cli.Execute()
}
