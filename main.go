package main

import "gallery-app/internal/cli"

func main() {
	cli.Execute()
}
