package main

import "swipeshow/internal/cli"

func main() {
	cli.Execute()
}
