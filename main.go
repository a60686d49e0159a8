package main

import "videogame-catalog/internal/app/cli"

func main() {
	cli.Execute()
}
