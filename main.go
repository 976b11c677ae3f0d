package main

import "bigo-sim/src/handler/cli"

func main() {
	cli.Run()
}
