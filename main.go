package main

import "mortgage-affordability/cli"

func main() {
	cli.Execute()
}
