package main

import "github.com/khrees2412/careerkit/cmd"

func main() {
	cmd.Execute()
}
