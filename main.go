package main

import "github.com/mouse-blink/daily-scale/cmd"

func main() {
	cmd.Execute()
}
