package main

import "embedplayer/cmd"

func main() {
	cmd.Execute()
}
