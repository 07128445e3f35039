package main

import "image-sync/cmd"

func main() {
	cmd.Execute()
}
