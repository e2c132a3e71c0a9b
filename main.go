package main

import "media-gallery/cmd"

func main() {
	cmd.Execute()
}
