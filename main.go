package main

import "github.com/phoneline/voicemenu/cmd"

func main() {
	cmd.Execute()
}
