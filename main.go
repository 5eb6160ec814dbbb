package main

import "github.com/ThatOtherAndrew/Glyphcast/cmd"

func main() {
	cmd.Execute()
}
