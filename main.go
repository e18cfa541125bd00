package main

import "github.com/npandachg/PENNANT/cmd"

func main() {
	cmd.Execute()
}
