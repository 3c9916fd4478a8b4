package main

import "github.com/inovacc/catalogr/cmd"

func main() {
	cmd.Execute()
}
