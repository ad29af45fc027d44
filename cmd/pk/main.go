package main

import "pathkeeper/cmd/pk/root"

func main() {
	root.Execute()
}
