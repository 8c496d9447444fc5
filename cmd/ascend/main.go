package main

import "github.com/Elias-Missa/ascendency-rpg/cmd/ascend/root"

func main() {
	root.Execute()
}
