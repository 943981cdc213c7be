package main

import "github.com/soufianesaid-dot/Gymtrackerr/cmd/aura/root"

func main() {
	root.Execute()
}
