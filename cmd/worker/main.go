package main

import "github.com/pmatchdesk/go-cabinet-sync/cmd/worker/cmd"

func main() {
	cmd.Execute()
}
