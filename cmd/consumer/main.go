package main

import "github.com/pmatchdesk/go-cabinet-sync/cmd/consumer/cmd"

func main() {
	cmd.Execute()
}
