package main

import (
	"fmt"
	"os"

	"txledger/cmd"
)

func main() {
	address, err := cmd.Deploy()
	if err != nil {
		fmt.Fprintf(os.Stderr, "deploy failed: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("Transactions address: %s\n", address)
}
