package main

import (
	"os"

	"github.com/nradhesh/Outbreak-blockchain/cmd"
)

func main() {
	if err := cmd.Run(); err != nil {
		os.Exit(1)
	}
}
