package main

import (
	"os"

	"github.com/SebastianBuritica/interviewprep/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
