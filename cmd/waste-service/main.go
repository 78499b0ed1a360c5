package main

import (
	"os"

	"github.com/ecosort/ecosort/wasteservice"
)

func main() {
	if err := wasteservice.Run(); err != nil {
		os.Exit(1)
	}
}
