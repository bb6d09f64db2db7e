package main

import (
	"log"

	"github.com/doorward/doorman-go/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		log.Fatal(err)
	}
}
