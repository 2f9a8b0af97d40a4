package main

import (
	"log"

	"github.com/symposia/boardplan/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
