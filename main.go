package main

import (
	"os"

	"github.com/rand-str-gen/rand-str-gen/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
