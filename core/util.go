package core

import (
	"log"
	"os"
)

// Getwd returns the working directory of the running process.
func Getwd() string {
	dir, err := os.Getwd()
	if err != nil {
		log.Fatalf("core.Getwd: %v", err)
	}
	return dir
}
