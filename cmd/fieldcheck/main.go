// Command fieldcheck validates a student record and prints the first
// violated rule's message, or "all fields valid".
//
// Run:
//
//	go run ./cmd/fieldcheck validate --id 1 --telephone 15858293092
//	FIELDCHECK_NAME=Alice go run ./cmd/fieldcheck validate --id 1 --telephone 123
//	go run ./cmd/fieldcheck validate --file student.json
//	go run ./cmd/fieldcheck schema
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
