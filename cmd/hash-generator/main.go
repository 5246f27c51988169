// Command hash-generator prints bcrypt hashes for the passwords given on
// the command line. Useful for seeding user documents by hand when testing
// against a local MongoDB.
package main

import (
	"flag"
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"

	"github.com/1himan/task-management-assignment/internal/service/auth"
)

func main() {
	cost := flag.Int("cost", bcrypt.DefaultCost, "bcrypt cost factor")
	flag.Parse()

	passwords := flag.Args()
	if len(passwords) == 0 {
		fmt.Fprintln(os.Stderr, "usage: hash-generator [-cost N] password [password...]")
		os.Exit(1)
	}

	for _, password := range passwords {
		hash, err := auth.HashPassword(password, *cost)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error hashing %q: %v\n", password, err)
			continue
		}
		fmt.Printf("Password: %s\nHash: %s\n\n", password, hash)
	}
}
