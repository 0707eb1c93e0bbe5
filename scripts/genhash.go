// genhash.go
//
// AUTH_SHARED_SECRET='Super-Long-Temp-Password' go run ./scripts/genhash.go
//
// Prints a PHC argon2id hash suitable for auth.shared_secret_hash.

package main

import (
	"fmt"
	"log"
	"os"

	"facilityhub/internal/auth"
)

func main() {
	pw := os.Getenv("AUTH_SHARED_SECRET")
	if pw == "" {
		log.Fatal("set AUTH_SHARED_SECRET")
	}
	phc, err := auth.HashPassword(pw, auth.DefaultArgonParams())
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(phc)
}
