// Command docvault uploads a local file to the object store under its
// organization's key prefix and prints the resulting object key.
//
// Usage:
//
//	docvault <organization_id> <file_path>
//
// On failure it prints a one-line message naming the error kind and exits
// non-zero. There are no flags and no subcommands.
package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/joho/godotenv/autoload"

	"docvault/internal/config"
	"docvault/internal/service"
	"docvault/internal/storage"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <organization_id> <file_path>\n", filepath.Base(os.Args[0]))
		os.Exit(2)
	}
	orgID, path := os.Args[1], os.Args[2]

	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}

	store, err := storage.NewMinIO(cfg.Store)
	if err != nil {
		fatal(err)
	}

	svc := service.NewDocumentService(store)

	doc, err := svc.Upload(context.Background(), orgID, path)
	if err != nil {
		fatal(err)
	}

	fmt.Println(doc.Key)
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "docvault:", err)
	os.Exit(1)
}
