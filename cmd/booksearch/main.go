// Command booksearch looks books up in a sorted catalog file.
//
// Usage:
//
//	booksearch --catalog books.yaml list
//	booksearch --catalog books.yaml find --title Dune --author "Frank Herbert" --publisher Chilton
//	booksearch --catalog books.yaml find --interactive
//	booksearch ints --target 7 1 3 5 7 9 11
//
// The catalog path may also be given as BOOKSEARCH_CATALOG.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		cancel()
		os.Exit(1) //nolint:gocritic
	}
}
