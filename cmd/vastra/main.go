package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "vastra",
	Short: "Vastra e-commerce API",
	Long:  "Vastra is a REST backend for a clothing shop: catalog, carts, orders, payments and reviews on MongoDB.",
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
