package main

import (
	"os"

	"github.com/abdullahkhan155/smart-cart-landing-sub000/cmd"
)

func main() {
	if err := cmd.RootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
