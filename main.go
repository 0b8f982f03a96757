package main

import (
	"context"
	"fmt"
	"os"

	"video-digest/bootstrap"
)

func main() {
	if err := bootstrap.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "video-digest: %v\n", err)
		os.Exit(1)
	}
}
