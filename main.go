package main

import (
	"context"
	"os"
	_ "time/tzdata"

	"github.com/d8o8m8-lab/production-bot-railway/pkg/cli"
)

func main() {
	if err := cli.Run(context.Background(), os.Args); err != nil {
		os.Exit(1)
	}
}
