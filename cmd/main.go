package main

import (
	"github.com/joho/godotenv"

	"montecarlo.dev/monaco/internal/interfaces/cli"
	"montecarlo.dev/monaco/internal/interfaces/di"
)

func main() {
	_ = godotenv.Load()

	container := di.NewContainer(di.ConfigFromEnv())
	cli.Execute(container.GetCLIContainer())
}
