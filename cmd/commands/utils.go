package commands

import (
	"fmt"
	"os"

	"atelier/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("atelier error", "err", err.Error())
	os.Exit(1)
}

func HandleHelp(_ []string) {
	fmt.Println(`usage: atelier <command> [args]

commands:
  run <config.yml>   start the server
  version            print the version
  help               show this message`) //nolint
}
