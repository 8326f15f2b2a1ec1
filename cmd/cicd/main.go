package main

import (
	"log"
	"os"

	cicdcli "github.com/go-barry/cicd/cli"
	"github.com/go-barry/cicd/core"
	clilib "github.com/urfave/cli/v2"
)

func runApp(args []string) error {
	app := &clilib.App{
		Name:    "cicd",
		Usage:   "Serve the cicd JSON endpoints",
		Version: "v" + core.Version,
		Commands: []*clilib.Command{
			cicdcli.DevCommand,
			cicdcli.ProdCommand,
			cicdcli.CheckCommand,
			cicdcli.InfoCommand,
			cicdcli.ExportCommand,
			cicdcli.CleanCommand,
		},
	}
	return app.Run(args)
}

func main() {
	if err := runApp(os.Args); err != nil {
		log.Fatal(err)
	}
}
