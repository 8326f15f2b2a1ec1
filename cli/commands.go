package cli

import (
	"github.com/go-barry/cicd"

	"github.com/urfave/cli/v2"
)

var portFlag = &cli.IntFlag{
	Name:    "port",
	Aliases: []string{"p"},
	Usage:   "port to listen on (default: port in cicd.config.yml, else 8080)",
}

var DevCommand = &cli.Command{
	Name:  "dev",
	Usage: "Start cicd in dev mode (no response cache, request logging)",
	Flags: []cli.Flag{portFlag},
	Action: func(c *cli.Context) error {
		cfg := cicd.RuntimeConfig{
			Env:         "dev",
			EnableCache: false,
			Port:        c.Int("port"),
		}
		cicd.Start(cfg)
		return nil
	},
}

var ProdCommand = &cli.Command{
	Name:  "prod",
	Usage: "Start cicd in production mode (pre-encoded responses)",
	Flags: []cli.Flag{portFlag},
	Action: func(c *cli.Context) error {
		cfg := cicd.RuntimeConfig{
			Env:         "prod",
			EnableCache: true,
			Port:        c.Int("port"),
		}
		cicd.Start(cfg)
		return nil
	},
}
