package cli

import (
	"fmt"

	"github.com/go-barry/cicd/core"
	"github.com/urfave/cli/v2"
)

var InfoCommand = &cli.Command{
	Name:  "info",
	Usage: "Print version, configuration and route table",
	Action: func(c *cli.Context) error {
		config := core.LoadConfig(core.ConfigFile)
		version, err := core.DescribeVersion(core.Version)
		if err != nil {
			return err
		}

		fmt.Println("🏷️  Version:", version)
		fmt.Println("📁 Output Directory:", config.OutputDir)
		fmt.Println("🔌 Port:", config.Port)
		fmt.Println("🔁 Cache Enabled:", config.CacheEnabled)
		fmt.Println("🔁 Debug Headers Enabled:", config.DebugHeaders)
		fmt.Println("🔁 Debug Logs Enabled:", config.DebugLogs)
		fmt.Println()

		routes := core.DefaultRoutes()
		fmt.Println("🗂️  Routes Found:", len(routes))
		for _, route := range routes {
			body, err := core.EncodePayload(route.Payload)
			if err != nil {
				return fmt.Errorf("failed to encode %s: %w", route.Path, err)
			}
			fmt.Printf("   GET %-12s %s\n", route.Path, body)
		}

		exported := 0
		for _, route := range routes {
			if _, ok := core.GetCachedJSON(config, core.RouteKey(route.Path)); ok {
				exported++
			}
		}
		fmt.Println("💾 Exported Responses:", exported)

		return nil
	},
}
