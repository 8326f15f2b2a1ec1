package cli

import (
	"fmt"
	"path/filepath"

	"github.com/go-barry/cicd/core"
	"github.com/urfave/cli/v2"
)

var saveCachedJSON = core.SaveCachedJSON

var ExportCommand = &cli.Command{
	Name:  "export",
	Usage: "Write every route's JSON snapshot and wire response to the output directory",
	Action: func(c *cli.Context) error {
		config := core.LoadConfig(core.ConfigFile)

		for _, route := range core.DefaultRoutes() {
			key := core.RouteKey(route.Path)
			if err := saveCachedJSON(config, key, route.Payload); err != nil {
				return fmt.Errorf("failed to export %s: %w", route.Path, err)
			}
			fmt.Println("📦 Exported:", filepath.Join(config.OutputDir, key))
		}

		fmt.Println("✅ All responses exported.")
		return nil
	},
}
