package cli

import (
	"fmt"
	"os"

	"github.com/go-barry/cicd/core"
	"github.com/urfave/cli/v2"
)

var CleanCommand = &cli.Command{
	Name:      "clean",
	Usage:     "Delete exported responses from the output directory (default: every route)",
	ArgsUsage: "[route (optional)]",
	Action: func(c *cli.Context) error {
		config := core.LoadConfig(core.ConfigFile)

		keys, err := cleanTargets(c.Args().First())
		if err != nil {
			return err
		}

		info, err := os.Stat(config.OutputDir)
		if err != nil {
			if os.IsNotExist(err) {
				fmt.Println("🧼 Nothing to clean:", config.OutputDir)
				return nil
			}
			return fmt.Errorf("failed to access path: %w", err)
		}
		if !info.IsDir() {
			return fmt.Errorf("not a directory: %s", config.OutputDir)
		}

		cleaned := 0
		for _, key := range keys {
			removed, err := core.RemoveCachedJSON(config, key)
			if err != nil {
				return fmt.Errorf("failed to clean cache: %w", err)
			}
			if removed {
				cleaned++
				fmt.Println("🧹 Cleaned: /" + key)
			}
		}

		if cleaned == 0 {
			fmt.Println("🧼 Nothing to clean:", config.OutputDir)
			return nil
		}
		fmt.Println("✅ Done.")
		return nil
	},
}

// cleanTargets resolves the optional route argument to route keys. Only
// registered routes are accepted.
func cleanTargets(arg string) ([]string, error) {
	var keys []string
	for _, route := range core.DefaultRoutes() {
		key := core.RouteKey(route.Path)
		if arg == "" || core.RouteKey(arg) == key {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return nil, fmt.Errorf("unknown route: %s", arg)
	}
	return keys, nil
}
