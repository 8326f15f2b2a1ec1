package cli

import (
	"fmt"
	"maps"

	"github.com/go-barry/cicd/core"
	"github.com/segmentio/encoding/json"
	"github.com/urfave/cli/v2"
)

var checkRoutes = core.DefaultRoutes

var CheckCommand = &cli.Command{
	Name:  "check",
	Usage: "Validate the route table and that every payload round-trips as JSON",
	Action: func(c *cli.Context) error {
		routes := checkRoutes()

		if _, err := core.NewDispatcher(routes); err != nil {
			fmt.Printf("❌ route table → %v\n", err)
			return cli.Exit("route table is invalid", 1)
		}

		var failed bool
		for _, route := range routes {
			if err := checkRoute(route); err != nil {
				failed = true
				fmt.Printf("❌ %s → %v\n", route.Path, err)
				continue
			}
			fmt.Printf("✅ %s\n", route.Path)
		}

		if failed {
			return cli.Exit("some routes failed validation", 1)
		}

		fmt.Println("✅ All routes validated successfully.")
		return nil
	},
}

func checkRoute(route core.Route) error {
	body, err := core.EncodePayload(route.Payload)
	if err != nil {
		return err
	}

	var decoded map[string]string
	if err := json.Unmarshal(body, &decoded); err != nil {
		return fmt.Errorf("decode error: %w", err)
	}

	if !maps.Equal(decoded, route.Payload) {
		return fmt.Errorf("payload does not round-trip: got %s", body)
	}
	return nil
}
