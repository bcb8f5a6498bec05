package main

import (
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/anicoll/webthings-integration/cmd"
)

func main() {
	app := &cli.App{
		Name:   "webthings-assistant",
		Usage:  "google assistant fulfillment bridge for a webthings gateway",
		Action: cmd.AssistantCommand,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "gateway-url",
				EnvVars:  []string{"GATEWAY_URL"},
				Required: true,
			},
			&cli.StringFlag{
				Name:    "gateway-token",
				EnvVars: []string{"GATEWAY_TOKEN"},
				Value:   "",
			},
			&cli.StringFlag{
				Name:    "listen-address",
				EnvVars: []string{"LISTEN_ADDRESS"},
				Value:   "0.0.0.0:8000",
			},
			&cli.StringFlag{
				Name:    "agent-user-id",
				EnvVars: []string{"AGENT_USER_ID"},
				Value:   "",
			},
			&cli.BoolFlag{
				Name:    "state-polling",
				EnvVars: []string{"STATE_POLLING"},
				Value:   false,
			},
			&cli.DurationFlag{
				Name:    "request-timeout",
				EnvVars: []string{"REQUEST_TIMEOUT"},
				Value:   time.Second * 30,
			},
			&cli.StringFlag{
				Name:    "log-level",
				EnvVars: []string{"LOG_LEVEL"},
				Value:   "INFO",
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
