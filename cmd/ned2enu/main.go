// Command ned2enu converts an orientation quaternion from the North-East-Down
// frame to the East-North-Up frame.
//
//	ned2enu [flags] <manual|nalgebra|gonum|mathgl|threejs> <w> <x> <y> <z>
package main

import (
	"context"
	"os"

	"github.com/signalsfoundry/frame-converter/internal/cli"
	"github.com/signalsfoundry/frame-converter/internal/logging"
)

func main() {
	env := cli.Env{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Log:    logging.NewFromEnv(os.Stderr),
	}
	os.Exit(cli.Run(context.Background(), os.Args[1:], env))
}
