// Command blogdrown is a terminal client for a BlogDrown instance, built on
// the SDK. It keeps the session cookie between invocations so login state
// survives across commands.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	blogdrown "github.com/blogdrown/blogdrown-go"
)

var (
	apiFlag string
	rootCmd = &cobra.Command{
		Use:   "blogdrown",
		Short: "CLI client for the BlogDrown blogging platform",
	}
)

func main() {
	// .env is optional; flags and real env win.
	_ = godotenv.Load()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if os.Getenv("BLOGDROWN_DEBUG") == "true" || os.Getenv("DEBUG") == "true" {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	rootCmd.PersistentFlags().StringVarP(&apiFlag, "api", "a", defaultAPI(), "BlogDrown base URL")

	if err := rootCmd.Execute(); err != nil {
		if apiErr, ok := blogdrown.AsAPIError(err); ok {
			fmt.Fprintln(os.Stderr, apiErr.Message)
			for field, msg := range apiErr.Errors {
				fmt.Fprintf(os.Stderr, "  %s: %s\n", field, msg)
			}
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func defaultAPI() string {
	if v := os.Getenv("BLOGDROWN_BASE_URL"); v != "" {
		return v
	}
	return "http://localhost:8000"
}
