package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-session-auth/internal/adapter"
	"github.com/MKhiriev/go-session-auth/internal/logger"
	"github.com/MKhiriev/go-session-auth/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

const usage = `usage: go-session-auth-client [flags] <command> [args]

commands:
  register <email> <password>
  login <email> <password>
  validate <token>
  me
  logout
  logout-all
  version

flags:
`

var errUsage = errors.New("invalid arguments")

func main() {
	fs := flag.NewFlagSet("go-session-auth-client", flag.ExitOnError)
	address := fs.String("a", "localhost:8080", "auth server address")
	token := fs.String("t", os.Getenv("SESSION_AUTH_TOKEN"), "bearer token for authenticated commands")
	timeout := fs.Duration("timeout", 10*time.Second, "request timeout")
	fs.Usage = func() {
		fmt.Fprint(fs.Output(), usage)
		fs.PrintDefaults()
	}
	_ = fs.Parse(os.Args[1:])

	log := logger.NewLoggerWithWriter("go-session-auth-client", os.Stderr)
	logger.SetLevel("warn")

	client, err := adapter.NewHTTPAuthClient(*address, *timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating auth client")
	}
	client.SetToken(*token)

	if err = run(context.Background(), client, fs.Args()); err != nil {
		if errors.Is(err, errUsage) {
			fs.Usage()
			os.Exit(2)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, client adapter.AuthClient, args []string) error {
	if len(args) == 0 {
		return errUsage
	}

	switch cmd, rest := args[0], args[1:]; {
	case cmd == "register" && len(rest) == 2:
		created, err := client.Register(ctx, rest[0], rest[1])
		if err != nil {
			return err
		}
		return printJSON(created)
	case cmd == "login" && len(rest) == 2:
		token, err := client.Login(ctx, rest[0], rest[1])
		if err != nil {
			return err
		}
		fmt.Println(token)
		return nil
	case cmd == "validate" && len(rest) == 1:
		identity, err := client.Validate(ctx, rest[0])
		if err != nil {
			return err
		}
		return printJSON(identity)
	case cmd == "me" && len(rest) == 0:
		user, err := client.Me(ctx)
		if err != nil {
			return err
		}
		return printJSON(user)
	case cmd == "logout" && len(rest) == 0:
		return client.Logout(ctx)
	case cmd == "logout-all" && len(rest) == 0:
		return client.LogoutAll(ctx)
	case cmd == "version" && len(rest) == 0:
		fmt.Print(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))
		return nil
	default:
		return errUsage
	}
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
