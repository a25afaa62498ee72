package main

import (
	"context"
	"fmt"
	"os"
	"time"

	pb "timebank/api/v1"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type Config struct {
	ServerAddr string        `env:"TIMEBANK_SERVER_ADDR,default=localhost:50051"`
	Token      string        `env:"TIMEBANK_TOKEN"`
	LogLevel   string        `env:"LOG_LEVEL,default=INFO"`
	Timeout    time.Duration `env:"TIMEBANK_TIMEOUT,default=10s"`
}

const usage = `usage: client <command> [flags]

commands:
  register   --email --password
  login      --email --password
  complete   --name --phone --email --photo --id-card --role [--slot Monday,09:00,11:00 ...]
  profile    [--user]
  search     [--query]
  history    --peer
  text       --peer --text
  voice      --peer --file
`

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Client error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) == 0 {
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("missing command")
	}

	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	logger := logs.GetLoggerFromString(config.LogLevel)

	conn, err := grpc.NewClient(config.ServerAddr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("unable to reach %s: %w", config.ServerAddr, err)
	}
	defer func() { _ = conn.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), config.Timeout)
	defer cancel()

	cli := &client{
		log:          logger,
		token:        config.Token,
		accounts:     pb.NewAccountServiceClient(conn),
		profiles:     pb.NewProfileServiceClient(conn),
		availability: pb.NewAvailabilityServiceClient(conn),
		chat:         pb.NewChatServiceClient(conn),
		out:          os.Stdout,
	}

	command, rest := args[0], args[1:]
	switch command {
	case "register":
		return cli.register(ctx, rest)
	case "login":
		return cli.login(ctx, rest)
	case "complete":
		return cli.complete(ctx, rest)
	case "profile":
		return cli.profile(ctx, rest)
	case "search":
		return cli.search(ctx, rest)
	case "history":
		return cli.history(ctx, rest)
	case "text":
		return cli.text(ctx, rest)
	case "voice":
		return cli.voice(ctx, rest)
	default:
		fmt.Fprint(os.Stderr, usage)
		return fmt.Errorf("unknown command %q", command)
	}
}
