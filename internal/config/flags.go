package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses configuration flags from args into a fresh flag set, so
// it may be called more than once per process.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-grpc-address grpc server address in format [host]:[port]
//	-public-url externally reachable base URL
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-d database DSN
//	-f media directory
//	-sign-key upload slot signing key
//	-slot-ttl upload slot lifetime (e.g., "15m")
//	-max-upload-size max image size in bytes
//	-app-version application version
//	-server client adapter server address
//	-adapter-timeout client request timeout
//	-poll-interval client contact list poll interval
//	-c/-config json file path with configs
func parseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet(programName(), flag.ContinueOnError)

	var serverAddress, grpcServerAddress NetAddress
	var publicURL string
	var requestTimeout time.Duration
	var databaseDSN string
	var mediaDir string
	var signKey string
	var slotTTL time.Duration
	var maxUploadSize int64
	var appVersion string
	var adapterAddress string
	var adapterTimeout time.Duration
	var pollInterval time.Duration
	var jsonConfigPath string

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.Var(&grpcServerAddress, "grpc-address", "Net grpc server address host:port")
	fs.StringVar(&publicURL, "public-url", "", "Public base URL")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&mediaDir, "f", "", "Media directory")
	fs.StringVar(&signKey, "sign-key", "", "Upload slot signing key")
	fs.DurationVar(&slotTTL, "slot-ttl", 0, "Upload slot TTL (e.g., 15m)")
	fs.Int64Var(&maxUploadSize, "max-upload-size", 0, "Max image size in bytes")
	fs.StringVar(&appVersion, "app-version", "", "Application version")
	fs.StringVar(&adapterAddress, "server", "", "Server address for the client")
	fs.DurationVar(&adapterTimeout, "adapter-timeout", 0, "Client request timeout")
	fs.DurationVar(&pollInterval, "poll-interval", 0, "Contact list poll interval")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{Version: appVersion},
		Media: Media{
			SignKey:       signKey,
			SlotTTL:       slotTTL,
			MaxUploadSize: maxUploadSize,
		},
		Storage: Storage{
			DB:    DB{DSN: databaseDSN},
			Files: Files{MediaDir: mediaDir},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			GRPCAddress:    grpcServerAddress.String(),
			RequestTimeout: requestTimeout,
			PublicURL:      publicURL,
		},
		Adapter: Adapter{
			HTTPAddress:    adapterAddress,
			RequestTimeout: adapterTimeout,
		},
		Workers:      Workers{PollInterval: pollInterval},
		JSONFilePath: jsonConfigPath,
	}, nil
}

func programName() string {
	if len(os.Args) == 0 {
		return "go-contacts"
	}
	return os.Args[0]
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return net.JoinHostPort(a.Host, strconv.Itoa(a.Port))
}

// Set parses the input string of form host:port and populates the NetAddress.
// An empty host means all interfaces. Any other host must be "localhost" or a
// valid IP address.
func (a *NetAddress) Set(s string) error {
	host, rawPort, err := net.SplitHostPort(s)
	if err != nil {
		return errors.New("need address in a form `host:port`")
	}

	port, err := strconv.Atoi(rawPort)
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "" && !strings.EqualFold(host, "localhost") {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
