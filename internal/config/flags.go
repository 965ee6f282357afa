package config

import (
	"flag"
	"io"
	"time"

	"github.com/dmitrijs2005/healthgate/internal/flagx"
)

var knownFlags = []string{
	"-a", "-r", "-n", "-d", "-k", "-s", "-t", "-o", "-m", "-w",
	"-u", "-p", "-b", "-g", "-e", "-x", "-l", "-f",
}

// parseFlags populates Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   gRPC bind address (e.g., ":50051")
//	-r string   remote gateway address for the CLI (e.g., "localhost:50051")
//	-n string   metrics HTTP address (e.g., ":9090")
//	-d string   database DSN (SQLite path or postgres:// URL)
//	-k int      bcrypt cost
//	-s string   JWT HMAC secret key
//	-t int      access token validity, minutes
//	-o string   model source: fs or s3
//	-m string   model artifact directory
//	-w int      per-artifact load timeout, seconds
//	-u string   S3 root user
//	-p string   S3 root password
//	-b string   S3 bucket name
//	-g string   S3 region
//	-e string   S3 base endpoint
//	-x string   S3 key prefix for artifacts
//	-l string   log level
//	-f string   log format
//
// Only the flags listed above are parsed; anything else in args (for
// example -c) is left to other loaders.
func parseFlags(config *Config, args []string) error {
	fs := flag.NewFlagSet("main", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVar(&config.EndpointAddrGRPC, "a", config.EndpointAddrGRPC, "address and port to run server")
	fs.StringVar(&config.ServerAddr, "r", config.ServerAddr, "remote gateway address")
	fs.StringVar(&config.MetricsAddr, "n", config.MetricsAddr, "metrics HTTP address")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.IntVar(&config.BcryptCost, "k", config.BcryptCost, "bcrypt cost")
	fs.StringVar(&config.SecretKey, "s", config.SecretKey, "secret key")

	accessTokenValidity := fs.Int("t", int(config.AccessTokenValidityDuration.Minutes()), "access token validity (in minutes)")

	fs.StringVar(&config.ModelSource, "o", config.ModelSource, "model source (fs|s3)")
	fs.StringVar(&config.ModelDir, "m", config.ModelDir, "model artifact directory")

	loadTimeout := fs.Int("w", int(config.ModelLoadTimeout.Seconds()), "model load timeout (in seconds)")

	fs.StringVar(&config.S3RootUser, "u", config.S3RootUser, "S3 root user")
	fs.StringVar(&config.S3RootPassword, "p", config.S3RootPassword, "S3 root password")
	fs.StringVar(&config.S3Bucket, "b", config.S3Bucket, "S3 bucket")
	fs.StringVar(&config.S3Region, "g", config.S3Region, "S3 region")
	fs.StringVar(&config.S3BaseEndpoint, "e", config.S3BaseEndpoint, "S3 base endpoint")
	fs.StringVar(&config.S3Prefix, "x", config.S3Prefix, "S3 key prefix")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level")
	fs.StringVar(&config.LogFormat, "f", config.LogFormat, "log format (json|text)")

	if err := fs.Parse(flagx.FilterArgs(args, knownFlags)); err != nil {
		return err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "t":
			config.AccessTokenValidityDuration = time.Duration(*accessTokenValidity) * time.Minute
		case "w":
			config.ModelLoadTimeout = time.Duration(*loadTimeout) * time.Second
		}
	})
	return nil
}
