// Package config provides functionality for managing configuration options
// for the attachment server using command-line flags and environment
// variables.
package config

import (
	"encoding/json"
	"flag"
	"log"
	"os"
)

// Options holds the configuration values for the attachment server.
type Options struct {
	// Addr defines the server's listening address (ip:port).
	Addr string

	// UploadDir is the directory stored files are written to.
	UploadDir string

	// Environment names the deployment ("development", "production").
	Environment string

	// Hosted marks serverless deployments where the upload directory is
	// read-only and deletion is unsupported.
	Hosted bool

	// Config is the path to the Config file.
	Config string
}

// options holds the current configuration values.
var options = &Options{}

// init initializes command-line flags and sets default values.
func init() {
	flag.StringVar(&options.Addr, "a", "localhost:8080", "run on ip:port server")
	flag.StringVar(&options.UploadDir, "u", "uploads", "directory for stored files")
	flag.StringVar(&options.Environment, "e", "development", "deployment environment name")
	flag.BoolVar(&options.Hosted, "hosted", false, "serverless deployment, file deletion disabled")
	flag.StringVar(&options.Config, "config", "config.json", "path to config file")
	flag.StringVar(&options.Config, "c", "config.json", "path to config file (shorthand)")
}

// Parse parses the command-line flags and environment variables to set
// configuration values. It returns a pointer to the Options struct containing
// the parsed configuration values.
func Parse() *Options {
	flag.Parse()

	// Override flags with environment variables if set
	if configPath := os.Getenv("CONFIG"); configPath != "" {
		options.Config = configPath
	}

	if options.Config != "" {
		if _, err := os.Stat(options.Config); err == nil {
			data, err := os.ReadFile(options.Config)
			if err != nil {
				log.Fatalf("error while reading config file: %v", err)
			}
			if err := json.Unmarshal(data, options); err != nil {
				log.Fatalf("error while parsing config file: %v", err)
			}
		}
	}

	if serverAddress := os.Getenv("SERVER_ADDRESS"); serverAddress != "" {
		options.Addr = serverAddress
	}
	if uploadDir := os.Getenv("UPLOAD_DIR"); uploadDir != "" {
		options.UploadDir = uploadDir
	}
	if env := os.Getenv("APP_ENV"); env != "" {
		options.Environment = env
	}
	if os.Getenv("HOSTED") == "true" {
		options.Hosted = true
	}

	return options
}
