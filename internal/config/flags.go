// SPDX-License-Identifier: Apache-2.0

package config

import (
	"errors"
	"flag"
	"net"
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

func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

func (a *NetAddress) Set(value string) error {
	host, portString, err := net.SplitHostPort(strings.TrimSpace(value))
	if err != nil {
		return err
	}

	port, err := strconv.Atoi(portString)
	if err != nil {
		return errors.New("port must be a number")
	}

	a.Host = host
	a.Port = port

	return nil
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d PostgreSQL DSN
//	-sqlite SQLite database file path
//	-f settings file path
//	-c/-config json file path with configs
//	-request-timeout request timeout (e.g., "30s", "1m")
func ParseFlags() *StructuredConfig {
	var serverAddress NetAddress
	var databaseDSN string
	var sqlitePath string
	var settingsFilePath string
	var jsonConfigPath string
	var requestTimeout time.Duration

	flag.Var(&serverAddress, "a", "Net address host:port")
	flag.StringVar(&databaseDSN, "d", "", "PostgreSQL DSN")
	flag.StringVar(&sqlitePath, "sqlite", "", "SQLite database file path")
	flag.StringVar(&settingsFilePath, "f", "", "Settings file path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")

	flag.Parse()

	return &StructuredConfig{
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
			SQLite: SQLite{
				Path: sqlitePath,
			},
			File: Files{
				Path: settingsFilePath,
			},
		},
		JSONFilePath: jsonConfigPath,
	}
}
