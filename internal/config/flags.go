package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/alecthomas/kingpin/v2"
)

// NetAddress holds structured network address data for host and port.
// It implements the kingpin.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-a/--address        server address in format [host]:[port]
//	--request-timeout   request timeout (e.g., "15s", "1m")
//	--log-level         zerolog level name
//	-c/--config         override document: file path or http(s) URL
//	--set path=value    override one configuration leaf; repeatable
//	--dump format       print the resolved configuration (json, yaml, toml) and exit
//	--list-keys         print every configurable key and exit
func ParseFlags(args []string) (*RuntimeConfig, error) {
	var serverAddress NetAddress

	app := kingpin.New("connectly-config", "Serves the resolved Connectly branding and UI configuration.")
	app.HelpFlag.Short('h')
	app.Flag("address", "Net address host:port").Short('a').SetValue(&serverAddress)
	requestTimeout := app.Flag("request-timeout", "Request timeout (e.g., 15s, 1m)").Duration()
	logLevel := app.Flag("log-level", "Log level (debug, info, warn, error)").String()
	overrideSource := app.Flag("config", "Override document: file path or http(s) URL").Short('c').String()
	assignments := app.Flag("set", "Override a configuration leaf, e.g. buttons.chat.showMaxBtn=false").Strings()
	dump := app.Flag("dump", "Print the resolved configuration in the given format and exit").Enum("json", "yaml", "toml")
	listKeys := app.Flag("list-keys", "Print every configurable key and exit").Bool()

	if _, err := app.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &RuntimeConfig{
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: *requestTimeout,
		},
		LogLevel:       *logLevel,
		OverrideSource: *overrideSource,
		Assignments:    *assignments,
		Dump:           *dump,
		ListKeys:       *listKeys,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

