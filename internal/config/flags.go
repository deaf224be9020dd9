package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// optionalFloat is a flag.Value that remembers whether it was set, so a
// venue at latitude 0 can still be configured from the command line.
type optionalFloat struct {
	value *float64
}

func (f *optionalFloat) String() string {
	if f.value == nil {
		return ""
	}
	return strconv.FormatFloat(*f.value, 'f', -1, 64)
}

func (f *optionalFloat) Set(s string) error {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	f.value = &v
	return nil
}

// ParseFlags parses configuration flags from args (usually os.Args[1:]).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-f snapshot data file path
//	-d database DSN
//	-c/-config json file path with configs
//	-token-sign-key token signing key
//	-token-issuer token issuer name
//	-session-duration admin session duration (e.g., "8h")
//	-table-token-duration table token duration (e.g., "8h")
//	-request-timeout request timeout (e.g., "30s", "1m")
//	-venue-lat, -venue-lng, -venue-radius geofence
//	-order-rate-limit orders per window per client
//	-log-level zerolog level
func ParseFlags(args []string) (*StructuredConfig, error) {
	fs := flag.NewFlagSet("table-order", flag.ContinueOnError)

	var serverAddress NetAddress
	var venueLat, venueLng optionalFloat
	cfg := &StructuredConfig{}

	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&cfg.Storage.DataFile, "f", "", "Snapshot data file path")
	fs.StringVar(&cfg.Storage.DB.DSN, "d", "", "Database DSN")
	fs.StringVar(&cfg.JSONFilePath, "c", "", "JSON config file path")
	fs.StringVar(&cfg.JSONFilePath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&cfg.App.TokenSignKey, "token-sign-key", "", "Token signing key")
	fs.StringVar(&cfg.App.TokenIssuer, "token-issuer", "", "Token issuer")
	fs.DurationVar(&cfg.App.SessionDuration, "session-duration", 0, "Admin session duration (e.g., 8h)")
	fs.DurationVar(&cfg.App.TableTokenDuration, "table-token-duration", 0, "Table token duration (e.g., 8h)")
	fs.StringVar(&cfg.App.PublicBaseURL, "public-base-url", "", "Public origin used in QR links")
	fs.DurationVar(&cfg.Server.RequestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.IntVar(&cfg.Server.OrderRateLimit, "order-rate-limit", 0, "Orders allowed per window per client")
	fs.Var(&venueLat, "venue-lat", "Venue latitude")
	fs.Var(&venueLng, "venue-lng", "Venue longitude")
	fs.Float64Var(&cfg.Venue.RadiusMeters, "venue-radius", 0, "Venue radius in meters")
	fs.StringVar(&cfg.LogLevel, "log-level", "", "Log level")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cfg.Server.HTTPAddress = serverAddress.String()
	cfg.Venue.Latitude = venueLat.value
	cfg.Venue.Longitude = venueLng.value

	return cfg, nil
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
// An empty host listens on all interfaces. Any other host must be an IP
// address or "localhost".
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
		return errors.New("port number must be in 1..65535")
	}

	if host != "" && host != "localhost" {
		ip := net.ParseIP(host)
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

