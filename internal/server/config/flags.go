package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/sessionkeeper/internal/flagx"
)

// parseFlags populates selected server Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   HTTP bind address (e.g., ":8080")
//	-d string   PostgreSQL DSN
//	-s string   JWT HMAC secret key
//	-e string   deployment tier (production | homologation | development)
//	-b int      bcrypt cost for password hashing
//	-v int      verification code validity, minutes
//	-m string   SMTP relay address (host:port)
//	-f string   From address for outbound mail
//
// The function first filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with the JSON-config flags.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a", "-d", "-s", "-e", "-b", "-v", "-m", "-f"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&config.EndpointAddr, "a", config.EndpointAddr, "address and port to run server")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SessionSecret, "s", config.SessionSecret, "session secret key")
	fs.StringVar(&config.Environment, "e", config.Environment, "deployment tier")
	fs.IntVar(&config.BcryptCost, "b", config.BcryptCost, "bcrypt cost")

	codeValidityDuration := fs.Int("v", int(config.CodeValidityDuration.Minutes()), "verification code validity (in minutes)")

	fs.StringVar(&config.SMTPAddr, "m", config.SMTPAddr, "SMTP relay address")
	fs.StringVar(&config.MailFrom, "f", config.MailFrom, "From address for outbound mail")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.CodeValidityDuration = time.Duration(*codeValidityDuration) * time.Minute
}
