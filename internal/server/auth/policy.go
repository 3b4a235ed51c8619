package auth

import "time"

// Environment is the deployment tier the server runs in. It only drives the
// token duration policy.
type Environment string

const (
	EnvProduction   Environment = "production"
	EnvHomologation Environment = "homologation"
	EnvDevelopment  Environment = "development"
)

// ParseEnvironment normalizes a configured tier name. Anything that is not
// production or homologation falls back to the development tier.
func ParseEnvironment(s string) Environment {
	switch Environment(s) {
	case EnvProduction:
		return EnvProduction
	case EnvHomologation:
		return EnvHomologation
	default:
		return EnvDevelopment
	}
}

// Durations is a policy entry: how long a credential lives and, for refresh
// tokens, how long it stays unusable after issuance. NotBefore is zero for
// access tokens.
type Durations struct {
	TTL       time.Duration
	NotBefore time.Duration
}

type policyKey struct {
	env      Environment
	subject  Subject
	remember bool
}

// tokenPolicy maps every (environment, subject, remember) combination to its
// durations. The refresh not-before window throttles how soon a freshly
// issued refresh token can be used for rotation.
var tokenPolicy = map[policyKey]Durations{
	{EnvProduction, SubjectAccess, false}: {TTL: time.Hour},
	{EnvProduction, SubjectAccess, true}:  {TTL: 7 * 24 * time.Hour},
	{EnvProduction, SubjectRefresh, false}: {
		TTL:       time.Hour,
		NotBefore: time.Hour,
	},
	{EnvProduction, SubjectRefresh, true}: {
		TTL:       7 * 24 * time.Hour,
		NotBefore: 7 * 24 * time.Hour,
	},

	{EnvHomologation, SubjectAccess, false}: {TTL: time.Minute},
	{EnvHomologation, SubjectAccess, true}:  {TTL: 5 * time.Minute},
	{EnvHomologation, SubjectRefresh, false}: {
		TTL:       10 * time.Minute,
		NotBefore: time.Minute,
	},
	{EnvHomologation, SubjectRefresh, true}: {
		TTL:       30 * time.Minute,
		NotBefore: 5 * time.Minute,
	},

	{EnvDevelopment, SubjectAccess, false}: {TTL: 10 * time.Second},
	{EnvDevelopment, SubjectAccess, true}:  {TTL: time.Minute},
	{EnvDevelopment, SubjectRefresh, false}: {
		TTL:       3 * time.Minute,
		NotBefore: 10 * time.Second,
	},
	{EnvDevelopment, SubjectRefresh, true}: {
		TTL:       5 * time.Minute,
		NotBefore: time.Minute,
	},
}

// TokenDurations looks up the policy for a tier, subject, and remember flag.
// Unknown tiers resolve through ParseEnvironment, so the lookup is total.
func TokenDurations(env Environment, subject Subject, remember bool) Durations {
	return tokenPolicy[policyKey{ParseEnvironment(string(env)), subject, remember}]
}
