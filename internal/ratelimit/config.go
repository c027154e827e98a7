package ratelimit

import "time"

const defaultWindow = 60 * time.Second

// Config holds budgets and route prefixes per class.
type Config struct {
	GeneralPoints    int           `long:"general-points" env:"GENERAL_POINTS" default:"100" description:"Requests per window for general routes"`
	GeneralWindow    time.Duration `long:"general-window" env:"GENERAL_WINDOW" default:"60s" description:"Budget window for general routes"`
	AuthPoints       int           `long:"auth-points" env:"AUTH_POINTS" default:"5" description:"Requests per window for auth routes"`
	AuthWindow       time.Duration `long:"auth-window" env:"AUTH_WINDOW" default:"60s" description:"Budget window for auth routes"`
	HeavyPoints      int           `long:"heavy-points" env:"HEAVY_POINTS" default:"10" description:"Requests per window for export and analytics routes"`
	HeavyWindow      time.Duration `long:"heavy-window" env:"HEAVY_WINDOW" default:"60s" description:"Budget window for export and analytics routes"`
	RealtimePoints   int           `long:"realtime-points" env:"REALTIME_POINTS" default:"200" description:"Requests per window for live routes"`
	RealtimeWindow   time.Duration `long:"realtime-window" env:"REALTIME_WINDOW" default:"60s" description:"Budget window for live routes"`
	AuthPrefixes     []string      `long:"auth-prefix" env:"AUTH_PREFIXES" env-delim:"," default:"/api/auth" description:"Path prefixes classed as auth"`
	HeavyPrefixes    []string      `long:"heavy-prefix" env:"HEAVY_PREFIXES" env-delim:"," default:"/api/export" default:"/api/analytics" description:"Path prefixes classed as heavy"`
	RealtimePrefixes []string      `long:"realtime-prefix" env:"REALTIME_PREFIXES" env-delim:"," default:"/ws" default:"/api/live" description:"Path prefixes classed as realtime"`
	KeyHeader        string        `long:"key-header" env:"KEY_HEADER" default:"X-API-Key" description:"Header identifying API clients; falls back to the client IP"`
	TrustProxy       bool          `long:"trust-proxy" env:"TRUST_PROXY" description:"Use X-Forwarded-For to identify clients"`
	RedisAddr        string        `long:"redis-addr" env:"REDIS_ADDR" description:"Redis address for shared counters; in-memory when empty"`
	RedisPassword    string        `long:"redis-password" env:"REDIS_PASSWORD" description:"Redis password"`
	RedisDB          int           `long:"redis-db" env:"REDIS_DB" default:"0" description:"Redis database"`
}

// DefaultConfig mirrors the flag defaults.
func DefaultConfig() Config {
	return Config{
		GeneralPoints:    100,
		GeneralWindow:    defaultWindow,
		AuthPoints:       5,
		AuthWindow:       defaultWindow,
		HeavyPoints:      10,
		HeavyWindow:      defaultWindow,
		RealtimePoints:   200,
		RealtimeWindow:   defaultWindow,
		AuthPrefixes:     []string{"/api/auth"},
		HeavyPrefixes:    []string{"/api/export", "/api/analytics"},
		RealtimePrefixes: []string{"/ws", "/api/live"},
		KeyHeader:        "X-API-Key",
	}
}

// Budgets returns the per-class budgets of c. An unset window means 60s.
func (c Config) Budgets() map[Class]Budget {
	return map[Class]Budget{
		ClassGeneral:  {Points: c.GeneralPoints, Window: windowOrDefault(c.GeneralWindow)},
		ClassAuth:     {Points: c.AuthPoints, Window: windowOrDefault(c.AuthWindow)},
		ClassHeavy:    {Points: c.HeavyPoints, Window: windowOrDefault(c.HeavyWindow)},
		ClassRealtime: {Points: c.RealtimePoints, Window: windowOrDefault(c.RealtimeWindow)},
	}
}

func windowOrDefault(w time.Duration) time.Duration {
	if w <= 0 {
		return defaultWindow
	}
	return w
}

// Classifier returns the route classifier of c.
func (c Config) Classifier() *Classifier {
	return NewClassifier(c.AuthPrefixes, c.HeavyPrefixes, c.RealtimePrefixes)
}
