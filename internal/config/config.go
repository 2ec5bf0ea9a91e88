package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	AppPort         string
	AppEnv          string
	DBDSN           string
	JWTSecret       string
	JWTExpiresMin   int
	RedisAddr       string
	RedisPassword   string
	ChatReplyDelay  time.Duration
	SessionIdle     time.Duration
	SweepSpec       string
	FrontendBaseURL string
}

// Load reads the process environment. JWT_SECRET is the only required key;
// an empty DB_DSN selects the in-memory user directory and an empty
// REDIS_ADDR disables notifications.
func Load() Config {
	expires, _ := strconv.Atoi(get("JWT_EXPIRES_MIN", "10080"))
	delayMS, err := strconv.Atoi(get("CHAT_REPLY_DELAY_MS", "2000"))
	if err != nil || delayMS <= 0 {
		delayMS = 2000
	}
	idleMin, err := strconv.Atoi(get("SESSION_IDLE_MIN", strconv.Itoa(expires)))
	if err != nil || idleMin <= 0 {
		idleMin = expires
	}
	return Config{
		AppPort:         get("APP_PORT", "8080"),
		AppEnv:          get("APP_ENV", "development"),
		DBDSN:           get("DB_DSN", ""),
		JWTSecret:       must("JWT_SECRET"),
		JWTExpiresMin:   expires,
		RedisAddr:       get("REDIS_ADDR", ""),
		RedisPassword:   get("REDIS_PASSWORD", ""),
		ChatReplyDelay:  time.Duration(delayMS) * time.Millisecond,
		SessionIdle:     time.Duration(idleMin) * time.Minute,
		SweepSpec:       get("SESSION_SWEEP_SPEC", "@every 10m"),
		FrontendBaseURL: get("FRONTEND_BASE_URL", "http://localhost:3000"),
	}
}

func get(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}
func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
