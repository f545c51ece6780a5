// internal/config/constants.go
package config

import "time"

const (
	AppName    = "verb-master"
	AppVersion = "1.0.0"
)

const (
	DefaultServerPort         = ":8080"
	DefaultLogLevel           = "info"
	DefaultSessionSize        = 10
	DefaultMaxSessionSize     = 100
	DefaultLevel              = "A1"
	DefaultTense              = "present"
	DefaultCatalogSource      = "builtin"
	DefaultCatalogTimeout     = 5 * time.Second
	DefaultGameSettleDelay    = 700 * time.Millisecond
	DefaultReadTimeout        = 10 * time.Second
	DefaultWriteTimeout       = 15 * time.Second
	DefaultIdleTimeout        = 60 * time.Second
	DefaultShutdownTimeout    = 10 * time.Second
	DefaultRequestTimeout     = 30 * time.Second
	DefaultDatabaseURL        = "verb_master.db"
	DefaultSpeechLanguageCode = "en-US"
	DefaultSpeechRate         = 0.95
)
