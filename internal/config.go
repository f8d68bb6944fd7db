package internal

import (
	"fmt"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/samber/lo"
)

// ServerConfig is read from the environment with go-env.
type ServerConfig struct {
	BufferSize           int           `env:"BUFFER_SIZE,default=1024"`
	ConnectionBufferSize int           `env:"CONNECTION_BUFFER_SIZE,default=16"`
	SinkTimeout          time.Duration `env:"SINK_TIMEOUT,default=2s"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=200ms"`
	AuthTokenDuration    time.Duration `env:"AUTH_TOKEN_DURATION,default=24h"`
	AuthTokenSecret      string        `env:"AUTH_TOKEN_SECRET,required=true"`
	APIKey               string        `env:"API_KEY"`
	EnableEmailPassword  bool          `env:"ENABLE_EMAIL_PASSWORD,default=true"`
	EnableAnonymous      bool          `env:"ENABLE_ANONYMOUS,default=true"`
	CensoredWords        string        `env:"CENSORED_WORDS"`
	CensoredWordsDir     string        `env:"CENSORED_WORDS_DIR"`
	CharReplacement      string        `env:"CHARACTER_REPLACEMENT,default=*"`
	BadgerFilepath       string        `env:"BADGER_FILEPATH,required=true"`
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	Host                 string        `env:"HOST,default=0.0.0.0"`
	Port                 int           `env:"PORT,default=8080"`
	DebugPort            int           `env:"DEBUG_PORT,default=8081"`
}

// CensoredWordList splits CENSORED_WORDS on commas, dropping blanks.
func (c ServerConfig) CensoredWordList() []string {
	return lo.Compact(lo.Map(strings.Split(c.CensoredWords, ","), func(w string, _ int) string {
		return strings.TrimSpace(w)
	}))
}

// ClientConfig is read from the environment with envconfig, under the
// TALK prefix.
type ClientConfig struct {
	ServerAddr   string        `envconfig:"SERVER_ADDR" default:"localhost:8080"`
	APIKey       string        `envconfig:"API_KEY"`
	ProjectID    string        `envconfig:"PROJECT_ID"`
	AppID        string        `envconfig:"APP_ID"`
	InitialToken string        `envconfig:"INITIAL_AUTH_TOKEN"`
	Embedded     bool          `envconfig:"EMBEDDED" default:"false"`
	TokenSecret  string        `envconfig:"TOKEN_SECRET" default:"embedded-secret"`
	TokenTTL     time.Duration `envconfig:"TOKEN_TTL" default:"24h"`
	Colours      bool          `envconfig:"COLOURS" default:"true"`
	OwnColour    string        `envconfig:"OWN_COLOUR" default:"cyan"`
	OtherColour  string        `envconfig:"OTHER_COLOUR" default:"white"`
	DebugJSON    bool          `envconfig:"DEBUG_JSON" default:"false"`
	LogLevel     string        `envconfig:"LOG_LEVEL" default:"ERROR"`
}

const clientPrefix = "TALK"

// LoadClientConfig reads TALK_* variables. An absent app id means the
// default partition, an absent token means no bootstrap exchange.
func LoadClientConfig() (ClientConfig, error) {
	var cfg ClientConfig
	err := envconfig.Process(clientPrefix, &cfg)
	return cfg, err
}

func CharacterRune(str string) (rune, error) {
	r := []rune(str)
	if len(r) != 1 {
		return 0, fmt.Errorf(
			"CHARACTER_REPLACEMENT must be a single character, got %q",
			str,
		)
	}
	return r[0], nil
}
