package directory

import (
	"time"

	"callerverify/internal/platform/config"
	"callerverify/internal/platform/logger"
	"callerverify/internal/services/api/verify/domain"
)

// Kind tags the directory binding
type Kind string

// Bindings
const (
	KindMock   Kind = "mock"
	KindRemote Kind = "remote"
)

// Source is the directory strategy, resolved once at startup
type Source struct {
	Kind     Kind
	Endpoint string
	APIKey   string
	Timeout  time.Duration
}

// FromConfig selects remote iff an API key is configured
// selfEndpoint is the service's own mock users endpoint, used when DIRECTORY_URL is unset
func FromConfig(cfg config.Conf, selfEndpoint string) Source {
	key := cfg.MayFirst("", "DIRECTORY_API_KEY", "SOLIDARITY_TECH_API_KEY")
	if key == "" {
		return Source{Kind: KindMock}
	}
	dc := cfg.Prefix("DIRECTORY_")
	return Source{
		Kind:     KindRemote,
		Endpoint: dc.MayString("URL", selfEndpoint),
		APIKey:   key,
		Timeout:  dc.MayDuration("TIMEOUT", defaultTimeout),
	}
}

// Open builds the Directory binding for the source
func Open(src Source) domain.Directory {
	log := logger.Named("directory")
	switch src.Kind {
	case KindRemote:
		log.Info().Str("endpoint", src.Endpoint).Msg("using remote directory")
		return NewRemote(RemoteOptions{Endpoint: src.Endpoint, APIKey: src.APIKey, Timeout: src.Timeout})
	default:
		log.Info().Msg("using mock directory")
		return NewStatic(DefaultRecords())
	}
}
