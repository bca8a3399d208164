package directory

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"callerverify/internal/platform/logger"
	pnet "callerverify/internal/platform/net"
	"callerverify/internal/services/api/verify/domain"

	"github.com/google/uuid"
)

const (
	defaultTimeout = 10 * time.Second
	defaultUA      = "callerverify-directory"
	maxBodyBytes   = 4 << 20
)

// RemoteOptions configures a Remote directory
type RemoteOptions struct {
	Endpoint  string
	APIKey    string
	UserAgent string
	Timeout   time.Duration
}

// Remote reads the directory from a users API returning [{phone_number, name}]
// every call fetches the list again, records are never cached
type Remote struct {
	http *http.Client
	opts RemoteOptions
	log  logger.Logger
}

// NewRemote creates a Remote with sane defaults
func NewRemote(o RemoteOptions) *Remote {
	if strings.TrimSpace(o.Endpoint) == "" {
		panic("directory.Remote requires an endpoint")
	}
	if o.UserAgent == "" {
		o.UserAgent = defaultUA
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	return &Remote{
		http: &http.Client{Timeout: o.Timeout},
		opts: o,
		log:  *logger.Named("directory"),
	}
}

type userDTO struct {
	PhoneNumber string `json:"phone_number"`
	Name        string `json:"name"`
}

// ListRecords implements domain.Directory
func (d *Remote) ListRecords(ctx context.Context) ([]domain.Record, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, d.opts.Endpoint, nil)
	if err != nil {
		return nil, domain.DirectoryUnavailable(err, "could not build directory request")
	}
	rid := pnet.RequestID(ctx)
	if rid == "" {
		rid = uuid.NewString()
	}
	req.Header.Set("X-Request-ID", rid)
	req.Header.Set("User-Agent", d.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	if d.opts.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+d.opts.APIKey)
	}

	start := time.Now()
	resp, err := d.http.Do(req)
	if err != nil {
		return nil, domain.DirectoryUnavailable(err, "could not connect to directory")
	}
	defer func() { _ = drainAndClose(resp.Body) }()

	d.log.Debug().
		Str("request_id", rid).
		Int("status", resp.StatusCode).
		Dur("took", time.Since(start)).
		Msg("directory fetch")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		se := &StatusError{Status: resp.StatusCode, Body: strings.TrimSpace(string(tail))}
		return nil, domain.DirectoryUnavailable(se, "directory returned status %d", resp.StatusCode)
	}

	var users []userDTO
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&users); err != nil {
		return nil, domain.DirectoryUnavailable(err, "could not decode directory response")
	}

	return records(users), nil
}

// records drops rows missing a number or a name, a repeated number keeps its first position and its last name
func records(users []userDTO) []domain.Record {
	out := make([]domain.Record, 0, len(users))
	at := make(map[string]int, len(users))
	for _, u := range users {
		if u.PhoneNumber == "" || strings.TrimSpace(u.Name) == "" {
			continue
		}
		if i, seen := at[u.PhoneNumber]; seen {
			out[i].ClaimedName = u.Name
			continue
		}
		at[u.PhoneNumber] = len(out)
		out = append(out, domain.Record{PhoneNumber: u.PhoneNumber, ClaimedName: u.Name})
	}
	return out
}

// GetRecord implements domain.Directory
func (d *Remote) GetRecord(ctx context.Context, phone string) (domain.Record, bool, error) {
	recs, err := d.ListRecords(ctx)
	if err != nil {
		return domain.Record{}, false, err
	}
	for _, r := range recs {
		if r.PhoneNumber == phone {
			return r, true, nil
		}
	}
	return domain.Record{}, false, nil
}

// StatusError wraps non-2xx responses from the directory
type StatusError struct {
	Status int
	Body   string
}

// Error interface
func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("directory status %d", e.Status)
	}
	return fmt.Sprintf("directory status %d: %s", e.Status, e.Body)
}

// HTTPStatus interface
func (e *StatusError) HTTPStatus() int { return e.Status }

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}
