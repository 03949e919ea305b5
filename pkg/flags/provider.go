package flags

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"net/http"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"time"

	log "github.com/go-pkgz/lgr"
	"github.com/go-pkgz/repeater/v2"
	"github.com/robfig/cron/v3"

	"github.com/umputun/hnscope/pkg/domain"
)

// names of targeting properties matched by configuration rules
const (
	PropBetaUser = "isBetaUser"
	PropLoggedIn = "isLoggedIn"
	PropCompany  = "company"
)

// sources reported to the configuration-fetched handler
const (
	SourceNetwork = "network"
	SourceOffline = "offline"
)

var (
	// ErrNotSynced is returned while no configuration was fetched yet
	ErrNotSynced = errors.New("flag configuration not synchronized")
	// ErrUnknownFlag is returned for flags never registered
	ErrUnknownFlag = errors.New("unknown flag")
)

// Configuration is the document served by the flag provider
type Configuration struct {
	Flags map[string]FlagConfig `json:"flags"`
}

// FlagConfig is the remote configuration of a single flag
type FlagConfig struct {
	Value string `json:"value"`
	Rules []Rule `json:"rules,omitempty"`
}

// Rule targets a value to callers whose property equals the given value
type Rule struct {
	Property string `json:"property"`
	Equals   string `json:"equals"`
	Value    string `json:"value"`
}

// FetchedEvent is passed to the configuration-fetched handler after every sync
type FetchedEvent struct {
	Changed bool
	Source  string
}

// ProviderParams configures RemoteProvider
type ProviderParams struct {
	URL          string // empty url keeps the provider offline
	APIKey       string
	SyncTimeout  time.Duration
	SyncInterval time.Duration
	OnFetched    func(FetchedEvent)
	Client       *http.Client
}

// RemoteProvider evaluates flags against a configuration pulled from a remote endpoint
type RemoteProvider struct {
	params ProviderParams
	client *http.Client

	mu        sync.RWMutex
	defaults  map[string]domain.FlagDefinition
	props     map[string]string
	cfg       *Configuration
	overrides map[string]string
}

// NewRemoteProvider makes a provider, no network calls until Setup
func NewRemoteProvider(params ProviderParams) *RemoteProvider {
	if params.SyncTimeout <= 0 {
		params.SyncTimeout = 5 * time.Second
	}
	if params.SyncInterval <= 0 {
		params.SyncInterval = time.Minute
	}
	client := params.Client
	if client == nil {
		client = &http.Client{Timeout: params.SyncTimeout}
	}
	return &RemoteProvider{
		params:    params,
		client:    client,
		defaults:  map[string]domain.FlagDefinition{},
		props:     map[string]string{},
		overrides: map[string]string{},
	}
}

// Register adds flag definitions, their defaults are used for flags missing in the configuration
func (p *RemoteProvider) Register(defs []domain.FlagDefinition) {
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, d := range defs {
		p.defaults[d.Name] = d
	}
}

// SetCustomProperty sets a targeting property matched by rules
func (p *RemoteProvider) SetCustomProperty(name, value string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.props[name] = value
}

// SetTargeting registers all properties of the targeting context
func (p *RemoteProvider) SetTargeting(tc domain.TargetingContext) {
	p.SetCustomProperty(PropBetaUser, strconv.FormatBool(tc.IsBetaUser))
	p.SetCustomProperty(PropLoggedIn, strconv.FormatBool(tc.IsLoggedIn))
	p.SetCustomProperty(PropCompany, tc.Company)
}

// Setup makes the initial sync with retries and schedules periodic refresh until ctx is done.
// Refresh is scheduled even if the initial sync failed, the error is returned to the caller.
func (p *RemoteProvider) Setup(ctx context.Context) error {
	if p.params.URL == "" {
		log.Printf("[INFO] flag provider url not set, serving defaults")
		p.notify(FetchedEvent{Source: SourceOffline})
		return nil
	}

	rpt := repeater.NewBackoff(3, 100*time.Millisecond, repeater.WithMaxDelay(2*time.Second))
	syncErr := rpt.Do(ctx, func() error { return p.Sync(ctx) })
	if syncErr != nil {
		syncErr = fmt.Errorf("initial flag sync: %w", syncErr)
	}

	c := cron.New()
	if _, err := c.AddFunc(fmt.Sprintf("@every %s", p.params.SyncInterval), func() {
		if err := p.Sync(ctx); err != nil {
			log.Printf("[WARN] flag sync failed: %v", err)
		}
	}); err != nil {
		return errors.Join(syncErr, fmt.Errorf("schedule flag sync: %w", err))
	}
	c.Start()
	go func() {
		<-ctx.Done()
		<-c.Stop().Done()
		log.Printf("[DEBUG] flag sync stopped")
	}()

	return syncErr
}

// Sync fetches the configuration once
func (p *RemoteProvider) Sync(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, p.params.SyncTimeout)
	defer cancel()

	endpoint := strings.TrimRight(p.params.URL, "/") + "/configuration"
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, http.NoBody)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("X-API-Key", p.params.APIKey)
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("fetch configuration: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code %d for %s", resp.StatusCode, endpoint)
	}

	var cfg Configuration
	if err := json.NewDecoder(resp.Body).Decode(&cfg); err != nil {
		return fmt.Errorf("decode configuration: %w", err)
	}
	if cfg.Flags == nil {
		cfg.Flags = map[string]FlagConfig{}
	}

	p.mu.Lock()
	changed := p.cfg == nil || !reflect.DeepEqual(*p.cfg, cfg)
	p.cfg = &cfg
	p.mu.Unlock()

	log.Printf("[DEBUG] flag configuration fetched, %d flags, changed: %v", len(cfg.Flags), changed)
	p.notify(FetchedEvent{Changed: changed, Source: SourceNetwork})
	return nil
}

// Evaluate returns the value of the flag and whether a targeting rule produced it
func (p *RemoteProvider) Evaluate(ctx context.Context, name string) (value string, targeted bool, err error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	if v, ok := p.overrides[name]; ok {
		return v, false, nil
	}
	def, registered := p.defaults[name]
	if p.cfg == nil {
		return "", false, ErrNotSynced
	}

	fc, ok := p.cfg.Flags[name]
	if !ok {
		if !registered {
			return "", false, fmt.Errorf("%w: %s", ErrUnknownFlag, name)
		}
		return def.Default, false, nil
	}
	for _, r := range fc.Rules {
		if pv, ok := p.props[r.Property]; ok && pv == r.Equals {
			return r.Value, true, nil
		}
	}
	return fc.Value, false, nil
}

// SetOverride forces a flag value, overrides win over the remote configuration
func (p *RemoteProvider) SetOverride(name, value string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	def, ok := p.defaults[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownFlag, name)
	}
	if !def.Allows(value) {
		return fmt.Errorf("value %q not allowed for flag %s", value, name)
	}
	p.overrides[name] = value
	return nil
}

// ClearOverride removes a forced value
func (p *RemoteProvider) ClearOverride(name string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.overrides, name)
}

// Overrides returns a copy of forced values
func (p *RemoteProvider) Overrides() map[string]string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return maps.Clone(p.overrides)
}

func (p *RemoteProvider) notify(ev FetchedEvent) {
	if p.params.OnFetched != nil {
		p.params.OnFetched(ev)
	}
}
