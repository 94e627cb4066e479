package remotedemo

import (
	"io"
	"sync"

	"github.com/abdullahkhan155/smart-cart-landing-sub000/config"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/constants"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/core"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/db"
	errs "github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/errors"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/lumber"
	"github.com/abdullahkhan155/smart-cart-landing-sub000/pkg/supabase"
	"github.com/pkg/errors"
)

type builder func(cfg config.RemoteStoreConfig, logger lumber.Logger) (core.RemoteDemoStore, error)

// Provider resolves the remote store once per process. A missing url or
// service key resolves to no store for the lifetime of the provider.
type Provider struct {
	cfg    config.RemoteStoreConfig
	logger lumber.Logger
	build  builder

	once  sync.Once
	store core.RemoteDemoStore
}

// NewProvider returns a provider for cfg. Nothing is built until Client is called.
func NewProvider(cfg config.RemoteStoreConfig, logger lumber.Logger) *Provider {
	return &Provider{cfg: cfg, logger: logger, build: build}
}

// Client returns the cached remote store, or nil when remote storage is unavailable.
func (p *Provider) Client() core.RemoteDemoStore {
	p.once.Do(func() {
		if !p.cfg.HasURL() || !p.cfg.HasServiceKey() {
			p.logger.Warnf("supabase credentials missing (url set: %t, service key set: %t), demo requests go to local storage",
				p.cfg.HasURL(), p.cfg.HasServiceKey())
			return
		}
		store, err := p.build(p.cfg, p.logger)
		if err != nil {
			p.logger.Errorf("failed to create %s remote store, demo requests go to local storage: %v", p.cfg.Driver, err)
			return
		}
		p.logger.Infof("remote demo store ready, driver %s", p.cfg.Driver)
		p.store = store
	})
	return p.store
}

// Status reports which remote settings are present. It never exposes their values.
func (p *Provider) Status() core.RemoteStoreStatus {
	return core.RemoteStoreStatus{
		SupabaseConfigured: p.cfg.HasURL() && p.cfg.HasServiceKey(),
		HasURL:             p.cfg.HasURL(),
		HasServiceKey:      p.cfg.HasServiceKey(),
	}
}

// Close releases the resolved store when it holds connections.
func (p *Provider) Close() error {
	if c, ok := p.store.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func build(cfg config.RemoteStoreConfig, logger lumber.Logger) (core.RemoteDemoStore, error) {
	table := cfg.Table
	if table == "" {
		table = constants.DemoRequestsTable
	}
	switch cfg.Driver {
	case "", constants.RemoteDriverSupabase:
		opts := []supabase.Option{}
		if cfg.Timeout > 0 {
			opts = append(opts, supabase.WithTimeout(cfg.Timeout))
		}
		client, err := supabase.New(cfg.URL, cfg.ServiceKey, opts...)
		if err != nil {
			return nil, err
		}
		return NewREST(client, table, logger), nil
	case constants.RemoteDriverPostgres:
		if cfg.DSN == "" {
			return nil, errors.New("postgres driver requires SUPABASE_DB_URL")
		}
		conn, err := db.ConnectPostgres(cfg.DSN, logger)
		if err != nil {
			return nil, err
		}
		return NewPostgres(conn, table, logger), nil
	default:
		return nil, errors.Wrap(errs.ErrUnknownRemoteDriver, cfg.Driver)
	}
}
