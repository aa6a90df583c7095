// Package docstore implements the profile store against gocloud.dev document
// collections: one primary-key lookup path per collection plus a single
// equality-indexed query over the merchants' category key. Collection URLs
// come from config, so the same code runs against the in-process mem:// driver
// locally and a managed document database in deployments.
package docstore

import (
	"context"
	"log/slog"
	"strings"

	"greenmarket/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
	"gocloud.dev/docstore"
	_ "gocloud.dev/docstore/memdocstore" // mem:// driver for local and test runs
)

// Collections bundles the opened document collections of the profile store.
type Collections struct {
	Merchants *docstore.Collection
	Accounts  *docstore.Collection
}

// Params holds dependencies for the collections, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewCollections opens both collections and registers their shutdown hook.
func NewCollections(params Params) (*Collections, error) {
	cfg := params.Config.Docstore
	if cfg == nil || strings.TrimSpace(cfg.MerchantsURL) == "" || strings.TrimSpace(cfg.AccountsURL) == "" {
		return nil, errors.New("docstore collection URLs are not configured")
	}

	merchants, err := docstore.OpenCollection(params.Ctx, cfg.MerchantsURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open merchants collection %q", cfg.MerchantsURL)
	}

	accounts, err := docstore.OpenCollection(params.Ctx, cfg.AccountsURL)
	if err != nil {
		_ = merchants.Close()

		return nil, errors.Wrapf(err, "failed to open accounts collection %q", cfg.AccountsURL)
	}

	colls := &Collections{Merchants: merchants, Accounts: accounts}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing document collections")

			return colls.Close()
		},
	})

	return colls, nil
}

// Close releases both collections.
func (c *Collections) Close() error {
	merr := c.Merchants.Close()
	aerr := c.Accounts.Close()
	if merr != nil {
		return errors.Wrap(merr, "close merchants collection")
	}

	return errors.Wrap(aerr, "close accounts collection")
}
