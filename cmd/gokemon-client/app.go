package main

import (
	"susie.mx/gokemon-client/internal/clients/gokemon"
	"susie.mx/gokemon-client/internal/config"
	"susie.mx/gokemon-client/internal/orchestrators/catalog"
	"susie.mx/gokemon-client/internal/orchestrators/friends"
	"susie.mx/gokemon-client/internal/orchestrators/trade"
	"susie.mx/gokemon-client/internal/pkg/idgen"
	"susie.mx/gokemon-client/internal/redis"
	"susie.mx/gokemon-client/internal/repositories/preferences"
)

// app wires the orchestrators a command needs from environment configuration.
// Redis connects lazily, so commands that never touch preferences do not need
// a reachable instance.
type app struct {
	cfg      *config.Config
	client   gokemon.Client
	catalog  catalog.Service
	friends  friends.Service
	inbox    trade.Inbox
	workflow *trade.Workflow
}

func newApp() (*app, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	client, err := gokemon.New(&gokemon.Config{
		BaseURL:       cfg.API.BaseURL,
		SessionCookie: cfg.API.SessionCookie,
		HTTPTimeout:   cfg.API.HTTPTimeout,
	})
	if err != nil {
		return nil, err
	}

	redisClient, err := redis.NewClient(cfg.Redis.Address, nil)
	if err != nil {
		return nil, err
	}

	prefsRepo, err := preferences.NewRedisRepository(&preferences.Config{
		Client: redisClient,
	})
	if err != nil {
		return nil, err
	}

	catalogSvc, err := catalog.NewOrchestrator(&catalog.Config{
		Client:          client,
		PreferencesRepo: prefsRepo,
	})
	if err != nil {
		return nil, err
	}

	friendsSvc, err := friends.NewOrchestrator(&friends.Config{
		Client: client,
	})
	if err != nil {
		return nil, err
	}

	inbox, err := trade.NewInbox(&trade.InboxConfig{
		Client: client,
	})
	if err != nil {
		return nil, err
	}

	workflow, err := trade.NewWorkflow(&trade.Config{
		Client:      client,
		IDGenerator: idgen.NewUUID("draft"),
	})
	if err != nil {
		return nil, err
	}

	return &app{
		cfg:      cfg,
		client:   client,
		catalog:  catalogSvc,
		friends:  friendsSvc,
		inbox:    inbox,
		workflow: workflow,
	}, nil
}
