// Shared wiring for the commands that talk to the bot.
package main

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/diindiin/internal/ai"
	"github.com/mesh-intelligence/diindiin/internal/bot"
	"github.com/mesh-intelligence/diindiin/pkg/sqlite"
	"github.com/mesh-intelligence/diindiin/pkg/types"
)

// attachBackend resolves the data directory and attaches the configured
// store. The caller must Detach it.
func attachBackend() (types.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	backend := sqlite.NewStore()
	if err := backend.Attach(types.Config{Backend: conf.Backend, DataDir: dataDir}); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}
	return backend, nil
}

// newService picks the OpenAI service when a key is configured and the
// static fallback otherwise.
func newService(cfg ai.Config, log *zap.Logger) ai.Service {
	if cfg.APIKey == "" {
		log.Debug("no OpenAI key, AI features disabled")
		return ai.Static{}
	}
	return ai.NewOpenAI(cfg, log)
}

func newDispatcher(store types.Store, s settings, log *zap.Logger) *bot.Dispatcher {
	return bot.NewDispatcher(store, newService(s.AI, log), log,
		bot.WithBotName(s.BotName),
		bot.WithDefaultLanguage(s.DefaultLanguage),
		bot.WithDefaultTimezone(s.Timezone),
	)
}

// session is an attached store with a dispatcher over it.
type session struct {
	backend    types.Store
	dispatcher *bot.Dispatcher
	log        *zap.Logger
}

// openSession builds the logger from conf, writing logs to logOut.
func openSession(logOut io.Writer) (*session, error) {
	log, err := newLogger(conf.LogLevel, conf.LogFormat, logOut)
	if err != nil {
		return nil, err
	}
	backend, err := attachBackend()
	if err != nil {
		return nil, err
	}
	return &session{
		backend:    backend,
		dispatcher: newDispatcher(backend, conf, log),
		log:        log,
	}, nil
}

func (s *session) close() error {
	_ = s.log.Sync()
	return s.backend.Detach()
}
