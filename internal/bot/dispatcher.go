// Package bot answers chat messages.
//
// A Dispatcher routes each message either to a dedicated slash command or,
// for generic verb aliases and plain text, through the command classifier,
// the field extractors, and the entity resolver before touching storage.
// Every message gets exactly one reply in the user's language.
package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mesh-intelligence/diindiin/internal/ai"
	"github.com/mesh-intelligence/diindiin/internal/command"
	"github.com/mesh-intelligence/diindiin/internal/i18n"
	"github.com/mesh-intelligence/diindiin/internal/resolver"
	"github.com/mesh-intelligence/diindiin/pkg/types"
)

// DefaultBotName is used in referral links when no name is configured.
const DefaultBotName = "diindiin_bot"

// verbAliases maps slash aliases to the verb they force on the classifier.
var verbAliases = map[string]command.Verb{
	"add":       command.VerbAdd,
	"adicionar": command.VerbAdd,
	"list":      command.VerbList,
	"listar":    command.VerbList,
	"show":      command.VerbShow,
	"mostrar":   command.VerbShow,
	"view":      command.VerbView,
	"ver":       command.VerbView,
	"update":    command.VerbUpdate,
	"atualizar": command.VerbUpdate,
	"edit":      command.VerbEdit,
	"editar":    command.VerbEdit,
	"delete":    command.VerbDelete,
	"deletar":   command.VerbDelete,
	"apagar":    command.VerbDelete,
	"link":      command.VerbLink,
	"vincular":  command.VerbLink,
}

var reasonKeys = map[command.Reason]i18n.Key{
	command.ReasonInvalidAmount:     i18n.InvalidAmount,
	command.ReasonInvalidDate:       i18n.InvalidDate,
	command.ReasonMissingNameOrType: i18n.MissingNameOrType,
	command.ReasonMissingIdentifier: i18n.MissingIdentifier,
	command.ReasonInvalidValue:      i18n.InvalidValue,
}

type handler func(ctx context.Context, req *request) (Reply, error)

// request is one message from a registered user.
type request struct {
	user  types.User
	lang  types.Language
	now   time.Time
	today time.Time // Midnight in the user's zone.
	name  string    // Slash command without the slash; empty for plain text.
	rest  string    // Text after the command.
	args  []string  // Tokens of rest.
	log   *zap.Logger
}

func (r *request) userID() int64 { return r.user.UserID }

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithBotName sets the bot handle used in referral links and stripped from
// commands such as /help@name.
func WithBotName(name string) Option {
	return func(d *Dispatcher) {
		if name != "" {
			d.botName = name
		}
	}
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(d *Dispatcher) { d.now = now }
}

// WithDefaultLanguage sets the language of users whose client sends no
// language tag.
func WithDefaultLanguage(lang types.Language) Option {
	return func(d *Dispatcher) { d.defaultLang = lang }
}

// WithDefaultTimezone sets the zone given to new users.
func WithDefaultTimezone(tz string) Option {
	return func(d *Dispatcher) {
		if tz != "" {
			d.defaultTZ = tz
		}
	}
}

// Dispatcher turns messages into replies. It is safe for concurrent use.
type Dispatcher struct {
	store       types.Store
	ai          ai.Service
	resolver    *resolver.Resolver
	log         *zap.Logger
	botName     string
	now         func() time.Time
	defaultLang types.Language
	defaultTZ   string
	commands    map[string]handler
}

// NewDispatcher returns a Dispatcher over an attached store. A nil service
// disables AI features and a nil logger discards logs.
func NewDispatcher(store types.Store, svc ai.Service, log *zap.Logger, opts ...Option) *Dispatcher {
	if svc == nil {
		svc = ai.Static{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	d := &Dispatcher{
		store:     store,
		ai:        svc,
		resolver:  resolver.New(store.Lookup()),
		log:       log.Named("bot"),
		botName:   DefaultBotName,
		now:       time.Now,
		defaultTZ: types.DefaultTimezone,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.commands = d.routes()
	return d
}

func (d *Dispatcher) routes() map[string]handler {
	return map[string]handler{
		"help":             d.help,
		"ajuda":            d.help,
		"refer":            d.refer,
		"language":         d.language,
		"idioma":           d.language,
		"timezone":         d.timezone,
		"income":           d.income,
		"incomes":          d.incomes,
		"report":           d.report,
		"reportcsv":        d.reportCSV,
		"categories":       d.categories,
		"spreadsheet":      d.spreadsheet,
		"viewspreadsheet":  d.viewSpreadsheet,
		"investments":      d.listInvestments,
		"addinvestment":    d.addInvestmentCommand,
		"updateinvestment": d.updateInvestmentCommand,
		"contribute":       d.contributeCommand,
		"okrs":             d.listOKRs,
		"okr":              d.okrCommand,
		"addobjective":     d.addObjectiveCommand,
		"addkr":            d.addKeyResultCommand,
		"addaction":        d.addActionCommand,
		"updateprogress":   d.updateProgressCommand,
		"habits":           d.listHabits,
		"addhabit":         d.addHabitCommand,
		"habit":            d.habitCommand,
		"habitstats":       d.habitStatsCommand,
		"habitprogress":    d.habitProgress,
		"linkhabit":        d.linkHabitCommand,
	}
}

// Handle answers msg. It never fails: storage and AI errors are logged and
// answered with a generic apology.
func (d *Dispatcher) Handle(ctx context.Context, msg Message) Reply {
	started := time.Now()
	name, rest := splitCommand(msg.Text, d.botName)
	log := d.log.With(
		zap.String("request_id", uuid.NewString()),
		zap.Int64("chat_id", msg.ChatID),
		zap.String("command", name),
	)

	var (
		reply Reply
		err   error
	)
	if name == "start" {
		reply, err = d.start(ctx, log, msg, rest)
		if err != nil {
			log.Error("start", zap.Error(err))
			reply = text(i18n.T(d.languageOf(msg), i18n.GenericError))
		}
		log.Info("message handled", zap.Duration("duration", time.Since(started)))
		return reply
	}

	user, err := d.store.Users().GetByChatID(ctx, msg.ChatID)
	if errors.Is(err, types.ErrNotFound) {
		log.Debug("unregistered user")
		return text(i18n.T(d.languageOf(msg), i18n.PleaseStart))
	}
	if err != nil {
		log.Error("load user", zap.Error(err))
		return text(i18n.T(d.languageOf(msg), i18n.GenericError))
	}

	now := d.now()
	req := &request{
		user:  user,
		lang:  user.Language,
		now:   now,
		today: user.Today(now),
		name:  name,
		rest:  rest,
		args:  command.Tokenize(rest),
		log:   log.With(zap.Int64("user_id", user.UserID)),
	}
	reply, err = d.route(ctx, req)
	if err != nil {
		reply = d.failure(req, err)
	}
	req.log.Info("message handled", zap.Duration("duration", time.Since(started)))
	return reply
}

func (d *Dispatcher) route(ctx context.Context, req *request) (Reply, error) {
	if req.name == "" {
		cmd := command.Parse(req.rest, req.lang)
		if cmd.Entity == types.EntityNone {
			return d.help(ctx, req)
		}
		if cmd.Inferred && cmd.VerbDefaulted {
			// "50 coffee" records an expense.
			cmd.Verb = command.VerbAdd
		}
		return d.generic(ctx, req, cmd)
	}
	if verb, ok := verbAliases[req.name]; ok {
		return d.generic(ctx, req, command.ParseAs(verb, req.rest, req.lang))
	}
	if h, ok := d.commands[req.name]; ok {
		return h(ctx, req)
	}
	return d.help(ctx, req)
}

// failure turns a handler error into the reply the user sees.
func (d *Dispatcher) failure(req *request, err error) Reply {
	var (
		extractErr *command.ExtractionError
		resolveErr *resolver.ResolutionError
	)
	switch {
	case errors.As(err, &extractErr):
		req.log.Debug("extract fields", zap.Error(err))
		if key, ok := reasonKeys[extractErr.Reason]; ok {
			return text(i18n.T(req.lang, key))
		}
	case errors.As(err, &resolveErr):
		req.log.Debug("resolve identifier", zap.Error(err))
		return text(i18n.F(req.lang, i18n.NotFound,
			i18n.EntityTitle(resolveErr.Entity, req.lang),
			resolveErr.Identifier,
			i18n.ListCommand(resolveErr.Entity, req.lang)))
	case errors.Is(err, types.ErrInvalidName):
		return text(i18n.T(req.lang, i18n.MissingNameOrType))
	case errors.Is(err, types.ErrInvalidData):
		return text(i18n.T(req.lang, i18n.InvalidValue))
	}
	req.log.Error("handle message", zap.Error(err))
	return text(i18n.T(req.lang, i18n.GenericError))
}

// splitCommand separates a leading /command, lower-cased, from the rest of
// text. A @botName suffix is dropped; a suffix naming another bot is kept
// so the command matches nothing. Plain text has an empty name.
func splitCommand(s, botName string) (name, rest string) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "/") {
		return "", s
	}
	head, rest := s, ""
	if i := strings.IndexFunc(s, unicode.IsSpace); i >= 0 {
		head, rest = s[:i], strings.TrimSpace(s[i:])
	}
	head = strings.TrimPrefix(head, "/")
	if at := strings.IndexByte(head, '@'); at >= 0 && strings.EqualFold(head[at+1:], botName) {
		head = head[:at]
	}
	return strings.ToLower(head), rest
}

// Busy answers a message the server could not queue. It reads no storage,
// so the language comes from the client tag.
func (d *Dispatcher) Busy(msg Message) Reply {
	return text(i18n.T(d.languageOf(msg), i18n.Busy))
}

func (d *Dispatcher) languageOf(msg Message) types.Language {
	if msg.LanguageCode == "" {
		return d.defaultLang
	}
	return types.NormalizeLanguage(msg.LanguageCode)
}

// find resolves identifier to a record of entity owned by the user.
func (d *Dispatcher) find(ctx context.Context, req *request, entity types.EntityType, identifier string) (types.Named, error) {
	res, err := d.resolver.Resolve(ctx, entity, identifier, req.userID())
	if err != nil {
		return nil, err
	}
	req.log.Debug("identifier resolved",
		zap.Stringer("entity", entity),
		zap.String("identifier", identifier),
		zap.Stringer("method", res.Method),
		zap.Int64("id", res.Entity.EntityID()))
	return res.Entity, nil
}

// findAs is find with the record's concrete type.
func findAs[T types.Named](ctx context.Context, d *Dispatcher, req *request, entity types.EntityType, identifier string) (T, error) {
	var zero T
	rec, err := d.find(ctx, req, entity, identifier)
	if err != nil {
		return zero, err
	}
	v, ok := rec.(T)
	if !ok {
		return zero, fmt.Errorf("resolve %s: unexpected record %T", entity, rec)
	}
	return v, nil
}

func (d *Dispatcher) usage(req *request, key i18n.Key) Reply {
	return text(i18n.T(req.lang, key))
}

func isReason(err error, reason command.Reason) bool {
	return errors.Is(err, &command.ExtractionError{Reason: reason})
}

// verbWord names verb the way the user can type it.
func verbWord(req *request, verb command.Verb) string {
	if req.name != "" {
		return "/" + req.name
	}
	if words := command.VerbKeywords(verb, req.lang); len(words) > 0 {
		return words[0]
	}
	return verb.String()
}
