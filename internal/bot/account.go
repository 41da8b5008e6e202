package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/diindiin/internal/i18n"
	"github.com/mesh-intelligence/diindiin/pkg/types"
)

// start registers the sender, crediting the owner of code as referrer.
// Registered users get their referral code again.
func (d *Dispatcher) start(ctx context.Context, log *zap.Logger, msg Message, code string) (Reply, error) {
	users := d.store.Users()
	u, err := users.GetByChatID(ctx, msg.ChatID)
	if err == nil {
		name := u.FirstName
		if name == "" {
			name = u.Username
		}
		return text(i18n.F(u.Language, i18n.WelcomeBack, name, u.ReferralCode) + i18n.T(u.Language, i18n.UseHelp)), nil
	}
	if !errors.Is(err, types.ErrNotFound) {
		return Reply{}, fmt.Errorf("load user: %w", err)
	}

	lang := d.languageOf(msg)
	nu := types.User{
		ChatID:    msg.ChatID,
		Username:  msg.Username,
		FirstName: msg.FirstName,
		LastName:  msg.LastName,
		Language:  lang,
		Timezone:  d.defaultTZ,
	}
	if code = strings.TrimSpace(code); code != "" {
		ref, err := users.GetByReferralCode(ctx, code)
		switch {
		case err == nil:
			nu.ReferredBy = ref.UserID
		case errors.Is(err, types.ErrNotFound):
			log.Info("unknown referral code", zap.String("code", code))
		default:
			return Reply{}, fmt.Errorf("load referrer: %w", err)
		}
	}

	created, err := users.Create(ctx, nu)
	if err != nil {
		return Reply{}, fmt.Errorf("create user: %w", err)
	}
	log.Info("user registered",
		zap.Int64("user_id", created.UserID),
		zap.Int64("referred_by", created.ReferredBy),
		zap.Stringer("language", created.Language))

	var b strings.Builder
	b.WriteString(i18n.F(lang, i18n.Welcome, created.ReferralCode))
	if created.ReferredBy != 0 {
		b.WriteString(i18n.T(lang, i18n.ReferredByFriend))
	}
	b.WriteString(i18n.T(lang, i18n.UseHelp))
	return text(b.String()), nil
}

func (d *Dispatcher) help(_ context.Context, req *request) (Reply, error) {
	return text(i18n.T(req.lang, i18n.Help)), nil
}

func (d *Dispatcher) refer(ctx context.Context, req *request) (Reply, error) {
	n, err := d.store.Users().CountReferrals(ctx, req.userID())
	if err != nil {
		return Reply{}, fmt.Errorf("count referrals: %w", err)
	}
	link := fmt.Sprintf("https://t.me/%s?start=%s", d.botName, req.user.ReferralCode)
	return text(i18n.F(req.lang, i18n.Referral, link, n)), nil
}

// language shows or sets the reply language. Unknown codes fall back to
// Portuguese.
func (d *Dispatcher) language(ctx context.Context, req *request) (Reply, error) {
	if len(req.args) == 0 {
		return text(i18n.F(req.lang, i18n.LanguageCurrent, i18n.LanguageName(req.lang))), nil
	}
	lang, ok := types.ParseLanguage(req.args[0])
	if err := d.store.Users().SetLanguage(ctx, req.userID(), lang); err != nil {
		return Reply{}, fmt.Errorf("set language: %w", err)
	}
	req.log.Info("language set", zap.Stringer("language", lang), zap.Bool("supported", ok))
	if !ok {
		return text(i18n.T(lang, i18n.LanguageNotSupported)), nil
	}
	return text(i18n.F(lang, i18n.LanguageSet, i18n.LanguageName(lang))), nil
}

// timezone shows or sets the zone that decides the user's "today".
func (d *Dispatcher) timezone(ctx context.Context, req *request) (Reply, error) {
	if len(req.args) == 0 {
		return text(i18n.F(req.lang, i18n.TimezoneCurrent, req.user.Location().String())), nil
	}
	name := req.args[0]
	loc, err := time.LoadLocation(name)
	if err != nil || name == "Local" {
		return text(i18n.F(req.lang, i18n.TimezoneInvalid, name)), nil
	}
	if err := d.store.Users().SetTimezone(ctx, req.userID(), loc.String()); err != nil {
		return Reply{}, fmt.Errorf("set timezone: %w", err)
	}
	req.log.Info("timezone set", zap.String("timezone", loc.String()))
	return text(i18n.F(req.lang, i18n.TimezoneSet, loc.String())), nil
}
