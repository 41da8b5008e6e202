package bot

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/diindiin/internal/command"
	"github.com/mesh-intelligence/diindiin/internal/i18n"
	"github.com/mesh-intelligence/diindiin/internal/resolver"
	"github.com/mesh-intelligence/diindiin/pkg/types"
)

// reviewWords select the yearly review in /habit.
var reviewWords = []string{"review", "revisão", "revisao"}

func (d *Dispatcher) addHabitCommand(ctx context.Context, req *request) (Reply, error) {
	if len(req.args) == 0 {
		return d.usage(req, i18n.UsageAddHabit), nil
	}
	f, err := command.ExtractHabit(req.args)
	if err != nil {
		return Reply{}, err
	}
	return d.addHabit(ctx, req, f)
}

func (d *Dispatcher) addHabit(ctx context.Context, req *request, f command.HabitFields) (Reply, error) {
	h, err := d.store.Habits().Create(ctx, types.Habit{
		UserID:         req.userID(),
		Name:           f.Name,
		FrequencyType:  f.FrequencyType,
		FrequencyValue: f.FrequencyValue,
	})
	if err != nil {
		return Reply{}, fmt.Errorf("create habit: %w", err)
	}
	req.log.Info("habit added", zap.Int64("id", h.HabitID), zap.String("frequency", h.FrequencyType))
	return text(i18n.F(req.lang, i18n.HabitAdded, h.Name, frequency(req.lang, h))), nil
}

func frequency(lang types.Language, h types.Habit) string {
	if h.FrequencyType != types.FrequencyWeekly {
		return i18n.T(lang, i18n.FrequencyDaily)
	}
	times := "N/A"
	if h.FrequencyValue > 0 {
		times = strconv.Itoa(h.FrequencyValue)
	}
	return i18n.F(lang, i18n.FrequencyWeekly, times)
}

// habitCommand logs a habit, or shows the yearly review.
func (d *Dispatcher) habitCommand(ctx context.Context, req *request) (Reply, error) {
	if len(req.args) == 0 {
		return d.usage(req, i18n.UsageHabit), nil
	}
	for _, w := range reviewWords {
		if command.EqualFold(req.args[0], w) {
			return d.habitReview(ctx, req)
		}
	}
	f, err := command.ExtractHabitLog(req.args, req.today)
	if err != nil {
		return Reply{}, err
	}
	return d.logHabit(ctx, req, f)
}

// logHabit marks the habit done on f.Date. Logging the same day again
// updates that day's value.
func (d *Dispatcher) logHabit(ctx context.Context, req *request, f command.HabitLogFields) (Reply, error) {
	h, err := findAs[types.Habit](ctx, d, req, types.EntityHabit, f.Name)
	var notFound *resolver.ResolutionError
	if errors.As(err, &notFound) {
		return text(i18n.F(req.lang, i18n.HabitNotFound, f.Name)), nil
	}
	if err != nil {
		return Reply{}, err
	}
	log, err := d.store.Habits().Log(ctx, req.userID(), h.HabitID, f.Date, f.Value, "")
	if err != nil {
		return Reply{}, fmt.Errorf("log habit: %w", err)
	}
	req.log.Info("habit logged", zap.Int64("habit_id", h.HabitID), zap.Time("date", log.Date))

	var b strings.Builder
	b.WriteString(i18n.F(req.lang, i18n.HabitLogged, h.Name, date(log.Date)))
	if f.Value.Valid {
		b.WriteString(i18n.F(req.lang, i18n.HabitValueLine, number(req.lang, f.Value.Decimal), h.Unit))
	}
	b.WriteString(i18n.T(req.lang, i18n.CountedAsDay))
	return text(b.String()), nil
}

func (d *Dispatcher) listHabits(ctx context.Context, req *request) (Reply, error) {
	habits, err := d.store.Habits().List(ctx, req.userID())
	if err != nil {
		return Reply{}, fmt.Errorf("list habits: %w", err)
	}
	if len(habits) == 0 {
		return d.usage(req, i18n.NoHabits), nil
	}
	var b strings.Builder
	b.WriteString(i18n.T(req.lang, i18n.HabitsHeader))
	for _, h := range habits {
		stats, err := d.habitStats(ctx, req, h)
		if err != nil {
			return Reply{}, err
		}
		b.WriteString(i18n.F(req.lang, i18n.HabitItem,
			h.Name, h.HabitID, stats.CompletedDays, percent(req.lang, stats.Percentage)))
		if stats.Streak > 0 {
			b.WriteString(i18n.F(req.lang, i18n.StreakLine, stats.Streak))
		}
		b.WriteString("\n")
	}
	return text(strings.TrimRight(b.String(), "\n")), nil
}

func (d *Dispatcher) habitStats(ctx context.Context, req *request, h types.Habit) (types.HabitStats, error) {
	stats, err := d.store.Habits().Stats(ctx, h.HabitID, req.today.Year(), req.today)
	if err != nil {
		return types.HabitStats{}, fmt.Errorf("habit stats: %w", err)
	}
	return stats, nil
}

func (d *Dispatcher) habitReview(ctx context.Context, req *request) (Reply, error) {
	year := req.today.Year()
	review, err := d.store.Habits().YearlyReview(ctx, req.userID(), year)
	if err != nil {
		return Reply{}, fmt.Errorf("habit review: %w", err)
	}
	if len(review) == 0 {
		return d.usage(req, i18n.NoHabits), nil
	}
	var b strings.Builder
	b.WriteString(i18n.F(req.lang, i18n.HabitReviewHeader, year))
	for _, hc := range review {
		b.WriteString(i18n.F(req.lang, i18n.HabitReviewLine, emojiFor(hc.Habit.Name), hc.Habit.Name, hc.Count))
	}
	return text(b.String()), nil
}

func (d *Dispatcher) habitStatsCommand(ctx context.Context, req *request) (Reply, error) {
	if len(req.args) == 0 {
		return d.usage(req, i18n.UsageHabitStats), nil
	}
	return d.viewHabit(ctx, req, strings.Join(req.args, " "))
}

func (d *Dispatcher) viewHabit(ctx context.Context, req *request, identifier string) (Reply, error) {
	h, err := findAs[types.Habit](ctx, d, req, types.EntityHabit, identifier)
	if err != nil {
		return Reply{}, err
	}
	stats, err := d.habitStats(ctx, req, h)
	if err != nil {
		return Reply{}, err
	}
	var b strings.Builder
	b.WriteString(i18n.F(req.lang, i18n.HabitStats,
		h.Name, stats.Year, stats.CompletedDays, stats.TotalDays, percent(req.lang, stats.Percentage)))
	if stats.Streak > 0 {
		b.WriteString(i18n.F(req.lang, i18n.CurrentStreak, stats.Streak))
	}
	return text(b.String()), nil
}

func (d *Dispatcher) habitProgress(ctx context.Context, req *request) (Reply, error) {
	habits, err := d.store.Habits().List(ctx, req.userID())
	if err != nil {
		return Reply{}, fmt.Errorf("list habits: %w", err)
	}
	if len(habits) == 0 {
		return d.usage(req, i18n.NoHabits), nil
	}
	var b strings.Builder
	b.WriteString(i18n.F(req.lang, i18n.HabitProgressHeader, req.today.Year()))
	for _, h := range habits {
		stats, err := d.habitStats(ctx, req, h)
		if err != nil {
			return Reply{}, err
		}
		b.WriteString(i18n.F(req.lang, i18n.HabitProgressItem,
			h.Name, stats.CompletedDays, stats.TotalDays, percent(req.lang, stats.Percentage)))
		if stats.Streak > 0 {
			b.WriteString(i18n.F(req.lang, i18n.StreakLine, stats.Streak))
		}
		b.WriteString("\n")
	}
	return text(strings.TrimRight(b.String(), "\n")), nil
}

func (d *Dispatcher) linkHabitCommand(ctx context.Context, req *request) (Reply, error) {
	if len(req.args) < 2 {
		return d.usage(req, i18n.UsageLinkHabit), nil
	}
	f, err := command.ExtractLink(req.args)
	if err != nil {
		return Reply{}, err
	}
	return d.linkHabit(ctx, req, f)
}

// linkHabit makes a habit feed an OKR action.
func (d *Dispatcher) linkHabit(ctx context.Context, req *request, f command.LinkFields) (Reply, error) {
	h, err := findAs[types.Habit](ctx, d, req, types.EntityHabit, f.Habit)
	if err != nil {
		return Reply{}, err
	}
	a, err := findAs[types.Action](ctx, d, req, types.EntityAction, f.Action)
	if err != nil {
		return Reply{}, err
	}
	h, err = d.store.Habits().LinkAction(ctx, req.userID(), h.HabitID, a.ActionID)
	if err != nil {
		return Reply{}, fmt.Errorf("link habit: %w", err)
	}
	req.log.Info("habit linked", zap.Int64("habit_id", h.HabitID), zap.Int64("action_id", a.ActionID))
	return text(i18n.F(req.lang, i18n.HabitLinked, h.Name, a.Description, a.ActionID)), nil
}
