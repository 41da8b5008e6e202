package resolver

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/diindiin/pkg/types"
)

type record struct {
	id    int64
	owner int64
	name  string
}

func (r record) EntityID() int64     { return r.id }
func (r record) DisplayName() string { return r.name }

// fakeLookup returns records in insertion order and counts calls.
type fakeLookup struct {
	records   []record
	err       error
	findCalls int
	searches  int
}

func (f *fakeLookup) FindByID(_ context.Context, _ types.EntityType, ownerID, id int64) (types.Named, error) {
	f.findCalls++
	if f.err != nil {
		return nil, f.err
	}
	for _, r := range f.records {
		if r.id == id && r.owner == ownerID {
			return r, nil
		}
	}
	return nil, types.ErrNotFound
}

func (f *fakeLookup) SearchByName(_ context.Context, _ types.EntityType, ownerID int64, query string, limit int) ([]types.Named, error) {
	f.searches++
	if f.err != nil {
		return nil, f.err
	}
	var out []types.Named
	for _, r := range f.records {
		if r.owner == ownerID && len(out) < limit && containsFold(r.name, query) {
			out = append(out, r)
		}
	}
	return out, nil
}

func containsFold(s, sub string) bool {
	return sub != "" && strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func TestParseIdentifier(t *testing.T) {
	tests := []struct {
		raw    string
		wantID int64
		isID   bool
	}{
		{"7", 7, true},
		{"007", 7, true},
		{"0", 0, false},
		{"-7", 0, false},
		{"+7", 0, false},
		{"7a", 0, false},
		{"1.5", 0, false},
		{"uber", 0, false},
		{"99999999999999999999", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			q := ParseIdentifier(tt.raw)
			assert.Equal(t, tt.raw, q.Raw)
			assert.Equal(t, tt.isID, q.IsID)
			assert.Equal(t, tt.wantID, q.ID)
		})
	}
}

func TestResolveExactNameBeatsPartial(t *testing.T) {
	orders := [][]record{
		{{1, 10, "uber eats"}, {2, 10, "uber"}},
		{{2, 10, "uber"}, {1, 10, "uber eats"}},
	}
	for _, recs := range orders {
		r := New(&fakeLookup{records: recs})
		got, err := r.Resolve(context.Background(), types.EntityExpense, "uber", 10)
		require.NoError(t, err)
		assert.Equal(t, int64(2), got.Entity.EntityID())
		assert.Equal(t, MethodExactName, got.Method)
	}
}

func TestResolveExactNameIgnoresCase(t *testing.T) {
	r := New(&fakeLookup{records: []record{{1, 10, "Uber Eats"}, {2, 10, "UBER"}}})
	got, err := r.Resolve(context.Background(), types.EntityExpense, "uber", 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Entity.EntityID())
	assert.Equal(t, MethodExactName, got.Method)
}

func TestResolvePartialPicksLexicallySmallest(t *testing.T) {
	r := New(&fakeLookup{records: []record{
		{1, 10, "peso corporal"},
		{2, 10, "Meta de peso"},
		{3, 10, "perder peso"},
	}})
	got, err := r.Resolve(context.Background(), types.EntityKeyResult, "peso", 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.Entity.EntityID())
	assert.Equal(t, MethodPartialName, got.Method)
}

func TestResolveIntegerDoesNotFallBack(t *testing.T) {
	lookup := &fakeLookup{records: []record{{3, 10, "7"}}}
	r := New(lookup)

	_, err := r.Resolve(context.Background(), types.EntityHabit, "7", 10)
	require.Error(t, err)
	assert.ErrorIs(t, err, types.ErrNotFound)
	var re *ResolutionError
	require.ErrorAs(t, err, &re)
	assert.Equal(t, "7", re.Identifier)
	assert.Equal(t, 1, lookup.findCalls)
	assert.Zero(t, lookup.searches)
}

func TestResolveByID(t *testing.T) {
	r := New(&fakeLookup{records: []record{{7, 10, "habit"}, {8, 11, "other"}}})
	got, err := r.Resolve(context.Background(), types.EntityHabit, "7", 10)
	require.NoError(t, err)
	assert.Equal(t, MethodExactID, got.Method)
	assert.Equal(t, "habit", got.Entity.DisplayName())

	_, err = r.Resolve(context.Background(), types.EntityHabit, "8", 10)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestResolveNotFound(t *testing.T) {
	r := New(&fakeLookup{records: []record{{1, 10, "peso"}, {2, 11, "outro"}}})

	_, err := r.Resolve(context.Background(), types.EntityKeyResult, "outro", 10)
	assert.ErrorIs(t, err, types.ErrNotFound)

	_, err = r.Resolve(context.Background(), types.EntityKeyResult, "  ", 10)
	assert.ErrorIs(t, err, types.ErrNotFound)
}

func TestResolvePassesStorageErrors(t *testing.T) {
	boom := errors.New("disk on fire")
	r := New(&fakeLookup{err: boom})

	_, err := r.Resolve(context.Background(), types.EntityHabit, "3", 10)
	assert.ErrorIs(t, err, boom)
	assert.NotErrorIs(t, err, types.ErrNotFound)

	_, err = r.Resolve(context.Background(), types.EntityHabit, "treino", 10)
	assert.ErrorIs(t, err, boom)
}

func TestPickIgnoresNonMatchingCandidates(t *testing.T) {
	_, _, ok := Pick("uber", []types.Named{record{1, 1, "taxi"}, nil})
	assert.False(t, ok)

	rec, method, ok := Pick("ÁGUA", []types.Named{record{1, 1, "beber água"}})
	require.True(t, ok)
	assert.Equal(t, MethodPartialName, method)
	assert.Equal(t, int64(1), rec.EntityID())
}

func TestWithLimit(t *testing.T) {
	r := New(&fakeLookup{}).WithLimit(5)
	assert.Equal(t, 5, r.limit)
	assert.Equal(t, DefaultSearchLimit, New(&fakeLookup{}).WithLimit(0).limit)
}
