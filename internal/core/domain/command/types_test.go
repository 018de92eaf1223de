package command

import (
	"context"
	"solaire/internal/core/domain"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTypeTableDefaults(t *testing.T) {
	types := NewTypeTable(false)

	for _, tag := range []string{TypeInt, TypeFloat, TypeDate} {
		_, ok := types.Lookup(tag)
		assert.True(t, ok, tag)
	}

	_, ok := types.Lookup(TypeMember)
	assert.False(t, ok, "member type needs a directory")
}

func TestTypeTableRegister(t *testing.T) {
	types := NewTypeTable(false)
	types.Register("Upper", func(_ context.Context, _ *domain.Message, raw string) (any, error) {
		return strings.ToUpper(raw), nil
	})

	r := NewResolver(types)
	cmd := &Command{Name: "shout", Args: []Arg{{Name: "word", Required: true, Type: "Upper"}}}

	got, err := r.Resolve(context.Background(), &domain.Message{}, cmd, []string{"hey"})

	require.NoError(t, err)
	word, ok := got.String("word")
	assert.True(t, ok)
	assert.Equal(t, "HEY", word)
}

func TestTypeTableCheck(t *testing.T) {
	types := NewTypeTable(false)

	require.NoError(t, types.Check(&Command{Name: "ok", Args: []Arg{{Name: "a", Type: TypeInt}, {Name: "b"}}}))

	err := types.Check(&Command{Name: "bad", Args: []Arg{{Name: "user", Type: TypeGuildMember}}})
	require.ErrorIs(t, err, ErrUnknownArgType)
	assert.Contains(t, err.Error(), "GuildMember")

	types.RegisterMember(&MockDirectory{})
	require.NoError(t, types.Check(&Command{Name: "ok", Args: []Arg{{Name: "user", Type: TypeGuildMember}}}))
}

func TestCoerceDateLayouts(t *testing.T) {
	want := time.Date(2021, time.July, 4, 0, 0, 0, 0, time.UTC)

	for _, raw := range []string{"2021-07-04", "2021/07/04", "7/4/2021", "07/04/2021", "7-4-2021", "4-Jul-2021", "Jul-4-2021"} {
		t.Run(raw, func(t *testing.T) {
			got, err := CoerceDate(context.Background(), nil, raw)

			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestCoerceDateWithTime(t *testing.T) {
	got, err := CoerceDate(context.Background(), nil, "2021-07-04T10:30:00Z")

	require.NoError(t, err)
	assert.True(t, time.Date(2021, time.July, 4, 10, 30, 0, 0, time.UTC).Equal(got.(time.Time)))
}

func TestArgsAccessors(t *testing.T) {
	when := time.Date(2021, time.July, 4, 0, 0, 0, 0, time.UTC)
	member := &domain.Member{ID: "1"}
	args := Args{"s": "text", "i": 3, "f": 1.5, "t": when, "m": member}

	s, ok := args.String("s")
	assert.True(t, ok)
	assert.Equal(t, "text", s)

	i, ok := args.Int("i")
	assert.True(t, ok)
	assert.Equal(t, 3, i)

	f, ok := args.Float("f")
	assert.True(t, ok)
	assert.InDelta(t, 1.5, f, 0)

	tm, ok := args.Time("t")
	assert.True(t, ok)
	assert.Equal(t, when, tm)

	m, ok := args.Member("m")
	assert.True(t, ok)
	assert.Same(t, member, m)

	_, ok = args.Int("s")
	assert.False(t, ok)
	assert.False(t, args.Has("missing"))
	assert.True(t, args.Has("s"))
}
