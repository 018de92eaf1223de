package command

import (
	"context"
	"errors"
	"fmt"
	"math"
	"solaire/internal/core/domain"
	"solaire/internal/core/port"
	"strconv"
	"sync"
	"time"
)

const (
	TypeInt    = "Int"
	TypeFloat  = "Float"
	TypeDate   = "Date"
	TypeMember = "Member"
	// TypeGuildMember is kept as an alias of TypeMember for Discord-flavoured definitions.
	TypeGuildMember = "GuildMember"
)

var (
	ErrNotAnInt   = errors.New("not a valid integer")
	ErrNotANumber = errors.New("not a valid number")
	ErrNotADate   = errors.New("not a valid date")
)

// dateLayouts are tried in order. Zoneless layouts are read as UTC.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	time.DateOnly,
	"2006/01/02",
	"1/2/2006",
	"1-2-2006",
	"2-Jan-2006",
	"Jan-2-2006",
}

// Coercer converts a raw token into the value bound for a typed arg.
type Coercer func(ctx context.Context, message *domain.Message, raw string) (any, error)

// TypeTable maps type tags used in definitions to coercers. Hosts add their own tags with Register.
type TypeTable struct {
	mutex    sync.RWMutex
	coercers map[string]Coercer
}

// NewTypeTable returns a table with Int, Float and Date registered. With strictDates an unparseable
// Date token is an error; otherwise it binds the zero time.
func NewTypeTable(strictDates bool) *TypeTable {
	t := &TypeTable{coercers: make(map[string]Coercer)}

	t.Register(TypeInt, CoerceInt)
	t.Register(TypeFloat, CoerceFloat)
	if strictDates {
		t.Register(TypeDate, CoerceDate)
	} else {
		t.Register(TypeDate, CoerceDateLenient)
	}

	return t
}

func (t *TypeTable) Register(tag string, coercer Coercer) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.coercers[tag] = coercer
}

// RegisterMember registers the Member and GuildMember tags against a user directory.
func (t *TypeTable) RegisterMember(directory port.MemberDirectory) {
	coercer := MemberCoercer(directory)

	t.Register(TypeMember, coercer)
	t.Register(TypeGuildMember, coercer)
}

func (t *TypeTable) Lookup(tag string) (Coercer, bool) {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	c, ok := t.coercers[tag]
	return c, ok
}

// Check fails when cmd declares a type tag the table does not know.
func (t *TypeTable) Check(cmd *Command) error {
	for _, arg := range cmd.Args {
		if arg.Type == "" {
			continue
		}

		if _, ok := t.Lookup(arg.Type); !ok {
			return fmt.Errorf("command %s, arg %s: %w: %s", cmd.Name, arg.Name, ErrUnknownArgType, arg.Type)
		}
	}

	return nil
}

func CoerceInt(_ context.Context, _ *domain.Message, raw string) (any, error) {
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, ErrNotAnInt
	}

	return v, nil
}

func CoerceFloat(_ context.Context, _ *domain.Message, raw string) (any, error) {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, ErrNotANumber
	}

	return v, nil
}

func CoerceDate(_ context.Context, _ *domain.Message, raw string) (any, error) {
	for _, layout := range dateLayouts {
		if v, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return v, nil
		}
	}

	return nil, ErrNotADate
}

// CoerceDateLenient never fails: a token that is not a date binds the zero time.
func CoerceDateLenient(ctx context.Context, message *domain.Message, raw string) (any, error) {
	v, err := CoerceDate(ctx, message, raw)
	if err != nil {
		return time.Time{}, nil
	}

	return v, nil
}

// MemberCoercer resolves mention tokens through the given directory.
func MemberCoercer(directory port.MemberDirectory) Coercer {
	return func(ctx context.Context, message *domain.Message, raw string) (any, error) {
		id, ok := domain.MentionID(raw)
		if !ok {
			return nil, domain.ErrMalformedMention
		}

		member, err := directory.ResolveMember(ctx, message, id)
		if err != nil {
			return nil, err
		}

		return member, nil
	}
}
