package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/renewadmin/internal/client/services"
)

var errBadValue = errors.New("invalid value")

type choice struct {
	id    int64
	label string
}

// field describes how one record attribute is shown and edited. name is the
// JSON name, which is also the key of validation errors.
type field[T any] struct {
	name  string
	label string
	get   func(T) string
	set   func(*T, string) error
	// choices, when set, lists the allowed values and may hide the field.
	choices func(ctx context.Context, draft T) (bool, []choice, error)
	// hidden fields are reset instead of prompted.
	reset func(*T)
	// dependsOn names earlier fields; asking one of them again asks this
	// field again too.
	dependsOn []string
	multiline bool
	readOnly  bool
}

func textField[T any](name, label string, p func(*T) *string) field[T] {
	return field[T]{
		name:  name,
		label: label,
		get:   func(t T) string { return *p(&t) },
		set:   func(t *T, s string) error { *p(t) = s; return nil },
	}
}

func notesField[T any](name, label string, p func(*T) *string) field[T] {
	f := textField(name, label, p)
	f.multiline = true
	return f
}

func moneyField[T any](name, label string, p func(*T) *float64) field[T] {
	return field[T]{
		name:  name,
		label: label,
		get:   func(t T) string { return formatMoney(*p(&t)) },
		set: func(t *T, s string) error {
			v, err := parseMoney(s)
			if err != nil {
				return err
			}
			*p(t) = v
			return nil
		},
	}
}

func derivedField[T any](name, label string, p func(*T) *float64) field[T] {
	f := moneyField(name, label, p)
	f.readOnly = true
	return f
}

func boolField[T any](name, label string, p func(*T) *bool) field[T] {
	return field[T]{
		name:  name,
		label: label,
		get: func(t T) string {
			if *p(&t) {
				return "ya"
			}
			return "tidak"
		},
		set: func(t *T, s string) error {
			switch strings.ToLower(s) {
			case "y", "ya", "yes", "true", "1":
				*p(t) = true
			case "n", "t", "tidak", "no", "false", "0":
				*p(t) = false
			default:
				return errBadValue
			}
			return nil
		},
	}
}

func enumField[T any, E ~string](name, label string, p func(*T) *E, values ...E) field[T] {
	opts := make([]string, 0, len(values))
	for _, v := range values {
		opts = append(opts, string(v))
	}
	return field[T]{
		name:  name,
		label: label + " (" + strings.Join(opts, "/") + ")",
		get:   func(t T) string { return string(*p(&t)) },
		set: func(t *T, s string) error {
			*p(t) = E(strings.ToLower(s))
			return nil
		},
	}
}

// refField edits a foreign key. load supplies the selectable rows.
func refField[T any](name, label string, p func(*T) *int64, load func(ctx context.Context) ([]choice, error)) field[T] {
	return field[T]{
		name:  name,
		label: label,
		get: func(t T) string {
			if v := *p(&t); v != 0 {
				return strconv.FormatInt(v, 10)
			}
			return ""
		},
		set: func(t *T, s string) error {
			if s == "" {
				*p(t) = 0
				return nil
			}
			v, err := strconv.ParseInt(s, 10, 64)
			if err != nil || v < 0 {
				return errBadValue
			}
			*p(t) = v
			return nil
		},
		choices: func(ctx context.Context, _ T) (bool, []choice, error) {
			if load == nil {
				return true, nil, nil
			}
			c, err := load(ctx)
			return true, c, err
		},
	}
}

// lookup turns a lookup table into choices.
func lookup[R any](r services.Resource[R], row func(R) (int64, string)) func(ctx context.Context) ([]choice, error) {
	return func(ctx context.Context) ([]choice, error) {
		rows, err := services.Lookup(ctx, r)
		if err != nil {
			return nil, err
		}
		out := make([]choice, 0, len(rows))
		for _, x := range rows {
			id, label := row(x)
			out = append(out, choice{id: id, label: label})
		}
		return out, nil
	}
}

func formatMoney(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// parseMoney accepts plain numbers and Indonesian grouping ("100.000",
// "100.000,50"). With a comma present every dot is a thousands separator.
func parseMoney(s string) (float64, error) {
	s = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(s), "Rp"))
	if s == "" {
		return 0, nil
	}
	switch {
	case strings.Contains(s, ","):
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	case strings.Count(s, ".") > 1 || len(s)-strings.LastIndex(s, ".") == 4:
		s = strings.ReplaceAll(s, ".", "")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errBadValue
	}
	return v, nil
}

func formatChoices(cs []choice) string {
	parts := make([]string, 0, len(cs))
	for _, c := range cs {
		parts = append(parts, fmt.Sprintf("%d=%s", c.id, c.label))
	}
	return strings.Join(parts, ", ")
}
