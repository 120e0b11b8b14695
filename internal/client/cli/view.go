package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/touchbase/internal/client/models"
	"github.com/dmitrijs2005/touchbase/internal/client/services"
)

// Show switches to the named panel, if any, and prints it.
func (a *App) Show(ctx context.Context, args []string) error {
	if len(args) > 0 {
		if err := a.router.Switch(args[0]); err != nil {
			return err
		}
	}
	a.render()
	return nil
}

func (a *App) Reload(ctx context.Context) error {
	if err := a.state.Reload(ctx); err != nil {
		return err
	}
	a.render()
	return nil
}

// pick resolves ref against items: a 1-based position as listed, an id, or
// a case-insensitive name when it is unique.
func pick[T any](items []T, ref string, id, name func(T) string) (T, bool) {
	var zero T
	if n, err := strconv.Atoi(ref); err == nil {
		if n >= 1 && n <= len(items) {
			return items[n-1], true
		}
		return zero, false
	}
	for _, it := range items {
		if id(it) == ref {
			return it, true
		}
	}
	var found []T
	for _, it := range items {
		if strings.EqualFold(name(it), ref) {
			found = append(found, it)
		}
	}
	if len(found) == 1 {
		return found[0], true
	}
	return zero, false
}

func (a *App) resolveContact(args []string) (models.Contact, error) {
	if len(args) == 0 {
		return models.Contact{}, &services.ValidationError{Field: "contact", Reason: "give its number, id or name"}
	}
	ref := strings.Join(args, " ")
	c, ok := pick(a.state.Contacts(), ref,
		func(c models.Contact) string { return c.ID },
		func(c models.Contact) string { return c.Name })
	if !ok {
		return models.Contact{}, &services.ValidationError{Field: "contact", Reason: fmt.Sprintf("no contact %q", ref)}
	}
	return c, nil
}

func (a *App) resolveOccasion(items []models.Occasion, args []string) (models.Occasion, error) {
	if len(args) == 0 {
		return models.Occasion{}, &services.ValidationError{Field: "occasion", Reason: "give its number or id"}
	}
	ref := strings.Join(args, " ")
	o, ok := pick(items, ref,
		func(o models.Occasion) string { return o.ID },
		func(o models.Occasion) string { return o.OccasionName })
	if !ok {
		return models.Occasion{}, &services.ValidationError{Field: "occasion", Reason: fmt.Sprintf("no occasion %q", ref)}
	}
	return o, nil
}
