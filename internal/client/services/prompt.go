package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/touchbase/internal/client/generator"
	"github.com/dmitrijs2005/touchbase/internal/client/models"
)

// OptionCount is how many message options one generation offers.
const OptionCount = 3

var errMalformedOptions = errors.New("response is not a JSON array of 3 strings")

// BuildPrompt renders the generation request for contact, optionally for a
// specific occasion.
func BuildPrompt(contact models.Contact, occasion *models.Occasion, style models.MessageStyle) string {
	purpose := " just to check in"
	if occasion != nil {
		purpose = " for " + occasion.OccasionName
	}

	return fmt.Sprintf("Generate 3 %s text message variations for %s%s. \n"+
		"      \n"+
		"Relationship: %s\n"+
		"Style: %s\n"+
		"\n"+
		"Return ONLY a JSON array of 3 strings, no other text:\n"+
		`["message 1", "message 2", "message 3"]`,
		style, contact.Name, purpose, contact.RelationshipTier.Label(), style)
}

// ParseOptions accepts exactly a JSON array of three non-empty strings,
// surrounded by nothing but whitespace. Strings are returned untouched.
func ParseOptions(text string) ([]string, error) {
	var out []string
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &out); err != nil {
		return nil, fmt.Errorf("%w: %v", errMalformedOptions, err)
	}
	if len(out) != OptionCount {
		return nil, fmt.Errorf("%w: got %d items", errMalformedOptions, len(out))
	}
	for _, s := range out {
		if s == "" {
			return nil, fmt.Errorf("%w: empty item", errMalformedOptions)
		}
	}
	return out, nil
}

// FallbackOptions are the canned messages offered when the provider fails.
// occasionName may be empty.
func FallbackOptions(name, occasionName string) []string {
	if occasionName != "" {
		return []string{
			fmt.Sprintf("Hey %s! Happy %s! Hope all is well! 😊", name, occasionName),
			fmt.Sprintf("Hi %s, wishing you a wonderful %s. Let's catch up soon!", name, occasionName),
			fmt.Sprintf("%s! Have an amazing %s! Miss you! 💙", name, occasionName),
		}
	}
	return []string{
		fmt.Sprintf("Hey %s! Just wanted to check in and see how you're doing. Hope all is well! 😊", name),
		fmt.Sprintf("Hi %s, thinking of you today. Let's catch up soon!", name),
		fmt.Sprintf("%s! Hope you're having a great day. Miss you! 💙", name),
	}
}

// Strategy produces message options for a resolved request.
type Strategy interface {
	Options(ctx context.Context, contact models.Contact, occasion *models.Occasion, style models.MessageStyle) ([]string, error)
}

// ProviderStrategy asks the hosted model and enforces the strict schema.
type ProviderStrategy struct {
	Provider generator.Provider
}

func (p ProviderStrategy) Options(ctx context.Context, contact models.Contact, occasion *models.Occasion, style models.MessageStyle) ([]string, error) {
	if p.Provider == nil {
		return nil, generator.ErrNotConfigured
	}
	text, err := p.Provider.Complete(ctx, BuildPrompt(contact, occasion, style))
	if err != nil {
		return nil, err
	}
	return ParseOptions(text)
}

// FallbackStrategy never fails.
type FallbackStrategy struct{}

func (FallbackStrategy) Options(_ context.Context, contact models.Contact, occasion *models.Occasion, _ models.MessageStyle) ([]string, error) {
	name := ""
	if occasion != nil {
		name = occasion.OccasionName
	}
	return FallbackOptions(contact.Name, name), nil
}
