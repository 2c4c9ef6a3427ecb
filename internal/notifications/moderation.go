package notifications

import (
	"context"
	"fmt"
	"strconv"

	"unilocal/internal/domain/places"
	"unilocal/internal/domain/pushtokens"

	"github.com/9ssi7/exponent"
)

type ModerationNotifier struct {
	push   PushSender
	tokens pushtokens.Store
}

func NewModerationNotifier(push PushSender, tokens pushtokens.Store) *ModerationNotifier {
	return &ModerationNotifier{push: push, tokens: tokens}
}

// PlaceDecided tells the creator of place that a moderator approved or
// rejected it. A creator without registered devices is not an error. Tokens
// Expo reports as no longer registered are removed.
func (n *ModerationNotifier) PlaceDecided(ctx context.Context, place *places.Place) error {
	tokens, err := n.tokens.ListByUser(ctx, place.CreatedBy)
	if err != nil {
		return err
	}
	tokens = dedupe(tokens)
	if len(tokens) == 0 {
		return nil
	}

	msgs := decisionMessages(place, tokens)
	responses, err := n.push.Publish(ctx, msgs)
	if err != nil {
		return fmt.Errorf("publish moderation decision: %w", err)
	}

	if stale := unregisteredTokens(responses, tokens); len(stale) > 0 {
		if err := n.tokens.RemoveTokens(ctx, stale); err != nil {
			return fmt.Errorf("remove unregistered push tokens: %w", err)
		}
	}
	return nil
}

// unregisteredTokens picks the tokens whose ticket failed with
// DeviceNotRegistered. Tickets come back in message order, one per token.
func unregisteredTokens(responses []*exponent.MessageResponse, tokens []string) []string {
	var stale []string
	for i, resp := range responses {
		if resp == nil || resp.IsOk() {
			continue
		}
		if exponent.ErrorMsg(resp.Details["error"]) != exponent.ErrorMsgDeviceNotRegistered {
			continue
		}

		var token string
		switch {
		case resp.MessageItem != nil && len(resp.MessageItem.To) > 0 && resp.MessageItem.To[0] != nil:
			token = string(*resp.MessageItem.To[0])
		case i < len(tokens):
			token = tokens[i]
		default:
			continue
		}
		stale = append(stale, token)
	}
	return stale
}

func decisionMessages(place *places.Place, tokens []string) []*exponent.Message {
	var title, body string
	switch place.Status {
	case places.StatusApproved:
		title = "Place approved"
		body = fmt.Sprintf("%s is now visible to everyone", place.Name)
	case places.StatusRejected:
		title = "Place rejected"
		body = fmt.Sprintf("%s was not accepted by a moderator", place.Name)
	default:
		title = "Place update"
		body = fmt.Sprintf("%s has an update", place.Name)
	}

	placeID := strconv.FormatInt(place.ID, 10)
	msgs := make([]*exponent.Message, 0, len(tokens))
	for _, t := range tokens {
		token := exponent.Token(t)
		msgs = append(msgs, &exponent.Message{
			To:    []*exponent.Token{&token},
			Title: title,
			Body:  body,
			// the client routes with router.push(`/${data.screen}`)
			Data: map[string]string{
				"type":     "place_moderation",
				"status":   string(place.Status),
				"place_id": placeID,
				"screen":   "places/" + placeID,
			},
		})
	}
	return msgs
}

func dedupe(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
