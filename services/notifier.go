package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"TimeTrackGo/config"
	"TimeTrackGo/models"

	"github.com/go-redis/redis/v8"
)

// Change actions published when the entry store mutates.
const (
	ActionCreated   = "created"
	ActionClosed    = "closed"
	ActionFinalized = "finalized"
	ActionUpdated   = "updated"
)

// ChangeEvent tells subscribers that an entry changed. It is advisory only:
// delivery is at-least-once with no ordering guarantee, so consumers re-fetch
// rather than trust the payload.
type ChangeEvent struct {
	EntryID string `json:"entryId"`
	Action  string `json:"action"`
}

// Notifier fans entry changes out to scope subscribers.
type Notifier interface {
	Publish(ctx context.Context, scopes []string, event ChangeEvent)
	Subscribe(ctx context.Context, scope string) (<-chan ChangeEvent, error)
}

const scopePrefix = "timetrack"

func UserScope(id string) string     { return scopePrefix + ":user:" + id }
func TaskScope(id string) string     { return scopePrefix + ":task:" + id }
func CampaignScope(id string) string { return scopePrefix + ":campaign:" + id }
func ProjectScope(id string) string  { return scopePrefix + ":project:" + id }

// ParseScope turns a client scope like "project:42" into a channel name.
func ParseScope(scope string) (string, error) {
	kind, id, ok := strings.Cut(scope, ":")
	if !ok || id == "" {
		return "", models.NewValidation("scope", "expected kind:id")
	}
	switch kind {
	case "user":
		return UserScope(id), nil
	case "task":
		return TaskScope(id), nil
	case "campaign":
		return CampaignScope(id), nil
	case "project":
		return ProjectScope(id), nil
	default:
		return "", models.NewValidation("scope", fmt.Sprintf("unknown scope kind %q", kind))
	}
}

// entryScopes lists every channel interested in a change to the entry: the
// owner, the associated record, and for task entries the owning project.
func entryScopes(ctx context.Context, tasks TaskRegistry, e *models.TimeEntry) []string {
	scopes := []string{UserScope(e.UserID)}
	switch e.Association.Kind {
	case models.AssocTask:
		scopes = append(scopes, TaskScope(e.Association.ID))
		if task, err := tasks.Task(ctx, e.Association.ID); err == nil && task != nil && task.ProjectID != "" {
			scopes = append(scopes, ProjectScope(task.ProjectID))
		}
	case models.AssocCampaign:
		scopes = append(scopes, CampaignScope(e.Association.ID))
	case models.AssocProject:
		scopes = append(scopes, ProjectScope(e.Association.ID))
	}
	return scopes
}

// RedisNotifier publishes change events over Redis pub/sub.
type RedisNotifier struct {
	client *redis.Client
}

func NewRedisNotifier(client *redis.Client) *RedisNotifier {
	return &RedisNotifier{client: client}
}

// Publish sends the event to every scope. Failures are logged and dropped:
// notifications are re-fetch hints, the write itself already succeeded.
func (n *RedisNotifier) Publish(ctx context.Context, scopes []string, event ChangeEvent) {
	payload, err := json.Marshal(event)
	if err != nil {
		return
	}
	for _, scope := range scopes {
		if err := n.client.Publish(ctx, scope, payload).Err(); err != nil {
			config.Logger.Warnw("change event publish failed",
				"scope", scope,
				"entryId", event.EntryID,
				"error", err,
			)
		}
	}
}

// Subscribe delivers events for one scope until ctx is cancelled.
func (n *RedisNotifier) Subscribe(ctx context.Context, scope string) (<-chan ChangeEvent, error) {
	sub := n.client.Subscribe(ctx, scope)
	// Force the subscription onto the wire before returning.
	if _, err := sub.Receive(ctx); err != nil {
		_ = sub.Close()
		return nil, err
	}

	events := make(chan ChangeEvent, 16)
	go func() {
		defer close(events)
		defer sub.Close()
		messages := sub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-messages:
				if !ok {
					return
				}
				var event ChangeEvent
				if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
					config.Logger.Warnw("malformed change event", "scope", scope, "error", err)
					continue
				}
				select {
				case events <- event:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return events, nil
}
