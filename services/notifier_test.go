package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	qt "github.com/frankban/quicktest"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"TimeTrackGo/config"
	"TimeTrackGo/services"
)

func newRedisNotifier(t *testing.T) *services.RedisNotifier {
	t.Helper()
	config.Logger = zap.NewNop().Sugar()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return services.NewRedisNotifier(client)
}

func waitForEvent(c *qt.C, events <-chan services.ChangeEvent) services.ChangeEvent {
	select {
	case event, ok := <-events:
		c.Assert(ok, qt.IsTrue)
		return event
	case <-time.After(5 * time.Second):
		c.Fatal("timed out waiting for change event")
		return services.ChangeEvent{}
	}
}

func TestRedisNotifier_PublishReachesSubscriber(t *testing.T) {
	c := qt.New(t)
	notifier := newRedisNotifier(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := notifier.Subscribe(ctx, services.UserScope("u1"))
	c.Assert(err, qt.IsNil)

	sent := services.ChangeEvent{EntryID: "e1", Action: services.ActionCreated}
	notifier.Publish(ctx, []string{services.UserScope("u1"), services.TaskScope("t1")}, sent)

	received := waitForEvent(c, events)
	c.Assert(received, qt.Equals, sent)
}

func TestRedisNotifier_ScopesAreIsolated(t *testing.T) {
	c := qt.New(t)
	notifier := newRedisNotifier(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	userEvents, err := notifier.Subscribe(ctx, services.UserScope("u1"))
	c.Assert(err, qt.IsNil)
	projectEvents, err := notifier.Subscribe(ctx, services.ProjectScope("p1"))
	c.Assert(err, qt.IsNil)

	notifier.Publish(ctx, []string{services.ProjectScope("p1")}, services.ChangeEvent{EntryID: "e1", Action: services.ActionClosed})

	received := waitForEvent(c, projectEvents)
	c.Assert(received.EntryID, qt.Equals, "e1")

	select {
	case event := <-userEvents:
		c.Fatalf("unexpected event on user scope: %+v", event)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestRedisNotifier_SubscriptionEndsWithContext(t *testing.T) {
	c := qt.New(t)
	notifier := newRedisNotifier(t)

	ctx, cancel := context.WithCancel(context.Background())
	events, err := notifier.Subscribe(ctx, services.UserScope("u1"))
	c.Assert(err, qt.IsNil)

	cancel()

	select {
	case _, ok := <-events:
		c.Assert(ok, qt.IsFalse)
	case <-time.After(5 * time.Second):
		c.Fatal("channel not closed after cancel")
	}
}

func TestParseScope(t *testing.T) {
	c := qt.New(t)

	tests := []struct {
		scope   string
		want    string
		wantErr bool
	}{
		{scope: "user:u1", want: services.UserScope("u1")},
		{scope: "task:t1", want: services.TaskScope("t1")},
		{scope: "campaign:c1", want: services.CampaignScope("c1")},
		{scope: "project:p1", want: services.ProjectScope("p1")},
		{scope: "okr:o1", wantErr: true},
		{scope: "project:", wantErr: true},
		{scope: "project", wantErr: true},
		{scope: "", wantErr: true},
	}

	for _, test := range tests {
		c.Run(test.scope, func(c *qt.C) {
			channel, err := services.ParseScope(test.scope)
			if test.wantErr {
				c.Assert(err, qt.IsNotNil)
				return
			}
			c.Assert(err, qt.IsNil)
			c.Assert(channel, qt.Equals, test.want)
		})
	}
}
