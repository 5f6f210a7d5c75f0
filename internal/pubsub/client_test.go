package pubsub

import (
	"context"
	"testing"
	"time"

	"cloud.google.com/go/pubsub"
	"cloud.google.com/go/pubsub/apiv1/pubsubpb"
	"cloud.google.com/go/pubsub/pstest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"
	"google.golang.org/api/option"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
)

type scorePayload struct {
	WinnerID int64  `msgpack:"winner_id"`
	Name     string `msgpack:"name"`
}

func TestNewEvent(t *testing.T) {
	first := NewEvent(EventMatchRecorded, scorePayload{WinnerID: 1}, false)
	second := NewEvent(EventMatchRecorded, scorePayload{WinnerID: 1}, true)

	assert.NotEmpty(t, first.ID)
	assert.NotEqual(t, first.ID, second.ID, "every event gets its own id")
	assert.Equal(t, EventMatchRecorded, first.Type)
	assert.False(t, first.OccurredAt.IsZero())
	assert.True(t, second.DryRun)
}

func TestLocalClientRoundTrip(t *testing.T) {
	c := NewLocal()
	defer c.Close()

	event := NewEvent(EventRoundPaired, scorePayload{WinnerID: 7, Name: "Alice"}, false)
	require.NoError(t, c.SendMessage(event.Type, event))

	data, err := msgpack.Marshal(event)
	require.NoError(t, err)

	var got Event[scorePayload]
	require.NoError(t, c.ProcessMessage(data, &got))
	assert.Equal(t, event.ID, got.ID)
	assert.Equal(t, event.Payload, got.Payload)
	assert.True(t, event.OccurredAt.Equal(got.OccurredAt))
}

func TestProcessMessageRejectsGarbage(t *testing.T) {
	var got Event[scorePayload]
	assert.Error(t, NewLocal().ProcessMessage([]byte{0xc1}, &got))
}

func TestMockRecordsCalls(t *testing.T) {
	m := NewMock()
	require.NoError(t, m.SendMessage(EventMatchRecorded, "payload"))
	require.Len(t, m.SendMessageCalls, 1)
	assert.Equal(t, EventMatchRecorded, m.SendMessageCalls[0].Topic)

	m.Reset()
	assert.Empty(t, m.SendMessageCalls)

	require.NoError(t, m.Close())
	assert.True(t, m.Closed)
}

// setupFakeClient returns a client publishing to an in-process Pub/Sub server with the given topic created.
func setupFakeClient(t *testing.T, topic EventType, timeout time.Duration) (*client, *pstest.Server) {
	t.Helper()
	ctx := context.Background()

	srv := pstest.NewServer()
	t.Cleanup(func() { srv.Close() })

	conn, err := grpc.NewClient(srv.Addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	require.NoError(t, err)

	psClient, err := pubsub.NewClient(ctx, "swiss-ladder", option.WithGRPCConn(conn))
	require.NoError(t, err)
	t.Cleanup(func() { psClient.Close() })

	_, err = psClient.CreateTopic(ctx, string(topic))
	require.NoError(t, err)

	return &client{client: psClient, teardown: func() {}, publishTimeout: timeout}, srv
}

func TestClientSendMessage(t *testing.T) {
	c, srv := setupFakeClient(t, EventMatchRecorded, time.Second)

	event := NewEvent(EventMatchRecorded, scorePayload{WinnerID: 3, Name: "Carol"}, false)
	require.NoError(t, c.SendMessage(event.Type, event))

	msgs := srv.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, string(EventMatchRecorded), msgs[0].Attributes["event_type"])

	var got Event[scorePayload]
	require.NoError(t, c.ProcessMessage(msgs[0].Data, &got))
	assert.Equal(t, event.ID, got.ID)
	assert.Equal(t, event.Payload, got.Payload)
}

func TestClientSendMessageGivesUpOnStalledPublish(t *testing.T) {
	c, srv := setupFakeClient(t, EventMatchRecorded, 100*time.Millisecond)
	srv.SetAutoPublishResponse(false)
	// Release the held publish so the server can shut down.
	t.Cleanup(func() {
		srv.AddPublishResponse(&pubsubpb.PublishResponse{MessageIds: []string{"1"}}, nil)
	})

	start := time.Now()
	err := c.SendMessage(EventMatchRecorded, scorePayload{WinnerID: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second)
}
