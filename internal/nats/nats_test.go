package nats

import (
	"context"
	"testing"
	"time"

	"github.com/nats-io/nats.go/jetstream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubjects(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "tradingstudio.session.>", SubjectForCatalog("session"))
	assert.Equal(t, "tradingstudio.session.strategy", SubjectForEvent("session", EventTypeStrategy))
}

func TestEmbeddedServerRoundTrip(t *testing.T) {
	ns, err := StartEmbeddedNATS(t.TempDir())
	require.NoError(t, err)

	nc, err := ConnectInProcess(ns)
	require.NoError(t, err)
	t.Cleanup(func() { _ = Shutdown(nc, ns) })

	js, err := CreateJetStream(nc)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	stream, err := SetupStream(ctx, js)
	require.NoError(t, err)
	assert.Equal(t, jetstream.MemoryStorage, stream.CachedInfo().Config.Storage)

	_, err = js.Publish(ctx, SubjectForEvent("session", EventTypeStrategy), []byte(`{"id":1}`))
	require.NoError(t, err)

	info, err := stream.Info(ctx)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), info.State.Msgs)

	// Setting up again keeps the existing stream.
	_, err = SetupStream(ctx, js)
	require.NoError(t, err)
}
