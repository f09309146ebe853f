package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/recitebot/internal/adapters/session/memory"
	"github.com/bnema/recitebot/internal/cache"
	"github.com/bnema/recitebot/internal/domain"
	"github.com/bnema/recitebot/internal/ports"
	"github.com/bnema/recitebot/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type dispatcherFixture struct {
	dispatcher *Dispatcher
	sessions   *memory.Store
	gateway    *mocks.MockCatalogGateway
	media      *mocks.MockMediaSender
	renderer   *mocks.MockRenderer
}

func newDispatcherFixture(t *testing.T) dispatcherFixture {
	t.Helper()

	gateway := mocks.NewMockCatalogGateway(t)
	media := mocks.NewMockMediaSender(t)
	renderer := mocks.NewMockRenderer(t)
	sessions := memory.NewStore(memory.Options{})

	catalog := NewCatalogService(gateway, cache.Options{})
	playback := NewPlaybackController(catalog, media, testMessages(), 0, nil)
	navigator := NewNavigator(catalog, playback, testMessages())

	return dispatcherFixture{
		dispatcher: NewDispatcher(sessions, navigator, renderer, nil),
		sessions:   sessions,
		gateway:    gateway,
		media:      media,
		renderer:   renderer,
	}
}

func TestDispatcherEndToEndScenario(t *testing.T) {
	f := newDispatcherFixture(t)
	ctx := context.Background()
	origin := domain.MessageRef{ChatID: 100, MessageID: 50}

	reciters := []domain.Reciter{{ID: 7, Name: "Alafasy"}, {ID: 2, Name: "Abdul Basit"}, {ID: 3, Name: "Husary"}}
	f.gateway.EXPECT().ListReciters(mockAnyContext()).Return(reciters, nil).Once()
	f.gateway.EXPECT().ListChapters(mockAnyContext()).Return(allChapters(), nil).Once()

	// play
	f.renderer.EXPECT().SendText(mockAnyContext(), int64(100), "choose reciter", mock.Anything).
		Run(func(_ context.Context, _ int64, _ string, keyboard ports.Keyboard) {
			assert.Len(t, keyboard, len(reciters)+1)
		}).
		Return(origin, nil).Once()
	require.NoError(t, f.dispatcher.Dispatch(ctx, command(domain.CommandPlay)))

	// rec_7
	f.renderer.EXPECT().EditText(mockAnyContext(), origin, "choose chapter", mock.Anything).
		Run(func(_ context.Context, _ domain.MessageRef, _ string, keyboard ports.Keyboard) {
			assert.Len(t, keyboard, domain.ChapterCount+1)
		}).
		Return(nil).Once()
	f.renderer.EXPECT().Notify(mockAnyContext(), "cb", "", false).Return(nil)
	require.NoError(t, f.dispatcher.Dispatch(ctx, pressOn(origin, "rec_7")))

	// ch_2
	f.gateway.EXPECT().ResolveAudio(mockAnyContext(), domain.ReciterID(7), 2).Return(domain.AudioRef{URL: "http://x/2.mp3", SizeBytes: 1000}, nil).Twice()
	first := domain.MediaHandle{ChatID: 100, MessageID: 60}
	f.media.EXPECT().SendMedia(mockAnyContext(), int64(100), domain.Media{URL: "http://x/2.mp3", Title: "chapter 2", Performer: "reciter Alafasy"}).Return(first, nil).Once()
	f.renderer.EXPECT().EditText(mockAnyContext(), origin, "playing 2 by Alafasy", mock.Anything).Return(nil).Once()
	require.NoError(t, f.dispatcher.Dispatch(ctx, pressOn(origin, "ch_2")))

	state := snapshot(t, f.sessions)
	assert.Equal(t, domain.ScreenPlaying, state.Screen)
	handle, ok := state.Dispatched()
	require.True(t, ok)
	assert.Equal(t, first, handle)

	// pause
	f.media.EXPECT().DeleteMedia(mockAnyContext(), first).Return(nil).Once()
	f.renderer.EXPECT().Notify(mockAnyContext(), "cb", "paused", true).Return(nil).Once()
	require.NoError(t, f.dispatcher.Dispatch(ctx, pressOn(origin, "pause")))

	state = snapshot(t, f.sessions)
	assert.Equal(t, domain.ScreenPaused, state.Screen)
	_, ok = state.Dispatched()
	assert.False(t, ok)

	// resume
	second := domain.MediaHandle{ChatID: 100, MessageID: 61}
	f.media.EXPECT().SendMedia(mockAnyContext(), int64(100), mock.Anything).Return(second, nil).Once()
	f.renderer.EXPECT().EditText(mockAnyContext(), origin, "playing 2 by Alafasy", mock.Anything).Return(nil).Once()
	f.renderer.EXPECT().Notify(mockAnyContext(), "cb", "resumed", true).Return(nil).Once()
	require.NoError(t, f.dispatcher.Dispatch(ctx, pressOn(origin, "resume")))

	state = snapshot(t, f.sessions)
	assert.Equal(t, domain.ScreenPlaying, state.Screen)
	handle, _ = state.Dispatched()
	assert.Equal(t, second, handle)

	// next
	third := domain.MediaHandle{ChatID: 100, MessageID: 62}
	f.gateway.EXPECT().ResolveAudio(mockAnyContext(), domain.ReciterID(7), 3).Return(domain.AudioRef{URL: "http://x/3.mp3", SizeBytes: 1000}, nil).Once()
	f.media.EXPECT().SendMedia(mockAnyContext(), int64(100), mock.Anything).Return(third, nil).Once()
	f.renderer.EXPECT().EditText(mockAnyContext(), origin, "playing 3 by Alafasy", mock.Anything).Return(nil).Once()
	f.renderer.EXPECT().Notify(mockAnyContext(), "cb", "next playing", true).Return(nil).Once()
	require.NoError(t, f.dispatcher.Dispatch(ctx, pressOn(origin, "next")))

	state = snapshot(t, f.sessions)
	chapter, ok := state.Chapter()
	require.True(t, ok)
	assert.Equal(t, 3, chapter)
	handle, _ = state.Dispatched()
	assert.Equal(t, third, handle)
}

func TestDispatcherEditWithoutOriginSendsNewMessage(t *testing.T) {
	f := newDispatcherFixture(t)
	f.renderer.EXPECT().SendText(mockAnyContext(), int64(100), "back at start", ports.Keyboard(nil)).Return(domain.MessageRef{}, nil).Once()

	ev := domain.Event{Kind: domain.EventButton, Data: "back_to_start", UserID: 1, ChatID: 100}
	require.NoError(t, f.dispatcher.Dispatch(context.Background(), ev))
}

func TestDispatcherNoticeWithoutCallbackIsSentAsText(t *testing.T) {
	f := newDispatcherFixture(t)
	f.renderer.EXPECT().SendText(mockAnyContext(), int64(100), "nothing playing", ports.Keyboard(nil)).Return(domain.MessageRef{}, nil).Once()

	ev := domain.Event{Kind: domain.EventButton, Data: "pause", UserID: 1, ChatID: 100}
	require.NoError(t, f.dispatcher.Dispatch(context.Background(), ev))
}

func TestDispatcherReturnsRendererErrors(t *testing.T) {
	f := newDispatcherFixture(t)
	renderErr := errors.New("chat not found")
	f.renderer.EXPECT().SendText(mockAnyContext(), int64(100), "welcome", ports.Keyboard(nil)).Return(domain.MessageRef{}, renderErr).Once()

	err := f.dispatcher.Dispatch(context.Background(), command(domain.CommandStart))

	require.ErrorIs(t, err, renderErr)
}

func TestDispatcherUnknownCommandSendsNothing(t *testing.T) {
	f := newDispatcherFixture(t)

	require.NoError(t, f.dispatcher.Dispatch(context.Background(), command("foo")))

	f.renderer.AssertNotCalled(t, "SendText", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestDispatcherCloseDeletesOrigin(t *testing.T) {
	f := newDispatcherFixture(t)
	origin := domain.MessageRef{ChatID: 100, MessageID: 50}
	f.renderer.EXPECT().DeleteMessage(mockAnyContext(), origin).Return(nil).Once()
	f.renderer.EXPECT().Notify(mockAnyContext(), "cb", "", false).Return(nil).Once()

	require.NoError(t, f.dispatcher.Dispatch(context.Background(), pressOn(origin, "close")))

	state := snapshot(t, f.sessions)
	assert.Equal(t, domain.ScreenClosed, state.Screen)
}

func pressOn(origin domain.MessageRef, data string) domain.Event {
	ev := button(data)
	ev.Origin = origin
	return ev
}

func snapshot(t *testing.T, store *memory.Store) domain.SessionState {
	t.Helper()

	state, ok := store.Snapshot(1)
	require.True(t, ok)
	return state
}
