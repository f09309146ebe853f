package application

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/bnema/recitebot/internal/cache"
	"github.com/bnema/recitebot/internal/domain"
	"github.com/bnema/recitebot/internal/ports"
	"github.com/bnema/recitebot/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mockAnyContext() interface{} {
	return mock.Anything
}

func testMessages() Messages {
	return Messages{
		Welcome:             "welcome",
		Help:                "help",
		BackToStart:         "back at start",
		ChooseReciter:       "choose reciter",
		ChooseChapter:       "choose chapter",
		RecitersUnavailable: "reciters unavailable",
		ChaptersUnavailable: "chapters unavailable",
		ReciterRequired:     "pick a reciter first",
		AudioUnresolved:     "audio unresolved",
		NoNextChapter:       "no next chapter",
		NothingPlaying:      "nothing playing",
		NothingToPause:      "nothing to pause",
		AlreadyPlaying:      "already playing",
		Paused:              "paused",
		PauseFailed:         "pause failed",
		Resumed:             "resumed",
		NextPlaying:         "next playing",
		PlayFailed:          "play failed",
		UnknownAction:       "unknown action",
		NowPlaying:          "playing {chapter} by {reciter}",
		TooLarge:            "too large {size}: {url}",
		MediaUnusable:       "unusable: {url}",
		MediaTitle:          "chapter {chapter}",
		MediaPerformer:      "reciter {reciter}",
		Buttons: ButtonLabels{
			Close:  "close",
			Back:   "back",
			Pause:  "pause",
			Resume: "resume",
			Next:   "next",
		},
	}
}

func allChapters() []domain.Chapter {
	chapters := make([]domain.Chapter, 0, domain.ChapterCount)
	for id := 1; id <= domain.ChapterCount; id++ {
		chapters = append(chapters, domain.Chapter{ID: id, ArabicName: fmt.Sprintf("chapter-%d", id)})
	}
	return chapters
}

type navigatorFixture struct {
	navigator *Navigator
	gateway   *mocks.MockCatalogGateway
	media     *mocks.MockMediaSender
}

func newNavigatorFixture(t *testing.T) navigatorFixture {
	t.Helper()

	gateway := mocks.NewMockCatalogGateway(t)
	media := mocks.NewMockMediaSender(t)
	catalog := NewCatalogService(gateway, cache.Options{})
	playback := NewPlaybackController(catalog, media, testMessages(), domain.DefaultMaxDispatchBytes, nil)

	return navigatorFixture{
		navigator: NewNavigator(catalog, playback, testMessages()),
		gateway:   gateway,
		media:     media,
	}
}

func button(data string) domain.Event {
	return domain.Event{
		Kind:       domain.EventButton,
		Data:       data,
		UserID:     1,
		ChatID:     100,
		Origin:     domain.MessageRef{ChatID: 100, MessageID: 5},
		CallbackID: "cb",
	}
}

func command(name string) domain.Event {
	return domain.Event{Kind: domain.EventCommand, Command: name, UserID: 1, ChatID: 100}
}

func playingState(reciter domain.ReciterID, chapter int) domain.SessionState {
	state := domain.NewSessionState()
	state.SelectReciter(reciter)
	state.SelectChapter(chapter)
	state.Screen = domain.ScreenPlaying
	return state
}

func TestNavigatorPlayRendersReciterList(t *testing.T) {
	f := newNavigatorFixture(t)
	f.gateway.EXPECT().ListReciters(mockAnyContext()).Return([]domain.Reciter{{ID: 7, Name: "Alafasy"}, {ID: 2, Name: "Abdul Basit"}}, nil).Once()

	state := domain.NewSessionState()
	resp := f.navigator.Handle(context.Background(), &state, command(domain.CommandPlay))

	require.NoError(t, resp.Err)
	require.Len(t, resp.Replies, 1)
	reply := resp.Replies[0]
	assert.Equal(t, ReplySend, reply.Kind)
	assert.Equal(t, "choose reciter", reply.Text)
	assert.Equal(t, ports.Keyboard{
		{{Text: "Alafasy", Data: "rec_7"}},
		{{Text: "Abdul Basit", Data: "rec_2"}},
		{{Text: "close", Data: "close"}},
	}, reply.Keyboard)
	assert.Equal(t, domain.ScreenReciterSelection, state.Screen)
}

func TestNavigatorPlayReportsRetryLaterForFailedAndEmptyCatalog(t *testing.T) {
	tests := []struct {
		name    string
		data    []domain.Reciter
		err     error
		wantErr error
	}{
		{name: "unavailable", err: fmt.Errorf("list reciters: %w", domain.ErrCatalogUnavailable), wantErr: domain.ErrCatalogUnavailable},
		{name: "empty", data: []domain.Reciter{}, wantErr: domain.ErrCatalogEmpty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newNavigatorFixture(t)
			f.gateway.EXPECT().ListReciters(mockAnyContext()).Return(tt.data, tt.err).Once()

			state := domain.NewSessionState()
			resp := f.navigator.Handle(context.Background(), &state, command(domain.CommandPlay))

			require.ErrorIs(t, resp.Err, tt.wantErr)
			require.Len(t, resp.Replies, 1)
			assert.Equal(t, "reciters unavailable", resp.Replies[0].Text)
			assert.Equal(t, domain.ScreenIdle, state.Screen)
		})
	}
}

func TestNavigatorStartAndHelpCommands(t *testing.T) {
	f := newNavigatorFixture(t)
	state := domain.NewSessionState()

	resp := f.navigator.Handle(context.Background(), &state, command(domain.CommandStart))
	assert.Equal(t, "welcome", resp.Replies[0].Text)

	resp = f.navigator.Handle(context.Background(), &state, command(domain.CommandHelp))
	assert.Equal(t, "help", resp.Replies[0].Text)

	assert.Equal(t, domain.NewSessionState(), state)
}

func TestNavigatorIgnoresUnknownCommands(t *testing.T) {
	f := newNavigatorFixture(t)
	state := domain.NewSessionState()

	resp := f.navigator.Handle(context.Background(), &state, command("foo"))

	assert.Empty(t, resp.Replies)
	require.ErrorIs(t, resp.Err, domain.ErrUnknownCommand)
	assert.Equal(t, domain.NewSessionState(), state)
}

func TestNavigatorSelectReciterRendersChapterList(t *testing.T) {
	f := newNavigatorFixture(t)
	f.gateway.EXPECT().ListChapters(mockAnyContext()).Return(allChapters(), nil).Once()

	state := domain.NewSessionState()
	state.Screen = domain.ScreenReciterSelection
	resp := f.navigator.Handle(context.Background(), &state, button("rec_7"))

	require.NoError(t, resp.Err)
	reply := resp.Replies[0]
	assert.Equal(t, ReplyEdit, reply.Kind)
	require.Len(t, reply.Keyboard, domain.ChapterCount+1)
	assert.Equal(t, ports.Button{Text: "1. chapter-1", Data: "ch_1"}, reply.Keyboard[0][0])
	assert.Equal(t, ports.Button{Text: "back", Data: "back_to_start"}, reply.Keyboard[domain.ChapterCount][0])

	reciter, ok := state.Reciter()
	require.True(t, ok)
	assert.Equal(t, domain.ReciterID(7), reciter)
	assert.Equal(t, domain.ScreenChapterSelection, state.Screen)
}

func TestNavigatorSelectReciterKeepsScreenWhenChaptersUnavailable(t *testing.T) {
	f := newNavigatorFixture(t)
	f.gateway.EXPECT().ListChapters(mockAnyContext()).Return(nil, domain.ErrCatalogUnavailable).Once()

	state := domain.NewSessionState()
	state.Screen = domain.ScreenReciterSelection
	resp := f.navigator.Handle(context.Background(), &state, button("rec_7"))

	require.ErrorIs(t, resp.Err, domain.ErrCatalogUnavailable)
	assert.Equal(t, Reply{Kind: ReplyNotice, Text: "chapters unavailable", Alert: true}, resp.Replies[0])
	assert.Equal(t, domain.ScreenReciterSelection, state.Screen)
	_, ok := state.Reciter()
	assert.True(t, ok)
}

func TestNavigatorSelectChapterWithoutReciterNeverResolves(t *testing.T) {
	f := newNavigatorFixture(t)

	state := domain.NewSessionState()
	state.Screen = domain.ScreenChapterSelection
	before := state

	resp := f.navigator.Handle(context.Background(), &state, button("ch_2"))

	require.ErrorIs(t, resp.Err, domain.ErrReciterNotSelected)
	assert.Equal(t, "pick a reciter first", resp.Replies[0].Text)
	assert.Equal(t, before, state)
	f.gateway.AssertNotCalled(t, "ResolveAudio", mock.Anything, mock.Anything, mock.Anything)
}

func TestNavigatorSelectChapterSizeThreshold(t *testing.T) {
	tests := []struct {
		name         string
		size         int64
		wantDispatch bool
	}{
		{name: "exactly at ceiling", size: domain.DefaultMaxDispatchBytes, wantDispatch: true},
		{name: "one byte over", size: domain.DefaultMaxDispatchBytes + 1, wantDispatch: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newNavigatorFixture(t)
			ref := domain.AudioRef{URL: "http://x/2.mp3", SizeBytes: tt.size}
			f.gateway.EXPECT().ResolveAudio(mockAnyContext(), domain.ReciterID(7), 2).Return(ref, nil).Once()
			if tt.wantDispatch {
				f.media.EXPECT().SendMedia(mockAnyContext(), int64(100), mock.Anything).Return(domain.MediaHandle{ChatID: 100, MessageID: 9}, nil).Once()
			}

			state := domain.NewSessionState()
			state.SelectReciter(7)
			state.Screen = domain.ScreenChapterSelection
			resp := f.navigator.Handle(context.Background(), &state, button("ch_2"))

			require.NoError(t, resp.Err)
			assert.Equal(t, domain.ScreenPlaying, state.Screen)
			_, dispatched := state.Dispatched()
			assert.Equal(t, tt.wantDispatch, dispatched)
			if !tt.wantDispatch {
				f.media.AssertNotCalled(t, "SendMedia", mock.Anything, mock.Anything, mock.Anything)
				assert.Equal(t, "too large 50 MiB: http://x/2.mp3", resp.Replies[0].Text)
			}
		})
	}
}

func TestNavigatorSelectChapterDispatchesMediaWithTitles(t *testing.T) {
	f := newNavigatorFixture(t)
	f.gateway.EXPECT().ResolveAudio(mockAnyContext(), domain.ReciterID(7), 2).Return(domain.AudioRef{URL: "http://x/2.mp3", SizeBytes: 1000}, nil).Once()
	f.media.EXPECT().SendMedia(mockAnyContext(), int64(100), domain.Media{
		URL:       "http://x/2.mp3",
		Title:     "chapter 2",
		Performer: "reciter 7",
	}).Return(domain.MediaHandle{ChatID: 100, MessageID: 9}, nil).Once()

	state := domain.NewSessionState()
	state.SelectReciter(7)
	state.Screen = domain.ScreenChapterSelection
	resp := f.navigator.Handle(context.Background(), &state, button("ch_2"))

	require.NoError(t, resp.Err)
	require.Len(t, resp.Replies, 1)
	assert.Equal(t, "playing 2 by 7", resp.Replies[0].Text)
	assert.Equal(t, controlsKeyboard(testMessages().Buttons), resp.Replies[0].Keyboard)
	handle, ok := state.Dispatched()
	require.True(t, ok)
	assert.Equal(t, 9, handle.MessageID)
}

func TestNavigatorSelectChapterUnusableMediaFallsBackToLink(t *testing.T) {
	f := newNavigatorFixture(t)
	f.gateway.EXPECT().ResolveAudio(mockAnyContext(), domain.ReciterID(7), 2).Return(domain.AudioRef{URL: "http://x/2.mp3", SizeBytes: 1000}, nil).Once()
	f.media.EXPECT().SendMedia(mockAnyContext(), int64(100), mock.Anything).Return(domain.MediaHandle{}, fmt.Errorf("send audio: %w", domain.ErrMediaUnusable)).Once()

	state := domain.NewSessionState()
	state.SelectReciter(7)
	state.Screen = domain.ScreenChapterSelection
	resp := f.navigator.Handle(context.Background(), &state, button("ch_2"))

	require.ErrorIs(t, resp.Err, domain.ErrMediaUnusable)
	assert.Equal(t, "unusable: http://x/2.mp3", resp.Replies[0].Text)
	_, dispatched := state.Dispatched()
	assert.False(t, dispatched)
}

func TestNavigatorSelectChapterGenericFailureKeepsScreen(t *testing.T) {
	f := newNavigatorFixture(t)
	f.gateway.EXPECT().ResolveAudio(mockAnyContext(), domain.ReciterID(7), 2).Return(domain.AudioRef{URL: "http://x/2.mp3"}, nil).Once()
	f.media.EXPECT().SendMedia(mockAnyContext(), int64(100), mock.Anything).Return(domain.MediaHandle{}, errors.New("flood wait")).Once()

	state := domain.NewSessionState()
	state.SelectReciter(7)
	state.Screen = domain.ScreenChapterSelection
	resp := f.navigator.Handle(context.Background(), &state, button("ch_2"))

	require.Error(t, resp.Err)
	assert.Equal(t, Reply{Kind: ReplyNotice, Text: "play failed", Alert: true}, resp.Replies[0])
	assert.Equal(t, domain.ScreenChapterSelection, state.Screen)
}

func TestNavigatorSelectChapterUnresolvedRecordsSelection(t *testing.T) {
	f := newNavigatorFixture(t)
	f.gateway.EXPECT().ResolveAudio(mockAnyContext(), domain.ReciterID(7), 2).Return(domain.AudioRef{}, domain.ErrAudioUnavailable).Once()

	state := domain.NewSessionState()
	state.SelectReciter(7)
	state.Screen = domain.ScreenChapterSelection
	resp := f.navigator.Handle(context.Background(), &state, button("ch_2"))

	require.ErrorIs(t, resp.Err, domain.ErrAudioUnavailable)
	assert.Equal(t, "audio unresolved", resp.Replies[0].Text)
	chapter, ok := state.Chapter()
	require.True(t, ok)
	assert.Equal(t, 2, chapter)
	assert.Equal(t, domain.ScreenChapterSelection, state.Screen)
}

func TestNavigatorPauseWithoutHandleNeverRetracts(t *testing.T) {
	f := newNavigatorFixture(t)

	state := playingState(7, 2)
	resp := f.navigator.Handle(context.Background(), &state, button("pause"))

	assert.Equal(t, "nothing to pause", resp.Replies[0].Text)
	assert.Equal(t, domain.ScreenPlaying, state.Screen)
	f.media.AssertNotCalled(t, "DeleteMedia", mock.Anything, mock.Anything)
}

func TestNavigatorPauseRetractsAndClearsHandle(t *testing.T) {
	f := newNavigatorFixture(t)
	handle := domain.MediaHandle{ChatID: 100, MessageID: 9}
	f.media.EXPECT().DeleteMedia(mockAnyContext(), handle).Return(nil).Once()

	state := playingState(7, 2)
	state.RecordDispatch(handle)
	resp := f.navigator.Handle(context.Background(), &state, button("pause"))

	require.NoError(t, resp.Err)
	assert.Equal(t, "paused", resp.Replies[0].Text)
	assert.Equal(t, domain.ScreenPaused, state.Screen)
	_, ok := state.Dispatched()
	assert.False(t, ok)

	resp = f.navigator.Handle(context.Background(), &state, button("pause"))
	assert.Equal(t, "nothing to pause", resp.Replies[0].Text)
}

func TestNavigatorPauseFailureKeepsHandle(t *testing.T) {
	f := newNavigatorFixture(t)
	handle := domain.MediaHandle{ChatID: 100, MessageID: 9}
	f.media.EXPECT().DeleteMedia(mockAnyContext(), handle).Return(errors.New("message not found")).Once()

	state := playingState(7, 2)
	state.RecordDispatch(handle)
	resp := f.navigator.Handle(context.Background(), &state, button("pause"))

	require.Error(t, resp.Err)
	assert.Equal(t, "pause failed", resp.Replies[0].Text)
	assert.Equal(t, domain.ScreenPlaying, state.Screen)
	got, ok := state.Dispatched()
	require.True(t, ok)
	assert.Equal(t, handle, got)
}

func TestNavigatorPlaybackControlsRequirePlaybackScreen(t *testing.T) {
	for _, data := range []string{"pause", "resume", "next"} {
		t.Run(data, func(t *testing.T) {
			f := newNavigatorFixture(t)

			state := domain.NewSessionState()
			state.SelectReciter(7)
			state.Screen = domain.ScreenChapterSelection
			before := state

			resp := f.navigator.Handle(context.Background(), &state, button(data))

			require.ErrorIs(t, resp.Err, domain.ErrNothingPlaying)
			assert.Equal(t, "nothing playing", resp.Replies[0].Text)
			assert.Equal(t, before, state)
		})
	}
}

func TestNavigatorResumeWhileDispatchedIsNoop(t *testing.T) {
	f := newNavigatorFixture(t)

	state := playingState(7, 2)
	state.RecordDispatch(domain.MediaHandle{ChatID: 100, MessageID: 9})
	resp := f.navigator.Handle(context.Background(), &state, button("resume"))

	assert.Equal(t, "already playing", resp.Replies[0].Text)
	f.gateway.AssertNotCalled(t, "ResolveAudio", mock.Anything, mock.Anything, mock.Anything)
}

func TestNavigatorResumeRedispatchesSelection(t *testing.T) {
	f := newNavigatorFixture(t)
	f.gateway.EXPECT().ResolveAudio(mockAnyContext(), domain.ReciterID(7), 2).Return(domain.AudioRef{URL: "http://x/2.mp3", SizeBytes: 1000}, nil).Once()
	f.media.EXPECT().SendMedia(mockAnyContext(), int64(100), mock.Anything).Return(domain.MediaHandle{ChatID: 100, MessageID: 11}, nil).Once()

	state := playingState(7, 2)
	state.Screen = domain.ScreenPaused
	resp := f.navigator.Handle(context.Background(), &state, button("resume"))

	require.NoError(t, resp.Err)
	require.Len(t, resp.Replies, 2)
	assert.Equal(t, Reply{Kind: ReplyNotice, Text: "resumed", Alert: true}, resp.Replies[1])
	assert.Equal(t, domain.ScreenPlaying, state.Screen)
	handle, ok := state.Dispatched()
	require.True(t, ok)
	assert.Equal(t, 11, handle.MessageID)
}

func TestNavigatorNextSelectsLeastGreaterChapter(t *testing.T) {
	for _, current := range []int{1, 2, 57, 113} {
		t.Run(fmt.Sprintf("after %d", current), func(t *testing.T) {
			f := newNavigatorFixture(t)
			f.gateway.EXPECT().ListChapters(mockAnyContext()).Return(allChapters(), nil).Once()
			f.gateway.EXPECT().ResolveAudio(mockAnyContext(), domain.ReciterID(7), current+1).Return(domain.AudioRef{URL: "http://x/n.mp3"}, nil).Once()
			f.media.EXPECT().SendMedia(mockAnyContext(), int64(100), mock.Anything).Return(domain.MediaHandle{ChatID: 100, MessageID: 12}, nil).Once()

			state := playingState(7, current)
			resp := f.navigator.Handle(context.Background(), &state, button("next"))

			require.NoError(t, resp.Err)
			chapter, _ := state.Chapter()
			assert.Equal(t, current+1, chapter)
		})
	}
}

func TestNavigatorNextAtLastChapterLeavesStateUnchanged(t *testing.T) {
	f := newNavigatorFixture(t)
	f.gateway.EXPECT().ListChapters(mockAnyContext()).Return(allChapters(), nil).Once()

	state := playingState(7, domain.ChapterCount)
	before := state
	resp := f.navigator.Handle(context.Background(), &state, button("next"))

	require.ErrorIs(t, resp.Err, domain.ErrNoNextChapter)
	assert.Equal(t, "no next chapter", resp.Replies[0].Text)
	assert.Equal(t, before, state)
	f.gateway.AssertNotCalled(t, "ResolveAudio", mock.Anything, mock.Anything, mock.Anything)
}

func TestNavigatorBackAndClose(t *testing.T) {
	f := newNavigatorFixture(t)
	f.gateway.EXPECT().ListChapters(mockAnyContext()).Return(allChapters(), nil).Once()

	state := playingState(7, 2)
	resp := f.navigator.Handle(context.Background(), &state, button("back_to_chapters"))
	assert.Equal(t, ReplyEdit, resp.Replies[0].Kind)
	assert.Equal(t, domain.ScreenChapterSelection, state.Screen)

	resp = f.navigator.Handle(context.Background(), &state, button("back_to_start"))
	assert.Equal(t, Reply{Kind: ReplyEdit, Text: "back at start"}, resp.Replies[0])
	assert.Equal(t, domain.ScreenIdle, state.Screen)

	resp = f.navigator.Handle(context.Background(), &state, button("close"))
	assert.Equal(t, Reply{Kind: ReplyDelete}, resp.Replies[0])
	assert.Equal(t, domain.ScreenClosed, state.Screen)

	reciter, ok := state.Reciter()
	require.True(t, ok)
	assert.Equal(t, domain.ReciterID(7), reciter)
}

func TestNavigatorUnknownCallbackDoesNotMutate(t *testing.T) {
	f := newNavigatorFixture(t)

	state := playingState(7, 2)
	before := state
	resp := f.navigator.Handle(context.Background(), &state, button("seek_30"))

	require.ErrorIs(t, resp.Err, domain.ErrUnknownCallback)
	assert.Equal(t, Reply{Kind: ReplyNotice, Text: "unknown action"}, resp.Replies[0])
	assert.Equal(t, before, state)
}
