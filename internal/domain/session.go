package domain

// MessageRef addresses one message in one chat.
type MessageRef struct {
	ChatID    int64
	MessageID int
}

func (r MessageRef) IsZero() bool {
	return r.ChatID == 0 && r.MessageID == 0
}

// MediaHandle refers to a dispatched media item so it can be retracted later.
type MediaHandle = MessageRef

// SessionState is the navigation and playback intent of one user.
type SessionState struct {
	SelectedReciter *ReciterID
	SelectedChapter *int
	DispatchedMedia *MediaHandle
	Screen          Screen
}

func NewSessionState() SessionState {
	return SessionState{Screen: ScreenIdle}
}

func (s *SessionState) SelectReciter(id ReciterID) {
	s.SelectedReciter = &id
}

func (s *SessionState) SelectChapter(id int) {
	s.SelectedChapter = &id
}

func (s *SessionState) RecordDispatch(handle MediaHandle) {
	s.DispatchedMedia = &handle
}

func (s *SessionState) ClearDispatch() {
	s.DispatchedMedia = nil
}

func (s SessionState) Reciter() (ReciterID, bool) {
	if s.SelectedReciter == nil {
		return 0, false
	}
	return *s.SelectedReciter, true
}

func (s SessionState) Chapter() (int, bool) {
	if s.SelectedChapter == nil {
		return 0, false
	}
	return *s.SelectedChapter, true
}

func (s SessionState) Dispatched() (MediaHandle, bool) {
	if s.DispatchedMedia == nil {
		return MediaHandle{}, false
	}
	return *s.DispatchedMedia, true
}
