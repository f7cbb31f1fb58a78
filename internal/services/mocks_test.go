package services

import (
	"context"
	"time"

	"conferencecentral/internal/domain"
)

type mockConferenceRepository struct {
	confs       map[string]*domain.Conference
	byOrganizer []*domain.Conference
	attending   []*domain.Conference
	nearly      []*domain.Conference
	search      []*domain.Conference

	created  []*domain.Conference
	lastPlan *domain.QueryPlan
	err      error
}

func (m *mockConferenceRepository) Create(ctx context.Context, conf *domain.Conference) error {
	if m.err != nil {
		return m.err
	}
	conf.ID = "conf-new"
	m.created = append(m.created, conf)
	return nil
}

func (m *mockConferenceRepository) GetByID(ctx context.Context, id string) (*domain.Conference, error) {
	if m.err != nil {
		return nil, m.err
	}
	conf, ok := m.confs[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return conf, nil
}

func (m *mockConferenceRepository) ListByOrganizerID(ctx context.Context, organizerID string) ([]*domain.Conference, error) {
	return m.byOrganizer, m.err
}

func (m *mockConferenceRepository) ListByAttendee(ctx context.Context, profileID string) ([]*domain.Conference, error) {
	return m.attending, m.err
}

func (m *mockConferenceRepository) Search(ctx context.Context, plan *domain.QueryPlan) ([]*domain.Conference, error) {
	m.lastPlan = plan
	return m.search, m.err
}

func (m *mockConferenceRepository) ListNearlySoldOut(ctx context.Context, maxSeats int) ([]*domain.Conference, error) {
	return m.nearly, m.err
}

type mockProfileRepository struct {
	profiles map[string]*domain.Profile
	byEmail  map[string]*domain.Profile
	updated  []*domain.Profile
	err      error
}

func (m *mockProfileRepository) Create(ctx context.Context, p *domain.Profile) error {
	if m.err != nil {
		return m.err
	}
	p.ID = "prof-new"
	return nil
}

func (m *mockProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.profiles[id]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

func (m *mockProfileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	if m.err != nil {
		return nil, m.err
	}
	p, ok := m.byEmail[email]
	if !ok {
		return nil, domain.ErrProfileNotFound
	}
	return p, nil
}

func (m *mockProfileRepository) Update(ctx context.Context, p *domain.Profile) error {
	if m.err != nil {
		return m.err
	}
	m.updated = append(m.updated, p)
	return nil
}

type mockSessionRepository struct {
	sessions map[string]*domain.Session
	list     []*domain.Session
	created  []*domain.Session
	err      error
}

func (m *mockSessionRepository) Create(ctx context.Context, s *domain.Session) error {
	if m.err != nil {
		return m.err
	}
	s.ID = "sess-new"
	m.created = append(m.created, s)
	return nil
}

func (m *mockSessionRepository) GetByID(ctx context.Context, id string) (*domain.Session, error) {
	s, ok := m.sessions[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (m *mockSessionRepository) ListByConferenceID(ctx context.Context, conferenceID string) ([]*domain.Session, error) {
	return m.list, m.err
}

func (m *mockSessionRepository) ListByConferenceIDAndType(ctx context.Context, conferenceID, typeOfSession string) ([]*domain.Session, error) {
	return m.list, m.err
}

func (m *mockSessionRepository) ListBySpeaker(ctx context.Context, speaker string) ([]*domain.Session, error) {
	return m.list, m.err
}

func (m *mockSessionRepository) ListByMaxDuration(ctx context.Context, maxMinutes int) ([]*domain.Session, error) {
	return m.list, m.err
}

func (m *mockSessionRepository) ListByStartTime(ctx context.Context, startTime time.Time) ([]*domain.Session, error) {
	return m.list, m.err
}

type mockWishlistRepository struct {
	added    [][2]string
	sessions []*domain.Session
	err      error
}

func (m *mockWishlistRepository) Add(ctx context.Context, profileID, sessionID string, now time.Time) error {
	if m.err != nil {
		return m.err
	}
	m.added = append(m.added, [2]string{profileID, sessionID})
	return nil
}

func (m *mockWishlistRepository) ListSessions(ctx context.Context, profileID string) ([]*domain.Session, error) {
	return m.sessions, m.err
}

// mockSpeakerRepository mimics the idempotent per-session counting of the
// real repository.
type mockSpeakerRepository struct {
	counts  map[string]int
	counted map[string]bool
	err     error
}

func newMockSpeakerRepository() *mockSpeakerRepository {
	return &mockSpeakerRepository{
		counts:  make(map[string]int),
		counted: make(map[string]bool),
	}
}

func (m *mockSpeakerRepository) RecordMention(ctx context.Context, sessionID, speaker string) (int, bool, error) {
	if m.err != nil {
		return 0, false, m.err
	}
	if m.counted[sessionID] {
		return m.counts[speaker], false, nil
	}
	m.counted[sessionID] = true
	m.counts[speaker]++
	return m.counts[speaker], true, nil
}

func (m *mockSpeakerRepository) GetCount(ctx context.Context, speaker string) (int, error) {
	return m.counts[speaker], m.err
}

// mockRegistrationRepository returns errors from a script, one per call.
type mockRegistrationRepository struct {
	registerErrs  []error
	unregisterErr error
	removed       bool
	registerCalls int
}

func (m *mockRegistrationRepository) Register(ctx context.Context, profileID, conferenceID string, now time.Time) error {
	var err error
	if m.registerCalls < len(m.registerErrs) {
		err = m.registerErrs[m.registerCalls]
	}
	m.registerCalls++
	return err
}

func (m *mockRegistrationRepository) Unregister(ctx context.Context, profileID, conferenceID string) (bool, error) {
	return m.removed, m.unregisterErr
}

type mockCache struct {
	values  map[string]string
	deletes []string
}

func newMockCache() *mockCache {
	return &mockCache{values: make(map[string]string)}
}

func (m *mockCache) Set(ctx context.Context, key, value string) error {
	m.values[key] = value
	return nil
}

func (m *mockCache) Get(ctx context.Context, key string) (string, bool, error) {
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *mockCache) Delete(ctx context.Context, key string) error {
	m.deletes = append(m.deletes, key)
	delete(m.values, key)
	return nil
}

type enqueuedTask struct {
	job    string
	params map[string]string
}

type mockTaskDispatcher struct {
	enqueued []enqueuedTask
	err      error
}

func (m *mockTaskDispatcher) Enqueue(ctx context.Context, job string, params map[string]string) error {
	if m.err != nil {
		return m.err
	}
	m.enqueued = append(m.enqueued, enqueuedTask{job: job, params: params})
	return nil
}
