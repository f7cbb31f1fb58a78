package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"conferencecentral/internal/domain"
)

const (
	dateLayout = "2006-01-02"

	// Conferences with this many seats or fewer (but at least one) make the
	// sold-out announcement.
	nearlySoldOutSeats = 5

	announcementPrefix = "Last chance to attend! The following conferences are nearly sold out:"
)

type conferenceService struct {
	confRepo    domain.ConferenceRepository
	profileRepo domain.ProfileRepository
	cache       domain.Cache
	dispatcher  domain.TaskDispatcher
	logger      *slog.Logger
}

func NewConferenceService(
	confRepo domain.ConferenceRepository,
	profileRepo domain.ProfileRepository,
	cache domain.Cache,
	dispatcher domain.TaskDispatcher,
	logger *slog.Logger,
) domain.ConferenceService {
	return &conferenceService{
		confRepo:    confRepo,
		profileRepo: profileRepo,
		cache:       cache,
		dispatcher:  dispatcher,
		logger:      logger,
	}
}

func (s *conferenceService) CreateConference(ctx context.Context, organizerID string, input domain.CreateConferenceInput) (*domain.Conference, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, fmt.Errorf("%w: conference name is required", domain.ErrInvalidInput)
	}
	if input.MaxAttendees < 0 {
		return nil, fmt.Errorf("%w: max attendees cannot be negative", domain.ErrInvalidInput)
	}

	now := time.Now()
	conf := &domain.Conference{
		OrganizerID:  organizerID,
		Name:         strings.TrimSpace(input.Name),
		Description:  input.Description,
		Topics:       input.Topics,
		City:         input.City,
		MaxAttendees: input.MaxAttendees,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if conf.City == "" {
		conf.City = domain.DefaultCity
	}
	if len(conf.Topics) == 0 {
		conf.Topics = append([]string(nil), domain.DefaultTopics...)
	}

	if input.StartDate != "" {
		start, err := time.Parse(dateLayout, input.StartDate)
		if err != nil {
			return nil, fmt.Errorf("%w: start date must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
		conf.StartDate = &start
		conf.Month = int(start.Month())
	}
	if input.EndDate != "" {
		end, err := time.Parse(dateLayout, input.EndDate)
		if err != nil {
			return nil, fmt.Errorf("%w: end date must be YYYY-MM-DD", domain.ErrInvalidInput)
		}
		conf.EndDate = &end
	}

	// All seats start available.
	conf.SeatsAvailable = conf.MaxAttendees

	if err := s.confRepo.Create(ctx, conf); err != nil {
		return nil, fmt.Errorf("create conference: %w", err)
	}

	// Confirmation email runs out-of-band; its failure never surfaces here.
	organizer, err := s.profileRepo.GetByID(ctx, organizerID)
	if err != nil {
		s.logger.Warn("skipping confirmation email, organizer lookup failed", "organizer_id", organizerID, "err", err)
		return conf, nil
	}
	if err := s.dispatcher.Enqueue(ctx, domain.JobSendConfirmationEmail, map[string]string{
		domain.TaskParamEmail:          organizer.Email,
		domain.TaskParamConferenceName: conf.Name,
	}); err != nil {
		s.logger.Warn("failed to enqueue confirmation email", "conference_id", conf.ID, "err", err)
	}

	return conf, nil
}

func (s *conferenceService) GetConference(ctx context.Context, conferenceID string) (*domain.ConferenceWithOrganizer, error) {
	conf, err := s.confRepo.GetByID(ctx, conferenceID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get conference: %w", err)
	}
	return &domain.ConferenceWithOrganizer{
		Conference:           conf,
		OrganizerDisplayName: s.organizerName(ctx, conf.OrganizerID),
	}, nil
}

func (s *conferenceService) GetConferencesCreated(ctx context.Context, organizerID string) ([]*domain.ConferenceWithOrganizer, error) {
	confs, err := s.confRepo.ListByOrganizerID(ctx, organizerID)
	if err != nil {
		return nil, fmt.Errorf("list conferences by organizer: %w", err)
	}
	name := s.organizerName(ctx, organizerID)
	result := make([]*domain.ConferenceWithOrganizer, 0, len(confs))
	for _, conf := range confs {
		result = append(result, &domain.ConferenceWithOrganizer{
			Conference:           conf,
			OrganizerDisplayName: name,
		})
	}
	return result, nil
}

func (s *conferenceService) GetConferencesToAttend(ctx context.Context, profileID string) ([]*domain.Conference, error) {
	confs, err := s.confRepo.ListByAttendee(ctx, profileID)
	if err != nil {
		return nil, fmt.Errorf("list conferences to attend: %w", err)
	}
	return confs, nil
}

func (s *conferenceService) QueryConferences(ctx context.Context, filters []domain.Filter) ([]*domain.Conference, error) {
	plan, err := domain.CompileFilters(filters)
	if err != nil {
		return nil, err
	}
	confs, err := s.confRepo.Search(ctx, plan)
	if err != nil {
		return nil, fmt.Errorf("search conferences: %w", err)
	}
	return confs, nil
}

func (s *conferenceService) GetAnnouncement(ctx context.Context) (string, error) {
	announcement, ok, err := s.cache.Get(ctx, domain.CacheKeyAnnouncement)
	if err != nil {
		return "", fmt.Errorf("get announcement: %w", err)
	}
	if !ok {
		return "", nil
	}
	return announcement, nil
}

func (s *conferenceService) RefreshAnnouncement(ctx context.Context) (string, error) {
	confs, err := s.confRepo.ListNearlySoldOut(ctx, nearlySoldOutSeats)
	if err != nil {
		return "", fmt.Errorf("list nearly sold out: %w", err)
	}
	if len(confs) == 0 {
		if err := s.cache.Delete(ctx, domain.CacheKeyAnnouncement); err != nil {
			return "", fmt.Errorf("clear announcement: %w", err)
		}
		return "", nil
	}

	names := make([]string, 0, len(confs))
	for _, conf := range confs {
		names = append(names, conf.Name)
	}
	announcement := announcementPrefix + " " + strings.Join(names, ", ")
	if err := s.cache.Set(ctx, domain.CacheKeyAnnouncement, announcement); err != nil {
		return "", fmt.Errorf("cache announcement: %w", err)
	}
	return announcement, nil
}

func (s *conferenceService) organizerName(ctx context.Context, organizerID string) string {
	organizer, err := s.profileRepo.GetByID(ctx, organizerID)
	if err != nil {
		// The conference outlives its organizer's profile in edge cases;
		// render it without a display name rather than failing the read.
		s.logger.Warn("organizer lookup failed", "organizer_id", organizerID, "err", err)
		return ""
	}
	return organizer.DisplayName
}
