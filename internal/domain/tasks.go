package domain

import "context"

// Job names accepted by the task dispatcher.
const (
	JobSendConfirmationEmail = "send_confirmation_email"
	JobAddFeaturedSpeaker    = "add_featured_speaker"
)

// Parameter keys used in task parameter bags.
const (
	TaskParamEmail          = "email"
	TaskParamConferenceName = "conference_name"
	TaskParamSessionID      = "session_id"
	TaskParamSpeaker        = "speaker"
)

// TaskDispatcher accepts a named job with a parameter bag and runs it
// asynchronously, at least once. Enqueue is fire-and-forget: callers do not
// learn the job's outcome.
type TaskDispatcher interface {
	Enqueue(ctx context.Context, job string, params map[string]string) error
}
