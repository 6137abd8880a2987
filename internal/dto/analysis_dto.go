package dto

import "time"

// AnalysisJobDTO is the full job view returned to the owning user.
type AnalysisJobDTO struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"`
	CvFileName  string     `json:"cv_file_name"`
	JdText      string     `json:"jd_text,omitempty"`
	Score       *float64   `json:"score,omitempty"`
	Strengths   []string   `json:"strengths,omitempty"`
	Gaps        []string   `json:"gaps,omitempty"`
	QuickWins   []string   `json:"quick_wins,omitempty"`
	Notes       string     `json:"notes,omitempty"`
	NeedsJd     bool       `json:"needs_jd"`
	NeedsRole   bool       `json:"needs_target_role"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// AnalysisJobSummaryDTO is the newest-first list projection used for polling
// overviews; result arrays are omitted to keep responses small.
type AnalysisJobSummaryDTO struct {
	ID          string     `json:"id"`
	Status      string     `json:"status"`
	CvFileName  string     `json:"cv_file_name"`
	Score       *float64   `json:"score,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

// AnalyzeRequestDTO is the outbound payload sent to the external analyzer.
type AnalyzeRequestDTO struct {
	JobID       string `json:"job_id"`
	UserID      string `json:"user_id"`
	TargetRole  string `json:"target_role,omitempty"`
	Education   string `json:"education_level,omitempty"`
	CvURL       string `json:"cv_url"`
	JdText      string `json:"jd_text,omitempty"`
	CallbackURL string `json:"callback_url"`
}

// CallbackPayload is the analyzer's result delivery body. Some analyzer
// versions spell a few keys differently; the alternate fields are folded
// into the canonical ones before the payload reaches the service.
type CallbackPayload struct {
	JobID     string         `json:"job_id"`
	Score     *float64       `json:"score"`
	Strengths []string       `json:"strengths"`
	Gaps      []CallbackItem `json:"gaps"`
	QuickWins []CallbackItem `json:"quick_wins"`
	Notes     string         `json:"notes"`
	NeedsJd   bool           `json:"needs_jd"`
	NeedsRole bool           `json:"needs_target_role"`
}

// CallbackItem tolerates both spellings the analyzer has used for the same
// concepts: fix/point and original/original_bullet.
type CallbackItem struct {
	Point          string `json:"point"`
	Fix            string `json:"fix"`
	Original       string `json:"original"`
	OriginalBullet string `json:"original_bullet"`
}

// Text returns the single normalized string for the item, preferring the
// canonical field when both are present.
func (i CallbackItem) Text() string {
	text := i.Point
	if text == "" {
		text = i.Fix
	}
	if i.Original != "" {
		return text + " (was: " + i.Original + ")"
	}
	if i.OriginalBullet != "" {
		return text + " (was: " + i.OriginalBullet + ")"
	}
	return text
}

// ProfileDTO mirrors the user profile fields a client may read and update.
type ProfileDTO struct {
	ID                  string `json:"id"`
	FirstName           string `json:"first_name"`
	LastName            string `json:"last_name"`
	Email               string `json:"email"`
	Phone               string `json:"phone,omitempty"`
	TargetRole          string `json:"target_role,omitempty"`
	EducationLevel      string `json:"education_level,omitempty"`
	GraduationYear      *int   `json:"graduation_year,omitempty"`
	OnboardingCompleted bool   `json:"onboarding_completed"`
}

// UpdateProfileRequest carries the mutable profile fields.
type UpdateProfileRequest struct {
	FirstName           *string `json:"first_name"`
	LastName            *string `json:"last_name"`
	Phone               *string `json:"phone"`
	TargetRole          *string `json:"target_role"`
	EducationLevel      *string `json:"education_level"`
	GraduationYear      *int    `json:"graduation_year"`
	OnboardingCompleted *bool   `json:"onboarding_completed"`
}
