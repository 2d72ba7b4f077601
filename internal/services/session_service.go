package services

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"caelio/internal/models/quiz_models"
	"caelio/internal/repositories"
	"caelio/pkg/utils"
)

// SessionResult bundles the resolved outcome of a completed session. One of
// Profile/Professional is set depending on the track.
type SessionResult struct {
	Track        string
	Profile      *quiz_models.Profile
	Professional *quiz_models.ProfessionalProfile
	Match        MatchResult
}

type SessionServiceInterface interface {
	StartSession(ctx context.Context, track, userID string) (quiz_models.QuizSession, error)
	GetSession(ctx context.Context, sessionID string) (quiz_models.QuizSession, error)
	SubmitAnswer(ctx context.Context, sessionID, questionID, letter string) (quiz_models.QuizSession, error)
	Result(ctx context.Context, sessionID string, topN int, strategy MatchStrategy) (SessionResult, error)
}

type SessionService struct {
	sessionRepository  repositories.SessionRepositoryInterface
	personalityService PersonalityServiceInterface
	matcherService     MatcherServiceInterface
}

func NewSessionService(
	sessionRepository repositories.SessionRepositoryInterface,
	personalityService PersonalityServiceInterface,
	matcherService MatcherServiceInterface,
) SessionServiceInterface {
	return &SessionService{
		sessionRepository:  sessionRepository,
		personalityService: personalityService,
		matcherService:     matcherService,
	}
}

func (s *SessionService) StartSession(ctx context.Context, track, userID string) (quiz_models.QuizSession, error) {
	if track == "" {
		track = quiz_models.TrackDiscovery
	}
	if track != quiz_models.TrackDiscovery && track != quiz_models.TrackProfessional {
		return quiz_models.QuizSession{}, utils.ErrInvalidTrack
	}

	session := quiz_models.QuizSession{
		ID:        uuid.New().String(),
		Track:     track,
		UserID:    userID,
		Answers:   map[string]string{},
		CreatedAt: time.Now().UTC(),
	}
	if err := s.sessionRepository.Save(ctx, &session); err != nil {
		log.Printf("Error saving quiz session: %v", err)
		return quiz_models.QuizSession{}, err
	}
	return session, nil
}

func (s *SessionService) GetSession(ctx context.Context, sessionID string) (quiz_models.QuizSession, error) {
	session, err := s.sessionRepository.Get(ctx, sessionID)
	if err != nil {
		return quiz_models.QuizSession{}, err
	}
	return *session, nil
}

func (s *SessionService) SubmitAnswer(ctx context.Context, sessionID, questionID, letter string) (quiz_models.QuizSession, error) {
	session, err := s.sessionRepository.Get(ctx, sessionID)
	if err != nil {
		return quiz_models.QuizSession{}, err
	}
	if session.IsComplete() {
		return quiz_models.QuizSession{}, utils.ErrSessionComplete
	}

	// Answers land on the next unanswered question unless the caller names
	// one explicitly (re-answering is allowed before completion).
	if questionID == "" {
		questionID = session.NextQuestionID()
	}
	if err := validateAnswer(session.Track, questionID, letter); err != nil {
		return quiz_models.QuizSession{}, err
	}

	session.Answers[questionID] = letter
	if err := s.sessionRepository.Save(ctx, session); err != nil {
		log.Printf("Error saving quiz session: %v", err)
		return quiz_models.QuizSession{}, err
	}
	return *session, nil
}

func validateAnswer(track, questionID, letter string) error {
	if track == quiz_models.TrackProfessional {
		question, ok := quiz_models.ProfessionalQuestionByID(questionID)
		if !ok {
			return utils.ErrUnknownQuestion
		}
		if _, ok := question.Choices[letter]; !ok {
			return utils.ErrInvalidChoice
		}
		return nil
	}
	question, ok := quiz_models.DiscoveryQuestionByID(questionID)
	if !ok {
		return utils.ErrUnknownQuestion
	}
	if _, ok := question.Choices[letter]; !ok {
		return utils.ErrInvalidChoice
	}
	return nil
}

func (s *SessionService) Result(ctx context.Context, sessionID string, topN int, strategy MatchStrategy) (SessionResult, error) {
	session, err := s.sessionRepository.Get(ctx, sessionID)
	if err != nil {
		return SessionResult{}, err
	}
	if !session.IsComplete() {
		return SessionResult{}, utils.ErrSessionIncomplete
	}

	if session.Track == quiz_models.TrackProfessional {
		professional, err := s.personalityService.ResolveProfessional(session.Answers)
		if err != nil {
			return SessionResult{}, err
		}
		match, err := s.matcherService.RecommendProfessional(ctx, professional, topN)
		if err != nil {
			return SessionResult{}, err
		}
		return SessionResult{
			Track:        session.Track,
			Professional: &professional,
			Match:        match,
		}, nil
	}

	profile, err := s.personalityService.ResolveDiscovery(session.Answers)
	if err != nil {
		return SessionResult{}, err
	}
	match, err := s.matcherService.Recommend(ctx, profile, topN, strategy)
	if err != nil {
		return SessionResult{}, err
	}
	return SessionResult{
		Track:   session.Track,
		Profile: &profile,
		Match:   match,
	}, nil
}
