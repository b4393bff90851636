package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "networth/internal/errors"
	"networth/internal/models"
)

// goalService handles goal-related business logic.
type goalService struct {
	db *gorm.DB
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB) GoalServicer {
	return &goalService{db: db}
}

// CreateGoal records a new goal for the user. New goals always start In Progress.
func (s *goalService) CreateGoal(userID uint, title, description string, targetAmount, currentAmount float64, targetDate time.Time, category string, priority int) (*models.Goal, error) {
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title is required")
	}
	if targetAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be positive")
	}
	if currentAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current amount cannot be negative")
	}
	if priority < 1 || priority > 5 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "priority must be between 1 and 5")
	}

	goal := &models.Goal{
		UserID:        userID,
		Title:         title,
		Description:   description,
		TargetAmount:  targetAmount,
		CurrentAmount: currentAmount,
		TargetDate:    targetDate,
		Category:      category,
		Priority:      priority,
		Status:        models.GoalStatusInProgress,
	}

	if err := s.db.Create(goal).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return goal, nil
}

// GetUserGoals returns all of the user's goals, newest first.
func (s *goalService) GetUserGoals(userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	if err := s.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&goals).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return goals, nil
}

// GetGoalByID returns a goal by ID if it belongs to the user.
func (s *goalService) GetGoalByID(userID, goalID uint) (*models.Goal, error) {
	var goal models.Goal
	if err := s.db.Where("id = ? AND user_id = ?", goalID, userID).First(&goal).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrGoalNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &goal, nil
}

// UpdateGoal overwrites only the supplied fields of a goal. Status moves
// freely; there is no required relationship between current amount and
// target before a goal may be marked Completed.
func (s *goalService) UpdateGoal(userID, goalID uint, update GoalUpdate) (*models.Goal, error) {
	goal, err := s.GetGoalByID(userID, goalID)
	if err != nil {
		return nil, err
	}

	if update.TargetAmount != nil && *update.TargetAmount <= 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target amount must be positive")
	}
	if update.CurrentAmount != nil && *update.CurrentAmount < 0 {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "current amount cannot be negative")
	}
	if update.Priority != nil && (*update.Priority < 1 || *update.Priority > 5) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "priority must be between 1 and 5")
	}

	updates := make(map[string]interface{})
	if update.Title != "" {
		updates["title"] = update.Title
	}
	if update.Description != nil {
		updates["description"] = *update.Description
	}
	if update.TargetAmount != nil {
		updates["target_amount"] = *update.TargetAmount
	}
	if update.CurrentAmount != nil {
		updates["current_amount"] = *update.CurrentAmount
	}
	if update.TargetDate != nil {
		updates["target_date"] = *update.TargetDate
	}
	if update.Category != "" {
		updates["category"] = update.Category
	}
	if update.Priority != nil {
		updates["priority"] = *update.Priority
	}
	if update.Status != nil {
		updates["status"] = *update.Status
	}

	if len(updates) > 0 {
		if err := s.db.Model(goal).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return goal, nil
}

// DeleteGoal deletes a goal scoped by user.
func (s *goalService) DeleteGoal(userID, goalID uint) error {
	goal, err := s.GetGoalByID(userID, goalID)
	if err != nil {
		return err
	}

	if err := s.db.Delete(goal).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// GetTotalProgress returns the arithmetic mean of the user's per-goal
// completion percentages, 0 when the user has no goals. Progress is not
// clamped, so an overshot goal can pull the mean above 100.
func (s *goalService) GetTotalProgress(userID uint) (float64, error) {
	goals, err := s.GetUserGoals(userID)
	if err != nil {
		return 0, err
	}
	if len(goals) == 0 {
		return 0, nil
	}

	var total float64
	for i := range goals {
		total += goals[i].Progress()
	}
	return total / float64(len(goals)), nil
}

// GetGoalProgress returns the per-goal completion percentages, newest first.
func (s *goalService) GetGoalProgress(userID uint) ([]GoalProgress, error) {
	goals, err := s.GetUserGoals(userID)
	if err != nil {
		return nil, err
	}

	progress := make([]GoalProgress, 0, len(goals))
	for i := range goals {
		progress = append(progress, GoalProgress{
			GoalID:   goals[i].ID,
			Title:    goals[i].Title,
			Progress: goals[i].Progress(),
		})
	}
	return progress, nil
}
