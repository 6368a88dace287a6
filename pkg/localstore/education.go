package localstore

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/greenloop/greenloop-go/pkg/db"
	"github.com/greenloop/greenloop-go/pkg/db/models"
	pkgerrors "github.com/greenloop/greenloop-go/pkg/errors"
)

// MarkModuleCompleted records moduleID as done. Marking twice keeps the first
// completion time.
func (s *Store) MarkModuleCompleted(ctx context.Context, moduleID string) error {
	moduleID = strings.TrimSpace(moduleID)
	if moduleID == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "module id is required")
	}
	row := models.CompletedModule{Profile: s.profile, ModuleID: moduleID, CompletedAt: s.timestamp()}
	err := s.conn(ctx).Create(&row).Error
	if db.IsUniqueViolation(err, "") {
		return nil
	}
	if err != nil {
		return fmt.Errorf("mark module completed: %w", err)
	}
	return nil
}

// CompletedModules lists module ids in completion order.
func (s *Store) CompletedModules(ctx context.Context) ([]string, error) {
	var rows []models.CompletedModule
	err := s.conn(ctx).
		Where("profile = ?", s.profile).
		Order("completed_at ASC").
		Order("module_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list completed modules: %w", err)
	}
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ModuleID)
	}
	return ids, nil
}

// SaveQuizProgress merges answers (question id -> chosen option index) into
// the saved progress of moduleID.
func (s *Store) SaveQuizProgress(ctx context.Context, moduleID string, answers map[string]int) error {
	if strings.TrimSpace(moduleID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "module id is required")
	}
	if len(answers) == 0 {
		return nil
	}
	now := s.timestamp()
	rows := make([]models.QuizAnswer, 0, len(answers))
	for question, answer := range answers {
		if answer < 0 {
			return pkgerrors.New(pkgerrors.CodeValidation, fmt.Sprintf("answer for %q must not be negative", question))
		}
		rows = append(rows, models.QuizAnswer{
			Profile:    s.profile,
			ModuleID:   moduleID,
			QuestionID: question,
			Answer:     answer,
			UpdatedAt:  now,
		})
	}

	err := s.client.WithTx(ctx, func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "profile"}, {Name: "module_id"}, {Name: "question_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"answer", "updated_at"}),
		}).Create(&rows).Error
	})
	if err != nil {
		return fmt.Errorf("save quiz progress: %w", err)
	}
	return nil
}

// QuizProgress returns module id -> question id -> answer index.
func (s *Store) QuizProgress(ctx context.Context) (map[string]map[string]int, error) {
	var rows []models.QuizAnswer
	if err := s.conn(ctx).Where("profile = ?", s.profile).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load quiz progress: %w", err)
	}
	out := make(map[string]map[string]int)
	for _, r := range rows {
		if out[r.ModuleID] == nil {
			out[r.ModuleID] = make(map[string]int)
		}
		out[r.ModuleID][r.QuestionID] = r.Answer
	}
	return out, nil
}

// ResetQuiz drops the saved answers of one module.
func (s *Store) ResetQuiz(ctx context.Context, moduleID string) error {
	err := s.conn(ctx).
		Where("profile = ? AND module_id = ?", s.profile, moduleID).
		Delete(&models.QuizAnswer{}).Error
	if err != nil {
		return fmt.Errorf("reset quiz: %w", err)
	}
	return nil
}
