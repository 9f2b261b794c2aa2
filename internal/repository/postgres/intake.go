package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/injoybeauty/salon-api/internal/model"
	apperrors "github.com/injoybeauty/salon-api/pkg/errors"
)

const intakeColumns = `
	id, client_name, email, phone, client_type, service_location, address,
	service_requested, hair_length, desired_style, desired_style_other, hair_type,
	sensitive_to_noise, sensitive_to_touch, does_not_like_water, nervous_anxious,
	enjoys_fidget_toys, needs_weighted_cape, requires_quiet_environment, other_sensory_needs,
	uses_wheelchair, limited_mobility, has_behaviours, behaviour_notes,
	additional_notes, status, created_at
`

func (r *intakeRepository) Create(ctx context.Context, form *model.IntakeForm) error {
	query := `
		INSERT INTO intake_forms (
			client_name, email, phone, client_type, service_location, address,
			service_requested, hair_length, desired_style, desired_style_other, hair_type,
			sensitive_to_noise, sensitive_to_touch, does_not_like_water, nervous_anxious,
			enjoys_fidget_toys, needs_weighted_cape, requires_quiet_environment, other_sensory_needs,
			uses_wheelchair, limited_mobility, has_behaviours, behaviour_notes,
			additional_notes, status, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6,
			$7, $8, $9, $10, $11,
			$12, $13, $14, $15,
			$16, $17, $18, $19,
			$20, $21, $22, $23,
			$24, $25, $26
		)
		RETURNING id
	`
	form.Status = model.IntakeStatusNew
	form.CreatedAt = time.Now()

	err := r.db.GetContext(ctx, &form.ID, query,
		form.ClientName, form.Email, form.Phone, form.ClientType, form.ServiceLocation, form.Address,
		form.ServiceRequested, form.HairLength, form.DesiredStyle, form.DesiredStyleOther, form.HairType,
		form.SensitiveToNoise, form.SensitiveToTouch, form.DoesNotLikeWater, form.NervousAnxious,
		form.EnjoysFidgetToys, form.NeedsWeightedCape, form.RequiresQuietEnvironment, form.OtherSensoryNeeds,
		form.UsesWheelchair, form.LimitedMobility, form.HasBehaviours, form.BehaviourNotes,
		form.AdditionalNotes, form.Status, form.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create intake form: %w", err)
	}
	return nil
}

func (r *intakeRepository) Get(ctx context.Context, id int64) (*model.IntakeForm, error) {
	query := `SELECT ` + intakeColumns + ` FROM intake_forms WHERE id = $1`

	var form model.IntakeForm
	err := r.db.GetContext(ctx, &form, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NewNotFound("intake form", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get intake form: %w", err)
	}
	return &form, nil
}

func (r *intakeRepository) List(ctx context.Context, status model.IntakeStatus) ([]*model.IntakeForm, error) {
	query := `SELECT ` + intakeColumns + ` FROM intake_forms`
	args := []interface{}{}

	if status != "" {
		query += " WHERE status = $1"
		args = append(args, status)
	}
	query += " ORDER BY created_at DESC"

	var forms []*model.IntakeForm
	if err := r.db.SelectContext(ctx, &forms, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list intake forms: %w", err)
	}
	return forms, nil
}

func (r *intakeRepository) UpdateStatus(ctx context.Context, id int64, status model.IntakeStatus) error {
	query := `
		UPDATE intake_forms
		SET status = $1
		WHERE id = $2
	`
	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update intake status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return apperrors.NewNotFound("intake form", nil)
	}
	return nil
}
