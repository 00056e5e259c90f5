package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/vahanafin/vahana/internal/application/dto"
	"github.com/vahanafin/vahana/internal/domain/port"
)

// DecideApplicationUseCase records a lender-ops approval or rejection on a
// prescreened application.
type DecideApplicationUseCase struct {
	appRepo   port.ApplicationRepository
	publisher port.EventPublisher
}

// NewDecideApplicationUseCase wires dependencies.
func NewDecideApplicationUseCase(
	appRepo port.ApplicationRepository,
	publisher port.EventPublisher,
) *DecideApplicationUseCase {
	return &DecideApplicationUseCase{appRepo: appRepo, publisher: publisher}
}

// Execute applies the decision and persists the result.
func (uc *DecideApplicationUseCase) Execute(
	ctx context.Context,
	req dto.DecideApplicationRequest,
) (dto.ApplicationResponse, error) {
	now := time.Now().UTC()

	app, err := uc.appRepo.FindByID(ctx, req.TenantID, req.ApplicationID)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("find application: %w", err)
	}

	if req.Approve {
		app, err = app.Approve(req.LenderID, req.Note, now)
	} else {
		app, err = app.Reject(req.Note, now)
	}
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("apply decision: %w", err)
	}

	if err := uc.appRepo.Save(ctx, app); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("save application: %w", err)
	}
	if err := uc.publisher.Publish(ctx, app.DomainEvents()...); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toApplicationResponse(app), nil
}
