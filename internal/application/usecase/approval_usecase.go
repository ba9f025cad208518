package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Procurement-api/internal/application/dto"
	"github.com/jhoicas/Procurement-api/internal/domain"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/domain/repository"
	"github.com/jhoicas/Procurement-api/internal/domain/workflow"
)

// ApprovalUseCase solicitudes y decisiones de aprobación.
type ApprovalUseCase struct {
	repo     repository.ApprovalRepository
	txRunner ApprovalTxRunner
	now      func() time.Time
}

// NewApprovalUseCase construye el caso de uso.
func NewApprovalUseCase(repo repository.ApprovalRepository, txRunner ApprovalTxRunner) *ApprovalUseCase {
	return &ApprovalUseCase{repo: repo, txRunner: txRunner, now: time.Now}
}

// Request crea la aprobación en pending y notifica al aprobador.
func (uc *ApprovalUseCase) Request(ctx context.Context, in dto.CreateApprovalRequest) (*dto.ApprovalResponse, error) {
	now := uc.now()
	a := &entity.Approval{
		ID:         uuid.New().String(),
		EntityType: in.EntityType,
		EntityID:   in.EntityID,
		ApproverID: in.ApproverID,
		Status:     entity.ApprovalStatusPending,
		Comments:   in.Comments,
		CreatedAt:  now,
	}
	err := uc.txRunner.RunApproval(ctx, func(
		approvals repository.ApprovalRepository,
		vendors repository.VendorRepository,
		notifications repository.NotificationRepository,
	) error {
		if a.EntityType == entity.ApprovalEntityVendor {
			v, err := vendors.GetByID(ctx, a.EntityID)
			if err != nil {
				return err
			}
			if v == nil {
				return domain.ErrNotFound
			}
		}
		if err := approvals.Create(ctx, a); err != nil {
			return err
		}
		entityID := a.ID
		return notifications.Create(ctx, &entity.Notification{
			ID:         uuid.New().String(),
			UserID:     a.ApproverID,
			Title:      "Aprobación pendiente",
			Message:    fmt.Sprintf("Tiene una solicitud de aprobación de %s pendiente", a.EntityType),
			Type:       entity.NotificationInfo,
			EntityType: "approval",
			EntityID:   &entityID,
			CreatedAt:  now,
		})
	})
	if err != nil {
		return nil, err
	}
	return toApprovalResponse(a), nil
}

// GetByID obtiene una aprobación; ErrNotFound si no existe.
func (uc *ApprovalUseCase) GetByID(ctx context.Context, id string) (*dto.ApprovalResponse, error) {
	a, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if a == nil {
		return nil, domain.ErrNotFound
	}
	return toApprovalResponse(a), nil
}

// List lista aprobaciones. Con Mine solo las asignadas a callerID.
func (uc *ApprovalUseCase) List(ctx context.Context, callerID string, q dto.ApprovalListQuery) (*dto.ListResponse[dto.ApprovalResponse], error) {
	q.DefaultPage()
	f := repository.ApprovalFilter{Status: q.Status, EntityType: q.EntityType, EntityID: q.EntityID, Page: q.Repo()}
	if q.Mine {
		f.ApproverID = callerID
	}
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ApprovalResponse, 0, len(list))
	for _, a := range list {
		items = append(items, *toApprovalResponse(a))
	}
	out := dto.NewListResponse(items, q.PageRequest)
	return &out, nil
}

// Decide aprueba o rechaza. Solo el aprobador asignado o un buyer_admin pueden decidir.
// Si la entidad es un proveedor, su estado pasa a approved/rejected en la misma transacción
// y se notifica a su usuario si lo tiene.
func (uc *ApprovalUseCase) Decide(ctx context.Context, id, deciderID, deciderRole string, in dto.DecideApprovalRequest) (*dto.ApprovalResponse, error) {
	var decided *entity.Approval
	err := uc.txRunner.RunApproval(ctx, func(
		approvals repository.ApprovalRepository,
		vendors repository.VendorRepository,
		notifications repository.NotificationRepository,
	) error {
		a, err := approvals.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if a == nil {
			return domain.ErrNotFound
		}
		if a.ApproverID != deciderID && deciderRole != entity.RoleBuyerAdmin {
			return domain.ErrForbidden
		}
		if err := workflow.Approval.Check(a.Status, in.Status); err != nil {
			return err
		}
		now := uc.now()
		a.Status = in.Status
		a.Comments = in.Comments
		a.ApprovedAt = &now
		if err := approvals.Decide(ctx, a); err != nil {
			return err
		}
		if a.EntityType == entity.ApprovalEntityVendor {
			if err := applyVendorDecision(ctx, vendors, notifications, a, now); err != nil {
				return err
			}
		}
		decided = a
		return nil
	})
	if err != nil {
		return nil, err
	}
	return toApprovalResponse(decided), nil
}

func applyVendorDecision(
	ctx context.Context,
	vendors repository.VendorRepository,
	notifications repository.NotificationRepository,
	a *entity.Approval,
	now time.Time,
) error {
	v, err := vendors.GetByID(ctx, a.EntityID)
	if err != nil {
		return err
	}
	if v == nil {
		return domain.ErrNotFound
	}
	target := entity.VendorStatusRejected
	if a.Status == entity.ApprovalStatusApproved {
		target = entity.VendorStatusApproved
	}
	if v.Status != target {
		if err := workflow.Vendor.Check(v.Status, target); err != nil {
			return err
		}
		if err := vendors.UpdateStatus(ctx, v.ID, target); err != nil {
			return err
		}
	}
	if v.UserID == nil {
		return nil
	}
	kind, title := entity.NotificationSuccess, "Registro aprobado"
	if target == entity.VendorStatusRejected {
		kind, title = entity.NotificationWarning, "Registro rechazado"
	}
	vendorID := v.ID
	return notifications.Create(ctx, &entity.Notification{
		ID:         uuid.New().String(),
		UserID:     *v.UserID,
		Title:      title,
		Message:    fmt.Sprintf("El registro de %s quedó en estado %s", v.CompanyName, target),
		Type:       kind,
		EntityType: entity.ApprovalEntityVendor,
		EntityID:   &vendorID,
		CreatedAt:  now,
	})
}

func toApprovalResponse(a *entity.Approval) *dto.ApprovalResponse {
	return &dto.ApprovalResponse{
		ID:         a.ID,
		EntityType: a.EntityType,
		EntityID:   a.EntityID,
		ApproverID: a.ApproverID,
		Status:     a.Status,
		Comments:   a.Comments,
		ApprovedAt: a.ApprovedAt,
		CreatedAt:  a.CreatedAt,
	}
}
