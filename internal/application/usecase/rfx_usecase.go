package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Procurement-api/internal/application/dto"
	"github.com/jhoicas/Procurement-api/internal/domain"
	"github.com/jhoicas/Procurement-api/internal/domain/entity"
	"github.com/jhoicas/Procurement-api/internal/domain/repository"
	"github.com/jhoicas/Procurement-api/internal/domain/workflow"
)

// RfxReferencePrefix prefijo de los números de referencia generados.
const RfxReferencePrefix = "RFX"

// RfxUseCase eventos RFI/RFP/RFQ, invitaciones a proveedores y sus respuestas.
type RfxUseCase struct {
	repo       repository.RfxRepository
	vendorRepo repository.VendorRepository
	now        func() time.Time
}

// NewRfxUseCase construye el caso de uso.
func NewRfxUseCase(repo repository.RfxRepository, vendorRepo repository.VendorRepository) *RfxUseCase {
	return &RfxUseCase{repo: repo, vendorRepo: vendorRepo, now: time.Now}
}

// Create crea el evento en draft. Sin referencia se genera RFX-YYYYMMDD-XXXXXX.
func (uc *RfxUseCase) Create(ctx context.Context, createdBy string, in dto.CreateRfxRequest) (*dto.RfxResponseDTO, error) {
	if in.Budget.Valid && in.Budget.Decimal.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	e := &entity.RfxEvent{
		ID:        uuid.New().String(),
		Status:    entity.RfxStatusDraft,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if createdBy != "" {
		e.CreatedBy = &createdBy
	}
	applyRfx(e, in)
	if e.ReferenceNo == "" {
		e.ReferenceNo = domain.NewReferenceNo(RfxReferencePrefix, now)
	}
	if err := uc.repo.Create(ctx, e); err != nil {
		return nil, err
	}
	return toRfxResponse(e), nil
}

// GetByID obtiene un evento; ErrNotFound si no existe.
func (uc *RfxUseCase) GetByID(ctx context.Context, id string) (*dto.RfxResponseDTO, error) {
	e, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toRfxResponse(e), nil
}

// List lista eventos por estado y tipo.
func (uc *RfxUseCase) List(ctx context.Context, q dto.RfxListQuery) (*dto.ListResponse[dto.RfxResponseDTO], error) {
	q.DefaultPage()
	list, err := uc.repo.List(ctx, repository.RfxFilter{Status: q.Status, Type: q.Type, Page: q.Repo()})
	if err != nil {
		return nil, err
	}
	items := make([]dto.RfxResponseDTO, 0, len(list))
	for _, e := range list {
		items = append(items, *toRfxResponse(e))
	}
	out := dto.NewListResponse(items, q.PageRequest)
	return &out, nil
}

// Update reemplaza los datos del evento. Solo mientras está en draft.
func (uc *RfxUseCase) Update(ctx context.Context, id string, in dto.CreateRfxRequest) (*dto.RfxResponseDTO, error) {
	e, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if e.Status != entity.RfxStatusDraft {
		return nil, domain.ErrInvalidTransition
	}
	ref := e.ReferenceNo
	applyRfx(e, in)
	if e.ReferenceNo == "" {
		e.ReferenceNo = ref
	}
	e.UpdatedAt = uc.now()
	if err := uc.repo.Update(ctx, e); err != nil {
		return nil, err
	}
	return toRfxResponse(e), nil
}

// ChangeStatus draft -> published -> active -> closed, o cancelled antes de cerrar.
func (uc *RfxUseCase) ChangeStatus(ctx context.Context, id, status string) (*dto.RfxResponseDTO, error) {
	e, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := workflow.Rfx.Check(e.Status, status); err != nil {
		return nil, err
	}
	if err := uc.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}
	e.Status = status
	return toRfxResponse(e), nil
}

// Delete elimina el evento con sus invitaciones y respuestas.
func (uc *RfxUseCase) Delete(ctx context.Context, id string) error {
	return uc.repo.Delete(ctx, id)
}

// Invite invita proveedores. Reinvitar a uno ya invitado no cambia nada.
func (uc *RfxUseCase) Invite(ctx context.Context, rfxID string, in dto.InviteVendorsRequest) ([]dto.InvitationResponse, error) {
	e, err := uc.get(ctx, rfxID)
	if err != nil {
		return nil, err
	}
	if workflow.Rfx.Terminal(e.Status) {
		return nil, domain.ErrInvalidTransition
	}
	now := uc.now()
	for _, vendorID := range in.VendorIDs {
		v, err := uc.vendorRepo.GetByID(ctx, vendorID)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, domain.ErrNotFound
		}
		if _, err := uc.repo.Invite(ctx, &entity.RfxInvitation{
			RfxID:     rfxID,
			VendorID:  vendorID,
			Status:    entity.InvitationStatusInvited,
			InvitedAt: now,
		}); err != nil {
			return nil, err
		}
	}
	return uc.ListInvitations(ctx, rfxID)
}

// ListInvitations lista las invitaciones del evento.
func (uc *RfxUseCase) ListInvitations(ctx context.Context, rfxID string) ([]dto.InvitationResponse, error) {
	if _, err := uc.get(ctx, rfxID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListInvitations(ctx, rfxID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.InvitationResponse, 0, len(list))
	for _, inv := range list {
		out = append(out, toInvitationResponse(inv))
	}
	return out, nil
}

// UpdateInvitationStatus invited -> viewed -> responded|declined. responded/declined fijan respondedAt.
func (uc *RfxUseCase) UpdateInvitationStatus(ctx context.Context, rfxID, vendorID, status string) (*dto.InvitationResponse, error) {
	inv, err := uc.repo.GetInvitation(ctx, rfxID, vendorID)
	if err != nil {
		return nil, err
	}
	if inv == nil {
		return nil, domain.ErrNotFound
	}
	if err := workflow.Invitation.Check(inv.Status, status); err != nil {
		return nil, err
	}
	var respondedAt *time.Time
	if status == entity.InvitationStatusResponded || status == entity.InvitationStatusDeclined {
		now := uc.now()
		respondedAt = &now
		inv.RespondedAt = respondedAt
	}
	if err := uc.repo.UpdateInvitationStatus(ctx, rfxID, vendorID, status, respondedAt); err != nil {
		return nil, err
	}
	inv.Status = status
	out := toInvitationResponse(inv)
	return &out, nil
}

// SubmitResponse registra la oferta de un proveedor. El evento debe estar published o active;
// si el proveedor estaba invitado su invitación pasa a responded. Un usuario vendor solo
// responde por su propio proveedor.
func (uc *RfxUseCase) SubmitResponse(ctx context.Context, actor Actor, rfxID string, in dto.SubmitRfxResponseRequest) (*dto.RfxSubmissionResponse, error) {
	vendorID, err := actingVendor(ctx, uc.vendorRepo, actor, in.VendorID)
	if err != nil {
		return nil, err
	}
	in.VendorID = vendorID
	e, err := uc.get(ctx, rfxID)
	if err != nil {
		return nil, err
	}
	if !e.AcceptsResponses() {
		return nil, domain.ErrInvalidTransition
	}
	if in.QuotedPrice.Valid && in.QuotedPrice.Decimal.IsNegative() {
		return nil, domain.ErrInvalidInput
	}
	now := uc.now()
	resp := &entity.RfxResponse{
		ID:            uuid.New().String(),
		RfxID:         rfxID,
		VendorID:      in.VendorID,
		Response:      in.Response,
		QuotedPrice:   in.QuotedPrice,
		DeliveryTerms: in.DeliveryTerms,
		PaymentTerms:  in.PaymentTerms,
		LeadTime:      in.LeadTime,
		Attachments:   in.Attachments,
		SubmittedAt:   now,
	}
	if err := uc.repo.CreateResponse(ctx, resp); err != nil {
		return nil, err
	}

	inv, err := uc.repo.GetInvitation(ctx, rfxID, in.VendorID)
	if err != nil {
		return nil, err
	}
	if inv != nil && workflow.Invitation.Can(inv.Status, entity.InvitationStatusResponded) {
		if err := uc.repo.UpdateInvitationStatus(ctx, rfxID, in.VendorID, entity.InvitationStatusResponded, &now); err != nil {
			return nil, err
		}
	}
	out := toRfxSubmission(resp)
	return &out, nil
}

// ListResponses respuestas recibidas por el evento.
func (uc *RfxUseCase) ListResponses(ctx context.Context, rfxID string) ([]dto.RfxSubmissionResponse, error) {
	if _, err := uc.get(ctx, rfxID); err != nil {
		return nil, err
	}
	list, err := uc.repo.ListResponses(ctx, rfxID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.RfxSubmissionResponse, 0, len(list))
	for _, r := range list {
		out = append(out, toRfxSubmission(r))
	}
	return out, nil
}

func (uc *RfxUseCase) get(ctx context.Context, id string) (*entity.RfxEvent, error) {
	e, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, domain.ErrNotFound
	}
	return e, nil
}

func applyRfx(e *entity.RfxEvent, in dto.CreateRfxRequest) {
	e.Title = in.Title
	e.ReferenceNo = in.ReferenceNo
	e.Type = in.Type
	e.Scope = in.Scope
	e.Criteria = in.Criteria
	e.DueDate = in.DueDate
	e.EvaluationParameters = in.EvaluationParameters
	e.Attachments = in.Attachments
	e.BOMID = in.BOMID
	e.ContactPerson = in.ContactPerson
	e.Budget = in.Budget
}

func toRfxResponse(e *entity.RfxEvent) *dto.RfxResponseDTO {
	return &dto.RfxResponseDTO{
		ID:                   e.ID,
		Title:                e.Title,
		ReferenceNo:          e.ReferenceNo,
		Type:                 e.Type,
		Scope:                e.Scope,
		Criteria:             e.Criteria,
		DueDate:              e.DueDate,
		Status:               e.Status,
		EvaluationParameters: e.EvaluationParameters,
		Attachments:          e.Attachments,
		BOMID:                e.BOMID,
		ContactPerson:        e.ContactPerson,
		Budget:               e.Budget,
		CreatedBy:            e.CreatedBy,
		CreatedAt:            e.CreatedAt,
		UpdatedAt:            e.UpdatedAt,
	}
}

func toInvitationResponse(inv *entity.RfxInvitation) dto.InvitationResponse {
	return dto.InvitationResponse{
		RfxID:       inv.RfxID,
		VendorID:    inv.VendorID,
		Status:      inv.Status,
		InvitedAt:   inv.InvitedAt,
		RespondedAt: inv.RespondedAt,
	}
}

func toRfxSubmission(r *entity.RfxResponse) dto.RfxSubmissionResponse {
	return dto.RfxSubmissionResponse{
		ID:            r.ID,
		RfxID:         r.RfxID,
		VendorID:      r.VendorID,
		Response:      r.Response,
		QuotedPrice:   r.QuotedPrice,
		DeliveryTerms: r.DeliveryTerms,
		PaymentTerms:  r.PaymentTerms,
		LeadTime:      r.LeadTime,
		Attachments:   r.Attachments,
		SubmittedAt:   r.SubmittedAt,
	}
}
