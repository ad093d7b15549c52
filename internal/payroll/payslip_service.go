package payroll

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/CASADINKE/eiffagerh-sub000/internal/bootstrap"
	"github.com/CASADINKE/eiffagerh-sub000/internal/events"
	"github.com/CASADINKE/eiffagerh-sub000/internal/messaging/kafka"
	payrollerrors "github.com/CASADINKE/eiffagerh-sub000/internal/payroll/errors"
	"github.com/CASADINKE/eiffagerh-sub000/internal/shared/contextutil"
	"github.com/CASADINKE/eiffagerh-sub000/internal/shared/counter"
	"github.com/CASADINKE/eiffagerh-sub000/internal/stats"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const counterTypePayslip = "payslip"

// Config carries the workflow policy knobs.
type Config struct {
	// StrictTransitions closes the direct PENDING->PAID shortcut and
	// requires validation before payment.
	StrictTransitions bool
	// OpTimeout bounds every operation's round trips to the database.
	// Zero disables the bound.
	OpTimeout time.Duration
	// DocumentDir is where generated payslip PDFs are written.
	DocumentDir string
}

//go:generate mockgen -source=payslip_service.go -destination=mock/payslip_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID, actorID string, req CreatePayslipRequest) (PayslipResponse, error)
	GetAll(ctx context.Context, companyID string, filter GetPayslipsFilterRequest) ([]PayslipResponse, error)
	GetByEmployee(ctx context.Context, companyID, employeeID string) ([]PayslipResponse, error)
	GetByID(ctx context.Context, companyID, id string) (PayslipResponse, error)
	Update(ctx context.Context, companyID, actorID, id string, req UpdatePayslipRequest) (PayslipResponse, error)
	Transition(ctx context.Context, companyID, actorID, id string, req TransitionPayslipRequest) (PayslipResponse, error)
	Validate(ctx context.Context, companyID, actorID, id string) (PayslipResponse, error)
	MarkPaid(ctx context.Context, companyID, actorID, id string, req MarkPaidRequest) (PayslipResponse, error)
	Delete(ctx context.Context, companyID, id string) error
	Summary(ctx context.Context, companyID string) (PayslipSummaryResponse, error)
	GenerateDocument(ctx context.Context, companyID, id string) (PayslipResponse, error)
}

type service struct {
	db      *sql.DB
	repo    Repository
	counter counter.Repository
	outbox  kafka.OutboxRepository
	audit   bootstrap.AuditLogger
	cfg     Config
	logger  *zap.Logger
	sf      singleflight.Group
}

func NewService(db *sql.DB, repo Repository, counterRepo counter.Repository, cfg Config, logger ...*zap.Logger) Service {
	return NewServiceWithOutbox(db, repo, counterRepo, nil, nil, cfg, logger...)
}

func NewServiceWithOutbox(
	db *sql.DB,
	repo Repository,
	counterRepo counter.Repository,
	outbox kafka.OutboxRepository,
	audit bootstrap.AuditLogger,
	cfg Config,
	logger ...*zap.Logger,
) Service {
	l := zap.L().Named("payroll.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("payroll.service")
	}
	return &service{
		db:      db,
		repo:    repo,
		counter: counterRepo,
		outbox:  outbox,
		audit:   audit,
		cfg:     cfg,
		logger:  l,
	}
}

func (s *service) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.OpTimeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, s.cfg.OpTimeout)
}

func (s *service) Create(
	ctx context.Context,
	companyID, actorID string,
	req CreatePayslipRequest,
) (PayslipResponse, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("create payslip requested",
		zap.String("company_id", companyID),
		zap.String("actor_id", actorID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("period", req.Period),
	)

	companyUUID, employeeUUID, createdByUUID, period, err := validateCreateRequest(companyID, actorID, req)
	if err != nil {
		log.Warn("create payslip validation failed", zap.Error(err))
		return PayslipResponse{}, err
	}

	gross := GrossComponents{
		BaseSalary:            req.BaseSalary,
		OverSalary:            req.OverSalary,
		DisplacementAllowance: req.DisplacementAllowance,
		TransportAllowance:    req.TransportAllowance,
	}
	deductions := DeductionComponents{
		IncomeTax:           req.IncomeTax,
		PensionContribution: req.PensionContribution,
		MinimumLevy:         req.MinimumLevy,
	}
	grossTotal, deductionTotal, netPayable, err := computeTotals(gross, deductions)
	if err != nil {
		return PayslipResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("create payslip begin tx failed", zap.Error(err))
		return PayslipResponse{}, mapRepositoryError(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	belongs, err := qtx.EmployeeBelongsToCompany(ctx, companyID, req.EmployeeID)
	if err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}
	if !belongs {
		return PayslipResponse{}, payrollerrors.ErrEmployeeNotInCompany
	}

	exists, err := qtx.ExistsForPeriod(ctx, companyID, req.EmployeeID, period, nil)
	if err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}
	if exists {
		return PayslipResponse{}, payrollerrors.ErrPayslipPeriodExists
	}

	seq, err := s.counter.GetNextValue(ctx, companyID, counterTypePayslip)
	if err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}

	payslip := &Payslip{
		ID:                    uuid.New(),
		CompanyID:             companyUUID,
		EmployeeID:            employeeUUID,
		Reference:             fmt.Sprintf("PAY-%s-%06d", period.Format("2006"), seq),
		Period:                period,
		BaseSalary:            req.BaseSalary,
		OverSalary:            req.OverSalary,
		DisplacementAllowance: req.DisplacementAllowance,
		TransportAllowance:    req.TransportAllowance,
		IncomeTax:             req.IncomeTax,
		PensionContribution:   req.PensionContribution,
		MinimumLevy:           req.MinimumLevy,
		GrossTotal:            grossTotal,
		DeductionTotal:        deductionTotal,
		NetPayable:            netPayable,
		Status:                StatusPending,
		CreatedBy:             createdByUUID,
		Version:               1,
	}

	if err := qtx.Create(ctx, payslip); err != nil {
		log.Error("create payslip persist failed", zap.Error(err))
		return PayslipResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		log.Error("create payslip commit failed", zap.Error(err))
		return PayslipResponse{}, mapRepositoryError(err)
	}

	log.Info("create payslip success",
		zap.String("payslip_id", payslip.ID.String()),
		zap.String("reference", payslip.Reference),
		zap.Int64("net_payable", payslip.NetPayable),
	)

	return mapToResponse(*payslip), nil
}

func (s *service) GetAll(
	ctx context.Context,
	companyID string,
	filter GetPayslipsFilterRequest,
) ([]PayslipResponse, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	if filter.Status != "" && !validStatus(filter.Status) {
		return nil, payrollerrors.ErrInvalidStatus
	}

	var period *time.Time
	if filter.Period != "" {
		p, err := parsePeriod(filter.Period)
		if err != nil {
			return nil, err
		}
		period = &p
	}

	payslips, err := s.repo.FindAllByCompany(ctx, companyID, filter.Status, period)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	resp := mapToListResponse(payslips)

	// The free-text search runs over the loaded rows; company payrolls are
	// small enough that pushing it into SQL has not been worth it.
	resp = stats.FilterByFreeText(resp, filter.Search, func(p PayslipResponse) []string {
		return []string{p.Reference, p.EmployeeName, p.Status, p.Period}
	})

	return resp, nil
}

func (s *service) GetByEmployee(
	ctx context.Context,
	companyID, employeeID string,
) ([]PayslipResponse, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	if _, err := uuid.Parse(employeeID); err != nil {
		return nil, payrollerrors.ErrInvalidEmployeeID
	}

	payslips, err := s.repo.FindAllByEmployee(ctx, companyID, employeeID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(payslips), nil
}

func (s *service) GetByID(
	ctx context.Context,
	companyID, id string,
) (PayslipResponse, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	payslip, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*payslip), nil
}

func (s *service) Update(
	ctx context.Context,
	companyID, actorID, id string,
	req UpdatePayslipRequest,
) (PayslipResponse, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	log := contextutil.GetLogger(ctx, s.logger)

	if _, err := uuid.Parse(companyID); err != nil {
		return PayslipResponse{}, payrollerrors.ErrInvalidCompanyID
	}
	if _, err := uuid.Parse(actorID); err != nil {
		return PayslipResponse{}, payrollerrors.ErrInvalidActorID
	}

	period, err := parsePeriod(req.Period)
	if err != nil {
		return PayslipResponse{}, err
	}

	gross := GrossComponents{
		BaseSalary:            req.BaseSalary,
		OverSalary:            req.OverSalary,
		DisplacementAllowance: req.DisplacementAllowance,
		TransportAllowance:    req.TransportAllowance,
	}
	deductions := DeductionComponents{
		IncomeTax:           req.IncomeTax,
		PensionContribution: req.PensionContribution,
		MinimumLevy:         req.MinimumLevy,
	}
	grossTotal, deductionTotal, netPayable, err := computeTotals(gross, deductions)
	if err != nil {
		return PayslipResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	payslip, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}

	// Amounts freeze as soon as the payslip leaves PENDING.
	if payslip.Status != StatusPending {
		return PayslipResponse{}, payrollerrors.ErrUpdateOnlyPending
	}

	exists, err := qtx.ExistsForPeriod(ctx, companyID, payslip.EmployeeID.String(), period, &id)
	if err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}
	if exists {
		return PayslipResponse{}, payrollerrors.ErrPayslipPeriodExists
	}

	payslip.Period = period
	payslip.BaseSalary = req.BaseSalary
	payslip.OverSalary = req.OverSalary
	payslip.DisplacementAllowance = req.DisplacementAllowance
	payslip.TransportAllowance = req.TransportAllowance
	payslip.IncomeTax = req.IncomeTax
	payslip.PensionContribution = req.PensionContribution
	payslip.MinimumLevy = req.MinimumLevy
	payslip.GrossTotal = grossTotal
	payslip.DeductionTotal = deductionTotal
	payslip.NetPayable = netPayable

	if err := qtx.Update(ctx, payslip); err != nil {
		log.Error("update payslip persist failed", zap.String("payslip_id", id), zap.Error(err))
		return PayslipResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}

	log.Info("update payslip success",
		zap.String("payslip_id", id),
		zap.Int64("net_payable", payslip.NetPayable),
	)

	return mapToResponse(*payslip), nil
}

func (s *service) Validate(ctx context.Context, companyID, actorID, id string) (PayslipResponse, error) {
	return s.Transition(ctx, companyID, actorID, id, TransitionPayslipRequest{Status: StatusValidated})
}

func (s *service) MarkPaid(
	ctx context.Context,
	companyID, actorID, id string,
	req MarkPaidRequest,
) (PayslipResponse, error) {
	return s.Transition(ctx, companyID, actorID, id, TransitionPayslipRequest{
		Status:        StatusPaid,
		PaymentMethod: &req.PaymentMethod,
		PaymentDate:   req.PaymentDate,
	})
}

func (s *service) Transition(
	ctx context.Context,
	companyID, actorID, id string,
	req TransitionPayslipRequest,
) (PayslipResponse, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	log := contextutil.GetLogger(ctx, s.logger)
	log.Debug("payslip transition requested",
		zap.String("payslip_id", id),
		zap.String("company_id", companyID),
		zap.String("actor_id", actorID),
		zap.String("target_status", req.Status),
	)

	if _, err := uuid.Parse(companyID); err != nil {
		return PayslipResponse{}, payrollerrors.ErrInvalidCompanyID
	}
	actorUUID, err := uuid.Parse(actorID)
	if err != nil {
		return PayslipResponse{}, payrollerrors.ErrInvalidActorID
	}
	if !validStatus(req.Status) {
		return PayslipResponse{}, payrollerrors.ErrInvalidStatus
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		log.Error("payslip transition begin tx failed", zap.Error(err))
		return PayslipResponse{}, mapRepositoryError(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	payslip, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}

	if !allowedTransition(payslip.Status, req.Status, s.cfg.StrictTransitions) {
		log.Warn("payslip transition rejected",
			zap.String("payslip_id", id),
			zap.String("from_status", payslip.Status),
			zap.String("to_status", req.Status),
		)
		return PayslipResponse{}, payrollerrors.InvalidTransition(payslip.Status, req.Status)
	}

	now := time.Now().UTC()
	payslip.Status = req.Status

	switch req.Status {
	case StatusValidated:
		payslip.ValidatedBy = &actorUUID
		payslip.ValidatedAt = &now
		payslip.PaymentMethod = nil
		payslip.PaymentDate = nil
	case StatusPaid:
		if req.PaymentMethod == nil || *req.PaymentMethod == "" {
			return PayslipResponse{}, payrollerrors.ErrPaymentMethodRequired
		}
		method, ok := normalizePaymentMethod(*req.PaymentMethod)
		if !ok {
			return PayslipResponse{}, payrollerrors.ErrInvalidPaymentMethod
		}

		paymentDate := now
		if req.PaymentDate != nil && *req.PaymentDate != "" {
			paymentDate, err = parseDate(*req.PaymentDate)
			if err != nil {
				return PayslipResponse{}, err
			}
		}

		payslip.PaymentMethod = &method
		payslip.PaymentDate = &paymentDate
		payslip.PaidBy = &actorUUID
		payslip.PaidAt = &now
	}

	if err := qtx.Update(ctx, payslip); err != nil {
		log.Error("payslip transition persist failed",
			zap.String("payslip_id", id),
			zap.String("target_status", req.Status),
			zap.Error(err),
		)
		return PayslipResponse{}, mapRepositoryError(err)
	}

	if req.Status == StatusPaid && s.outbox != nil {
		if err := s.enqueuePaidEvent(ctx, tx, payslip); err != nil {
			log.Error("enqueue payslip paid event failed",
				zap.String("payslip_id", id),
				zap.Error(err),
			)
			return PayslipResponse{}, mapRepositoryError(err)
		}
	}

	if err := tx.Commit(); err != nil {
		log.Error("payslip transition commit failed", zap.String("payslip_id", id), zap.Error(err))
		return PayslipResponse{}, mapRepositoryError(err)
	}

	log.Info("payslip transition success",
		zap.String("payslip_id", id),
		zap.String("status", payslip.Status),
	)

	if req.Status == StatusPaid && s.audit != nil {
		s.audit.Log(ctx, bootstrap.AuditLog{
			Action:  "PAYSLIP_PAID",
			Message: "Payslip marked as paid",
			Meta: map[string]any{
				"payslip_id":     payslip.ID.String(),
				"reference":      payslip.Reference,
				"net_payable":    payslip.NetPayable,
				"payment_method": *payslip.PaymentMethod,
				"paid_by":        actorID,
			},
		})
	}

	return mapToResponse(*payslip), nil
}

// enqueuePaidEvent writes the paid event into the outbox within the same
// transaction as the status change.
func (s *service) enqueuePaidEvent(ctx context.Context, tx *sql.Tx, payslip *Payslip) error {
	event := events.PayslipPaidEvent{
		EventType:     "payroll.payslip.paid",
		PayslipID:     payslip.ID.String(),
		CompanyID:     payslip.CompanyID.String(),
		PaidBy:        payslip.PaidBy.String(),
		PaymentMethod: *payslip.PaymentMethod,
		OccurredAt:    time.Now().UTC(),
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return s.outbox.WithTx(tx).Create(ctx, kafka.OutboxEvent{
		ID:            uuid.New().String(),
		RequestID:     contextutil.GetRequestID(ctx),
		AggregateType: "payslip",
		AggregateID:   payslip.ID.String(),
		EventType:     event.EventType,
		Topic:         events.PayslipPaidTopic,
		Payload:       payload,
		Status:        kafka.OutboxStatusPending,
	})
}

func (s *service) Delete(
	ctx context.Context,
	companyID, id string,
) error {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return mapRepositoryError(err)
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	payslip, err := qtx.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return mapRepositoryError(err)
	}

	// Paid payslips are financial records and must stay on file.
	if payslip.Status == StatusPaid {
		return payrollerrors.ErrDeletePaidForbidden
	}

	if err := qtx.Delete(ctx, companyID, id); err != nil {
		return mapRepositoryError(err)
	}

	return tx.Commit()
}

func (s *service) Summary(ctx context.Context, companyID string) (PayslipSummaryResponse, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	// Dashboard refreshes tend to arrive in bursts; collapse them into a
	// single database scan per company.
	v, err, _ := s.sf.Do("payslip-summary:"+companyID, func() (any, error) {
		payslips, err := s.repo.FindAllByCompany(ctx, companyID, "", nil)
		if err != nil {
			return PayslipSummaryResponse{}, mapRepositoryError(err)
		}

		statusOf := func(p Payslip) string { return p.Status }
		return PayslipSummaryResponse{
			NetPayableByStatus: stats.SumByStatus(payslips, statusOf, func(p Payslip) int64 { return p.NetPayable }),
			CountByStatus:      stats.CountByStatus(payslips, statusOf),
		}, nil
	})
	if err != nil {
		return PayslipSummaryResponse{}, err
	}
	return v.(PayslipSummaryResponse), nil
}

// GenerateDocument renders the printable PDF for a paid payslip and records
// its location. Called by the document consumer, not the HTTP surface.
func (s *service) GenerateDocument(ctx context.Context, companyID, id string) (PayslipResponse, error) {
	ctx, cancel := s.opContext(ctx)
	defer cancel()

	log := contextutil.GetLogger(ctx, s.logger)

	payslip, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}

	resp := mapToResponse(*payslip)
	pdf, err := BuildPayslipPDF(PayslipDocumentLines(resp))
	if err != nil {
		return PayslipResponse{}, err
	}

	dir := s.cfg.DocumentDir
	if dir == "" {
		dir = "documents/payslips"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return PayslipResponse{}, err
	}
	path := filepath.Join(dir, payslip.ID.String()+".pdf")
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return PayslipResponse{}, err
	}

	url := "/files/payslips/" + payslip.ID.String() + ".pdf"
	generatedAt := time.Now().UTC()
	if err := s.repo.SetDocument(ctx, payslip.ID.String(), url, generatedAt); err != nil {
		return PayslipResponse{}, mapRepositoryError(err)
	}

	log.Info("payslip document generated",
		zap.String("payslip_id", payslip.ID.String()),
		zap.String("path", path),
	)

	resp.DocumentURL = &url
	return resp, nil
}

func validateCreateRequest(
	companyID, actorID string,
	req CreatePayslipRequest,
) (uuid.UUID, uuid.UUID, uuid.UUID, time.Time, error) {
	companyUUID, err := uuid.Parse(companyID)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, time.Time{}, payrollerrors.ErrInvalidCompanyID
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, time.Time{}, payrollerrors.ErrInvalidEmployeeID
	}
	createdByUUID, err := uuid.Parse(actorID)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, time.Time{}, payrollerrors.ErrInvalidActorID
	}
	period, err := parsePeriod(req.Period)
	if err != nil {
		return uuid.Nil, uuid.Nil, uuid.Nil, time.Time{}, err
	}
	return companyUUID, employeeUUID, createdByUUID, period, nil
}

// parsePeriod normalizes the pay period to the first day of its month.
func parsePeriod(v string) (time.Time, error) {
	t, err := time.Parse("2006-01", v)
	if err != nil {
		return time.Time{}, payrollerrors.ErrInvalidPeriodFormat
	}
	return t, nil
}

func parseDate(v string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", v)
	if err != nil {
		return time.Time{}, payrollerrors.ErrInvalidDateFormat
	}
	return t, nil
}

func mapToResponse(payslip Payslip) PayslipResponse {
	resp := PayslipResponse{
		ID:                    payslip.ID.String(),
		CompanyID:             payslip.CompanyID.String(),
		EmployeeID:            payslip.EmployeeID.String(),
		Reference:             payslip.Reference,
		Period:                payslip.Period.Format("2006-01"),
		BaseSalary:            payslip.BaseSalary,
		OverSalary:            payslip.OverSalary,
		DisplacementAllowance: payslip.DisplacementAllowance,
		TransportAllowance:    payslip.TransportAllowance,
		IncomeTax:             payslip.IncomeTax,
		PensionContribution:   payslip.PensionContribution,
		MinimumLevy:           payslip.MinimumLevy,
		GrossTotal:            payslip.GrossTotal,
		DeductionTotal:        payslip.DeductionTotal,
		NetPayable:            payslip.NetPayable,
		Status:                payslip.Status,
		CreatedBy:             payslip.CreatedBy.String(),
		DocumentURL:           payslip.DocumentURL,
		Version:               payslip.Version,
	}

	if payslip.Employee != nil {
		resp.EmployeeName = payslip.Employee.FullName
	}
	resp.PaymentMethod = payslip.PaymentMethod
	if payslip.PaymentDate != nil {
		v := payslip.PaymentDate.Format("2006-01-02")
		resp.PaymentDate = &v
	}
	if payslip.ValidatedBy != nil {
		v := payslip.ValidatedBy.String()
		resp.ValidatedBy = &v
	}
	if payslip.ValidatedAt != nil {
		v := payslip.ValidatedAt.Format(time.RFC3339)
		resp.ValidatedAt = &v
	}
	if payslip.PaidBy != nil {
		v := payslip.PaidBy.String()
		resp.PaidBy = &v
	}
	if payslip.PaidAt != nil {
		v := payslip.PaidAt.Format(time.RFC3339)
		resp.PaidAt = &v
	}

	return resp
}

func mapToListResponse(payslips []Payslip) []PayslipResponse {
	resp := make([]PayslipResponse, len(payslips))
	for i, payslip := range payslips {
		resp[i] = mapToResponse(payslip)
	}
	return resp
}
