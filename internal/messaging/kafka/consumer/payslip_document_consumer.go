package consumer

import (
	"context"
	"encoding/json"

	"github.com/CASADINKE/eiffagerh-sub000/internal/events"
	"github.com/CASADINKE/eiffagerh-sub000/internal/payroll"

	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// ConsumePayslipPaid generates the printable document for each paid payslip.
// Generation is idempotent: reprocessing a message just rewrites the same
// file and URL.
func ConsumePayslipPaid(
	ctx context.Context,
	reader *kafkago.Reader,
	payrollService payroll.Service,
	logger *zap.Logger,
) {
	log := logger.Named("kafka.consumer.payslip_document")
	log.Info("payslip document consumer started")

	for {
		msg, err := reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				log.Info("payslip document consumer stopped")
				return
			}
			log.Error("fetch payslip paid message failed", zap.Error(err))
			continue
		}

		var event events.PayslipPaidEvent
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Error("decode payslip paid event failed", zap.Error(err))
			_ = reader.CommitMessages(ctx, msg)
			continue
		}

		_, err = payrollService.GenerateDocument(ctx, event.CompanyID, event.PayslipID)
		if err != nil {
			log.Error("generate payslip document failed",
				zap.String("payslip_id", event.PayslipID),
				zap.String("company_id", event.CompanyID),
				zap.Error(err),
			)
			continue
		}

		if err := reader.CommitMessages(ctx, msg); err != nil {
			log.Error("commit payslip paid message failed", zap.Error(err))
			continue
		}

		log.Info("payslip document generated from paid event",
			zap.String("payslip_id", event.PayslipID),
			zap.String("company_id", event.CompanyID),
		)
	}
}
