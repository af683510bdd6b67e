package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/riverqueue/river"

	"github.com/fedcourts/docket-engine/internal/core/entity"
	"github.com/fedcourts/docket-engine/internal/core/port"
)

// NefDeliveryArgs identifies the NEF a worker must fan out once the Filing
// Submission Pipeline transaction that created it has committed.
type NefDeliveryArgs struct {
	CourtID string `json:"courtId"`
	CaseID  string `json:"caseId"`
	NefID   string `json:"nefId"`
}

// Kind satisfies river.JobArgs.
func (NefDeliveryArgs) Kind() string { return "nef_delivery" }

// NefDeliveryWorker delivers a NEF's frozen recipient snapshot over email and
// SMS. A recipient that fails to deliver is logged and skipped; it does not
// fail the job for the remaining recipients.
type NefDeliveryWorker struct {
	river.WorkerDefaults[NefDeliveryArgs]

	Nefs  port.NefRepository
	Email port.EmailSender
	SMS   port.SMSSender
}

// Work sends the NEF to every recipient in its snapshot, then records the
// delivery outcome. When no recipient could be reached it returns an error
// after recording the failure, so River retries the job.
func (w *NefDeliveryWorker) Work(ctx context.Context, job *river.Job[NefDeliveryArgs]) error {
	nef, err := w.Nefs.FindByID(ctx, job.Args.CourtID, job.Args.CaseID, job.Args.NefID)
	if err != nil {
		return fmt.Errorf("loading nef %s: %w", job.Args.NefID, err)
	}

	delivered := false
	for i := range nef.RecipientSnapshot {
		recipient := &nef.RecipientSnapshot[i]
		if w.deliverTo(ctx, nef, recipient) {
			recipient.Delivered = true
			delivered = true
		}
	}

	if delivered {
		nef.MarkDelivered()
	} else {
		nef.MarkFailed()
	}

	if err := w.Nefs.Update(ctx, nef); err != nil {
		return fmt.Errorf("recording nef delivery outcome: %w", err)
	}
	if !delivered && len(nef.RecipientSnapshot) > 0 {
		return fmt.Errorf("nef %s: no recipient could be reached", nef.ID)
	}
	return nil
}

func (w *NefDeliveryWorker) deliverTo(ctx context.Context, nef *entity.Nef, recipient *entity.NefRecipient) bool {
	sent := false

	if recipient.Email != nil && *recipient.Email != "" {
		err := w.Email.Send(ctx, &port.NotificationRequest{
			To:       *recipient.Email,
			Subject:  "Notice of Electronic Filing",
			HTMLBody: nef.HTMLSnapshot,
		})
		if err != nil {
			slog.WarnContext(ctx, "nef email delivery failed",
				slog.String("nef_id", nef.ID), slog.String("recipient", recipient.Name), slog.String("error", err.Error()))
		} else {
			sent = true
		}
	}

	if recipient.NefSMSOptIn && recipient.Phone != nil && *recipient.Phone != "" {
		err := w.SMS.Send(ctx, &port.SMSRequest{
			To:   *recipient.Phone,
			Body: fmt.Sprintf("A new document was filed in your case. Case: %s", nef.CaseID),
		})
		if err != nil {
			slog.WarnContext(ctx, "nef sms delivery failed",
				slog.String("nef_id", nef.ID), slog.String("recipient", recipient.Name), slog.String("error", err.Error()))
		} else {
			sent = true
		}
	}

	return sent
}
