package challenge

import (
	"fmt"
	"math"
	"time"

	"github.com/limbo/codestreak/pkg/entity"
)

// LogActivity appends an anti-cheat signal. Failed runs are frozen and keep their log as is.
func (e *Engine) LogActivity(progress *entity.ChallengeProgress, log entity.ActivityLog, now time.Time) (*entity.ChallengeProgress, bool) {
	if progress.Failed {
		return progress, false
	}
	if log.Timestamp.IsZero() {
		log.Timestamp = now
	}
	updated := progress.Clone()
	updated.ActivityLogs = append(updated.ActivityLogs, log)
	return updated, true
}

// DetectSuspiciousActivity inspects the logs of one problem for pasted code
// and for typing faster than a human would.
func (e *Engine) DetectSuspiciousActivity(logs []entity.ActivityLog, problemID int64, now time.Time) []entity.SuspiciousActivity {
	var (
		pasted      int
		codeLength  = 1
		speedSum    float64
		speedCount  int
		suspicious  = make([]entity.SuspiciousActivity, 0)
		submitFound bool
	)
	for _, l := range logs {
		if l.ProblemID != problemID || l.Details == nil {
			continue
		}
		switch l.Action {
		case entity.ActionPaste:
			pasted += l.Details.PasteLength
		case entity.ActionSubmit:
			if !submitFound && l.Details.CodeLength > 0 {
				codeLength = l.Details.CodeLength
				submitFound = true
			}
		case entity.ActionTyping:
			if l.Details.TypingSpeed > 0 {
				speedSum += l.Details.TypingSpeed
				speedCount++
			}
		}
	}

	pasteShare := float64(pasted) / float64(codeLength)
	if pasteShare > e.rules.MaxPastePercentage/100 {
		suspicious = append(suspicious, entity.SuspiciousActivity{
			ProblemID: problemID,
			Date:      now,
			Reason:    fmt.Sprintf("excessive copy/paste detected (%d%% of code)", int(math.Round(pasteShare*100))),
			Severity:  entity.SeverityHigh,
		})
	}
	if speedCount > 0 && speedSum/float64(speedCount) > e.rules.MaxTypingSpeed {
		suspicious = append(suspicious, entity.SuspiciousActivity{
			ProblemID: problemID,
			Date:      now,
			Reason:    "abnormal typing speed",
			Severity:  entity.SeverityMedium,
		})
	}
	return suspicious
}
