// Package export renders records into the fixed plain-text formats used for
// clipboard copies. The formats are part of the observable contract; do not
// reformat them.
package export

import (
	"fmt"
	"strings"

	"github.com/rcase/plumbjobs/internal/estimate"
	"github.com/rcase/plumbjobs/internal/model"
)

// EstimateText renders a job's estimate breakdown.
func EstimateText(j *model.Job) string {
	e := j.Estimate
	totals := estimate.Calculate(e)

	return fmt.Sprintf(`Estimate — %s (%s)
Date: %s
%s

Labor: %s hrs × $%s/hr = $%s
Materials: $%s + %s%% = $%s
Trip/Diagnostic: $%s

TOTAL: $%s`,
		j.Name, j.Type,
		j.Date,
		j.Address,
		estimate.FormatNumber(estimate.Num(e.LaborHours)),
		estimate.FormatNumber(estimate.Num(e.LaborRate)),
		estimate.FormatMoney(totals.Labor),
		estimate.FormatMoney(estimate.Num(e.MaterialsSubtotal)),
		estimate.FormatNumber(estimate.Num(e.MarkupPct)),
		estimate.FormatMoney(totals.Materials),
		estimate.FormatMoney(totals.TripFee),
		estimate.FormatMoney(totals.Total),
	)
}

// MaterialsText renders a job's material list.
func MaterialsText(j *model.Job) string {
	lines := make([]string, 0, len(j.Materials))
	for _, m := range j.Materials {
		lines = append(lines, fmt.Sprintf("%d × %s", m.Qty, m.Item))
	}
	body := "(none)"
	if len(lines) > 0 {
		body = strings.Join(lines, "\n")
	}
	return fmt.Sprintf("Materials List — %s (%s)\n%s\n\n%s", j.Name, j.Type, j.Address, body)
}

// QuickRefText renders a quick reference for copying.
func QuickRefText(r *model.QuickReference) string {
	tag := r.Tag
	if tag == "" {
		tag = "untagged"
	}
	return fmt.Sprintf("%s (%s)\n\n%s", r.Title, tag, r.Body)
}
