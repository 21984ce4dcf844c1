package workflow

import (
	"fmt"

	"github.com/jmonzon-gt/distribuidores/constants"
	"github.com/jmonzon-gt/distribuidores/internal/common"
	"github.com/jmonzon-gt/distribuidores/internal/entity"
)

// ValidateTransition checks the state graph for one request. Terminal states
// refuse everything, including cancellation.
func ValidateTransition(req *entity.Request, to constants.RequestState) error {
	if !to.IsValid() {
		return common.NewValidationError("state", fmt.Sprintf("unknown state %q", to))
	}
	if req.State.IsTerminal() {
		return &common.StateTransitionError{
			From:    req.State,
			To:      to,
			Message: "request is in a terminal state",
		}
	}
	if !constants.CanTransition(req.State, to) {
		return &common.StateTransitionError{From: req.State, To: to}
	}
	return nil
}

// ReadinessOffenders lists every child record that still blocks the request
// from advancing past review: anything pending or rejected, plus any section
// whose newest revision is an unresolved rejection.
func ReadinessOffenders(children *entity.Children) []string {
	var offenders []string
	for _, d := range children.Documents {
		if !d.ReviewStatus.IsSettled() {
			offenders = append(offenders, fmt.Sprintf("document %s is %s", d.DocumentType, d.ReviewStatus))
		}
	}
	for _, b := range children.Branches {
		if !b.ReviewStatus.IsSettled() {
			offenders = append(offenders, fmt.Sprintf("branch %q is %s", b.Name, b.ReviewStatus))
		}
	}
	for _, r := range children.References {
		if !r.ReviewStatus.IsSettled() {
			offenders = append(offenders, fmt.Sprintf("reference %q is %s", r.Name, r.ReviewStatus))
		}
	}
	// revisions arrive oldest first; the newest verdict per section wins
	latest := make(map[string]bool)
	var sections []string
	for _, rev := range children.Revisions {
		if _, seen := latest[rev.Section]; !seen {
			sections = append(sections, rev.Section)
		}
		latest[rev.Section] = rev.Approved
	}
	for _, section := range sections {
		if !latest[section] {
			offenders = append(offenders, fmt.Sprintf("section %q has an open observation", section))
		}
	}
	return offenders
}
